// The raster subpackage provides [atlas.BitmapProvider] implementations
// for common font sources: [golang.org/x/image/font.Face] values (which
// includes parsed sfnt fonts through opentype) and tinyfont bitmap fonts.
//
// Providers render each glyph on a canvas three cells wide, so glyphs
// that overhang the cell on either side are kept, and then split the
// canvas into [atlas.PartLeft], [atlas.PartCenter] and [atlas.PartRight]
// bitmaps. Parts without any coverage are omitted.
//
// Bold and italic attributes use the dedicated font variants when set.
// Otherwise they are faked: faux bold widens strokes by one pixel and
// faux italic shears rows around the baseline. Faint is a color effect,
// so providers ignore it.
package raster

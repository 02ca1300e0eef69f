// The atlas subpackage implements the glyph texture cache used by
// cellatlas renderers.
//
// Terminals draw the same few glyphs over and over, and for single-byte
// cells the key space is small: 256 characters times a handful of style
// flags. The [Cache] maps each (character, attributes) pair to the
// textures created from a [BitmapProvider], creating them lazily on the
// first lookup and keeping them until the cell geometry or the generation
// token change. At that point the whole cache is dropped, since glyph
// bitmaps depend on the geometry and there's no point in keeping entries
// that will never match again.
//
// A glyph can span more than one texture. Providers return a map from
// [Part] indices to bitmaps, which allows glyphs that overhang into the
// neighboring cells to be drawn as left, center and right layers. Parts
// that the provider doesn't return are simply absent, and renderers must
// draw nothing for them.
package atlas

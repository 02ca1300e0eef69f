package atlas

import "image"

// A BitmapProvider rasterizes the glyph for the given character and
// attributes into one bitmap per texture part.
//
// Providers must be consistent for the whole lifetime of a cache
// generation: the same inputs always produce the same bitmaps. They can
// be expensive, as a [Cache] calls them at most once per key and
// generation. Missing, nil or empty bitmaps leave the part absent.
//
// The attributes passed to providers never have decoration bits set,
// but undefined bits are passed through untouched.
type BitmapProvider func(char byte, attrs Attributes) (map[Part]*image.Alpha, error)

func isEmptyBitmap(bitmap *image.Alpha) bool {
	return bitmap == nil || bitmap.Rect.Empty()
}

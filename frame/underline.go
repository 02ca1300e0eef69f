package frame

import "image/color"

// Underline decoration styles.
type UnderlineStyle uint8
const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
)

func (self UnderlineStyle) String() string {
	switch self {
	case UnderlineNone:   return "UnderlineNone"
	case UnderlineSingle: return "UnderlineSingle"
	case UnderlineDouble: return "UnderlineDouble"
	case UnderlineCurly:  return "UnderlineCurly"
	default:
		return "UnknownUnderlineStyle"
	}
}

// Frame-wide underline parameters, applied to every cell with the
// [atlas.Underline] attribute.
type UnderlineDescriptor struct {
	Style     UnderlineStyle
	Color     color.RGBA
	Offset    int // from the top of the cell, in pixels
	Thickness int // in pixels, zero is treated as one
}

// Returns the thickness to use, never below one.
func (self UnderlineDescriptor) LineThickness() int {
	if self.Thickness <= 0 { return 1 }
	return self.Thickness
}

package raster

import "image"
import "image/color"

import "tinygo.org/x/drivers"
import "tinygo.org/x/tinyfont"

import "github.com/tinne26/cellatlas/atlas"

var _ drivers.Displayer = (*alphaDisplay)(nil)

// A bitmap provider for tinyfont bitmap fonts. Bitmap fonts have no
// variants, so bold and italic are always faux.
type TinyFontProvider struct {
	font     tinyfont.Fonter
	cellSize image.Point
	baseline int
}

// The configuration of a [TinyFontProvider], usable as a generation token.
type TinyFontToken struct {
	font     tinyfont.Fonter
	cellSize image.Point
	baseline int
}

// Creates a provider for the given tinyfont font. The baseline is
// measured in pixels from the top of the cell.
func NewTinyFontProvider(font tinyfont.Fonter, cellSize image.Point, baseline int) *TinyFontProvider {
	if font == nil { panic("nil font") }
	if cellSize.X <= 0 || cellSize.Y <= 0 { panic("non-positive cell size") }
	return &TinyFontProvider{ font: font, cellSize: cellSize, baseline: baseline }
}

// Returns a comparable value describing the provider configuration.
func (self *TinyFontProvider) Token() TinyFontToken {
	return TinyFontToken{ font: self.font, cellSize: self.cellSize, baseline: self.baseline }
}

// Implements [atlas.BitmapProvider].
func (self *TinyFontProvider) Provide(char byte, attrs atlas.Attributes) (map[atlas.Part]*image.Alpha, error) {
	width := self.cellSize.X
	canvas := image.NewAlpha(image.Rect(0, 0, width*3, self.cellSize.Y))
	display := &alphaDisplay{ canvas: canvas }

	x := width
	_, outboxWidth := tinyfont.LineWidth(self.font, string(rune(char)))
	x += (width - int(outboxWidth))/2
	white := color.RGBA{ 255, 255, 255, 255 }
	tinyfont.DrawChar(display, self.font, int16(x), int16(self.baseline), rune(char), white)

	faux := attrs & (atlas.Bold | atlas.Italic | atlas.ThinStrokes)
	applyEffects(canvas, faux, self.baseline, DefaultSkewFactor)
	return splitParts(canvas, width), nil
}

// Adapts an alpha canvas to the display interface tinyfont draws on.
type alphaDisplay struct {
	canvas *image.Alpha
}

func (self *alphaDisplay) Size() (x, y int16) {
	return int16(self.canvas.Rect.Dx()), int16(self.canvas.Rect.Dy())
}

func (self *alphaDisplay) SetPixel(x, y int16, c color.RGBA) {
	self.canvas.SetAlpha(int(x), int(y), color.Alpha{ c.A })
}

func (self *alphaDisplay) Display() error { return nil }

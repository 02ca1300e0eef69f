package raster

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/cellatlas/atlas"
import cfont "github.com/tinne26/cellatlas/font"

// A bitmap provider for [font.Face] values.
//
// Faces are generally not safe for concurrent use. [atlas.Cache] never
// calls a provider concurrently, but if the same faces are used
// elsewhere, synchronization is up to the caller.
type FaceProvider struct {
	faces    [4]font.Face // indexed by cfont.Variant
	cellSize image.Point
	baseline int
	skew     float64
}

// The configuration of a [FaceProvider], usable as an [atlas.Cache]
// generation token. It changes whenever the provider output would.
type FaceToken struct {
	faces    [4]font.Face
	cellSize image.Point
	baseline int
	skew     float64
}

// Creates a provider for the given regular face. A nil face defaults
// to [basicfont.Face7x13]. The baseline is centered vertically within
// the cell based on the face metrics.
func NewFaceProvider(face font.Face, cellSize image.Point) *FaceProvider {
	if cellSize.X <= 0 || cellSize.Y <= 0 { panic("non-positive cell size") }
	if face == nil { face = basicfont.Face7x13 }
	provider := &FaceProvider{ cellSize: cellSize, skew: DefaultSkewFactor }
	provider.faces[cfont.VariantRegular] = face
	provider.baseline = centeredBaseline(face, cellSize.Y)
	return provider
}

// Sets a dedicated face for a style variant, so the corresponding
// attributes don't need faux effects. Setting nil restores the faux
// effects, except for the regular variant, which can't be nil.
func (self *FaceProvider) SetFace(variant cfont.Variant, face font.Face) {
	if variant == cfont.VariantRegular && face == nil { panic("nil regular face") }
	self.faces[variant] = face
}

// Overrides the baseline position, measured in pixels from the top
// of the cell.
func (self *FaceProvider) SetBaseline(baseline int) { self.baseline = baseline }

// Sets the skew factor for faux italics. Zero disables them.
func (self *FaceProvider) SetSkewFactor(skew float64) { self.skew = skew }

// Returns the baseline position, measured from the top of the cell.
func (self *FaceProvider) Baseline() int { return self.baseline }

// Returns the cell size the provider renders for.
func (self *FaceProvider) CellSize() image.Point { return self.cellSize }

// Returns a comparable value describing the current configuration.
func (self *FaceProvider) Token() FaceToken {
	return FaceToken{
		faces: self.faces,
		cellSize: self.cellSize,
		baseline: self.baseline,
		skew: self.skew,
	}
}

// Implements [atlas.BitmapProvider].
func (self *FaceProvider) Provide(char byte, attrs atlas.Attributes) (map[atlas.Part]*image.Alpha, error) {
	variant, faux := cfont.ResolveVariant(attrs, self.hasVariant)
	face := self.faces[variant]
	width := self.cellSize.X

	canvas := image.NewAlpha(image.Rect(0, 0, width*3, self.cellSize.Y))
	x := width
	advance, found := face.GlyphAdvance(rune(char))
	if found { x += (width - advance.Round())/2 }
	drawer := font.Drawer{
		Dst: canvas,
		Src: image.Opaque,
		Face: face,
		Dot: fixed.P(x, self.baseline),
	}
	drawer.DrawBytes([]byte{ char })

	applyEffects(canvas, faux | (attrs & atlas.ThinStrokes), self.baseline, self.skew)
	return splitParts(canvas, width), nil
}

func (self *FaceProvider) hasVariant(variant cfont.Variant) bool {
	return self.faces[variant] != nil
}

func centeredBaseline(face font.Face, cellHeight int) int {
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	return (cellHeight - (ascent + descent))/2 + ascent
}

package cellatlas

import "image"
import "image/color"

import "github.com/lucasb-eyer/go-colorful"

import "github.com/tinne26/cellatlas/atlas"
import "github.com/tinne26/cellatlas/frame"

// The Renderer owns a glyph texture cache and a pool of frame states,
// and draws the states onto a target.
//
// Renderers are not safe for concurrent use, but a frame state can be
// filled on one goroutine and drawn on another as long as the handoff
// is synchronized.
type Renderer struct {
	cache      *atlas.Cache
	frames     frame.Pool
	foreground color.RGBA
	background color.RGBA
	faint      color.RGBA
}

// Creates a new renderer with white text over black. The cell geometry
// must be set with [Renderer.SetCellGeometry]() before drawing.
func NewRenderer() *Renderer {
	renderer := &Renderer{ cache: atlas.NewCache() }
	renderer.SetColors(color.White, color.Black)
	return renderer
}

// Sets the cell size, the generation token and the bitmap provider.
// See [atlas.Cache.Configure]() for the invalidation rules.
func (self *Renderer) SetCellGeometry(cellSize image.Point, token any, provider atlas.BitmapProvider) {
	self.cache.Configure(cellSize, token, provider)
}

// Sets the text color and the background color. The background color
// is not drawn; it's used to derive the color of faint text, which is
// the text color blended halfway towards the background.
func (self *Renderer) SetColors(text, background color.Color) {
	self.foreground = color.RGBAModel.Convert(text).(color.RGBA)
	self.background = color.RGBAModel.Convert(background).(color.RGBA)
	self.faint = blendFaint(self.foreground, self.background)
}

// Returns the text and background colors.
func (self *Renderer) Colors() (color.RGBA, color.RGBA) {
	return self.foreground, self.background
}

// Returns the underlying glyph texture cache.
func (self *Renderer) Atlas() *atlas.Cache { return self.cache }

// Creates the textures for all printable ASCII characters with the
// given attributes. See [atlas.Cache.Prefill]().
func (self *Renderer) Prefill(attrs ...atlas.Attributes) error {
	return self.cache.Prefill(attrs...)
}

// Returns an empty frame state. The state must be passed to
// [Renderer.Draw]() once filled, which will retire and recycle it.
func (self *Renderer) NewFrame() *frame.State {
	return self.frames.Get()
}

// Draws the given frame state with its top-left corner at (x, y), then
// retires it. The state must not be used after this call, even if an
// error is returned.
//
// The background texture is stretched to cover the whole grid, glyphs
// are drawn on top, and underlines go last. Glyph parts overhanging
// the cell are drawn over the neighboring cells. The underline color
// defaults to the text color when its alpha is zero.
func (self *Renderer) Draw(target TargetImage, x, y int, state *frame.State) error {
	state.Submit()
	defer self.recycle(state)

	cellSize := self.cache.CellSize()
	if cellSize.X == 0 { return atlas.ErrNotConfigured }

	origin := image.Pt(x, y)
	grid := gridRect(origin, cellSize, state.Columns(), state.NumRows())
	background := state.BackgroundTexture()
	if background != nil && !grid.Empty() {
		drawBackground(target, background, grid)
	}

	numRows := state.NumRows()
	for row := 0; row < numRows; row++ {
		for column, cell := range state.Row(row) {
			entry, err := self.cache.Lookup(cell.Char, cell.Attrs)
			if err != nil { return err }
			if entry.NumParts() == 0 { continue }

			clr := self.foreground
			if cell.Attrs.Has(atlas.Faint) { clr = self.faint }
			at := cellRect(origin, cellSize, column, row).Min
			entry.EachPart(func(part atlas.Part, texture atlas.Texture) {
				shift := image.Pt(partColumnOffset(part)*cellSize.X, 0)
				drawGlyphPart(target, texture, at.Add(shift), clr)
			})
		}
	}

	descriptor := state.UnderlineDescriptor()
	if descriptor.Style == frame.UnderlineNone { return nil }
	clr := descriptor.Color
	if clr.A == 0 { clr = self.foreground }
	for row := 0; row < numRows; row++ {
		for column, cell := range state.Row(row) {
			if !cell.Attrs.Has(atlas.Underline) { continue }
			for _, rect := range underlineRects(descriptor, cellRect(origin, cellSize, column, row)) {
				fillRect(target, rect, clr)
			}
		}
	}
	return nil
}

func (self *Renderer) recycle(state *frame.State) {
	state.Retire()
	self.frames.Put(state)
}

func blendFaint(text, background color.RGBA) color.RGBA {
	textColor, ok := colorful.MakeColor(text)
	if !ok { return text }
	backColor, ok := colorful.MakeColor(background)
	if !ok { return text }
	r, g, b := textColor.BlendLab(backColor, 0.5).Clamped().RGB255()
	return color.RGBA{ r, g, b, 255 }
}

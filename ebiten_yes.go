//go:build !nogpu

package cellatlas

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/tinne26/cellatlas/atlas"

// Alias to allow compiling the package without Ebitengine.
//
// Without Ebitengine (nogpu tag), TargetImage is [golang.org/x/image/draw.Image].
type TargetImage = *ebiten.Image

// Ebitengine merges consecutive draws from the same internal atlas into
// a single command, so glyph parts end up batched without further work.
func drawGlyphPart(target TargetImage, texture atlas.Texture, at image.Point, clr color.RGBA) {
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(at.X), float64(at.Y))
	opts.ColorScale.ScaleWithColor(clr)
	target.DrawImage(texture, &opts)
}

func drawBackground(target TargetImage, texture atlas.Texture, area image.Rectangle) {
	bounds := texture.Bounds()
	if bounds.Empty() { return }
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(area.Dx())/float64(bounds.Dx()), float64(area.Dy())/float64(bounds.Dy()))
	opts.GeoM.Translate(float64(area.Min.X), float64(area.Min.Y))
	opts.Filter = ebiten.FilterLinear
	target.DrawImage(texture, &opts)
}

func fillRect(target TargetImage, rect image.Rectangle, clr color.RGBA) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	vector.DrawFilledRect(target, x, y, float32(rect.Dx()), float32(rect.Dy()), clr, false)
}

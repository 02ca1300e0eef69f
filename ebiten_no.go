//go:build nogpu

package cellatlas

import "image"
import "image/color"

import "golang.org/x/image/draw"

import "github.com/tinne26/cellatlas/atlas"

type TargetImage = draw.Image

func drawGlyphPart(target TargetImage, texture atlas.Texture, at image.Point, clr color.RGBA) {
	bounds := texture.Bounds()
	rect := bounds.Sub(bounds.Min).Add(at)
	draw.DrawMask(target, rect, image.NewUniform(clr), image.Point{}, texture, bounds.Min, draw.Over)
}

func drawBackground(target TargetImage, texture atlas.Texture, area image.Rectangle) {
	if texture.Bounds().Empty() { return }
	draw.ApproxBiLinear.Scale(target, area, texture, texture.Bounds(), draw.Over, nil)
}

func fillRect(target TargetImage, rect image.Rectangle, clr color.RGBA) {
	draw.Draw(target, rect, image.NewUniform(clr), image.Point{}, draw.Over)
}

//go:build !nogpu

package atlas

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// The texture type used for glyph parts and frame backgrounds.
//
// With Ebitengine, textures are *ebiten.Image values and live on the GPU.
// With the nogpu build tag, Texture defaults to [image.Image] instead.
type Texture = *ebiten.Image

// Ebitengine doesn't have proper alpha-only images, so we expand the
// coverage into premultiplied white. Renderers tint it with ColorScale.
func newTexture(alpha *image.Alpha) Texture {
	rgba := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index := 0
	for y := 0; y < alpha.Rect.Dy(); y++ {
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride + alpha.Rect.Dx()]
		for _, value := range row {
			pixels[index + 0] = value
			pixels[index + 1] = value
			pixels[index + 2] = value
			pixels[index + 3] = value
			index += 4
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func releaseTexture(texture Texture) {
	texture.Deallocate()
}

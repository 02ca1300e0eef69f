//go:build nogpu

package atlas

import "image"

type Texture = image.Image

// CPU textures are copies of the bitmaps, so providers can reuse
// their buffers.
func newTexture(alpha *image.Alpha) Texture {
	texture := image.NewAlpha(alpha.Rect)
	width := alpha.Rect.Dx()
	for y := 0; y < alpha.Rect.Dy(); y++ {
		copy(texture.Pix[y*texture.Stride : y*texture.Stride + width], alpha.Pix[y*alpha.Stride : ])
	}
	return texture
}

func releaseTexture(Texture) {}

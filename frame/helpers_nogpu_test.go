//go:build nogpu

package frame

import "image"

import "github.com/tinne26/cellatlas/atlas"

func newTestTexture() atlas.Texture { return image.NewRGBA(image.Rect(0, 0, 4, 4)) }

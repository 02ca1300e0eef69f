//go:build !nogpu

package frame

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/cellatlas/atlas"

func newTestTexture() atlas.Texture { return ebiten.NewImage(4, 4) }

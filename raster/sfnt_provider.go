package raster

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"

import cfont "github.com/tinne26/cellatlas/font"

// Creates a [FaceProvider] from the variants available in the given
// family, at the given size in pixels. Missing variants use faux effects.
func NewSfntProvider(family *cfont.Family, cellSize image.Point, sizePx float64) (*FaceProvider, error) {
	variants := [4]cfont.Variant{
		cfont.VariantRegular, cfont.VariantBold,
		cfont.VariantItalic, cfont.VariantBoldItalic,
	}

	var provider *FaceProvider
	for _, variant := range variants {
		sfntFont := family.Variant(variant)
		if sfntFont == nil { continue }
		face, err := opentype.NewFace(sfntFont, &opentype.FaceOptions{
			Size: sizePx,
			DPI: 72,
			Hinting: font.HintingFull,
		})
		if err != nil { return nil, err }
		if provider == nil {
			provider = NewFaceProvider(face, cellSize)
		} else {
			provider.SetFace(variant, face)
		}
	}
	return provider, nil
}

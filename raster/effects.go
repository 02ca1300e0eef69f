package raster

import "image"

import "github.com/tinne26/cellatlas/atlas"

// Most italic fonts have an angle between 6 and 9 degrees, which is
// around 0.13 - 0.2 in skew factor terms.
const DefaultSkewFactor = 0.18

// Applies the faux effects and thin strokes requested by the given
// attributes to the canvas, in place.
func applyEffects(canvas *image.Alpha, faux atlas.Attributes, baseline int, skew float64) {
	if faux.Has(atlas.Italic) && skew != 0 { shearRows(canvas, baseline, skew) }
	if faux.Has(atlas.Bold) { widenStrokes(canvas) }
	if faux.Has(atlas.ThinStrokes) { thinStrokes(canvas) }
}

// Shifts each row horizontally proportionally to its distance to the
// baseline. Rows above the baseline move right for positive skews.
func shearRows(canvas *image.Alpha, baseline int, skew float64) {
	width := canvas.Rect.Dx()
	scratch := make([]uint8, width)
	for y := 0; y < canvas.Rect.Dy(); y++ {
		shift := roundInt(float64(baseline - y)*skew)
		if shift == 0 { continue }
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride + width]
		for i := range scratch { scratch[i] = 0 }
		for x, value := range row {
			target := x + shift
			if target < 0 || target >= width { continue }
			scratch[target] = value
		}
		copy(row, scratch)
	}
}

// Faux bold: each pixel takes the max coverage of itself and its
// left neighbor, which widens vertical stems by one pixel.
func widenStrokes(canvas *image.Alpha) {
	width := canvas.Rect.Dx()
	for y := 0; y < canvas.Rect.Dy(); y++ {
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride + width]
		for x := width - 1; x > 0; x-- {
			if row[x - 1] > row[x] { row[x] = row[x - 1] }
		}
	}
}

func thinStrokes(canvas *image.Alpha) {
	for i, value := range canvas.Pix {
		canvas.Pix[i] = uint8((uint16(value)*3) >> 2)
	}
}

// Splits a canvas three cells wide into its parts, skipping the ones
// without any coverage.
func splitParts(canvas *image.Alpha, cellWidth int) map[atlas.Part]*image.Alpha {
	parts := make(map[atlas.Part]*image.Alpha, 3)
	offsets := [3]struct{ part atlas.Part ; x int }{
		{ atlas.PartLeft, 0 },
		{ atlas.PartCenter, cellWidth },
		{ atlas.PartRight, cellWidth*2 },
	}
	height := canvas.Rect.Dy()
	for _, offset := range offsets {
		bitmap := image.NewAlpha(image.Rect(0, 0, cellWidth, height))
		covered := false
		for y := 0; y < height; y++ {
			start := y*canvas.Stride + offset.x
			row := canvas.Pix[start : start + cellWidth]
			copy(bitmap.Pix[y*bitmap.Stride : ], row)
			if !covered {
				for _, value := range row {
					if value != 0 { covered = true ; break }
				}
			}
		}
		if covered { parts[offset.part] = bitmap }
	}
	return parts
}

func roundInt(value float64) int {
	if value < 0 { return -int(-value + 0.5) }
	return int(value + 0.5)
}

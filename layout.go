package cellatlas

import "image"

import "github.com/tinne26/cellatlas/atlas"
import "github.com/tinne26/cellatlas/frame"

func cellRect(origin, cellSize image.Point, column, row int) image.Rectangle {
	corner := origin.Add(image.Pt(column*cellSize.X, row*cellSize.Y))
	return image.Rectangle{ Min: corner, Max: corner.Add(cellSize) }
}

func gridRect(origin, cellSize image.Point, columns, rows int) image.Rectangle {
	return image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(columns*cellSize.X, rows*cellSize.Y)),
	}
}

// Column offset at which each part is drawn relative to its cell.
// Unknown parts are stacked over the cell itself.
func partColumnOffset(part atlas.Part) int {
	switch part {
	case atlas.PartLeft:  return -1
	case atlas.PartRight: return  1
	default:
		return 0
	}
}

// curly underlines are drawn as a wave of thickness-wide steps
var curlyWave = [4]int{ 0, 1, 2, 1 }

// Returns the rectangles to fill for the underline of the given cell.
// All rectangles are clipped to the cell.
func underlineRects(descriptor frame.UnderlineDescriptor, cell image.Rectangle) []image.Rectangle {
	thickness := descriptor.LineThickness()
	top := cell.Min.Y + descriptor.Offset
	line := func(y int) image.Rectangle {
		return image.Rect(cell.Min.X, y, cell.Max.X, y + thickness).Intersect(cell)
	}

	var rects []image.Rectangle
	switch descriptor.Style {
	case frame.UnderlineSingle:
		rects = append(rects, line(top))
	case frame.UnderlineDouble:
		rects = append(rects, line(top), line(top + thickness*2))
	case frame.UnderlineCurly:
		for x := cell.Min.X; x < cell.Max.X; x += thickness {
			// absolute x so the wave is continuous across cells
			step := floorDiv(x, thickness) & 3
			y := top + curlyWave[step]*thickness
			rects = append(rects, image.Rect(x, y, x + thickness, y + thickness).Intersect(cell))
		}
	}

	// drop whatever was clipped away entirely
	kept := rects[ : 0]
	for _, rect := range rects {
		if !rect.Empty() { kept = append(kept, rect) }
	}
	return kept
}

func floorDiv(a, b int) int {
	quotient := a/b
	if (a % b != 0) && ((a < 0) != (b < 0)) { quotient -= 1 }
	return quotient
}

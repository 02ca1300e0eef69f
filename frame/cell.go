package frame

import "fmt"
import "unicode/utf8"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/cellatlas/atlas"

// A single character position on the terminal grid.
type Cell struct {
	Char  byte
	Attrs atlas.Attributes
}

// A screen row, left to right.
type Row []Cell

// Creates a row from an ASCII string, giving all cells the same
// attributes. Non-ASCII runes return an error.
func RowFromString(str string, attrs atlas.Attributes) (Row, error) {
	row := make(Row, 0, len(str))
	for column, codePoint := range []rune(str) {
		if codePoint >= utf8.RuneSelf {
			return nil, fmt.Errorf("frame: non-ASCII rune %q at column %d", codePoint, column)
		}
		row = append(row, Cell{ Char: byte(codePoint), Attrs: attrs })
	}
	return row, nil
}

// Converts a tcell screen cell. Returns false if the rune doesn't fit in
// a single-byte cell, in which case it must be handled by some other
// renderer.
func CellFromTcell(codePoint rune, style tcell.Style) (Cell, bool) {
	if codePoint < 0 || codePoint >= utf8.RuneSelf { return Cell{}, false }

	_, _, tcellAttrs := style.Decompose()
	var attrs atlas.Attributes
	if tcellAttrs & tcell.AttrBold != 0 {
		attrs |= atlas.Bold
	}
	if tcellAttrs & tcell.AttrItalic != 0 {
		attrs |= atlas.Italic
	}
	if tcellAttrs & tcell.AttrDim != 0 {
		attrs |= atlas.Faint
	}
	if tcellAttrs & tcell.AttrUnderline != 0 {
		attrs |= atlas.Underline
	}
	return Cell{ Char: byte(codePoint), Attrs: attrs }, true
}

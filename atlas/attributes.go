package atlas

import "strconv"
import "strings"

// Style flags for a cell. Combined with the character code, they
// determine the glyph that has to be drawn and thus the cache key.
type Attributes uint8
const (
	Bold Attributes = 1 << iota
	Italic
	Faint
	ThinStrokes
	Underline // decoration only, not part of the glyph

	decorationBitsMask = Underline
	knownBitsMask = Bold | Italic | Faint | ThinStrokes | Underline
)

// Returns the attributes with decoration-only bits (like [Underline])
// cleared. Decorations are drawn by renderers separately, so they don't
// affect the glyph bitmaps. Undefined bits are kept, so callers can use
// them for their own glyph variants.
func (self Attributes) GlyphBits() Attributes {
	return self &^ decorationBitsMask
}

// Returns whether all the given flags are set.
func (self Attributes) Has(flags Attributes) bool {
	return self & flags == flags
}

func (self Attributes) String() string {
	if self == 0 { return "Regular" }
	var parts []string
	if self.Has(Bold)        { parts = append(parts, "Bold") }
	if self.Has(Italic)      { parts = append(parts, "Italic") }
	if self.Has(Faint)       { parts = append(parts, "Faint") }
	if self.Has(ThinStrokes) { parts = append(parts, "ThinStrokes") }
	if self.Has(Underline)   { parts = append(parts, "Underline") }
	if unknown := self &^ knownBitsMask; unknown != 0 {
		parts = append(parts, "0x" + strconv.FormatUint(uint64(unknown), 16))
	}
	return strings.Join(parts, "|")
}

package atlas

// Printable ASCII range used by [Cache.Prefill]().
const (
	MinPrintable byte = 0x20
	MaxPrintable byte = 0x7E
)

// A cache key. Only the glyph bits of the attributes are relevant,
// see [NewKey]().
type Key struct {
	Char  byte
	Attrs Attributes
}

// Creates a key for the given character and attributes, discarding
// decoration bits. Any other bit, defined or not, is kept.
func NewKey(char byte, attrs Attributes) Key {
	return Key{ Char: char, Attrs: attrs.GlyphBits() }
}

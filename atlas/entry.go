package atlas

import "sort"
import "strconv"

// Texture part indices. Providers are free to use other indices too,
// but renderers only know how to place these.
type Part int
const (
	PartCenter Part = iota // the cell itself
	PartLeft               // overhang into the previous cell
	PartRight              // overhang into the next cell
)

func (self Part) String() string {
	switch self {
	case PartCenter: return "PartCenter"
	case PartLeft:   return "PartLeft"
	case PartRight:  return "PartRight"
	default:
		return "Part(" + strconv.Itoa(int(self)) + ")"
	}
}

// A cached glyph: the textures for each part that the provider returned.
// Entries are read-only and owned by the [Cache] that created them; the
// textures become invalid once the cache is reconfigured with a different
// geometry or token.
type Entry struct {
	parts map[Part]Texture
	order []Part
}

func newEntry(parts map[Part]Texture) *Entry {
	order := make([]Part, 0, len(parts))
	for part := range parts { order = append(order, part) }
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return &Entry{ parts: parts, order: order }
}

// Returns the texture for the given part, if present.
func (self *Entry) Texture(part Part) (Texture, bool) {
	texture, found := self.parts[part]
	return texture, found
}

// Returns the number of parts with a texture. Zero is valid, e.g.
// for spaces.
func (self *Entry) NumParts() int { return len(self.order) }

// Calls the given function for each present part, in ascending
// part order.
func (self *Entry) EachPart(fn func(Part, Texture)) {
	for _, part := range self.order {
		fn(part, self.parts[part])
	}
}

func (self *Entry) release() {
	for _, texture := range self.parts {
		releaseTexture(texture)
	}
}

package font

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/cellatlas/atlas"

// Style variants within a font family.
type Variant uint8
const (
	VariantRegular Variant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
)

// Picks the closest variant for the given attributes among the ones
// reported as available, and returns it along the subset of [atlas.Bold]
// and [atlas.Italic] that the variant doesn't cover and will have to be
// faked. The regular variant is assumed to be always available.
func ResolveVariant(attrs atlas.Attributes, available func(Variant) bool) (Variant, atlas.Attributes) {
	bold, italic := attrs.Has(atlas.Bold), attrs.Has(atlas.Italic)
	switch {
	case bold && italic:
		if available(VariantBoldItalic) { return VariantBoldItalic, 0 }
		if available(VariantBold) { return VariantBold, atlas.Italic }
		if available(VariantItalic) { return VariantItalic, atlas.Bold }
		return VariantRegular, atlas.Bold | atlas.Italic
	case bold:
		if available(VariantBold) { return VariantBold, 0 }
		return VariantRegular, atlas.Bold
	case italic:
		if available(VariantItalic) { return VariantItalic, 0 }
		return VariantRegular, atlas.Italic
	default:
		return VariantRegular, 0
	}
}

// A set of style variants for a single font family. Only the regular
// variant is required; missing variants are approximated by bitmap
// providers with faux effects.
type Family struct {
	variants [4]*sfnt.Font
}

// Creates a family with only the regular variant set.
func NewFamily(regular *sfnt.Font) *Family {
	if regular == nil { panic("nil regular font") }
	family := &Family{}
	family.variants[VariantRegular] = regular
	return family
}

// Sets the font for the given variant. The regular variant can't be
// set to nil.
func (self *Family) SetVariant(variant Variant, font *sfnt.Font) {
	if variant == VariantRegular && font == nil { panic("nil regular font") }
	self.variants[variant] = font
}

// Returns the font for the given variant, or nil if not set.
func (self *Family) Variant(variant Variant) *sfnt.Font {
	return self.variants[variant]
}

// Returns the best available font for the given attributes and the
// effects that have to be faked. See [ResolveVariant]().
func (self *Family) Resolve(attrs atlas.Attributes) (*sfnt.Font, atlas.Attributes) {
	variant, faux := ResolveVariant(attrs, self.hasVariant)
	return self.variants[variant], faux
}

func (self *Family) hasVariant(variant Variant) bool {
	return self.variants[variant] != nil
}

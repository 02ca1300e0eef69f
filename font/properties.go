package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property. The string might be empty
// even when the error is nil.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	str, err := font.Name(&buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the subfamily name of the given font, typically one of
// Regular, Italic, Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the printable ASCII characters that the font can't
// represent. Terminal fonts should return an empty slice.
func GetMissingASCII(font *sfnt.Font) ([]byte, error) {
	var buffer sfnt.Buffer
	var missing []byte
	for char := byte(0x20); char <= 0x7E; char++ {
		index, err := font.GlyphIndex(&buffer, rune(char))
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, char) }
	}
	return missing, nil
}

package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Parses the given font bytes and returns the font along its name.
// The bytes must not be modified while the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Parses the .ttf or .otf font at the given path.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

func parseAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	closeErr := file.Close()
	if err != nil { return nil, "", err }
	if closeErr != nil { return nil, "", closeErr }
	return ParseFromBytes(fontBytes)
}

func hasValidFontExtension(path string) bool {
	return strings.HasSuffix(path, ".ttf") || strings.HasSuffix(path, ".otf")
}

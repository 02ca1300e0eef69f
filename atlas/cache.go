package atlas

import "fmt"
import "sync"
import "image"
import "errors"
import "reflect"

// Returned by [Cache.Lookup]() when the cache hasn't been configured yet.
var ErrNotConfigured = errors.New("atlas: cache not configured")

// The glyph texture cache. See the package documentation for an overview.
//
// A Cache is safe to use from multiple goroutines, but it's meant to be
// owned by a single render loop. Lookups hold the cache lock while the
// provider runs, so a miss blocks every other lookup until the textures
// are ready. Warm up with [Cache.Prefill]() outside frame-critical code
// if that's a problem.
type Cache struct {
	entries    map[Key]*Entry
	cellSize   image.Point
	token      any
	provider   BitmapProvider
	generation uint64
	mutex      sync.Mutex
}

// Creates a new, unconfigured cache. [Cache.Configure]() must be
// called before any lookup.
func NewCache() *Cache {
	return &Cache{ entries: make(map[Key]*Entry, 128) }
}

// Sets the active cell geometry, generation token and bitmap provider.
//
// If the cell size or the token are different from the current ones,
// all the entries are discarded and their textures released. The
// provider is stored for later lookups either way, but changing only
// the provider doesn't invalidate anything: tokens are the mechanism
// to tell configurations apart, so make sure they change whenever the
// provider output would.
//
// The token must be comparable with ==. Non-positive cell sizes and
// nil providers will panic.
func (self *Cache) Configure(cellSize image.Point, token any, provider BitmapProvider) {
	if cellSize.X <= 0 || cellSize.Y <= 0 { panic("non-positive cell size") }
	if provider == nil { panic("nil bitmap provider") }
	if token != nil && !reflect.TypeOf(token).Comparable() { panic("uncomparable generation token") }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.provider == nil || cellSize != self.cellSize || token != self.token {
		self.clearLocked()
		self.cellSize = cellSize
		self.token    = token
	}
	self.provider = provider
}

// Returns the entry for the given character and attributes, creating
// it through the bitmap provider if it isn't cached yet. Decoration
// bits in the attributes are ignored.
//
// Provider errors are returned wrapped and nothing is cached, so a
// later lookup for the same key will call the provider again.
func (self *Cache) Lookup(char byte, attrs Attributes) (*Entry, error) {
	key := NewKey(char, attrs)
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.lookupLocked(key)
}

func (self *Cache) lookupLocked(key Key) (*Entry, error) {
	entry, found := self.entries[key]
	if found { return entry, nil }
	if self.provider == nil { return nil, ErrNotConfigured }

	bitmaps, err := self.provider(key.Char, key.Attrs)
	if err != nil {
		return nil, fmt.Errorf("atlas: bitmap provider failed for %q (%s): %w", key.Char, key.Attrs, err)
	}

	parts := make(map[Part]Texture, len(bitmaps))
	for part, bitmap := range bitmaps {
		if isEmptyBitmap(bitmap) { continue }
		parts[part] = newTexture(bitmap)
	}
	entry = newEntry(parts)
	self.entries[key] = entry
	return entry, nil
}

// Creates the entries for the whole printable ASCII range with each
// of the given attribute combinations. Without arguments, only regular
// glyphs are created. Stops at the first provider error.
func (self *Cache) Prefill(attrs ...Attributes) error {
	if len(attrs) == 0 { attrs = []Attributes{ 0 } }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	for _, attributes := range attrs {
		for char := MinPrintable; char <= MaxPrintable; char++ {
			_, err := self.lookupLocked(NewKey(char, attributes))
			if err != nil { return err }
		}
	}
	return nil
}

// Returns the number of cached entries.
func (self *Cache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// Returns the active cell size, or the zero point if the cache
// hasn't been configured yet.
func (self *Cache) CellSize() image.Point {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.cellSize
}

// Returns the number of times the cache has been invalidated. Useful to
// detect whether entries obtained earlier are still valid.
func (self *Cache) Generation() uint64 {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.generation
}

// Discards all entries and releases their textures. The configuration
// is kept, so lookups keep working afterwards.
func (self *Cache) Release() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.clearLocked()
}

func (self *Cache) clearLocked() {
	for key, entry := range self.entries {
		entry.release()
		delete(self.entries, key)
	}
	self.generation += 1
}

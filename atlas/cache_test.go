package atlas

import "sync"
import "image"
import "errors"
import "testing"

type countingProvider struct {
	calls map[Key]int
	fail  error
}

func newCountingProvider() *countingProvider {
	return &countingProvider{ calls: make(map[Key]int) }
}

func (self *countingProvider) Provide(char byte, attrs Attributes) (map[Part]*image.Alpha, error) {
	self.calls[Key{ char, attrs }] += 1
	if self.fail != nil { return nil, self.fail }
	bitmap := image.NewAlpha(image.Rect(0, 0, 8, 16))
	bitmap.Pix[0] = char
	return map[Part]*image.Alpha{ PartCenter: bitmap }, nil
}

func (self *countingProvider) total() int {
	sum := 0
	for _, count := range self.calls { sum += count }
	return sum
}

func TestLookupCreatesOnce(t *testing.T) {
	provider := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T1", provider.Provide)

	first, err := cache.Lookup('A', Bold)
	if err != nil { t.Fatal(err) }
	if first.NumParts() != 1 { t.Fatalf("expected 1 part, got %d", first.NumParts()) }
	second, err := cache.Lookup('A', Bold)
	if err != nil { t.Fatal(err) }
	if first != second { t.Fatal("expected identical entries") }
	if provider.calls[Key{ 'A', Bold }] != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.calls[Key{ 'A', Bold }])
	}

	// different attributes are different keys
	third, err := cache.Lookup('A', Italic)
	if err != nil { t.Fatal(err) }
	if third == first { t.Fatal("expected a different entry for different attributes") }
	if cache.Len() != 2 { t.Fatalf("expected 2 entries, got %d", cache.Len()) }
}

func TestLookupIgnoresDecorations(t *testing.T) {
	provider := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), 1, provider.Provide)

	plain, err := cache.Lookup('x', Bold)
	if err != nil { t.Fatal(err) }
	underlined, err := cache.Lookup('x', Bold | Underline)
	if err != nil { t.Fatal(err) }
	if plain != underlined { t.Fatal("underline must not affect the cached glyph") }
	if provider.total() != 1 { t.Fatalf("expected 1 provider call, got %d", provider.total()) }
	for key := range provider.calls {
		if key.Attrs.Has(Underline) { t.Fatal("provider received decoration bits") }
	}
}

func TestConfigureInvalidation(t *testing.T) {
	provider := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T1", provider.Provide)
	if cache.CellSize() != image.Pt(8, 16) { t.Fatal("unexpected cell size") }

	first, err := cache.Lookup('A', Bold)
	if err != nil { t.Fatal(err) }
	generation := cache.Generation()

	// same geometry and token: no-op
	cache.Configure(image.Pt(8, 16), "T1", provider.Provide)
	if cache.Len() != 1 { t.Fatalf("expected 1 entry, got %d", cache.Len()) }
	if cache.Generation() != generation { t.Fatal("unexpected invalidation") }
	if provider.total() != 1 { t.Fatal("configure must not create entries") }
	same, _ := cache.Lookup('A', Bold)
	if same != first { t.Fatal("expected entry to survive same configuration") }

	// token change
	cache.Configure(image.Pt(8, 16), "T2", provider.Provide)
	if cache.Len() != 0 { t.Fatalf("expected empty cache, got %d entries", cache.Len()) }
	if cache.Generation() == generation { t.Fatal("expected new generation") }
	renewed, err := cache.Lookup('A', Bold)
	if err != nil { t.Fatal(err) }
	if renewed == first { t.Fatal("expected a new entry after token change") }
	if provider.calls[Key{ 'A', Bold }] != 2 {
		t.Fatalf("expected 2 provider calls, got %d", provider.calls[Key{ 'A', Bold }])
	}

	// size change
	cache.Configure(image.Pt(9, 18), "T2", provider.Provide)
	if cache.Len() != 0 { t.Fatal("expected size change to clear the cache") }
	_, err = cache.Lookup('A', Bold)
	if err != nil { t.Fatal(err) }
	if provider.calls[Key{ 'A', Bold }] != 3 { t.Fatal("expected a fresh provider call") }
}

func TestProviderChangeKeepsEntries(t *testing.T) {
	providerA := newCountingProvider()
	providerB := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T", providerA.Provide)
	_, _ = cache.Lookup('a', 0)
	cache.Configure(image.Pt(8, 16), "T", providerB.Provide)
	_, _ = cache.Lookup('a', 0)
	_, _ = cache.Lookup('b', 0)
	if providerA.total() != 1 || providerB.total() != 1 {
		t.Fatalf("unexpected provider calls: %d, %d", providerA.total(), providerB.total())
	}
}

func TestLookupErrors(t *testing.T) {
	cache := NewCache()
	_, err := cache.Lookup('A', 0)
	if !errors.Is(err, ErrNotConfigured) { t.Fatalf("expected ErrNotConfigured, got %v", err) }

	failure := errors.New("rasterizer on fire")
	provider := newCountingProvider()
	provider.fail = failure
	cache.Configure(image.Pt(8, 16), "T", provider.Provide)
	_, err = cache.Lookup('A', 0)
	if !errors.Is(err, failure) { t.Fatalf("expected wrapped provider error, got %v", err) }
	if cache.Len() != 0 { t.Fatal("failures must not be cached") }

	provider.fail = nil
	entry, err := cache.Lookup('A', 0)
	if err != nil { t.Fatal(err) }
	if entry == nil { t.Fatal("expected entry after retry") }
	if provider.calls[Key{ 'A', 0 }] != 2 { t.Fatal("expected retry to call the provider again") }
}

func TestMissingParts(t *testing.T) {
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T", func(char byte, _ Attributes) (map[Part]*image.Alpha, error) {
		if char == ' ' { return nil, nil }
		return map[Part]*image.Alpha{
			PartRight:  image.NewAlpha(image.Rect(0, 0, 8, 16)),
			PartLeft:   nil,
			PartCenter: image.NewAlpha(image.Rect(0, 0, 0, 0)),
			7:          image.NewAlpha(image.Rect(0, 0, 8, 16)),
		}, nil
	})

	space, err := cache.Lookup(' ', 0)
	if err != nil { t.Fatal(err) }
	if space.NumParts() != 0 { t.Fatalf("expected no parts, got %d", space.NumParts()) }

	entry, err := cache.Lookup('W', 0)
	if err != nil { t.Fatal(err) }
	if _, found := entry.Texture(PartCenter); found { t.Fatal("empty bitmap should be absent") }
	if _, found := entry.Texture(PartLeft); found { t.Fatal("nil bitmap should be absent") }
	if _, found := entry.Texture(PartRight); !found { t.Fatal("expected right part") }

	var order []Part
	entry.EachPart(func(part Part, _ Texture) { order = append(order, part) })
	if len(order) != 2 || order[0] != PartRight || order[1] != 7 {
		t.Fatalf("unexpected part order %v", order)
	}
}

func TestPrefillAndRelease(t *testing.T) {
	provider := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T", provider.Provide)
	err := cache.Prefill(0, Bold)
	if err != nil { t.Fatal(err) }
	printable := int(MaxPrintable - MinPrintable) + 1
	if cache.Len() != printable*2 { t.Fatalf("expected %d entries, got %d", printable*2, cache.Len()) }

	// prefilled entries don't trigger more calls
	_, _ = cache.Lookup('~', Bold)
	if provider.total() != printable*2 { t.Fatal("unexpected provider call after prefill") }

	cache.Release()
	if cache.Len() != 0 { t.Fatal("expected empty cache after release") }
	_, err = cache.Lookup('~', Bold)
	if err != nil { t.Fatal(err) }
	if provider.calls[Key{ '~', Bold }] != 2 { t.Fatal("expected recreation after release") }
}

func TestLookupKeepsUndefinedBits(t *testing.T) {
	provider := newCountingProvider()
	cache := NewCache()
	cache.Configure(image.Pt(8, 16), "T", provider.Provide)

	plain, err := cache.Lookup('A', 0)
	if err != nil { t.Fatal(err) }
	custom, err := cache.Lookup('A', 0x40)
	if err != nil { t.Fatal(err) }
	if plain == custom { t.Fatal("undefined bits must produce a different entry") }
	if provider.calls[Key{ 'A', 0x40 }] != 1 { t.Fatal("expected provider to receive undefined bits") }
	if (0x40 | Underline).GlyphBits() != 0x40 { t.Fatal("expected only decoration bits cleared") }
	if Attributes(0x40).String() != "0x40" { t.Fatalf("unexpected %q", Attributes(0x40).String()) }
}

// Tokens only grow and each provider tags its single part with its own
// token, so a lookup must never return a part older than one already
// seen. Meant to be run with -race too.
func TestConcurrentConfigureLookup(t *testing.T) {
	const NumTokens  = 200
	const NumLookups = 2000

	providerFor := func(token int) BitmapProvider {
		return func(byte, Attributes) (map[Part]*image.Alpha, error) {
			return map[Part]*image.Alpha{ Part(token): image.NewAlpha(image.Rect(0, 0, 2, 2)) }, nil
		}
	}
	tokenOf := func(entry *Entry) int {
		token := -1
		entry.EachPart(func(part Part, _ Texture) { token = int(part) })
		return token
	}

	cache := NewCache()
	cache.Configure(image.Pt(2, 2), 0, providerFor(0))

	var group sync.WaitGroup
	group.Add(2)
	go func() {
		defer group.Done()
		for token := 1; token < NumTokens; token++ {
			cache.Configure(image.Pt(2, 2), token, providerFor(token))
		}
	}()
	go func() {
		defer group.Done()
		lastSeen := 0
		for i := 0; i < NumLookups; i++ {
			entry, err := cache.Lookup(byte('a' + i % 26), 0)
			if err != nil { t.Errorf("lookup %d: %v", i, err) ; return }
			if entry.NumParts() != 1 { t.Errorf("lookup %d: expected 1 part, got %d", i, entry.NumParts()) ; return }
			token := tokenOf(entry)
			if token < lastSeen {
				t.Errorf("lookup %d: got entry from token %d after seeing token %d", i, token, lastSeen)
				return
			}
			lastSeen = token
		}
	}()
	group.Wait()

	entry, err := cache.Lookup('z', Bold)
	if err != nil { t.Fatal(err) }
	if tokenOf(entry) != NumTokens - 1 { t.Fatalf("expected entry from last token, got %d", tokenOf(entry)) }
	if cache.Generation() != NumTokens { t.Fatalf("expected %d generations, got %d", NumTokens, cache.Generation()) }
}

func TestConfigurePanics(t *testing.T) {
	cache := NewCache()
	provider := newCountingProvider()
	if doesNotPanic(func() { cache.Configure(image.Pt(0, 16), "T", provider.Provide) }) {
		t.Fatal("expected panic on empty cell size")
	}
	if doesNotPanic(func() { cache.Configure(image.Pt(8, 16), "T", nil) }) {
		t.Fatal("expected panic on nil provider")
	}
	if doesNotPanic(func() { cache.Configure(image.Pt(8, 16), []int{ 1 }, provider.Provide) }) {
		t.Fatal("expected panic on uncomparable token")
	}
	if !doesNotPanic(func() { cache.Configure(image.Pt(8, 16), nil, provider.Provide) }) {
		t.Fatal("nil tokens are comparable")
	}
}

func TestAttributesString(t *testing.T) {
	if Attributes(0).String() != "Regular" { t.Fatal(Attributes(0).String()) }
	got := (Bold | Italic | Underline).String()
	if got != "Bold|Italic|Underline" { t.Fatalf("unexpected %q", got) }
	if PartLeft.String() != "PartLeft" || Part(9).String() != "Part(9)" { t.Fatal("part names") }
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

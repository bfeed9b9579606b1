// Package password checks candidate strings against the bundled
// known-weak-password set. Matching is exact, never fuzzy, but tolerates the
// common encodings password dumps arrive in: plain UTF-8 and UTF-16 in
// either byte order, with or without a byte order mark.
package password

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/Veraticus/word-salad/internal/textdata"
)

// Matcher is an immutable view over the common-password set. The zero-cost
// lookups make it safe to share one Matcher across goroutines.
type Matcher struct {
	set *textdata.StringSet
}

// NewMatcher returns a matcher over the bundled password list.
func NewMatcher() *Matcher {
	return &Matcher{set: textdata.CommonPasswords()}
}

// NewMatcherWithSet returns a matcher over a caller-supplied set.
func NewMatcherWithSet(set *textdata.StringSet) *Matcher {
	return &Matcher{set: set}
}

// IsCommon reports whether candidate exactly matches a known weak password
// under any supported encoding of its bytes.
func (m *Matcher) IsCommon(candidate string) bool {
	if candidate == "" {
		return false
	}
	for _, variant := range decodings(candidate) {
		if m.set.Contains(variant) {
			return true
		}
	}
	return false
}

// utf8BOM is the UTF-8 byte order mark some dump tools prepend.
const utf8BOM = "\xef\xbb\xbf"

// decodings returns the candidate interpreted under each supported encoding,
// deduplicated, starting with the raw string itself.
func decodings(candidate string) []string {
	variants := []string{candidate}

	add := func(v string) {
		if v == "" {
			return
		}
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}

	add(strings.TrimPrefix(candidate, utf8BOM))

	// UTF-16 text round-tripped through a byte-oriented pipeline shows up as
	// letters interleaved with NUL bytes. Only attempt the decode when the
	// shape is plausible, so ordinary UTF-8 input is never misread.
	raw := []byte(candidate)
	if len(raw) >= 2 && len(raw)%2 == 0 && strings.ContainsRune(candidate, '\x00') {
		for _, endianness := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
			decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
			if decoded, err := decoder.Bytes(raw); err == nil {
				add(string(decoded))
			}
		}
	}

	return variants
}

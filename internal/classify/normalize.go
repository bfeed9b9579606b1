// Package classify implements the lexical-statistical gibberish classifier:
// text normalization, the dictionary, n-gram, letter-frequency and
// vowel-ratio signal scorers, and the composite decision engine that
// combines them under a caller-selected sensitivity.
package classify

import "strings"

// NormalizedText is the read-only, lowercase alphabetic view of an input
// string that all scorers operate on. Word boundaries from the original text
// survive normalization; everything that is not an ASCII letter is dropped.
type NormalizedText struct {
	// Words are the lowercase alphabetic tokens, in input order.
	Words []string
	// Length is the total letter count after filtering. Threshold selection
	// keys off this, not the raw input length.
	Length int
}

// Normalize lowercases text and strips everything outside a-z, splitting on
// the removed characters so word boundaries are preserved. Empty input (or
// input with no letters at all) yields a zero NormalizedText.
func Normalize(text string) NormalizedText {
	var nt NormalizedText
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			nt.Words = append(nt.Words, word.String())
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			word.WriteRune(r)
			nt.Length++
		case r >= 'A' && r <= 'Z':
			word.WriteRune(r + ('a' - 'A'))
			nt.Length++
		default:
			flush()
		}
	}
	flush()

	return nt
}

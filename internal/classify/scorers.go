package classify

import (
	"math"

	"github.com/Veraticus/word-salad/internal/textdata"
)

// dictionaryStats counts the tokens that are exact dictionary members and
// returns the match ratio. A text with no tokens has ratio 0.
func (e *Engine) dictionaryStats(nt NormalizedText) (matches int, ratio float64) {
	if len(nt.Words) == 0 {
		return 0, 0
	}
	for _, w := range nt.Words {
		if e.dictionary.Contains(w) {
			matches++
		}
	}
	return matches, float64(matches) / float64(len(nt.Words))
}

// ngramScore slides a window of length n over each word and returns the
// fraction of windows found in the membership table. Windows never cross
// word boundaries. Zero windows yields score 0.
func ngramScore(words []string, n int, table *textdata.StringSet) float64 {
	var total, matched int
	for _, w := range words {
		if len(w) < n {
			continue
		}
		for i := 0; i+n <= len(w); i++ {
			total++
			if table.Contains(w[i : i+n]) {
				matched++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// letterFrequencyScore compares the observed letter distribution to the
// reference English distribution using total variation distance, mapped so
// that 1 means a perfect match and 0 maximal divergence.
func (e *Engine) letterFrequencyScore(nt NormalizedText) float64 {
	if nt.Length == 0 {
		return 0
	}

	var counts [26]int
	for _, w := range nt.Words {
		for i := 0; i < len(w); i++ {
			counts[w[i]-'a']++
		}
	}

	var distance float64
	for i, ref := range e.letterFreq {
		observed := float64(counts[i]) / float64(nt.Length)
		distance += math.Abs(observed - ref)
	}

	// Total variation distance is half the L1 distance and lies in [0, 1].
	return 1 - distance/2
}

// vowelStats returns the vowel fraction of the letter stream and the binary
// indicator used by the composite formula: 1 when the fraction sits in the
// [0.3, 0.7] band typical of English, else 0.
func vowelStats(nt NormalizedText) (ratio, indicator float64) {
	if nt.Length == 0 {
		return 0, 0
	}

	var vowels int
	for _, w := range nt.Words {
		for i := 0; i < len(w); i++ {
			switch w[i] {
			case 'a', 'e', 'i', 'o', 'u':
				vowels++
			}
		}
	}

	ratio = float64(vowels) / float64(nt.Length)
	if ratio >= 0.3 && ratio <= 0.7 {
		indicator = 1
	}
	return ratio, indicator
}

package classify

import (
	"testing"

	"github.com/Veraticus/word-salad/internal/textdata"
	"github.com/stretchr/testify/assert"
)

func testEngine() *Engine {
	return NewEngineWithTables(
		textdata.NewStringSet("cat", "dog", "the"),
		textdata.NewStringSet("th", "he", "ca", "at"),
		textdata.NewStringSet("the", "cat"),
		textdata.NewStringSet("that"),
		textdata.LetterFrequencies(),
	)
}

func TestDictionaryStats(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name        string
		input       string
		wantMatches int
		wantRatio   float64
	}{
		{"all matches", "the cat", 2, 1.0},
		{"partial matches", "the cat xyzzy glorp", 2, 0.5},
		{"no matches", "xyzzy glorp", 0, 0.0},
		{"no tokens", "", 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, ratio := e.dictionaryStats(Normalize(tt.input))
			assert.Equal(t, tt.wantMatches, matches)
			assert.InDelta(t, tt.wantRatio, ratio, 1e-9)
		})
	}
}

func TestNgramScore(t *testing.T) {
	bigrams := textdata.NewStringSet("th", "he")

	tests := []struct {
		name  string
		words []string
		n     int
		want  float64
	}{
		// "the" yields th, he; both match.
		{"full match", []string{"the"}, 2, 1.0},
		// "that" yields th, ha, at; only th matches.
		{"partial match", []string{"that"}, 2, 1.0 / 3.0},
		// Words shorter than n contribute no windows.
		{"word too short", []string{"a"}, 2, 0.0},
		{"no words", nil, 2, 0.0},
		// No window crosses the word boundary: "t"+"he" has no "th".
		{"no cross-word wrap", []string{"t", "he"}, 2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ngramScore(tt.words, tt.n, bigrams), 1e-9)
		})
	}
}

func TestLetterFrequencyScore(t *testing.T) {
	e := NewEngine()

	english := e.letterFrequencyScore(Normalize(
		"it was the best of times it was the worst of times it was the age of wisdom"))
	gibberish := e.letterFrequencyScore(Normalize("zzzz qqqq jjjj xxxx zzzz qqqq"))

	assert.Greater(t, english, gibberish,
		"English prose should sit closer to the reference distribution")
	assert.GreaterOrEqual(t, english, 0.0)
	assert.LessOrEqual(t, english, 1.0)
	assert.InDelta(t, 0.0, e.letterFrequencyScore(Normalize("")), 1e-9)
}

func TestVowelStats(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantRatio     float64
		wantIndicator float64
	}{
		{"balanced", "bread", 0.4, 1},
		{"all consonants", "bcdfg", 0.0, 0},
		{"all vowels", "aeiou", 1.0, 0},
		{"lower band edge", "abcdefghij", 0.3, 1},
		{"empty", "", 0.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, indicator := vowelStats(Normalize(tt.input))
			assert.InDelta(t, tt.wantRatio, ratio, 1e-9)
			assert.InDelta(t, tt.wantIndicator, indicator, 1e-9)
		})
	}
}

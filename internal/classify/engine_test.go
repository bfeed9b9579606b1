package classify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyScenarios(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name        string
		text        string
		sensitivity Sensitivity
		want        bool
	}{
		{"english pangram", "The quick brown fox jumps over the lazy dog", Medium, false},
		{"keyboard mash", "asdf jkl qwerty", Medium, true},
		{"short no match", "xy", Medium, true},
		{"short single word", "cat", Medium, false},
		{"empty", "", Medium, true},
		{"punctuation only", "!@#$%^&*()", Medium, true},
		{"digits only", "12345 67890", Medium, true},
		{"cjk text", "你好世界", Medium, true},
		{"plain sentence", "this is a simple english sentence", Medium, false},
		{"base64 blob", "MOTCk4ywLLjjEE2", Low, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Classify(tt.text, tt.sensitivity))
		})
	}
}

func TestEverydayWordsAccepted(t *testing.T) {
	e := NewEngine()

	// Single common words decide on dictionary membership alone, so the
	// bundled list has to carry everyday vocabulary, not just frequent words.
	words := []string{
		"worst", "english", "purple", "morning", "window",
		"keyboard", "whisper", "gossip", "stubborn", "yesterday",
	}

	for _, word := range words {
		b := e.Score(word, Medium)
		assert.Equal(t, RuleShortText, b.Rule, "word %q", word)
		assert.False(t, b.Gibberish, "word %q flagged as gibberish", word)
	}
}

func TestScoreRules(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name          string
		text          string
		sensitivity   Sensitivity
		wantRule      Rule
		wantGibberish bool
	}{
		{"no letters", "12345", Medium, RuleEmpty, true},
		{"short with match", "cat", Medium, RuleShortText, false},
		{"short without match", "zzzz", Medium, RuleShortText, true},
		{"all dictionary words", "the quick brown fox jumps", Medium, RuleDictionaryAccept, false},
		{"three matches at medium", "cat dog fox qwzxj bbbbb", Medium, RuleWordCountAccept, false},
		{"three matches at low falls through", "cat dog fox qwzxj bbbbb", Low, RuleComposite, false},
		{"weak transitions at medium", "asdf jkl qwerty", Medium, RuleFastReject, true},
		{"weak transitions at high fall through", "asdf jkl qwerty", High, RuleComposite, true},
		{"composite accept", "that thing qzzkx", Low, RuleComposite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := e.Score(tt.text, tt.sensitivity)
			assert.Equal(t, tt.wantRule, b.Rule)
			assert.Equal(t, tt.wantGibberish, b.Gibberish)
		})
	}
}

func TestScoreBreakdownFields(t *testing.T) {
	e := NewEngine()

	b := e.Score("that thing qzzkx", Low)
	require.Equal(t, RuleComposite, b.Rule)

	assert.Equal(t, 14, b.Length)
	assert.Equal(t, 3, b.TotalWords)
	assert.Equal(t, 2, b.WordMatches)
	assert.InDelta(t, 2.0/3.0, b.WordRatio, 1e-9)
	assert.Greater(t, b.Bigram, 0.0)
	assert.Greater(t, b.Trigram, 0.0)
	assert.Greater(t, b.Quadgram, 0.0)
	assert.Greater(t, b.Composite, 0.0)
	// Length 14 selects the 0.7 band; Low scales it by 0.35.
	assert.InDelta(t, 0.7*0.35, b.Threshold, 1e-9)
}

func TestSensitivityMonotonicity(t *testing.T) {
	e := NewEngine()

	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"asdf jkl qwerty",
		"that thing qzzkx",
		"cat dog fox qwzxj bbbbb",
		"wjxyi yi qd unqcfbu ev iecujxydw duqj jxqj sqd ru udsetut",
		"ob353hytghof2hscotherfohnmepk6gyloe2faf2ee",
		"hello world this mostly makes sense",
		"zxcvb nmqwe rtyui",
	}

	for _, text := range texts {
		low := e.Classify(text, Low)
		medium := e.Classify(text, Medium)
		high := e.Classify(text, High)

		// Higher sensitivity is never stricter than lower.
		assert.False(t, high && !medium, "high stricter than medium for %q", text)
		assert.False(t, medium && !low, "medium stricter than low for %q", text)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	e := NewEngine()
	const text = "that thing qzzkx maybe words"

	first := e.Score(text, Medium)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, e.Score(text, Medium))
	}
}

func TestClassifyConcurrent(t *testing.T) {
	e := NewEngine()
	const text = "The quick brown fox jumps over the lazy dog"
	want := e.Classify(text, Medium)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, e.Classify(text, Medium))
			}
		}()
	}
	wg.Wait()
}

func TestBaseThreshold(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{1, 0.7}, {20, 0.7},
		{21, 0.8}, {50, 0.8},
		{51, 0.9}, {100, 0.9},
		{101, 1.0}, {200, 1.0},
		{201, 1.1}, {1000, 1.1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, baseThreshold(tt.length), 1e-9, "length %d", tt.length)
	}
}

func TestParseSensitivity(t *testing.T) {
	tests := []struct {
		input   string
		want    Sensitivity
		wantErr bool
	}{
		{"low", Low, false},
		{"Medium", Medium, false},
		{"HIGH", High, false},
		{" high ", High, false},
		{"extreme", Medium, true},
		{"", Medium, true},
	}

	for _, tt := range tests {
		got, err := ParseSensitivity(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestSensitivityString(t *testing.T) {
	assert.Equal(t, "low", Low.String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "high", High.String())
}

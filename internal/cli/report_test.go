package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/word-salad/internal/classify"
	"github.com/stretchr/testify/assert"
)

func TestBreakdownTable(t *testing.T) {
	engine := classify.NewEngine()

	t.Run("composite decision shows threshold", func(t *testing.T) {
		b := engine.Score("that thing qzzkx", classify.Low)

		out := BreakdownTable(b)
		assert.Contains(t, out, "dictionary words")
		assert.Contains(t, out, "composite")
		assert.Contains(t, out, "threshold")
		assert.Contains(t, out, string(classify.RuleComposite))
	})

	t.Run("override decision omits threshold", func(t *testing.T) {
		b := engine.Score("the quick brown fox jumps over the lazy dog", classify.Medium)

		out := BreakdownTable(b)
		assert.Contains(t, out, "9 / 9")
		assert.NotContains(t, out, "threshold")
		assert.Contains(t, out, string(classify.RuleDictionaryAccept))
	})
}

func TestVerdict(t *testing.T) {
	assert.Contains(t, Verdict(true), "gibberish")
	assert.Contains(t, Verdict(false), "English")
}

func TestDownloadProgress(t *testing.T) {
	var buf strings.Builder
	progress := DownloadProgress(&buf, "Downloading model")

	// Out-of-range fractions must clamp rather than panic.
	progress(-0.5)
	progress(0.25)
	progress(0.5)
	progress(1.5)

	assert.NotEmpty(t, buf.String())
}

package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherText(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "arguments joined",
			args: []string{"two", "words"},
			want: "two words",
		},
		{
			name:  "arguments win over stdin",
			args:  []string{"argument"},
			stdin: "ignored",
			want:  "argument",
		},
		{
			name:  "stdin fallback",
			stdin: "  piped text\n",
			want:  "piped text",
		},
		{
			name: "empty everywhere",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gatherText(strings.NewReader(tt.stdin), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerdictCell(t *testing.T) {
	assert.Contains(t, verdictCell("asdf jkl qwerty", wordsalad.Medium), "gibberish")
	assert.Contains(t, verdictCell("The quick brown fox jumps over the lazy dog", wordsalad.Medium), "english")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly ten", truncate("exactly ten", 11))

	long := strings.Repeat("a", 60)
	got := truncate(long, 48)
	assert.Len(t, []rune(got), 48)
	assert.True(t, strings.HasSuffix(got, "…"))

	// Cutting must land on rune boundaries, not bytes.
	multibyte := strings.Repeat("é", 60)
	got = truncate(multibyte, 48)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), 48)
	assert.True(t, strings.HasSuffix(got, "…"))
}

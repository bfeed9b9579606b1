package wordsalad

import (
	"github.com/Veraticus/word-salad/internal/classify"
	"github.com/Veraticus/word-salad/internal/password"
)

// Sensitivity selects how eagerly text is flagged as gibberish. Low is
// strictest, High most lenient.
type Sensitivity = classify.Sensitivity

// Sensitivity levels.
const (
	Low    = classify.Low
	Medium = classify.Medium
	High   = classify.High
)

// ParseSensitivity converts a level name ("low", "medium", "high") to a
// Sensitivity.
func ParseSensitivity(value string) (Sensitivity, error) {
	return classify.ParseSensitivity(value)
}

// ScoreBreakdown records the component scores behind one classification.
type ScoreBreakdown = classify.ScoreBreakdown

var (
	defaultEngine  = classify.NewEngine()
	defaultMatcher = password.NewMatcher()
)

// IsGibberish reports whether text fails to look like natural-language
// English at the given sensitivity, using basic detection only. It is
// stateless and safe for concurrent use.
func IsGibberish(text string, sensitivity Sensitivity) bool {
	return defaultEngine.Classify(text, sensitivity)
}

// Score classifies text with basic detection and returns the full component
// breakdown for explanation or tooling.
func Score(text string, sensitivity Sensitivity) ScoreBreakdown {
	return defaultEngine.Score(text, sensitivity)
}

// IsPassword reports whether text exactly matches a known weak password.
// Matching tolerates UTF-8 and UTF-16 encodings of the candidate but is
// never fuzzy.
func IsPassword(text string) bool {
	return defaultMatcher.IsCommon(text)
}

package classify

import (
	"github.com/Veraticus/word-salad/internal/textdata"
)

// Composite formula weights. The dictionary signal dominates; quadgrams are
// rarer and noisier than trigrams so they carry less weight.
const (
	weightWordRatio = 0.40
	weightBigram    = 0.25
	weightTrigram   = 0.15
	weightQuadgram  = 0.10
	weightVowel     = 0.10
)

// shortTextLimit is the filtered length below which only the dictionary
// check decides: there is not enough n-gram signal in so few characters.
const shortTextLimit = 10

// Rule names the decision path that produced a verdict.
type Rule string

const (
	// RuleEmpty covers input with no letters after filtering.
	RuleEmpty Rule = "empty"
	// RuleShortText covers the dictionary-only path for very short input.
	RuleShortText Rule = "short-text"
	// RuleDictionaryAccept fires when more than 80% of tokens are words.
	RuleDictionaryAccept Rule = "dictionary-accept"
	// RuleWordCountAccept fires on three or more dictionary matches at
	// Medium or High sensitivity.
	RuleWordCountAccept Rule = "word-count-accept"
	// RuleFastReject fires on zero matches with weak bigram signal at Low
	// or Medium sensitivity.
	RuleFastReject Rule = "fast-reject"
	// RuleComposite is the weighted-score threshold test.
	RuleComposite Rule = "composite"
)

// ScoreBreakdown records the component scores behind one classification.
// It exists for explainability and tests; the engine itself never keeps it.
type ScoreBreakdown struct {
	Length          int
	WordMatches     int
	TotalWords      int
	WordRatio       float64
	Bigram          float64
	Trigram         float64
	Quadgram        float64
	LetterFrequency float64
	VowelRatio      float64
	VowelIndicator  float64
	Composite       float64
	Threshold       float64
	Rule            Rule
	Gibberish       bool
}

// Engine is the composite decision engine. It holds only immutable shared
// tables, so a single Engine is safe for concurrent use and a classification
// call never mutates shared state.
type Engine struct {
	dictionary *textdata.StringSet
	bigrams    *textdata.StringSet
	trigrams   *textdata.StringSet
	quadgrams  *textdata.StringSet
	letterFreq [26]float64
}

// NewEngine returns an engine wired to the bundled reference data.
func NewEngine() *Engine {
	return &Engine{
		dictionary: textdata.EnglishWords(),
		bigrams:    textdata.CommonBigrams(),
		trigrams:   textdata.CommonTrigrams(),
		quadgrams:  textdata.CommonQuadgrams(),
		letterFreq: textdata.LetterFrequencies(),
	}
}

// NewEngineWithTables returns an engine scoring against caller-supplied
// tables. Tests use this to pin down behavior with tiny dictionaries.
func NewEngineWithTables(dictionary, bigrams, trigrams, quadgrams *textdata.StringSet, letterFreq [26]float64) *Engine {
	return &Engine{
		dictionary: dictionary,
		bigrams:    bigrams,
		trigrams:   trigrams,
		quadgrams:  quadgrams,
		letterFreq: letterFreq,
	}
}

// Classify reports whether text is gibberish at the given sensitivity.
// It never fails: unprintable or empty input is simply gibberish.
func (e *Engine) Classify(text string, sensitivity Sensitivity) bool {
	return e.Score(text, sensitivity).Gibberish
}

// Score classifies text and returns the full component breakdown.
//
// The ordered overrides run before the weighted formula because pure scoring
// misclassifies the extremes: very short strings carry almost no n-gram
// signal, and strongly worded or strongly random inputs land on the wrong
// side of the composite threshold.
func (e *Engine) Score(text string, sensitivity Sensitivity) ScoreBreakdown {
	nt := Normalize(text)

	b := ScoreBreakdown{
		Length:     nt.Length,
		TotalWords: len(nt.Words),
	}

	if nt.Length == 0 {
		b.Rule = RuleEmpty
		b.Gibberish = true
		return b
	}

	b.WordMatches, b.WordRatio = e.dictionaryStats(nt)
	b.Bigram = ngramScore(nt.Words, 2, e.bigrams)
	b.Trigram = ngramScore(nt.Words, 3, e.trigrams)
	b.Quadgram = ngramScore(nt.Words, 4, e.quadgrams)
	b.LetterFrequency = e.letterFrequencyScore(nt)
	b.VowelRatio, b.VowelIndicator = vowelStats(nt)

	// Override 1: too short for statistics, the dictionary decides alone.
	if nt.Length < shortTextLimit {
		b.Rule = RuleShortText
		b.Gibberish = b.WordMatches == 0
		return b
	}

	// Override 2: overwhelmingly dictionary words.
	if b.WordRatio > 0.8 {
		b.Rule = RuleDictionaryAccept
		return b
	}

	// Override 3: several real words is enough unless the caller asked for
	// the strictest setting.
	if b.WordMatches >= 3 && sensitivity != Low {
		b.Rule = RuleWordCountAccept
		return b
	}

	// Override 4: no words and weak character transitions.
	if b.WordMatches == 0 && b.Bigram < 0.3 && sensitivity != High {
		b.Rule = RuleFastReject
		b.Gibberish = true
		return b
	}

	b.Composite = weightWordRatio*b.WordRatio +
		weightBigram*b.Bigram +
		weightTrigram*b.Trigram +
		weightQuadgram*b.Quadgram +
		weightVowel*b.VowelIndicator
	b.Threshold = baseThreshold(nt.Length) * sensitivity.thresholdFactor()
	b.Rule = RuleComposite
	b.Gibberish = b.Composite < b.Threshold
	return b
}

// baseThreshold selects the composite threshold band for a filtered length.
// Longer text accumulates more signal, so the bar rises with length.
func baseThreshold(length int) float64 {
	switch {
	case length <= 20:
		return 0.7
	case length <= 50:
		return 0.8
	case length <= 100:
		return 0.9
	case length <= 200:
		return 1.0
	default:
		return 1.1
	}
}

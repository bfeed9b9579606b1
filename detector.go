package wordsalad

import (
	"github.com/Veraticus/word-salad/internal/classify"
	"github.com/Veraticus/word-salad/internal/enhance"
)

// Detector classifies text, optionally consulting a neural model for a
// second opinion on borderline cases. Construct one explicitly and share it;
// all methods are safe for concurrent use.
type Detector struct {
	engine  *classify.Engine
	adapter *enhance.Adapter
}

// NewDetector returns a detector using basic detection only.
func NewDetector() *Detector {
	return &Detector{
		engine:  classify.NewEngine(),
		adapter: enhance.NewAdapter(""),
	}
}

// NewDetectorWithModel returns a detector that will lazily load the model at
// modelPath on first borderline classification. The path is only referenced;
// nothing is loaded until needed, and a missing or broken model leaves the
// detector fully functional on the basic path.
func NewDetectorWithModel(modelPath string) *Detector {
	return &Detector{
		engine:  classify.NewEngine(),
		adapter: enhance.NewAdapter(modelPath),
	}
}

// newDetectorWithAdapter wires a specific adapter; tests use it to avoid the
// process-wide model slot.
func newDetectorWithAdapter(adapter *enhance.Adapter) *Detector {
	return &Detector{
		engine:  classify.NewEngine(),
		adapter: adapter,
	}
}

// HasEnhancedDetection reports whether a model path was configured and the
// model artifacts currently exist there. It is independent of whether the
// lazy load has happened yet.
func (d *Detector) HasEnhancedDetection() bool {
	return d.adapter.Available()
}

// IsGibberish classifies text at the given sensitivity. When the basic
// checks do not already call the text gibberish and a model is configured
// and loadable, the model's verdict wins. Model trouble of any kind leaves
// the basic verdict standing; the method always returns a plain boolean.
func (d *Detector) IsGibberish(text string, sensitivity Sensitivity) bool {
	if d.engine.Classify(text, sensitivity) {
		return true
	}

	if verdict, ok := d.adapter.Predict(text); ok {
		return verdict
	}
	return false
}

// Score classifies text with the basic checks only and returns the full
// component breakdown.
func (d *Detector) Score(text string, sensitivity Sensitivity) ScoreBreakdown {
	return d.engine.Score(text, sensitivity)
}

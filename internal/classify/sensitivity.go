package classify

import (
	"fmt"
	"strings"
)

// Sensitivity trades false positives against false negatives. Low is the
// strictest setting (most likely to call text gibberish), High the most
// lenient. It is supplied per call and never stored on the engine.
type Sensitivity int

const (
	// Low flags borderline text as gibberish.
	Low Sensitivity = iota
	// Medium is the balanced default.
	Medium
	// High gives borderline text the benefit of the doubt.
	High
)

// thresholdFactor scales the length-based base threshold. Smaller factors
// shrink the region classified as gibberish.
func (s Sensitivity) thresholdFactor() float64 {
	switch s {
	case Low:
		return 0.35
	case High:
		return 0.15
	default:
		return 0.25
	}
}

func (s Sensitivity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("sensitivity(%d)", int(s))
	}
}

// ParseSensitivity converts a user-supplied level name to a Sensitivity.
func ParseSensitivity(value string) (Sensitivity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return Medium, fmt.Errorf("invalid sensitivity %q (must be low, medium, or high)", value)
	}
}

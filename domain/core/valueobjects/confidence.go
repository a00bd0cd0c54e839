package valueobjects

import "fmt"

// Confidence is a value object for the classifier-assigned certainty of a
// supervisor-to-area assignment
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceAll is the filter selector that keeps every confidence level.
// It is never a valid assignment confidence.
const ConfidenceAll Confidence = "all"

// ParseConfidence validates and normalizes a confidence string
func ParseConfidence(s string) (Confidence, error) {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s), nil
	}
	return "", fmt.Errorf("invalid confidence level %q", s)
}

// ParseConfidenceFilter accepts the assignment levels plus "all".
// An empty string defaults to "all".
func ParseConfidenceFilter(s string) (Confidence, error) {
	if s == "" || Confidence(s) == ConfidenceAll {
		return ConfidenceAll, nil
	}
	return ParseConfidence(s)
}

// Rank orders confidences for sorting: high > medium > low.
// Unknown values rank below low.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// String returns the string representation
func (c Confidence) String() string {
	return string(c)
}

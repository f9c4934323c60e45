// ABOUTME: Evaluation domain models describe a URL credibility check and its outcome
// ABOUTME: Defines the fixed signal set, scale modes and the immutable evaluation result

package domain

import (
	"fmt"
	"strings"
)

// ScaleMode selects whether signals and the final score use a 0-10 or 0-100 basis
type ScaleMode string

const (
	// TenPoint expresses every signal on 0-10 and normalizes the sum against 55
	TenPoint ScaleMode = "ten"

	// HundredPoint expresses every signal on 0-100 and averages the six signals
	HundredPoint ScaleMode = "hundred"
)

// ParseScaleMode converts user input into a ScaleMode
func ParseScaleMode(value string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ten", "10", "ten-point", "tenpoint":
		return TenPoint, nil
	case "hundred", "100", "hundred-point", "hundredpoint":
		return HundredPoint, nil
	}
	return "", fmt.Errorf("unknown scale mode %q", value)
}

// Max returns the upper bound of a single signal on this scale
func (s ScaleMode) Max() float64 {
	if s == HundredPoint {
		return 100
	}
	return 10
}

// SignalPreset names a bundle of signal implementations
type SignalPreset string

const (
	// PlaceholderSignals return fixed values depending on content presence
	PlaceholderSignals SignalPreset = "placeholder"

	// HeuristicSignals inspect page title, description and outbound links
	HeuristicSignals SignalPreset = "heuristic"
)

// ParseSignalPreset converts user input into a SignalPreset
func ParseSignalPreset(value string) (SignalPreset, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "placeholder", "stub":
		return PlaceholderSignals, nil
	case "heuristic":
		return HeuristicSignals, nil
	}
	return "", fmt.Errorf("unknown signal preset %q", value)
}

// SignalName identifies one of the six scoring signals
type SignalName string

const (
	DomainTrust      SignalName = "DomainTrust"
	ContentRelevance SignalName = "ContentRelevance"
	FactCheck        SignalName = "FactCheck"
	Bias             SignalName = "Bias"
	Citation         SignalName = "Citation"
	Https            SignalName = "Https"
)

// SignalNames returns the signal set in export column order
func SignalNames() []SignalName {
	return []SignalName{DomainTrust, ContentRelevance, FactCheck, Bias, Citation, Https}
}

// SignalScores maps each signal to its score on the configured scale
type SignalScores map[SignalName]float64

// Sum adds up the six signals
func (s SignalScores) Sum() float64 {
	var total float64
	for _, name := range SignalNames() {
		total += s[name]
	}
	return total
}

// Complete reports whether every signal has a value
func (s SignalScores) Complete() bool {
	for _, name := range SignalNames() {
		if _, ok := s[name]; !ok {
			return false
		}
	}
	return true
}

// EvaluationRequest is a single URL to score against topical keywords
type EvaluationRequest struct {
	// URL is the page being evaluated
	URL string `json:"url"`

	// Keywords are passed through to the relevance signal
	Keywords []string `json:"keywords"`

	// Query optionally drives the search and summary stage
	Query string `json:"query,omitempty"`

	// SummarizePage requests a summary of the page's readable text
	SummarizePage bool `json:"summarizePage,omitempty"`
}

// EvaluationResult is the outcome of scoring one URL. It is never mutated after construction.
type EvaluationResult struct {
	URL        string       `json:"url"`
	Domain     string       `json:"domain"`
	Scale      ScaleMode    `json:"scale"`
	Scores     SignalScores `json:"scores"`
	FinalScore float64      `json:"finalScore"`
	StarRating int          `json:"starRating"`
}

// StarSymbol is repeated StarRating times when rendering a rating
const StarSymbol = "⭐"

// Stars renders the rating as symbols
func (r EvaluationResult) Stars() string {
	return strings.Repeat(StarSymbol, r.StarRating)
}

// RatingLabel renders the symbols alongside the numeric value, e.g. "⭐⭐⭐⭐ (4/5)"
func (r EvaluationResult) RatingLabel() string {
	return fmt.Sprintf("%s (%d/5)", r.Stars(), r.StarRating)
}

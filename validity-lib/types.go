// ABOUTME: Public types for the Validity library API
// ABOUTME: Re-exports the domain models callers read and construct

package validity

import "validity-app-api/core/domain"

// Request is a single URL to evaluate
type Request = domain.EvaluationRequest

// Report is the pipeline output for one request
type Report = domain.Report

// Result is a scored URL
type Result = domain.EvaluationResult

// SummaryResult is the output of the summary stage
type SummaryResult = domain.SummaryResult

// SearchResult is one organic search hit
type SearchResult = domain.SearchResult

// ScaleMode selects the 0-10 or 0-100 signal basis
type ScaleMode = domain.ScaleMode

// SignalPreset selects the signal implementations
type SignalPreset = domain.SignalPreset

// LengthPolicy selects the summary length floor
type LengthPolicy = domain.LengthPolicy

// Re-exported enum values
const (
	TenPoint           = domain.TenPoint
	HundredPoint       = domain.HundredPoint
	PlaceholderSignals = domain.PlaceholderSignals
	HeuristicSignals   = domain.HeuristicSignals
	StrictLength       = domain.StrictLength
	LooseLength        = domain.LooseLength
)

// Signal names in export order
const (
	DomainTrust      = domain.DomainTrust
	ContentRelevance = domain.ContentRelevance
	FactCheck        = domain.FactCheck
	Bias             = domain.Bias
	Citation         = domain.Citation
	Https            = domain.Https
)

// CSVOptions selects optional export columns
type CSVOptions struct {
	IncludeURL     bool
	IncludeStars   bool
	IncludeSummary bool
}

// SignalNames returns the six signals in export order
func SignalNames() []domain.SignalName {
	return domain.SignalNames()
}

// ParseScaleMode accepts "ten", "hundred" and their numeric forms
func ParseScaleMode(value string) (ScaleMode, error) {
	return domain.ParseScaleMode(value)
}

// ParseSignalPreset accepts "placeholder" or "heuristic"
func ParseSignalPreset(value string) (SignalPreset, error) {
	return domain.ParseSignalPreset(value)
}

// ParseLengthPolicy accepts "strict" or "loose"
func ParseLengthPolicy(value string) (LengthPolicy, error) {
	return domain.ParseLengthPolicy(value)
}

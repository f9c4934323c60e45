// ABOUTME: Summary domain models for the adaptive-length summarization stage
// ABOUTME: Carries the computed word bounds and whether the stage was skipped or degraded

package domain

import (
	"fmt"
	"strings"
)

// LengthPolicy selects the floor used when computing the minimum summary length
type LengthPolicy string

const (
	// StrictLength uses max(10, n/2, min(25, 0.8n)) as the floor
	StrictLength LengthPolicy = "strict"

	// LooseLength uses max(5, n/2) as the floor
	LooseLength LengthPolicy = "loose"
)

// ParseLengthPolicy converts user input into a LengthPolicy
func ParseLengthPolicy(value string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "loose":
		return LooseLength, nil
	case "strict":
		return StrictLength, nil
	}
	return "", fmt.Errorf("unknown length policy %q", value)
}

// SummaryRequest is free text to be summarized
type SummaryRequest struct {
	SourceText string `json:"sourceText"`
}

// SummaryResult is what the summarization stage produced
type SummaryResult struct {
	SummaryText    string `json:"summaryText"`
	TargetMinWords int    `json:"targetMinWords"`
	TargetMaxWords int    `json:"targetMaxWords"`
	SourceWords    int    `json:"sourceWords"`

	// Skipped is set when the source was too short to summarize
	Skipped bool `json:"skipped,omitempty"`

	// Failed is set when the summarizer errored and SummaryText holds a placeholder
	Failed        bool   `json:"failed,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
}

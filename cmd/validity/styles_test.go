package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	validity "validity-app-api/validity-lib"
)

func TestRenderReport_Unscored(t *testing.T) {
	out := renderReport(validity.Report{
		Request:         validity.Request{URL: "http://[::1"},
		EvaluationError: "validation error on field 'url': bad host",
		SearchError:     "no results",
	})

	assert.Contains(t, out, "Evaluation failed: validation error")
	assert.Contains(t, out, "Search failed: no results")
	assert.NotContains(t, out, "FinalScore")
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary validity.SummaryResult
		want    string
	}{
		{"bounds", validity.SummaryResult{SummaryText: "text", TargetMinWords: 10, TargetMaxWords: 20}, "(10-20 words)"},
		{"skipped", validity.SummaryResult{SummaryText: "short", Skipped: true}, "source too short"},
		{"failed", validity.SummaryResult{SummaryText: "Summarization failed: x", Failed: true}, "(failed)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderSummary("Summary", tt.summary)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, tt.summary.SummaryText)
		})
	}
}

func TestRenderSearchResults(t *testing.T) {
	assert.Equal(t, "No results found.\n", renderSearchResults(nil))

	out := renderSearchResults([]validity.SearchResult{
		{Position: 1, Title: "Flying with a baby", Link: "https://example.org/a", Snippet: "Most airlines allow"},
	})
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "Flying with a baby")
	assert.Contains(t, out, "https://example.org/a")
	assert.Contains(t, out, "Most airlines allow")
}

func TestRenderMissingCredentials(t *testing.T) {
	assert.Empty(t, renderMissingCredentials(nil))
	assert.Contains(t, renderMissingCredentials([]string{"HF_TOKEN"}), "HF_TOKEN not set")
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "7", formatScore(7))
	assert.Equal(t, "72.73", formatScore(72.73))
	assert.Equal(t, "54.5", formatScore(54.5))
}

// ABOUTME: Request DTOs for evaluation, summary and search endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import "strings"

// EvaluateRequest is the body for scoring a single URL
type EvaluateRequest struct {
	// URL is the page to score
	URL string `json:"url" minLength:"1" maxLength:"2048" example:"https://www.cdc.gov/vaccines" doc:"URL to evaluate"`

	// Keywords feed the content relevance signal
	Keywords []string `json:"keywords,omitempty" maxItems:"50" doc:"Topical keywords for the relevance signal"`

	// Query optionally drives the search and summary stage
	Query string `json:"query,omitempty" maxLength:"500" doc:"Search query whose first snippet is summarized"`

	// SummarizePage requests a summary of the page's readable text
	SummarizePage bool `json:"summarizePage,omitempty" doc:"Summarize the readable page text"`
}

// Normalize trims whitespace and drops blank keywords
func (r *EvaluateRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.Query = strings.TrimSpace(r.Query)

	keywords := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	r.Keywords = keywords
}

// BatchEvaluateRequest scores several URLs in one call
type BatchEvaluateRequest struct {
	Requests []EvaluateRequest `json:"requests" minItems:"1" maxItems:"100" doc:"Evaluation requests, answered in order"`

	// IncludeStars and IncludeSummary select optional CSV columns on the export endpoint
	IncludeStars   bool `json:"includeStars,omitempty" doc:"Add the StarRating column to CSV exports"`
	IncludeSummary bool `json:"includeSummary,omitempty" doc:"Add the Summary column to CSV exports"`
}

// SummarizeRequest is free text to summarize
type SummarizeRequest struct {
	Text string `json:"text" minLength:"1" maxLength:"100000" doc:"Text to summarize"`
}

// ABOUTME: Report is the pipeline output for one evaluation request
// ABOUTME: Scoring and summary outcomes are reported independently of each other

package domain

// Report combines the scoring stage and the optional summary stage for one request
type Report struct {
	Request EvaluationRequest `json:"request"`

	// Result is nil when scoring failed; EvaluationError then explains why
	Result          *EvaluationResult `json:"result,omitempty"`
	EvaluationError string            `json:"evaluationError,omitempty"`

	// ScoreErr keeps the typed scoring error for callers that map error kinds
	ScoreErr error `json:"-"`

	// Snippet is the first search result snippet used as the summary source
	Snippet     string `json:"snippet,omitempty"`
	SearchError string `json:"searchError,omitempty"`

	Summary     *SummaryResult `json:"summary,omitempty"`
	PageSummary *SummaryResult `json:"pageSummary,omitempty"`
}

// Scored reports whether the scoring stage produced a result
func (r Report) Scored() bool {
	return r.Result != nil
}

// ABOUTME: Response DTOs for evaluation, summary and search endpoints
// ABOUTME: Flattens domain results into stable JSON shapes

package responses

import "validity-app-api/core/domain"

// EvaluationResponse is one scored URL
type EvaluationResponse struct {
	URL         string             `json:"url" doc:"Evaluated URL"`
	Domain      string             `json:"domain" doc:"Registrable host with www. removed"`
	Scale       string             `json:"scale" doc:"Signal scale: ten or hundred"`
	Scores      map[string]float64 `json:"scores" doc:"Six signal scores keyed by name"`
	FinalScore  float64            `json:"finalScore" doc:"Final score in [0,100] rounded to 2 decimals"`
	StarRating  int                `json:"starRating" doc:"Integer rating 1-5"`
	RatingLabel string             `json:"ratingLabel" doc:"Star symbols with the numeric rating"`
}

// ReportResponse is the pipeline output for one request
type ReportResponse struct {
	URL             string                `json:"url"`
	Result          *EvaluationResponse   `json:"result,omitempty"`
	EvaluationError string                `json:"evaluationError,omitempty"`
	Snippet         string                `json:"snippet,omitempty"`
	SearchError     string                `json:"searchError,omitempty"`
	Summary         *domain.SummaryResult `json:"summary,omitempty"`
	PageSummary     *domain.SummaryResult `json:"pageSummary,omitempty"`
}

// BatchReportResponse holds reports in request order
type BatchReportResponse struct {
	Reports []ReportResponse `json:"reports"`
	Scored  int              `json:"scored" doc:"Number of reports with a score"`
}

// SnippetResponse is the first search snippet for a query
type SnippetResponse struct {
	Query   string `json:"query"`
	Snippet string `json:"snippet"`
}

// HealthResponse reports service status and which optional stages are usable
type HealthResponse struct {
	Status             string   `json:"status"`
	Version            string   `json:"version"`
	MissingCredentials []string `json:"missingCredentials,omitempty"`
}

// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the external capabilities the evaluation pipeline consumes

package interfaces

import (
	"context"

	"validity-app-api/core/domain"
)

// PageFetcher retrieves the raw HTML of a page
type PageFetcher interface {
	// Fetch returns the page body or an error when retrieval failed
	Fetch(ctx context.Context, url string) (string, error)
}

// Summarizer is the external abstractive-summarization capability.
// minWords and maxWords are target bounds computed by the length policy.
type Summarizer interface {
	Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error)
}

// SearchService finds web results for a free-text query
type SearchService interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
	FirstSnippet(ctx context.Context, query string) (string, error)
}

// SummaryService applies the length policy and never fails the caller
type SummaryService interface {
	Summarize(ctx context.Context, text string) domain.SummaryResult
}

// ReaderService extracts readable article text from fetched HTML
type ReaderService interface {
	Extract(pageURL string, html string) (*domain.ReaderView, error)
}

// EvaluationService runs the full fetch, score, search and summarize pipeline
type EvaluationService interface {
	Run(ctx context.Context, req domain.EvaluationRequest) domain.Report
	RunBatch(ctx context.Context, reqs []domain.EvaluationRequest) []domain.Report
}

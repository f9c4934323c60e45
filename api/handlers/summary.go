// ABOUTME: Summary and search handlers for the Huma API
// ABOUTME: Exposes the length-policy summarizer and the first-snippet search lookup

package handlers

import (
	"context"
	"net/http"
	"strings"

	"validity-app-api/api/dto/requests"
	"validity-app-api/api/dto/responses"
	"validity-app-api/core/domain"
	"validity-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// SummaryHandler handles summarization and search requests. Either service may be nil
// when the corresponding feature is disabled.
type SummaryHandler struct {
	summaries interfaces.SummaryService
	search    interfaces.SearchService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaries interfaces.SummaryService, search interfaces.SearchService) *SummaryHandler {
	return &SummaryHandler{
		summaries: summaries,
		search:    search,
	}
}

// RegisterRoutes registers summary and search routes
func (h *SummaryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarizeText",
		Method:      http.MethodPost,
		Path:        "/summarize",
		Summary:     "Summarize text",
		Description: "Summarizes text with word bounds derived from its length; short texts are returned unchanged",
		Tags:        []string{"Summary"},
	}, h.Summarize)

	huma.Register(api, huma.Operation{
		OperationID: "searchSnippet",
		Method:      http.MethodGet,
		Path:        "/search/snippet",
		Summary:     "First search snippet",
		Description: "Returns the snippet of the first organic search result for a query",
		Tags:        []string{"Search"},
	}, h.Snippet)
}

// SummarizeInput defines the input for the Summarize operation
type SummarizeInput struct {
	Body requests.SummarizeRequest
}

// SummarizeOutput defines the output for the Summarize operation
type SummarizeOutput struct {
	Body domain.SummaryResult
}

// Summarize never fails on summarizer errors; the result carries the failure
func (h *SummaryHandler) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if h.summaries == nil {
		return nil, huma.Error503ServiceUnavailable("Summarization is disabled")
	}
	if strings.TrimSpace(input.Body.Text) == "" {
		return nil, huma.Error400BadRequest("text is required")
	}

	return &SummarizeOutput{
		Body: h.summaries.Summarize(ctx, input.Body.Text),
	}, nil
}

// SnippetInput defines the input for the Snippet operation
type SnippetInput struct {
	Query string `query:"q" minLength:"1" maxLength:"500" doc:"Search query"`
}

// SnippetOutput defines the output for the Snippet operation
type SnippetOutput struct {
	Body responses.SnippetResponse
}

// Snippet returns the first organic snippet for a query
func (h *SummaryHandler) Snippet(ctx context.Context, input *SnippetInput) (*SnippetOutput, error) {
	if h.search == nil {
		return nil, huma.Error503ServiceUnavailable("Search is disabled")
	}

	snippet, err := h.search.FirstSnippet(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SnippetOutput{
		Body: responses.SnippetResponse{
			Query:   input.Query,
			Snippet: snippet,
		},
	}, nil
}

// ABOUTME: Evaluation handlers for the Huma API
// ABOUTME: Scores single URLs and batches, and exports batch results as CSV

package handlers

import (
	"bytes"
	"context"
	"net/http"

	"validity-app-api/api/dto/mappers"
	"validity-app-api/api/dto/requests"
	"validity-app-api/api/dto/responses"
	"validity-app-api/core/interfaces"
	"validity-app-api/infrastructure/export/csv"

	"github.com/danielgtaylor/huma/v2"
)

// EvaluationHandler handles evaluation requests
type EvaluationHandler struct {
	evaluation interfaces.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluation interfaces.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluation: evaluation,
	}
}

// RegisterRoutes registers all evaluation routes
func (h *EvaluationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "evaluateURL",
		Method:      http.MethodPost,
		Path:        "/evaluate",
		Summary:     "Evaluate a URL",
		Description: "Fetches a page, scores six credibility signals and optionally summarizes a search snippet or the page",
		Tags:        []string{"Evaluation"},
	}, h.Evaluate)

	huma.Register(api, huma.Operation{
		OperationID: "evaluateBatch",
		Method:      http.MethodPost,
		Path:        "/evaluate/batch",
		Summary:     "Evaluate several URLs",
		Description: "Evaluates URLs concurrently and returns one report per request in request order",
		Tags:        []string{"Evaluation"},
	}, h.EvaluateBatch)

	huma.Register(api, huma.Operation{
		OperationID: "exportEvaluations",
		Method:      http.MethodPost,
		Path:        "/evaluate/export",
		Summary:     "Export evaluations as CSV",
		Description: "Evaluates URLs and returns one CSV row per scored URL",
		Tags:        []string{"Evaluation"},
	}, h.Export)
}

// EvaluateInput defines the input for the Evaluate operation
type EvaluateInput struct {
	Body requests.EvaluateRequest
}

// EvaluateOutput defines the output for the Evaluate operation
type EvaluateOutput struct {
	Body responses.ReportResponse
}

// Evaluate scores a single URL. A scoring failure is returned as an error only
// when no summary stage was requested; otherwise it is reported in the body.
func (h *EvaluationHandler) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	req := mappers.ToEvaluationRequest(input.Body)
	if req.URL == "" {
		return nil, huma.Error400BadRequest("url is required")
	}

	report := h.evaluation.Run(ctx, req)
	if !report.Scored() && req.Query == "" && !req.SummarizePage {
		return nil, toHumaError(report.ScoreErr)
	}

	return &EvaluateOutput{
		Body: mappers.ToReportResponse(report),
	}, nil
}

// BatchEvaluateInput defines the input for batch operations
type BatchEvaluateInput struct {
	Body requests.BatchEvaluateRequest
}

// BatchEvaluateOutput defines the output for the EvaluateBatch operation
type BatchEvaluateOutput struct {
	Body responses.BatchReportResponse
}

// EvaluateBatch scores several URLs; individual failures stay inside their reports
func (h *EvaluationHandler) EvaluateBatch(ctx context.Context, input *BatchEvaluateInput) (*BatchEvaluateOutput, error) {
	if len(input.Body.Requests) == 0 {
		return nil, huma.Error400BadRequest("No requests provided")
	}

	reports := h.evaluation.RunBatch(ctx, mappers.ToEvaluationRequests(input.Body.Requests))

	return &BatchEvaluateOutput{
		Body: mappers.ToBatchReportResponse(reports),
	}, nil
}

// ExportOutput is a CSV document
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Export scores several URLs and renders the scored ones as CSV
func (h *EvaluationHandler) Export(ctx context.Context, input *BatchEvaluateInput) (*ExportOutput, error) {
	if len(input.Body.Requests) == 0 {
		return nil, huma.Error400BadRequest("No requests provided")
	}

	reports := h.evaluation.RunBatch(ctx, mappers.ToEvaluationRequests(input.Body.Requests))

	var buf bytes.Buffer
	_, err := csv.WriteReports(&buf, reports, csv.Options{
		IncludeURL:     true,
		IncludeStars:   input.Body.IncludeStars,
		IncludeSummary: input.Body.IncludeSummary,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to render CSV", err)
	}

	return &ExportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + csv.DefaultFileName + `"`,
		Body:               buf.Bytes(),
	}, nil
}

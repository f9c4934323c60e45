// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"validity-app-api/api/dto/requests"
	"validity-app-api/api/dto/responses"
	"validity-app-api/core/domain"
)

// ToEvaluationRequest converts a request DTO to the domain request
func ToEvaluationRequest(r requests.EvaluateRequest) domain.EvaluationRequest {
	r.Normalize()
	return domain.EvaluationRequest{
		URL:           r.URL,
		Keywords:      r.Keywords,
		Query:         r.Query,
		SummarizePage: r.SummarizePage,
	}
}

// ToEvaluationRequests converts a batch preserving order
func ToEvaluationRequests(rs []requests.EvaluateRequest) []domain.EvaluationRequest {
	out := make([]domain.EvaluationRequest, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToEvaluationRequest(r))
	}
	return out
}

// ToEvaluationResponse converts a domain result to its DTO
func ToEvaluationResponse(result *domain.EvaluationResult) *responses.EvaluationResponse {
	if result == nil {
		return nil
	}

	scores := make(map[string]float64, len(result.Scores))
	for name, v := range result.Scores {
		scores[string(name)] = v
	}

	return &responses.EvaluationResponse{
		URL:         result.URL,
		Domain:      result.Domain,
		Scale:       string(result.Scale),
		Scores:      scores,
		FinalScore:  result.FinalScore,
		StarRating:  result.StarRating,
		RatingLabel: result.RatingLabel(),
	}
}

// ToReportResponse converts a domain report to its DTO
func ToReportResponse(report domain.Report) responses.ReportResponse {
	return responses.ReportResponse{
		URL:             report.Request.URL,
		Result:          ToEvaluationResponse(report.Result),
		EvaluationError: report.EvaluationError,
		Snippet:         report.Snippet,
		SearchError:     report.SearchError,
		Summary:         report.Summary,
		PageSummary:     report.PageSummary,
	}
}

// ToBatchReportResponse converts reports and counts the scored ones
func ToBatchReportResponse(reports []domain.Report) responses.BatchReportResponse {
	out := responses.BatchReportResponse{
		Reports: make([]responses.ReportResponse, 0, len(reports)),
	}
	for _, report := range reports {
		if report.Scored() {
			out.Scored++
		}
		out.Reports = append(out.Reports, ToReportResponse(report))
	}
	return out
}

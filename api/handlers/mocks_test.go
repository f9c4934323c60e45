package handlers

import (
	"context"

	"validity-app-api/core/domain"
)

// mockEvaluationService is a mock implementation of the evaluation pipeline
type mockEvaluationService struct {
	runFunc      func(ctx context.Context, req domain.EvaluationRequest) domain.Report
	runBatchFunc func(ctx context.Context, reqs []domain.EvaluationRequest) []domain.Report
}

func (m *mockEvaluationService) Run(ctx context.Context, req domain.EvaluationRequest) domain.Report {
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}
	return domain.Report{Request: req}
}

func (m *mockEvaluationService) RunBatch(ctx context.Context, reqs []domain.EvaluationRequest) []domain.Report {
	if m.runBatchFunc != nil {
		return m.runBatchFunc(ctx, reqs)
	}
	reports := make([]domain.Report, 0, len(reqs))
	for _, req := range reqs {
		reports = append(reports, m.Run(ctx, req))
	}
	return reports
}

// mockSummaryService returns a fixed result
type mockSummaryService struct {
	result domain.SummaryResult
	texts  []string
}

func (m *mockSummaryService) Summarize(ctx context.Context, text string) domain.SummaryResult {
	m.texts = append(m.texts, text)
	return m.result
}

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	snippet string
	err     error
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.SearchResult{{Position: 1, Snippet: m.snippet}}, nil
}

func (m *mockSearchService) FirstSnippet(ctx context.Context, query string) (string, error) {
	return m.snippet, m.err
}

func scoredResult(url string) *domain.EvaluationResult {
	return &domain.EvaluationResult{
		URL:    url,
		Domain: "cdc.gov",
		Scale:  domain.TenPoint,
		Scores: domain.SignalScores{
			domain.DomainTrust:      10,
			domain.ContentRelevance: 8,
			domain.FactCheck:        7,
			domain.Bias:             6,
			domain.Citation:         7,
			domain.Https:            5,
		},
		FinalScore: 78.18,
		StarRating: 4,
	}
}

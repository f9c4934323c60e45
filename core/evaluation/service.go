// ABOUTME: Evaluation pipeline that fetches a page, scores it and runs the optional summary stages
// ABOUTME: Scoring and summarization are isolated so a failure in one never changes the other

package evaluation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"
	"validity-app-api/core/scoring"
	"validity-app-api/core/summarize"
)

// DefaultBatchConcurrency bounds concurrent evaluations when no limit is configured
const DefaultBatchConcurrency = 10

// Service runs evaluation requests end to end
type Service struct {
	deps        interfaces.Dependencies
	aggregator  *scoring.Aggregator
	fetcher     interfaces.PageFetcher
	search      interfaces.SearchService
	summaries   interfaces.SummaryService
	reader      interfaces.ReaderService
	concurrency int
}

// NewService creates an evaluation service around an aggregator. Collaborators are
// attached with the Set* methods; any that stay nil disable their stage.
func NewService(deps interfaces.Dependencies, aggregator *scoring.Aggregator) *Service {
	return &Service{
		deps:        deps,
		aggregator:  aggregator,
		concurrency: DefaultBatchConcurrency,
	}
}

// SetPageFetcher sets the page retrieval capability
func (s *Service) SetPageFetcher(fetcher interfaces.PageFetcher) {
	s.fetcher = fetcher
}

// SetSearchService sets the search capability used for query snippets
func (s *Service) SetSearchService(search interfaces.SearchService) {
	s.search = search
}

// SetSummaryService sets the summary stage
func (s *Service) SetSummaryService(summaries interfaces.SummaryService) {
	s.summaries = summaries
}

// SetReaderService sets the readable text extractor used for page summaries
func (s *Service) SetReaderService(reader interfaces.ReaderService) {
	s.reader = reader
}

// SetBatchConcurrency bounds RunBatch; values below 1 are ignored
func (s *Service) SetBatchConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// Run evaluates one request. Every failure is reported inside the Report.
func (s *Service) Run(ctx context.Context, req domain.EvaluationRequest) domain.Report {
	report := domain.Report{Request: req}

	content, fetchErr := s.fetch(ctx, req.URL)

	result, err := s.score(req, content, fetchErr)
	if err != nil {
		report.EvaluationError = err.Error()
		report.ScoreErr = err
	} else {
		report.Result = &result
	}

	if req.Query != "" {
		s.runQueryStage(ctx, req.Query, &report)
	}

	if req.SummarizePage {
		report.PageSummary = s.summarizePage(ctx, req.URL, content, fetchErr)
	}

	return report
}

// RunBatch evaluates requests concurrently and returns reports in request order
func (s *Service) RunBatch(ctx context.Context, reqs []domain.EvaluationRequest) []domain.Report {
	reports := make([]domain.Report, len(reqs))

	semaphore := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(index int, req domain.EvaluationRequest) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				reports[index] = domain.Report{
					Request:         req,
					EvaluationError: ctx.Err().Error(),
					ScoreErr:        ctx.Err(),
				}
				return
			}

			reports[index] = s.Run(ctx, req)
		}(i, req)
	}

	wg.Wait()
	return reports
}

// fetch returns nil content when retrieval is unavailable or failed
func (s *Service) fetch(ctx context.Context, pageURL string) (*string, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("no page fetcher configured")
	}

	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.log().Warn("Page fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil, err
	}
	return &body, nil
}

func (s *Service) score(req domain.EvaluationRequest, content *string, fetchErr error) (domain.EvaluationResult, error) {
	start := time.Now()
	scale := string(s.aggregator.Scale())

	result, err := s.aggregator.Evaluate(req.URL, req.Keywords, content)
	if err != nil {
		if unavailable, ok := err.(*errors.ContentUnavailableError); ok && unavailable.Cause == nil {
			unavailable.Cause = fetchErr
		}
		s.observeEvaluation(scale, "error", 0, time.Since(start))
		s.log().Info("Evaluation failed", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
		return domain.EvaluationResult{}, err
	}

	outcome := "ok"
	if content == nil || *content == "" {
		outcome = "degraded"
	}
	s.observeEvaluation(scale, outcome, result.FinalScore, time.Since(start))
	s.log().Debug("Evaluation complete", map[string]interface{}{
		"url":         req.URL,
		"final_score": result.FinalScore,
		"stars":       result.StarRating,
		"outcome":     outcome,
	})

	return result, nil
}

// runQueryStage fetches the first search snippet and summarizes it
func (s *Service) runQueryStage(ctx context.Context, query string, report *domain.Report) {
	if s.search == nil {
		report.SearchError = (&errors.ConfigurationError{Key: "search", Message: "search is disabled"}).Error()
		return
	}

	snippet, err := s.search.FirstSnippet(ctx, query)
	if err != nil {
		report.SearchError = err.Error()
		return
	}
	report.Snippet = snippet

	if s.summaries != nil {
		summary := s.summaries.Summarize(ctx, snippet)
		report.Summary = &summary
	}
}

// summarizePage summarizes the readable text of the already fetched page
func (s *Service) summarizePage(ctx context.Context, pageURL string, content *string, fetchErr error) *domain.SummaryResult {
	if s.summaries == nil {
		return nil
	}

	if content == nil || *content == "" {
		cause := fetchErr
		if cause == nil {
			cause = fmt.Errorf("page is empty")
		}
		return failedSummary(&errors.ContentUnavailableError{URL: pageURL, Cause: cause})
	}

	text := *content
	if s.reader != nil {
		view, err := s.reader.Extract(pageURL, *content)
		if err != nil {
			return failedSummary(err)
		}
		text = view.TextContent
	}

	summary := s.summaries.Summarize(ctx, text)
	return &summary
}

func failedSummary(err error) *domain.SummaryResult {
	return &domain.SummaryResult{
		SummaryText:   summarize.FailurePrefix + err.Error(),
		Failed:        true,
		FailureReason: err.Error(),
	}
}

func (s *Service) observeEvaluation(scale, outcome string, finalScore float64, duration time.Duration) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveEvaluation(scale, outcome, finalScore, duration)
	}
}

func (s *Service) log() interfaces.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

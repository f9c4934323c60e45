package evaluation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"validity-app-api/core/domain"
)

// mockFetcher returns canned pages keyed by URL
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (string, error)
	inFlight  int32
	peak      int32
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	current := atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&m.peak)
		if current <= peak || atomic.CompareAndSwapInt32(&m.peak, peak, current) {
			break
		}
	}

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return "", nil
}

// mockSearch returns a fixed snippet or error
type mockSearch struct {
	snippet string
	err     error
	calls   int32
}

func (m *mockSearch) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.SearchResult{{Position: 1, Snippet: m.snippet}}, nil
}

func (m *mockSearch) FirstSnippet(ctx context.Context, query string) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.snippet, m.err
}

// mockSummaries echoes the text it was given
type mockSummaries struct {
	mu    sync.Mutex
	texts []string
}

func (m *mockSummaries) Summarize(ctx context.Context, text string) domain.SummaryResult {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()
	return domain.SummaryResult{SummaryText: "summary of: " + text}
}

// mockReader returns fixed readable text
type mockReader struct {
	text string
	err  error
}

func (m *mockReader) Extract(pageURL string, html string) (*domain.ReaderView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ReaderView{URL: pageURL, TextContent: m.text}, nil
}

// mockMetrics records evaluation outcomes
type mockMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *mockMetrics) ObserveEvaluation(scale, outcome string, finalScore float64, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockMetrics) ObserveSummary(outcome string) {}

func (m *mockMetrics) ObserveSearch(outcome string) {}

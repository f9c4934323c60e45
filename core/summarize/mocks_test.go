package summarize

import (
	"context"
	"sync"
	"time"
)

// mockSummarizer records every call it receives
type mockSummarizer struct {
	mu        sync.Mutex
	calls     int
	lastMin   int
	lastMax   int
	summarize func(ctx context.Context, text string, minWords, maxWords int) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastMin = minWords
	m.lastMax = maxWords
	m.mu.Unlock()

	if m.summarize != nil {
		return m.summarize(ctx, text, minWords, maxWords)
	}
	return "a summary", nil
}

func (m *mockSummarizer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockCache is an in-process map cache
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockMetrics counts summary outcomes
type mockMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{outcomes: make(map[string]int)}
}

func (m *mockMetrics) ObserveEvaluation(scale, outcome string, finalScore float64, duration time.Duration) {
}

func (m *mockMetrics) ObserveSummary(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *mockMetrics) ObserveSearch(outcome string) {}

// mockLogger discards everything
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// ABOUTME: Page fetcher backed by a colly collector
// ABOUTME: Retrieves raw HTML for scoring with a browser-like user agent and a short timeout

package colly

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"

	"github.com/gocolly/colly"
)

const (
	// DefaultUserAgent is sent with every page request
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultTimeout bounds a single page retrieval
	DefaultTimeout = 5 * time.Second

	maxBodySize = 5 * 1024 * 1024
)

// Option configures a Fetcher
type Option func(*Fetcher)

// WithUserAgent overrides the request user agent
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// Fetcher implements interfaces.PageFetcher
type Fetcher struct {
	userAgent string
	timeout   time.Duration
	logger    interfaces.Logger
}

// NewFetcher creates a page fetcher; logger may be nil
func NewFetcher(logger interfaces.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the body of a page. Network failures, non-2xx responses and
// empty bodies are reported as ContentUnavailableError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if strings.TrimSpace(pageURL) == "" {
		return "", &errors.ValidationError{Field: "url", Message: "URL is required"}
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)

	var (
		mu       sync.Mutex
		body     string
		status   int
		fetchErr error
	)

	c.OnResponse(func(r *colly.Response) {
		mu.Lock()
		defer mu.Unlock()
		body = string(r.Body)
		status = r.StatusCode
	})

	c.OnError(func(r *colly.Response, err error) {
		mu.Lock()
		defer mu.Unlock()
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- c.Visit(pageURL)
	}()

	select {
	case <-ctx.Done():
		return "", &errors.ContentUnavailableError{URL: pageURL, Cause: ctx.Err()}
	case visitErr := <-done:
		mu.Lock()
		defer mu.Unlock()

		if visitErr != nil && fetchErr == nil {
			fetchErr = visitErr
		}
		if fetchErr != nil {
			f.warn("Page fetch failed", pageURL, status, fetchErr)
			if status != 0 {
				fetchErr = fmt.Errorf("status %d: %w", status, fetchErr)
			}
			return "", &errors.ContentUnavailableError{URL: pageURL, Cause: fetchErr}
		}
		if strings.TrimSpace(body) == "" {
			return "", &errors.ContentUnavailableError{URL: pageURL, Cause: fmt.Errorf("empty body")}
		}
		return body, nil
	}
}

func (f *Fetcher) warn(msg, pageURL string, status int, err error) {
	if f.logger == nil {
		return
	}
	f.logger.Warn(msg, map[string]interface{}{
		"url":    pageURL,
		"status": status,
		"error":  err.Error(),
	})
}

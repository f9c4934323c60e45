// ABOUTME: Main client for the Validity library providing URL scoring and summaries
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package validity

import (
	"context"
	"io"
	"sync"

	coreconfig "validity-app-api/core/config"
	"validity-app-api/core/evaluation"
	"validity-app-api/core/interfaces"
	"validity-app-api/core/reader"
	"validity-app-api/core/scoring"
	"validity-app-api/core/search"
	"validity-app-api/core/summarize"
	"validity-app-api/infrastructure/export/csv"
	"validity-app-api/infrastructure/fetch/colly"
	"validity-app-api/infrastructure/summarizer/huggingface"
	"validity-app-api/infrastructure/summarizer/lead"
	"validity-app-api/pkg/config"
)

// Client is the main entry point for the Validity library
type Client struct {
	evaluations *evaluation.Service
	summaries   *summarize.Service
	search      *search.SearchService

	deps   interfaces.Dependencies
	config Config

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new Validity client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := WithDefaultDependencies()(&cfg); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: cfg.HTTPClient,
		Cache:      cfg.Cache,
		Logger:     cfg.Logger,
		Metrics:    cfg.Metrics,
	}

	evalCfg := coreconfig.NewEvaluationConfig(
		coreconfig.WithScale(cfg.Scale),
		coreconfig.WithSignals(cfg.Signals),
		coreconfig.WithFailOnMissingContent(cfg.FailOnMissingContent),
		coreconfig.WithLengthPolicy(cfg.LengthPolicy),
		coreconfig.WithBatchConcurrency(cfg.BatchConcurrency),
	)

	aggregator, err := scoring.NewAggregator(evalCfg, scoring.WithExtraEntries(cfg.ReputationEntries))
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid scoring configuration").WithCause(err)
	}

	summarizer, err := buildSummarizer(cfg)
	if err != nil {
		return nil, err
	}

	fetcher := cfg.PageFetcher
	if fetcher == nil {
		var fetchOpts []colly.Option
		if cfg.FetchUserAgent != "" {
			fetchOpts = append(fetchOpts, colly.WithUserAgent(cfg.FetchUserAgent))
		}
		if cfg.FetchTimeout > 0 {
			fetchOpts = append(fetchOpts, colly.WithTimeout(cfg.FetchTimeout))
		}
		fetcher = colly.NewFetcher(cfg.Logger, fetchOpts...)
	}

	var searchOpts []search.Option
	if cfg.SearchEndpoint != "" {
		searchOpts = append(searchOpts, search.WithEndpoint(cfg.SearchEndpoint))
	}
	searchService := search.NewSearchService(deps, cfg.SearchAPIKey, searchOpts...)
	summaryService := summarize.NewService(deps, summarizer, evalCfg.LengthPolicy)

	evaluations := evaluation.NewService(deps, aggregator)
	evaluations.SetPageFetcher(fetcher)
	evaluations.SetSearchService(searchService)
	evaluations.SetSummaryService(summaryService)
	evaluations.SetReaderService(reader.NewService(cfg.Logger))
	evaluations.SetBatchConcurrency(evalCfg.BatchConcurrency)

	return &Client{
		evaluations: evaluations,
		summaries:   summaryService,
		search:      searchService,
		deps:        deps,
		config:      cfg,
	}, nil
}

// buildSummarizer picks the custom summarizer, then the configured backend.
// A nil result leaves summaries degrading with a configuration failure.
func buildSummarizer(cfg Config) (interfaces.Summarizer, error) {
	if cfg.Summarizer != nil {
		return cfg.Summarizer, nil
	}
	if cfg.SummarizerBackend == "lead" {
		return lead.New(), nil
	}
	if cfg.SummarizerToken == "" {
		return nil, nil
	}

	var opts []huggingface.Option
	if cfg.SummarizerEndpoint != "" {
		opts = append(opts, huggingface.WithEndpoint(cfg.SummarizerEndpoint))
	}
	client, err := huggingface.NewClient(cfg.HTTPClient, cfg.SummarizerToken, opts...)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to create summarizer").WithCause(err)
	}
	return client, nil
}

// Evaluate scores a single URL against keywords
func (c *Client) Evaluate(ctx context.Context, url string, keywords []string, opts ...EvaluateOption) (Report, error) {
	if err := c.checkClosed(); err != nil {
		return Report{}, err
	}

	req := Request{URL: url, Keywords: keywords}
	for _, opt := range opts {
		opt(&req)
	}

	report := c.evaluations.Run(ctx, req)
	if !report.Scored() && report.ScoreErr != nil {
		return report, report.ScoreErr
	}
	return report, nil
}

// EvaluateBatch scores several URLs concurrently; reports keep input order
func (c *Client) EvaluateBatch(ctx context.Context, requests []Request) ([]Report, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.evaluations.RunBatch(ctx, requests), nil
}

// Summarize condenses text under the configured length policy
func (c *Client) Summarize(ctx context.Context, text string) (SummaryResult, error) {
	if err := c.checkClosed(); err != nil {
		return SummaryResult{}, err
	}
	return c.summaries.Summarize(ctx, text), nil
}

// Search returns the organic results for query
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.search.Search(ctx, query)
}

// FirstSnippet returns the snippet of the first organic result for query
func (c *Client) FirstSnippet(ctx context.Context, query string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	return c.search.FirstSnippet(ctx, query)
}

// ExportCSV writes scored reports as CSV and returns the number of rows written
func (c *Client) ExportCSV(w io.Writer, reports []Report, opts CSVOptions) (int, error) {
	return csv.WriteReports(w, reports, csv.Options{
		IncludeURL:     opts.IncludeURL,
		IncludeStars:   opts.IncludeStars,
		IncludeSummary: opts.IncludeSummary,
	})
}

// MissingCredentials lists the environment variables whose credentials are unset
func (c *Client) MissingCredentials() []string {
	creds := config.Credentials{
		SearchAPIKey:    c.config.SearchAPIKey,
		SummarizerToken: c.config.SummarizerToken,
	}
	if c.config.Summarizer != nil || c.config.SummarizerBackend == "lead" {
		creds.SummarizerToken = "set"
	}
	return creds.Missing()
}

// Close releases the client's cache; further calls return ErrClientClosed
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if closer, ok := c.deps.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// ABOUTME: Configuration options for the Validity library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package validity

import (
	"os"
	"time"

	"validity-app-api/core/interfaces"
	"validity-app-api/pkg/config"
)

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics

	// Scoring and summary policy
	Scale                ScaleMode
	Signals              SignalPreset
	FailOnMissingContent bool
	LengthPolicy         LengthPolicy
	BatchConcurrency     int
	ReputationEntries    map[string]float64

	// Page retrieval
	PageFetcher    interfaces.PageFetcher
	FetchUserAgent string
	FetchTimeout   time.Duration

	// Search provider
	SearchAPIKey   string
	SearchEndpoint string

	// Summarization; Summarizer wins over the backend settings when set
	Summarizer         interfaces.Summarizer
	SummarizerBackend  string
	SummarizerToken    string
	SummarizerEndpoint string
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for the search and inference APIs
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics records pipeline outcomes
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithScale selects the ten- or hundred-point signal scale
func WithScale(scale ScaleMode) Option {
	return func(c *Config) error {
		c.Scale = scale
		return nil
	}
}

// WithStrictContent makes an unfetchable page an evaluation error
func WithStrictContent(strict bool) Option {
	return func(c *Config) error {
		c.FailOnMissingContent = strict
		return nil
	}
}

// WithSignals selects the placeholder or heuristic signals
func WithSignals(preset SignalPreset) Option {
	return func(c *Config) error {
		c.Signals = preset
		return nil
	}
}

// WithLengthPolicy selects the strict or loose summary floor
func WithLengthPolicy(policy LengthPolicy) Option {
	return func(c *Config) error {
		c.LengthPolicy = policy
		return nil
	}
}

// WithBatchConcurrency bounds concurrent evaluations in EvaluateBatch
func WithBatchConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "batch concurrency must be at least 1")
		}
		c.BatchConcurrency = n
		return nil
	}
}

// WithReputationEntries adds trust values on the ten-point scale
func WithReputationEntries(entries map[string]float64) Option {
	return func(c *Config) error {
		for d, score := range entries {
			if score < 0 || score > 10 {
				return NewError(ErrorTypeConfiguration, "reputation must be within 0-10 for "+d)
			}
		}
		c.ReputationEntries = entries
		return nil
	}
}

// WithPageFetcher replaces the default colly fetcher
func WithPageFetcher(fetcher interfaces.PageFetcher) Option {
	return func(c *Config) error {
		c.PageFetcher = fetcher
		return nil
	}
}

// WithFetchSettings sets the page request user agent and timeout
func WithFetchSettings(userAgent string, timeout time.Duration) Option {
	return func(c *Config) error {
		c.FetchUserAgent = userAgent
		c.FetchTimeout = timeout
		return nil
	}
}

// WithSearchAPIKey sets the SerpAPI key
func WithSearchAPIKey(key string) Option {
	return func(c *Config) error {
		c.SearchAPIKey = key
		return nil
	}
}

// WithSearchEndpoint points search at another SerpAPI-compatible URL
func WithSearchEndpoint(endpoint string) Option {
	return func(c *Config) error {
		c.SearchEndpoint = endpoint
		return nil
	}
}

// WithSummarizer sets a custom summarization capability
func WithSummarizer(summarizer interfaces.Summarizer) Option {
	return func(c *Config) error {
		c.Summarizer = summarizer
		return nil
	}
}

// WithSummarizerToken sets the inference API token
func WithSummarizerToken(token string) Option {
	return func(c *Config) error {
		c.SummarizerToken = token
		return nil
	}
}

// WithLeadSummarizer uses the offline lead-sentence summarizer
func WithLeadSummarizer() Option {
	return func(c *Config) error {
		c.SummarizerBackend = "lead"
		return nil
	}
}

// WithCredentialsFromEnv reads SERPAPI_API_KEY and HF_TOKEN
func WithCredentialsFromEnv() Option {
	return func(c *Config) error {
		c.SearchAPIKey = os.Getenv(config.SearchAPIKeyEnv)
		c.SummarizerToken = os.Getenv(config.SummarizerTokenEnv)
		return nil
	}
}

// WithAppConfig applies a loaded application configuration
func WithAppConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "nil configuration")
		}
		resolved, err := cfg.Evaluation.Resolve()
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid evaluation settings").WithCause(err)
		}

		c.Scale = resolved.Scale
		c.Signals = resolved.Signals
		c.FailOnMissingContent = resolved.FailOnMissingContent
		c.LengthPolicy = resolved.LengthPolicy
		c.BatchConcurrency = resolved.BatchConcurrency
		c.ReputationEntries = cfg.Reputation.Entries
		c.FetchUserAgent = cfg.Fetch.UserAgent
		c.FetchTimeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
		c.SearchAPIKey = cfg.Credentials.SearchAPIKey
		c.SearchEndpoint = cfg.Search.Endpoint
		c.SummarizerBackend = cfg.Summarizer.Backend
		c.SummarizerToken = cfg.Credentials.SummarizerToken
		c.SummarizerEndpoint = cfg.Summarizer.Endpoint
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// EvaluateOption adds optional stages to a single evaluation
type EvaluateOption func(*Request)

// WithQuery summarizes the first search snippet for query
func WithQuery(query string) EvaluateOption {
	return func(r *Request) {
		r.Query = query
	}
}

// WithPageSummary summarizes the page's readable text
func WithPageSummary() EvaluateOption {
	return func(r *Request) {
		r.SummarizePage = true
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Scale:            TenPoint,
		Signals:          PlaceholderSignals,
		LengthPolicy:     LooseLength,
		BatchConcurrency: 10,
	}
}

// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page retrieval, summarization and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed persistent cache
// - http/standard: Standard library HTTP client with retry and rate limiting
// - fetch/colly: Page fetcher built on a colly collector
// - summarizer/huggingface: Inference API summarizer
// - summarizer/lead: Offline lead-sentence summarizer
// - metrics: Prometheus recorder for evaluation, summary and search outcomes
// - export/csv: CSV rendering of evaluation reports
// - logger/structured: logrus-backed structured logger with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "summary:abc:5:10", []byte("value"), 7*24*time.Hour)
//	value, err := cache.Get(ctx, "summary:abc:5:10")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "validity:",
//	})
//
// # HTTP Client
//
// The HTTP client retries transient 5xx failures on GET and can throttle outbound calls:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithRateLimit(5, 5))
//	resp, err := client.Get(ctx, "https://serpapi.com/search?q=newborn")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Config{Level: "info", Format: "json"})
//	logger.Info("Evaluated URL", map[string]interface{}{
//	    "url":         "https://www.cdc.gov",
//	    "final_score": 78.18,
//	})
//
package infrastructure

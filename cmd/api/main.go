// ABOUTME: Main entry point for the Validity API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"validity-app-api/api"
	"validity-app-api/api/handlers"
	"validity-app-api/core/evaluation"
	"validity-app-api/core/interfaces"
	"validity-app-api/core/reader"
	"validity-app-api/core/scoring"
	"validity-app-api/core/search"
	"validity-app-api/core/summarize"
	"validity-app-api/infrastructure/cache/memory"
	"validity-app-api/infrastructure/cache/redis"
	"validity-app-api/infrastructure/cache/sqlite"
	"validity-app-api/infrastructure/fetch/colly"
	stdhttp "validity-app-api/infrastructure/http/standard"
	"validity-app-api/infrastructure/logger/structured"
	"validity-app-api/infrastructure/metrics"
	"validity-app-api/infrastructure/summarizer/huggingface"
	"validity-app-api/infrastructure/summarizer/lead"
	"validity-app-api/pkg/config"
	"validity-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	evalCfg, err := cfg.Evaluation.Resolve()
	if err != nil {
		log.Fatalf("Invalid evaluation settings: %v", err)
	}

	// Create logger
	logger := structured.NewLogger(structured.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting Validity API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"scale":      evalCfg.Scale,
		"signals":    evalCfg.Signals,
		"flags":      flags.GetAllFlags(),
	})

	missing := cfg.Credentials.Missing()
	if len(missing) > 0 {
		logger.Warn("Credentials missing; dependent stages will degrade", map[string]interface{}{
			"missing": missing,
		})
	}

	// Create cache
	var cache interfaces.Cache
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		cache = newCache(cfg, logger)
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second,
		stdhttp.WithRateLimit(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	var recorder *metrics.Recorder
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		recorder = metrics.NewRecorder()
		deps.Metrics = recorder
	}

	// Create services
	aggregator, err := scoring.NewAggregator(evalCfg, scoring.WithExtraEntries(cfg.Reputation.Entries))
	if err != nil {
		log.Fatalf("Failed to create scoring aggregator: %v", err)
	}

	fetcher := colly.NewFetcher(logger,
		colly.WithUserAgent(cfg.Fetch.UserAgent),
		colly.WithTimeout(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second),
	)

	evaluationService := evaluation.NewService(deps, aggregator)
	evaluationService.SetPageFetcher(fetcher)
	evaluationService.SetReaderService(reader.NewService(logger))
	evaluationService.SetBatchConcurrency(evalCfg.BatchConcurrency)

	var searchService interfaces.SearchService
	if flags.IsEnabled(ctx, featureflags.SearchEnabled) {
		searchService = search.NewSearchService(deps, cfg.Credentials.SearchAPIKey, search.WithEndpoint(cfg.Search.Endpoint))
		evaluationService.SetSearchService(searchService)
	}

	var summaryService interfaces.SummaryService
	if flags.IsEnabled(ctx, featureflags.SummaryEnabled) {
		svc := summarize.NewService(deps, newSummarizer(cfg, httpClient, logger), evalCfg.LengthPolicy)
		summaryService = svc
		evaluationService.SetSummaryService(svc)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		apiConfig.Burst = cfg.RateLimit.Burst
	}
	if recorder != nil {
		apiConfig.MetricsHandler = recorder.Handler()
	}
	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(apiConfig)
	defer stopLimiter()

	// Create and register handlers
	handlers.NewEvaluationHandler(evaluationService).RegisterRoutes(humaAPI)
	handlers.NewSummaryHandler(summaryService, searchService).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version, missing).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache and falls back to memory when it cannot connect
func newCache(cfg *config.Config, logger *structured.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "none":
		logger.Info("Caching disabled", nil)
		return nil
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Cache.SQLite.Path,
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

// newSummarizer returns nil when the inference backend has no token, so
// summaries degrade instead of the server refusing to start
func newSummarizer(cfg *config.Config, httpClient interfaces.HTTPClient, logger *structured.Logger) interfaces.Summarizer {
	if cfg.Summarizer.Backend == "lead" {
		logger.Info("Using lead-sentence summarizer", nil)
		return lead.New()
	}

	client, err := huggingface.NewClient(httpClient, cfg.Credentials.SummarizerToken,
		huggingface.WithEndpoint(cfg.Summarizer.Endpoint))
	if err != nil {
		logger.Warn("Summarizer unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return client
}

func init() {
	// Print banner
	fmt.Println(`
 _   __     ___     ___ __
| | / /__ _/ (_)___/ (_) /___ __
| |/ / _ '/ / / __/ / / __/ // /
|___/\_,_/_/_/\__/_/_/\__/\_, /
                         /___/
	`)
}

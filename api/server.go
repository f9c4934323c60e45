// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"validity-app-api/api/middleware"
	"validity-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	// Title is the OpenAPI document title
	Title = "Validity API"

	// Version is the OpenAPI document version
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RequestsPerSecond and Burst configure the per-IP limiter; zero disables it
	RequestsPerSecond float64
	Burst             int

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	api, router, _ := NewAPIWithMiddleware(APIConfig{})
	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured. The returned
// stop function releases the rate limiter's background cleanup.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, func()) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	stop := func() {}
	if cfg.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	if cfg.MetricsHandler != nil {
		router.Handle("/metrics", cfg.MetricsHandler)
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Scores the credibility of web pages and summarizes search results"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router, stop
}

// Package core contains the business logic for the Validity API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (EvaluationResult, Report, SummaryResult, etc.)
// - scoring: Reputation table, signals and the score aggregator
// - summarize: Adaptive summary length policy and the summary service
// - search: Search provider glue returning the first organic snippet
// - reader: Readable text extraction from fetched pages
// - page: Page metadata parsing used by the heuristic signals
// - evaluation: The fetch, score, search and summarize pipeline
// - config: Functional options for scoring and summarization
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "validity-app-api/core/config"
//	    "validity-app-api/core/evaluation"
//	    "validity-app-api/core/interfaces"
//	    "validity-app-api/core/scoring"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	aggregator, err := scoring.NewAggregator(config.DefaultEvaluationConfig())
//	pipeline := evaluation.NewService(deps, aggregator)
//	pipeline.SetPageFetcher(myFetcher)
//
//	report := pipeline.Run(ctx, domain.EvaluationRequest{
//	    URL:      "https://www.cdc.gov/vaccines",
//	    Keywords: []string{"vaccine", "safety"},
//	})
//
package core

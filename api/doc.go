// Package api provides the HTTP API layer for the Validity application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type EvaluateRequest struct {
//	    URL      string   `json:"url" minLength:"1" maxLength:"2048"`
//	    Keywords []string `json:"keywords,omitempty" maxItems:"50"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:            logger,
//	    RequestsPerSecond: 10,
//	    Burst:             20,
//	})
//	defer stop()
//
//	handlers.NewEvaluationHandler(pipeline).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 9457:
//
//	{
//	    "status": 422,
//	    "title": "Unprocessable Entity",
//	    "detail": "content unavailable for https://down.example: status 404: Not Found"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
//
package api

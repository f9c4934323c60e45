// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and which credentials are missing

package handlers

import (
	"context"
	"net/http"

	"validity-app-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service status
type HealthHandler struct {
	version string
	missing []string
}

// NewHealthHandler creates a health handler; missing lists absent credential names
func NewHealthHandler(version string, missing []string) *HealthHandler {
	return &HealthHandler{version: version, missing: missing}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health always answers ok; missing credentials degrade features, not liveness
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:             "ok",
			Version:            h.version,
			MissingCredentials: h.missing,
		},
	}, nil
}

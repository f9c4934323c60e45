// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"validity-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsNotFound(err), errors.IsNoResults(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsContentUnavailable(err):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.IsSearchUnavailable(err):
		var searchErr *errors.SearchUnavailableError
		if stderrors.As(err, &searchErr) && searchErr.StatusCode == 429 {
			return huma.Error429TooManyRequests("Rate limited by search provider")
		}
		return huma.Error503ServiceUnavailable("Search provider unavailable", err)
	case errors.IsSummarizationFailure(err):
		return huma.Error503ServiceUnavailable("Summarization unavailable", err)
	case errors.IsConfiguration(err):
		return huma.Error500InternalServerError(err.Error())
	}

	if errors.IsExternalAPI(err) {
		var apiErr *errors.ExternalAPIError
		if stderrors.As(err, &apiErr) {
			switch {
			case apiErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			case apiErr.StatusCode >= 400:
				return huma.Error400BadRequest("External service request error", err)
			}
		}
		return huma.Error500InternalServerError("Unexpected external service response", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

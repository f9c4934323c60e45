// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// ContentUnavailableError is returned when page retrieval failed and the
// evaluation policy requires content
type ContentUnavailableError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *ContentUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content unavailable for %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("content unavailable for %s", e.URL)
}

// Unwrap returns the underlying fetch error
func (e *ContentUnavailableError) Unwrap() error {
	return e.Cause
}

// SearchUnavailableError is a transport or authorization failure of the search provider
type SearchUnavailableError struct {
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *SearchUnavailableError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("search unavailable: status %d: %v", e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("search unavailable: status %d", e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("search unavailable: %v", e.Cause)
	}
	return "search unavailable"
}

// Unwrap returns the underlying transport error
func (e *SearchUnavailableError) Unwrap() error {
	return e.Cause
}

// NoResultsError means the search succeeded but returned no usable organic results
type NoResultsError struct {
	Query string
}

// Error implements the error interface
func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no search results for %q", e.Query)
}

// SummarizationFailureError wraps an error or malformed output from the summarizer
type SummarizationFailureError struct {
	Cause error
}

// Error implements the error interface
func (e *SummarizationFailureError) Error() string {
	if e.Cause == nil {
		return "summarization failed"
	}
	return fmt.Sprintf("summarization failed: %v", e.Cause)
}

// Unwrap returns the underlying summarizer error
func (e *SummarizationFailureError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports a missing or invalid setting such as an absent credential
type ConfigurationError struct {
	Key     string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsContentUnavailable checks if an error is a ContentUnavailableError
func IsContentUnavailable(err error) bool {
	var target *ContentUnavailableError
	return errors.As(err, &target)
}

// IsSearchUnavailable checks if an error is a SearchUnavailableError
func IsSearchUnavailable(err error) bool {
	var target *SearchUnavailableError
	return errors.As(err, &target)
}

// IsNoResults checks if an error is a NoResultsError
func IsNoResults(err error) bool {
	var target *NoResultsError
	return errors.As(err, &target)
}

// IsSummarizationFailure checks if an error is a SummarizationFailureError
func IsSummarizationFailure(err error) bool {
	var target *SummarizationFailureError
	return errors.As(err, &target)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

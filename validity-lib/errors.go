// ABOUTME: Error types and handling for the Validity library
// ABOUTME: Classifies pipeline errors into stable categories for callers

package validity

import (
	stderrors "errors"
	"fmt"

	coreerrors "validity-app-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input such as a URL without a host
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeContentUnavailable indicates the page could not be fetched
	ErrorTypeContentUnavailable ErrorType = "content_unavailable"

	// ErrorTypeSearch indicates the search provider failed
	ErrorTypeSearch ErrorType = "search"

	// ErrorTypeNoResults indicates the search returned nothing usable
	ErrorTypeNoResults ErrorType = "no_results"

	// ErrorTypeSummarization indicates the summarizer failed
	ErrorTypeSummarization ErrorType = "summarization"

	// ErrorTypeConfiguration indicates missing credentials or invalid options
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates anything else
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Common errors
var (
	// ErrClientClosed is returned when operations are attempted on a closed client
	ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")
)

// Classify returns the category of any error produced by the client
func Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	var libErr *Error
	if stderrors.As(err, &libErr) {
		return libErr.Type
	}

	switch {
	case coreerrors.IsValidation(err):
		return ErrorTypeValidation
	case coreerrors.IsContentUnavailable(err):
		return ErrorTypeContentUnavailable
	case coreerrors.IsNoResults(err):
		return ErrorTypeNoResults
	case coreerrors.IsSearchUnavailable(err):
		return ErrorTypeSearch
	case coreerrors.IsSummarizationFailure(err):
		return ErrorTypeSummarization
	case coreerrors.IsConfiguration(err):
		return ErrorTypeConfiguration
	}
	return ErrorTypeInternal
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return Classify(err) == ErrorTypeValidation
}

// IsContentUnavailableError checks if a page could not be fetched
func IsContentUnavailableError(err error) bool {
	return Classify(err) == ErrorTypeContentUnavailable
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return Classify(err) == ErrorTypeConfiguration
}

// IsNoResultsError checks if a search found nothing
func IsNoResultsError(err error) bool {
	return Classify(err) == ErrorTypeNoResults
}

// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ExtractionEmptyError indicates that no adapter matched and every
// fallback tier yielded under-threshold content. Callers receive a
// minimal valid record alongside this signal; it never crosses the
// pipeline's public boundary.
type ExtractionEmptyError struct {
	URL string
}

// Error implements the error interface
func (e *ExtractionEmptyError) Error() string {
	return fmt.Sprintf("extraction yielded no usable content: %s", e.URL)
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

// ExternalAPIError represents an error from an external collaborator
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsExtractionEmpty checks if an error is an ExtractionEmptyError
func IsExtractionEmpty(err error) bool {
	var emptyErr *ExtractionEmptyError
	return errors.As(err, &emptyErr)
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

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

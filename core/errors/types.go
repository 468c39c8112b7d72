// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling by callers

package errors

import (
	"errors"
	"fmt"
)

// ProviderError represents an error payload returned by a social-network
// provider. It is fatal for the feed being normalized.
type ProviderError struct {
	Provider string
	Message  string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error from %s: %s", e.Provider, e.Message)
}

// ValidationError represents a malformed post or missing required field.
// Posts failing validation are dropped, never surfaced to the caller.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

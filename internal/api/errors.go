package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingIdentity indicates no API identity was configured.
	ErrMissingIdentity = errors.New("API identity is required")
	// ErrMissingSecret indicates no API secret was configured.
	ErrMissingSecret = errors.New("API secret is required")

	// ErrInvalidRecipient indicates the recipient identity is invalid or the
	// API identity is not set up for the requested mode (400).
	ErrInvalidRecipient = errors.New("invalid recipient or wrong mode")
	// ErrUnauthorized indicates the API identity or secret is wrong (401).
	ErrUnauthorized = errors.New("invalid API identity or secret")
	// ErrNoCredits indicates the account has run out of credits (402).
	ErrNoCredits = errors.New("no credits remaining")
	// ErrNotFound indicates no identity matched the lookup or recipient (404).
	ErrNotFound = errors.New("not found")
	// ErrMessageTooLong indicates the message exceeds the gateway limit (413).
	ErrMessageTooLong = errors.New("message too long")
	// ErrServerError indicates a temporary gateway failure (5xx).
	ErrServerError = errors.New("gateway server error")
)

// APIError is a non-success HTTP response from the gateway. It carries the
// status and the response body for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrInvalidRecipient
	case 401:
		return target == ErrUnauthorized
	case 402:
		return target == ErrNoCredits
	case 404:
		return target == ErrNotFound
	case 413:
		return target == ErrMessageTooLong
	}
	if e.StatusCode >= 500 && e.StatusCode <= 599 {
		return target == ErrServerError
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err  error
	Path string
}

func (e *NetworkError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("network error on %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

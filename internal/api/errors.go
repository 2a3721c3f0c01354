package api

import (
	"errors"
	"fmt"
)

// APIError represents a structured rejection returned by the Daywise API.
// Message carries the server's error string verbatim when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsConflict returns true if the error is a 409 Conflict error
// (e.g. registering an already-taken username).
func (e *APIError) IsConflict() bool {
	return e.StatusCode == 409
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NetworkError represents a transport-level failure: the server was
// unreachable or the connection broke before a response arrived.
type NetworkError struct {
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if an error is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a NetworkError and returns it.
func IsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// UserMessage returns the text to surface for a failed API call: the
// server's own message when available, otherwise a generic fallback.
func UserMessage(err error) string {
	if apiErr, ok := IsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if _, ok := IsNetworkError(err); ok {
		return "Server unreachable. Is the backend running?"
	}
	return "Request failed"
}

// Package apierror provides the standardized error response structure for the
// API. All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, DB
// errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// Internal is the fixed body returned for every failure that is not a
// single-record not-found. Callers intentionally cannot distinguish a bad
// request from a server fault.
func Internal() *APIError {
	return New("Internal server error")
}

// NotFound builds the not-found body for a single-record GET miss.
func NotFound(entity string) *APIError {
	return New(entity + " not found")
}

package cineamo

import (
	"fmt"
	"net/http"
)

// ConnectionError is a transport-level failure (DNS, TCP, TLS, timeout)
// raised before any HTTP response was obtained.
type ConnectionError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx HTTP response. The status code is carried so
// callers can classify the failure; the client never retries.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("API request to %s failed with status %d", e.URL, e.StatusCode)
}

// IsNotFound reports whether the response was a 404.
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether the response was a 429.
func (e *StatusError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError reports whether the response was a 5xx.
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ParseError indicates the response body was not valid JSON, or was JSON
// without the minimal shape the client expects.
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

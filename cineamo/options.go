package cineamo

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	perPage    int
	httpClient *http.Client
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithPerPage sets the default page size used by StreamAll when the caller
// passes a non-positive hint.
func WithPerPage(perPage int) Option {
	return func(o *clientOptions) {
		if perPage > 0 {
			o.perPage = perPage
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for tests and
// for callers that manage their own transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

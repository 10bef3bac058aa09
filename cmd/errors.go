package cmd

import (
	"errors"
	"fmt"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// userMessage maps client errors to short user-facing text. It is the single
// place where the error taxonomy of the cineamo package becomes CLI output;
// verbose mode appends the underlying detail.
func userMessage(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	msg := classify(err)
	if verbose {
		return fmt.Sprintf("%s (%v)", msg, err)
	}
	return msg
}

func classify(err error) string {
	var statusErr *cineamo.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.IsNotFound():
			return "Error: resource not found (404)"
		case statusErr.IsRateLimited():
			return "Error: rate limited by the API, try again later (429)"
		case statusErr.IsServerError():
			return fmt.Sprintf("Error: the API reported a server error (%d)", statusErr.StatusCode)
		default:
			return fmt.Sprintf("Error: request failed with status %d", statusErr.StatusCode)
		}
	}

	var connErr *cineamo.ConnectionError
	if errors.As(err, &connErr) {
		return "Error: could not reach the Cineamo API, check your connection and base URL"
	}

	var parseErr *cineamo.ParseError
	if errors.As(err, &parseErr) {
		return "Error: the API returned an unexpected response"
	}

	return fmt.Sprintf("Error: %v", err)
}

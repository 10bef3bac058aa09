package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &cineamo.StatusError{StatusCode: 404, URL: "https://api.cineamo.com/cinemas/1"},
			want: "Error: resource not found (404)",
		},
		{
			name: "rate limited",
			err:  &cineamo.StatusError{StatusCode: 429},
			want: "Error: rate limited by the API, try again later (429)",
		},
		{
			name: "server error",
			err:  &cineamo.StatusError{StatusCode: 503},
			want: "Error: the API reported a server error (503)",
		},
		{
			name: "other status",
			err:  &cineamo.StatusError{StatusCode: 403},
			want: "Error: request failed with status 403",
		},
		{
			name: "connection failure",
			err:  &cineamo.ConnectionError{URL: "https://api.cineamo.com", Err: errors.New("dial tcp: timeout")},
			want: "Error: could not reach the Cineamo API, check your connection and base URL",
		},
		{
			name: "parse failure",
			err:  &cineamo.ParseError{URL: "https://api.cineamo.com", Err: errors.New("unexpected EOF")},
			want: "Error: the API returned an unexpected response",
		},
		{
			name: "wrapped status error",
			err:  fmt.Errorf("loading cinemas: %w", &cineamo.StatusError{StatusCode: 404}),
			want: "Error: resource not found (404)",
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: "Error: something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err, false))
		})
	}
}

func TestUserMessageVerbose(t *testing.T) {
	err := &cineamo.StatusError{StatusCode: 404, URL: "https://api.cineamo.com/cinemas/1"}
	got := userMessage(err, true)

	assert.Contains(t, got, "Error: resource not found (404)")
	assert.Contains(t, got, "api.cineamo.com/cinemas/1")
}

func TestUserMessageNil(t *testing.T) {
	assert.Equal(t, "", userMessage(nil, false))
}

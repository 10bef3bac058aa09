package cineamo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing base URL", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base URL is required")
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		client, err := NewClient("https://api.cineamo.com/", logger)
		require.NoError(t, err)
		assert.Equal(t, "https://api.cineamo.com", client.BaseURL())
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with per page", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, logger, WithPerPage(25))
		require.NoError(t, err)
		assert.Equal(t, 25, client.perPage)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(DefaultBaseURL, logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestListPage(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cinemas", r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("city"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Write([]byte(`{
			"_embedded": {"cinemas": [{"id": 1, "name": "Kino A"}, {"id": 2, "name": "Kino B"}]},
			"_page": 1, "_page_count": 3, "_total_items": 25,
			"_links": {"next": {"href": "/cinemas?page=2"}}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	page, err := client.ListPage(context.Background(), "/cinemas", url.Values{"city": {"Berlin"}})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Kino A", page.Items[0].Str("name"))
	assert.Equal(t, "Kino B", page.Items[1].Str("name"))
	require.NotNil(t, page.TotalItems)
	assert.Equal(t, 25, *page.TotalItems)
	assert.Equal(t, "/cinemas?page=2", page.NextURL)
	assert.True(t, page.HasNext())
}

func TestListPageIdempotent(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded": {"cinemas": [{"id": 7}]}, "_page": 1}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	first, err := client.ListPage(context.Background(), "/cinemas", nil)
	require.NoError(t, err)
	second, err := client.ListPage(context.Background(), "/cinemas", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListPageErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("http status error carries the code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nothing here", http.StatusNotFound)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.ListPage(ctx, "/cinemas/999999", nil)
		require.Error(t, err)

		statusErr, ok := err.(*StatusError)
		require.True(t, ok, "expected *StatusError, got %T", err)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.True(t, statusErr.IsNotFound())
		assert.False(t, statusErr.IsRateLimited())
		assert.False(t, statusErr.IsServerError())
	})

	t.Run("connection error when server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.ListPage(ctx, "/cinemas", nil)
		require.Error(t, err)

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
	})

	t.Run("parse error on null body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.ListPage(ctx, "/cinemas", nil)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("parse error on malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"_embedded": `))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.ListPage(ctx, "/cinemas", nil)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestGetJSON(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/42", r.URL.Path)
		w.Write([]byte(`{"id": 42, "title": "Metropolis", "runtime": 153}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	item, err := client.GetJSON(context.Background(), "/movies/42", nil)
	require.NoError(t, err)
	assert.Equal(t, "Metropolis", item.Str("title"))
	assert.Equal(t, 153, item.Int("runtime"))
}

func TestGetJSONNonObject(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		body string
	}{
		{name: "null body", body: `null`},
		{name: "array body", body: `[{"id": 1}]`},
		{name: "string body", body: `"ok"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(server.URL, logger)
			require.NoError(t, err)

			item, err := client.GetJSON(ctx, "/movies/42", nil)
			require.Error(t, err)
			assert.Nil(t, item)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestGetAny(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("array body passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		value, err := client.GetAny(ctx, "/cinemas", nil)
		require.NoError(t, err)

		list, ok := value.([]any)
		require.True(t, ok)
		assert.Len(t, list, 2)
	})

	t.Run("malformed body is a parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": `))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.GetAny(ctx, "/cinemas", nil)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

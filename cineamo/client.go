package cineamo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Cineamo API endpoint.
const DefaultBaseURL = "https://api.cineamo.com"

// DefaultPerPage is the page size StreamAll falls back to when the caller
// passes a non-positive hint.
const DefaultPerPage = 50

const defaultTimeout = 15 * time.Second

// Client is a minimal client for the public Cineamo API. All calls are
// synchronous, one request at a time; pagination, retries and caching are
// left to the caller.
type Client struct {
	baseURL    string
	userAgent  string
	perPage    int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Cineamo client.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	options := clientOptions{
		timeout: defaultTimeout,
		perPage: DefaultPerPage,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  options.userAgent,
		perPage:    options.perPage,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a single GET and returns the raw body. Non-2xx responses
// become a *StatusError, transport failures a *ConnectionError.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", reqURL).Msg("GET")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: reqURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL, Body: string(body)}
	}

	return body, nil
}

// GetJSON fetches a single resource, e.g. /cinemas/42. The body must be a
// JSON object; null and other top-level values are a ParseError.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values) (Item, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// json.Unmarshal accepts null into a map without error.
		return nil, &ParseError{URL: c.baseURL + path, Err: fmt.Errorf("response body is not a JSON object")}
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, &ParseError{URL: c.baseURL + path, Err: err}
	}
	return item, nil
}

// GetAny fetches a path and decodes the body as arbitrary JSON. Unlike
// GetJSON it passes non-object top levels through, for raw requests.
func (c *Client) GetAny(ctx context.Context, path string, params url.Values) (any, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, &ParseError{URL: c.baseURL + path, Err: err}
	}
	return value, nil
}

// ListPage fetches one page of a paginated collection and extracts items
// plus pagination metadata from the HAL-JSON body. Missing fields degrade
// to empty/nil rather than failing.
func (c *Client) ListPage(ctx context.Context, path string, params url.Values) (*Page, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	page, err := decodePage(body)
	if err != nil {
		return nil, &ParseError{URL: c.baseURL + path, Err: err}
	}

	c.logger.Debug().
		Str("path", path).
		Int("items", len(page.Items)).
		Bool("has_next", page.HasNext()).
		Msg("fetched page")

	return page, nil
}

package furtrack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the FurTrack API host.
	DefaultBaseURL = "https://solar.furtrack.com"

	// thumbnailBaseURL is the media host thumbnails are served from.
	thumbnailBaseURL = "https://orca2.furtrack.com"
)

// defaultHeaders are sent with every request unless overridden by the
// caller. FurTrack serves the API to its own frontend, so the defaults
// mimic a browser visiting the site.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
	"Accept":          "application/json",
	"Referer":         "https://www.furtrack.com/",
	"Origin":          "https://www.furtrack.com",
	"Accept-Language": "en-US,en;q=0.5",
}

// Client wraps the FurTrack API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu      sync.RWMutex
	apiKey  string
	headers map[string]string
}

// NewClient creates a new FurTrack client. An API key is not required for
// public endpoints; configure one with WithAPIKey or SetAPIKey to access
// content gated behind a login.
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := clientOptions{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("furtrack base URL is required")
	}
	// Ensure baseURL doesn't have trailing slash
	if options.baseURL[len(options.baseURL)-1] == '/' {
		options.baseURL = options.baseURL[:len(options.baseURL)-1]
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	headers := make(map[string]string, len(defaultHeaders)+len(options.headers))
	for k, v := range defaultHeaders {
		headers[k] = v
	}
	for k, v := range options.headers {
		headers[k] = v
	}

	return &Client{
		baseURL:    options.baseURL,
		httpClient: httpClient,
		logger:     logger,
		apiKey:     options.apiKey,
		headers:    headers,
	}, nil
}

// SetAPIKey replaces the API key used for bearer authentication. Passing an
// empty string disables authentication. Requests started after this returns
// carry the new key; requests already dispatched are unaffected.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()
}

// SetHeaders merges m into the configured headers: new keys are added,
// existing keys are overwritten, keys absent from m are left untouched.
// There is no way to remove a header, only to overwrite it.
func (c *Client) SetHeaders(m map[string]string) {
	c.mu.Lock()
	for k, v := range m {
		c.headers[k] = v
	}
	c.mu.Unlock()
}

// snapshot copies the mutable configuration so an in-flight request is
// never affected by a concurrent SetAPIKey/SetHeaders call.
func (c *Client) snapshot() (string, map[string]string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	headers := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	return c.apiKey, headers
}

// doRequest performs a GET against the API and returns the response body.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	apiKey, headers := c.snapshot()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	c.logger.Debug().Str("path", path).Msg("Making FurTrack API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}

// getJSON performs a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.doRequest(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

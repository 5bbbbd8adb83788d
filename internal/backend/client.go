// Package backend is the HTTP client for the oscy backend API, which serves
// ceremonies, categories, nominations and search results as JSON.
//
// Responses are cached in memory; anything that still contains a pending
// result is cached briefly so that announcements show up quickly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/cache"
	"github.com/oscy/oscy-web/internal/metrics"
)

// ErrNotFound is returned when the backend has no such ceremony or category.
// The backend answers 422 for ids that fail validation and 404 otherwise.
var ErrNotFound = errors.New("backend: not found")

// Client is the shared HTTP client for all backend endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      *cache.Cache
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpClient = h } }

// WithCache caches decoded responses.
func WithCache(cc *cache.Cache) Option { return func(c *Client) { c.cache = cc } }

// WithMetrics records request counts and latency.
func WithMetrics(m *metrics.Metrics) Option { return func(c *Client) { c.metrics = m } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.logger = l } }

// NewClient creates a backend client rate limited to requestsPerSecond.
func NewClient(baseURL string, requestsPerSecond int, opts ...Option) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 20
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		cache:      cache.New(false),
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Ceremonies lists every ceremony, oldest first.
func (c *Client) Ceremonies(ctx context.Context) ([]awards.Ceremony, error) {
	var out []awards.Ceremony
	err := c.getJSON(ctx, "ceremonies", "/ceremonies", nil, &out, func() time.Duration {
		return cache.TTLCeremonyList
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Nominations returns the nominations and statistics for the inclusive
// iteration range [start, end].
func (c *Client) Nominations(ctx context.Context, start, end int) (*awards.Nominations, error) {
	params := url.Values{}
	params.Set("start_edition", strconv.Itoa(start))
	params.Set("end_edition", strconv.Itoa(end))

	var out awards.Nominations
	err := c.getJSON(ctx, "nominations", "/", params, &out, func() time.Duration {
		return ttlFor(out.Editions)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Ceremony returns the nominations of a single ceremony. A ceremony with no
// editions in the response is reported as ErrNotFound.
func (c *Client) Ceremony(ctx context.Context, iteration int) (*awards.Nominations, error) {
	n, err := c.Nominations(ctx, iteration, iteration)
	if err != nil {
		return nil, err
	}
	if len(n.Editions) == 0 {
		return nil, fmt.Errorf("ceremony %d: %w", iteration, ErrNotFound)
	}
	return n, nil
}

// Category returns a category's naming history and its nominations across
// every ceremony.
func (c *Client) Category(ctx context.Context, id int) (*awards.CategoryDetail, error) {
	var out awards.CategoryDetail
	path := "/categories/" + strconv.Itoa(id)
	err := c.getJSON(ctx, "category", path, nil, &out, func() time.Duration {
		return ttlFor(out.Nominations.Editions)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func ttlFor(editions []awards.Edition) time.Duration {
	if awards.HasPending(editions) {
		return cache.TTLPending
	}
	return cache.TTLDecided
}

// getJSON performs a rate-limited GET and decodes the body into dst. ttl is
// evaluated after decoding, so it may inspect dst.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, dst any, ttl func() time.Duration) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	if data, _, ok := c.cache.Get(u); ok {
		if err := json.Unmarshal(data, dst); err == nil {
			return nil
		}
	}

	body, err := c.get(ctx, endpoint, u)
	if err != nil {
		return err
	}
	// The backend answers null for unknown ids on some routes.
	if string(bytes.TrimSpace(body)) == "null" {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	c.cache.Set(u, body, ttl())
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	outcome := "error"
	defer func() { c.metrics.RecordBackendRequest(endpoint, outcome, time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		outcome = "not_found"
		return nil, fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("backend error", "endpoint", endpoint, "status", resp.StatusCode)
		return nil, fmt.Errorf("backend %s returned %d: %s", endpoint, resp.StatusCode, truncate(body, 200))
	}
	outcome = "ok"
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

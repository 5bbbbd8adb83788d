// Package tmdb resolves IMDb ids to poster and profile image URLs through
// The Movie Database "find" API.
//
// Image lookups are best effort: a slot that cannot be resolved renders
// without an image, it never fails the page.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/oscy/oscy-web/internal/cache"
	"github.com/oscy/oscy-web/internal/metrics"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	ImageBaseURL    = "https://image.tmdb.org/t/p/w185"
	maxErrorBodyLen = 200
)

// ErrDisabled is returned by Resolve when no API key is configured.
var ErrDisabled = errors.New("tmdb: no api key configured")

// Store persists resolved image URLs across restarts. A nil url records
// that TMDB has no image for the id.
type Store interface {
	LookupImage(ctx context.Context, imdbID string) (url *string, found bool, err error)
	SaveImage(ctx context.Context, imdbID string, url *string) error
}

// Config configures a Resolver.
type Config struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond int
	Attempts          int
	RetryDelay        time.Duration
}

// Resolver looks up image URLs with caching, retries and rate limiting.
type Resolver struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter
	cache      *cache.Cache
	store      Store
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewResolver creates a resolver. cc, store and m may be nil.
func NewResolver(cfg Config, cc *cache.Cache, store Store, m *metrics.Metrics, logger *slog.Logger) *Resolver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cc == nil {
		cc = cache.New(false)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
		cache:      cc,
		store:      store,
		metrics:    m,
		logger:     logger,
	}
}

// Enabled reports whether an API key is configured.
func (r *Resolver) Enabled() bool { return r.cfg.APIKey != "" }

// ResolveAll resolves every id concurrently. The result is parallel to ids;
// empty ids and failed lookups are nil.
func (r *Resolver) ResolveAll(ctx context.Context, ids []string) []*string {
	out := make([]*string, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		if id == "" {
			continue
		}
		g.Go(func() error {
			u, err := r.Resolve(ctx, id)
			if err != nil {
				if !errors.Is(err, ErrDisabled) {
					r.logger.Warn("image lookup failed", "imdb_id", id, "error", err)
				}
				return nil
			}
			out[i] = u
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Resolve returns the image URL for imdbID, or nil when TMDB has none.
// Titles (tt...) resolve to a poster, everything else to a profile photo.
func (r *Resolver) Resolve(ctx context.Context, imdbID string) (*string, error) {
	if !r.Enabled() {
		r.metrics.RecordImageLookup(metrics.ImageDisabled)
		return nil, ErrDisabled
	}

	key := "image:" + imdbID
	if data, _, ok := r.cache.Get(key); ok {
		r.metrics.RecordImageLookup(metrics.ImageHit)
		return optional(string(data)), nil
	}
	if r.store != nil {
		u, found, err := r.store.LookupImage(ctx, imdbID)
		if err != nil {
			r.logger.Warn("image store lookup failed", "imdb_id", imdbID, "error", err)
		} else if found {
			r.metrics.RecordImageLookup(metrics.ImageHit)
			r.remember(key, u)
			return u, nil
		}
	}

	u, err := r.fetchWithRetry(ctx, imdbID)
	if err != nil {
		r.metrics.RecordImageLookup(metrics.ImageFailed)
		return nil, err
	}
	if u == nil {
		r.metrics.RecordImageLookup(metrics.ImageMissing)
	} else {
		r.metrics.RecordImageLookup(metrics.ImageResolved)
	}
	r.remember(key, u)
	if r.store != nil {
		if err := r.store.SaveImage(ctx, imdbID, u); err != nil {
			r.logger.Warn("image store save failed", "imdb_id", imdbID, "error", err)
		}
	}
	return u, nil
}

func (r *Resolver) remember(key string, u *string) {
	if u == nil {
		r.cache.Set(key, nil, cache.TTLImageMiss)
		return
	}
	r.cache.Set(key, []byte(*u), cache.TTLImage)
}

func (r *Resolver) fetchWithRetry(ctx context.Context, imdbID string) (*string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.Attempts; attempt++ {
		u, err := r.fetch(ctx, imdbID)
		if err == nil {
			return u, nil
		}
		lastErr = err
		if attempt == r.cfg.Attempts {
			break
		}
		r.logger.Debug("retrying image lookup", "imdb_id", imdbID, "attempt", attempt+1, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.cfg.RetryDelay):
		}
	}
	return nil, fmt.Errorf("find %s after %d attempts: %w", imdbID, r.cfg.Attempts, lastErr)
}

// findResponse is the subset of the find payload we read.
type findResponse struct {
	MovieResults []struct {
		PosterPath string `json:"poster_path"`
	} `json:"movie_results"`
	PersonResults []struct {
		ProfilePath string `json:"profile_path"`
	} `json:"person_results"`
}

func (r *Resolver) fetch(ctx context.Context, imdbID string) (*string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("external_source", "imdb_id")
	params.Set("api_key", r.cfg.APIKey)
	u := r.cfg.BaseURL + "/find/" + url.PathEscape(imdbID) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key; keep it out of logs.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("tmdb returned %d: %s", resp.StatusCode, truncate(body))
	}

	var found findResponse
	if err := json.Unmarshal(body, &found); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var path string
	if strings.HasPrefix(imdbID, "tt") {
		if len(found.MovieResults) > 0 {
			path = found.MovieResults[0].PosterPath
		}
	} else if len(found.PersonResults) > 0 {
		path = found.PersonResults[0].ProfilePath
	}
	return optional(imageURL(path)), nil
}

func imageURL(path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + path
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(b []byte) string {
	if len(b) <= maxErrorBodyLen {
		return string(b)
	}
	return string(b[:maxErrorBodyLen]) + "..."
}

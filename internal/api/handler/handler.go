// Package handler provides HTTP handlers for the ceremony and category view
// endpoints. Handlers fetch from the backend API, run the pure cores
// (statstable, topfive) and write the encoded view model through the
// in-memory cache.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/oscy/oscy-web/internal/api/respond"
	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/backend"
	"github.com/oscy/oscy-web/internal/cache"
	"github.com/oscy/oscy-web/internal/config"
	"github.com/oscy/oscy-web/internal/imdb"
	"github.com/oscy/oscy-web/internal/metrics"
	"github.com/oscy/oscy-web/internal/statstable"
	"github.com/oscy/oscy-web/internal/topfive"
)

// Backend is the subset of the backend client the handlers use.
type Backend interface {
	Ceremonies(ctx context.Context) ([]awards.Ceremony, error)
	Ceremony(ctx context.Context, iteration int) (*awards.Nominations, error)
	Category(ctx context.Context, id int) (*awards.CategoryDetail, error)
}

// Images resolves IMDb ids to image URLs, nil per slot when unavailable.
type Images interface {
	ResolveAll(ctx context.Context, ids []string) []*string
}

// Pinger reports database health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	backend Backend
	images  Images
	db      Pinger
	cache   *cache.Cache
	metrics *metrics.Metrics
	cfg     *config.Config
	logger  *slog.Logger
}

// New creates a Handler. db, c and m may be nil.
func New(b Backend, images Images, db Pinger, c *cache.Cache, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = cache.New(false)
	}
	return &Handler{
		backend: b,
		images:  images,
		db:      db,
		cache:   c,
		metrics: m,
		cfg:     cfg,
		logger:  logger,
	}
}

// Root serves service info at /.
// @Summary Service info
// @Description Returns the service name, status, environment and backend origin.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":        "oscy web",
		"status":      "running",
		"environment": h.cfg.Environment,
		"backend":     h.cfg.BackendOrigin(),
		"docs":        "/docs/index.html",
		"images":      h.cfg.TMDBAPIKey != "",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies connectivity of the optional image database.
// @Summary Database health check
// @Description Verifies Postgres connectivity. Reports "disabled" when DATABASE_URL is not set.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	if h.db == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"database":  "disabled",
			"timestamp": now,
		})
		return
	}
	if err := h.db.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": now,
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": now,
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Shared plumbing
// --------------------------------------------------------------------------

var errUpstream = errors.New("backend request failed")

// badRequest is an error caused by the request itself.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func badRequestf(format string, args ...any) error {
	return badRequest{msg: fmt.Sprintf(format, args...)}
}

// upstream marks err as a backend failure unless it is a not-found.
func upstream(err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", errUpstream, err)
}

// serveCached writes the cached encoding of key, or builds, caches and
// writes it. build returns the view model and its TTL.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, build func(ctx context.Context) (any, time.Duration, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, h.cache.Remaining(key), true)
		return
	}

	v, ttl, err := build(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("encode %s: %w", key, err))
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// serveFresh builds and writes the view for key without storing it. Free-text
// searches go through here since their keys are unbounded; the backend payload
// underneath is still cached by the client.
func (h *Handler) serveFresh(w http.ResponseWriter, r *http.Request, key string, build func(ctx context.Context) (any, time.Duration, error)) {
	v, ttl, err := build(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("encode %s: %w", key, err))
		return
	}

	etag := cache.ComputeETag(data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var br badRequest
	switch {
	case errors.As(err, &br):
		respond.WriteError(w, http.StatusBadRequest, respond.CodeBadRequest, br.msg)
	case errors.Is(err, statstable.ErrColumnIndex):
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeBadRequest, "Invalid column", err.Error())
	case errors.Is(err, backend.ErrNotFound), errors.Is(err, topfive.ErrNoEdition):
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "Not found")
	case errors.Is(err, errUpstream):
		h.logger.Error("backend request failed", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusBadGateway, respond.CodeUpstream, "Backend request failed")
	case errors.Is(err, imdb.ErrUnrecognizedKind):
		h.logger.Error("unrecognized imdb id", "path", r.URL.Path, "error", err)
		respond.WriteErrorDetail(w, http.StatusInternalServerError, respond.CodeInternal, "Unrecognized IMDb id", err.Error())
	default:
		h.logger.Error("request failed", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Internal error")
	}
}

// imdbURL returns the page for id, nil for an empty id.
func imdbURL(id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	u, err := imdb.URL(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ttlFor returns the cache TTL for a view built from editions.
func ttlFor(editions []awards.Edition) time.Duration {
	if awards.HasPending(editions) {
		return cache.TTLPending
	}
	return cache.TTLDecided
}

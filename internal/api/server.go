package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/oscy/oscy-web/internal/api/handler"
	"github.com/oscy/oscy-web/internal/config"
	"github.com/oscy/oscy-web/internal/metrics"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, proxy *Proxy, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware(m))
	r.Use(TimingMiddleware)
	r.Use(middleware.Recoverer)

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Proxied backend routes pass the upstream encoding through untouched.
	r.Get("/api/docs", proxy.Docs)
	r.Handle("/api/*", http.HandlerFunc(proxy.API))
	r.Handle("/openapi.json", http.HandlerFunc(proxy.OpenAPI))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5)) // gzip

		// Root
		r.Get("/", h.Root)

		// Health checks
		r.Route("/health", func(r chi.Router) {
			r.Get("/", h.HealthCheck)
			r.Get("/db", h.HealthCheckDB)
			r.Get("/cache", h.HealthCheckCache)
		})

		// Prometheus
		if m != nil {
			r.Handle("/metrics", m.Handler())
		}

		// Swagger UI
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		))

		// Page view models
		r.Route("/view", func(r chi.Router) {
			r.Get("/ceremonies", h.ListCeremonies)
			r.Get("/ceremonies/{iteration}", h.GetCeremony)
			r.Get("/ceremonies/{iteration}/stats/{table}", h.GetCeremonyStats)
			r.Get("/categories/{id}", h.GetCategory)
			r.Get("/categories/{id}/stats", h.GetCategoryStats)
		})
	})

	logger.Debug("router configured", "backend", cfg.BackendOrigin())
	return r
}

// Command web is the oscy web tier: page view models for ceremonies and
// categories, plus the /api proxy to the oscy backend.
//
// Usage:
//
//	oscy-web
//	PORT=8080 OSCY_API_URL=http://localhost:8000 oscy-web

// @title oscy web
// @version 1.0.0
// @description Page view models for the oscy movie-awards site. /api/* and /openapi.json are forwarded to the oscy backend.
// @host localhost:3000
// @BasePath /
// @schemes http https
// @contact.name oscy
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oscy/oscy-web/internal/api"
	"github.com/oscy/oscy-web/internal/api/handler"
	"github.com/oscy/oscy-web/internal/backend"
	"github.com/oscy/oscy-web/internal/cache"
	"github.com/oscy/oscy-web/internal/config"
	"github.com/oscy/oscy-web/internal/db"
	"github.com/oscy/oscy-web/internal/maintenance"
	"github.com/oscy/oscy-web/internal/metrics"
	"github.com/oscy/oscy-web/internal/tmdb"

	_ "github.com/oscy/oscy-web/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Optional image database
	var (
		store  tmdb.Store
		pinger handler.Pinger
	)
	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store, pinger = pool, pool
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)

		// Prune stale image rows in the background
		go maintenance.Start(ctx, pool, maintenance.DefaultConfig(), logger)
	} else {
		logger.Info("Image database disabled (no DATABASE_URL)")
	}

	// Initialize cache and metrics
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)
	m := metrics.New()

	// Upstream clients
	origin := cfg.BackendOrigin()
	client := backend.NewClient(origin, cfg.BackendRPS,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
		backend.WithCache(appCache),
		backend.WithMetrics(m),
		backend.WithLogger(logger))
	resolver := tmdb.NewResolver(tmdb.Config{
		APIKey:            cfg.TMDBAPIKey,
		RequestsPerSecond: cfg.TMDBRPS,
		Attempts:          cfg.TMDBRetryAttempts,
		RetryDelay:        cfg.TMDBRetryDelay,
	}, appCache, store, m, logger)
	if !resolver.Enabled() {
		logger.Info("Image lookup disabled (no TMDB_API_KEY)")
	}

	proxy, err := api.NewProxy(origin, logger)
	if err != nil {
		logger.Error("Invalid backend origin", "origin", origin, "error", err)
		os.Exit(1)
	}

	// Create router
	h := handler.New(client, resolver, pinger, appCache, m, cfg, logger)
	router := api.NewRouter(h, proxy, m, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting oscy web",
			"addr", addr,
			"environment", cfg.Environment,
			"backend", origin,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

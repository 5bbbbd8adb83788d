// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/web and cmd/oscy.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ProductionBackendURL is the backend origin used when ENVIRONMENT=production
// and OSCY_API_URL is not set.
const ProductionBackendURL = "https://oscy-api.vercel.app"

// --------------------------------------------------------------------------
// Config is populated from environment variables.
// --------------------------------------------------------------------------

type Config struct {
	// Web server
	Host        string
	Port        int
	Environment string // development, preview, production
	Debug       bool   // forces debug logging
	LogLevel    slog.Level

	// Backend API
	BackendURL     string // explicit origin, overrides the environment default
	BackendHost    string // host of the development backend on port 8000
	BackendRPS     int
	BackendTimeout time.Duration

	// Image cache (optional)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// TMDB image lookup
	TMDBAPIKey        string
	TMDBRPS           int
	TMDBRetryAttempts int
	TMDBRetryDelay    time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	level, err := parseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:        envOr("WEB_HOST", "0.0.0.0"),
		Port:        envInt("PORT", 3000),
		Environment: envOr("ENVIRONMENT", envOr("VERCEL_ENV", "development")),
		Debug:       envBool("DEBUG", false),
		LogLevel:    level,

		BackendURL:     strings.TrimRight(envOr("OSCY_API_URL", ""), "/"),
		BackendHost:    envOr("API_HOST", "localhost"),
		BackendRPS:     envInt("BACKEND_REQUESTS_PER_SECOND", 20),
		BackendTimeout: envDuration("BACKEND_TIMEOUT", 30*time.Second),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		TMDBAPIKey:        envOr("TMDB_API_KEY", ""),
		TMDBRPS:           envInt("TMDB_REQUESTS_PER_SECOND", 20),
		TMDBRetryAttempts: envInt("TMDB_RETRY_ATTEMPTS", 3),
		TMDBRetryDelay:    envDuration("TMDB_RETRY_DELAY", 5*time.Second),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	if cfg.Debug {
		cfg.LogLevel = min(cfg.LogLevel, slog.LevelDebug)
	}
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	if cfg.TMDBRetryAttempts < 1 {
		return nil, fmt.Errorf("TMDB_RETRY_ATTEMPTS must be at least 1")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// BackendOrigin returns the origin that /api requests are forwarded to.
func (c *Config) BackendOrigin() string {
	switch {
	case c.BackendURL != "":
		return c.BackendURL
	case c.IsProduction():
		return ProductionBackendURL
	default:
		return fmt.Sprintf("http://%s:8000", c.BackendHost)
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}

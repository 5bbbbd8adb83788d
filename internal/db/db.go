// Package db provides a pgxpool-based connection pool backing the
// persistent image-URL cache, with prepared statement registration and
// health checking.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oscy/oscy-web/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS tmdb_images (
	imdb_id     TEXT PRIMARY KEY,
	image_url   TEXT,
	resolved_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Entries older than this are treated as absent so that posters added to
// TMDB later eventually show up.
const imageMaxAge = 30 * 24 * time.Hour

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Ensure the schema and register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, schema); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// LookupImage returns the stored image URL for imdbID. found is false when
// nothing fresh is stored; a found nil URL means TMDB had no image.
func (p *Pool) LookupImage(ctx context.Context, imdbID string) (*string, bool, error) {
	var u *string
	err := p.QueryRow(ctx, "image_lookup", imdbID, imageMaxAge.Seconds()).Scan(&u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup image %s: %w", imdbID, err)
	}
	return u, true, nil
}

// SaveImage upserts the image URL for imdbID.
func (p *Pool) SaveImage(ctx context.Context, imdbID string, u *string) error {
	if _, err := p.Exec(ctx, "image_upsert", imdbID, u); err != nil {
		return fmt.Errorf("save image %s: %w", imdbID, err)
	}
	return nil
}

// PruneImages deletes rows older than the freshness window and returns how
// many were removed.
func (p *Pool) PruneImages(ctx context.Context) (int64, error) {
	tag, err := p.Exec(ctx, "image_prune", imageMaxAge.Seconds())
	if err != nil {
		return 0, fmt.Errorf("prune images: %w", err)
	}
	return tag.RowsAffected(), nil
}

// registerPreparedStatements registers all statements the web tier uses.
// Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Image cache
		"image_lookup": "SELECT image_url FROM tmdb_images WHERE imdb_id = $1 AND resolved_at > now() - make_interval(secs => $2)",
		"image_upsert": "INSERT INTO tmdb_images (imdb_id, image_url, resolved_at) VALUES ($1, $2, now()) " +
			"ON CONFLICT (imdb_id) DO UPDATE SET image_url = EXCLUDED.image_url, resolved_at = EXCLUDED.resolved_at",
		"image_prune": "DELETE FROM tmdb_images WHERE resolved_at <= now() - make_interval(secs => $1)",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}

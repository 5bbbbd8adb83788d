// Package maintenance runs periodic background tasks as Go tickers for the
// long-running web process.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// ImagePruner deletes stale rows from the persistent image cache.
type ImagePruner interface {
	PruneImages(ctx context.Context) (int64, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	PruneInterval time.Duration // Stale image-cache rows
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		PruneInterval: 6 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, images ImagePruner, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started", "prune", cfg.PruneInterval)

	if cfg.PruneInterval > 0 && images != nil {
		t := time.NewTicker(cfg.PruneInterval)
		defer t.Stop()
		go runLoop(ctx, t.C, func() { pruneImages(ctx, images, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// pruneImages removes image-cache rows past their freshness window so the
// table does not grow with lookups nobody repeats.
func pruneImages(ctx context.Context, images ImagePruner, logger *slog.Logger) {
	n, err := images.PruneImages(ctx)
	if err != nil {
		logger.Warn("Prune: failed to delete stale image rows", "error", err)
		return
	}
	if n > 0 {
		logger.Info("Prune: deleted stale image rows", "count", n)
	}
}

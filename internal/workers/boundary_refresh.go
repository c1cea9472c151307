package workers

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type BoundaryCache interface {
	Set(ctx context.Context, geojson []byte, ttl time.Duration) error
}

// BoundaryRefresher re-reads the boundary document from disk on a
// timer and keeps the shared redis copy warm, so sibling instances
// starting up take the cached polygon instead of hitting the file.
type BoundaryRefresher struct {
	path     string
	cache    BoundaryCache
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewBoundaryRefresher(path string, cache BoundaryCache, ttl time.Duration, logger *slog.Logger) *BoundaryRefresher {
	interval := ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	return &BoundaryRefresher{
		path:     path,
		cache:    cache,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

func (w *BoundaryRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("boundary refresher stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *BoundaryRefresher) refresh(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Error("boundary file read failed", slog.String("path", w.path), slog.Any("error", err))
		return
	}
	if err := w.cache.Set(ctx, data, w.ttl); err != nil {
		w.logger.Error("boundary cache refresh failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("boundary cache refreshed", slog.Int("bytes", len(data)))
}

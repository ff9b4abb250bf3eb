package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/airdata/ourairports-api/pkg/logging"
)

// ErrNotLoaded is returned by Current before the first successful load.
var ErrNotLoaded = errors.New("datasets not loaded yet")

// Catalog serves the latest snapshot. Readers never block: a refresh builds a
// whole new snapshot and swaps it in only when every dataset loaded.
type Catalog struct {
	loader  *Loader
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes refreshes
}

// New returns an empty catalog backed by loader.
func New(loader *Loader, logger *slog.Logger) *Catalog {
	return &Catalog{
		loader: loader,
		logger: logging.Component(logger, "catalog"),
	}
}

// Current returns the snapshot being served.
func (c *Catalog) Current() (*Snapshot, error) {
	s := c.current.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Refresh loads a new snapshot. On failure the previous snapshot, if any,
// keeps being served and the error is returned.
func (c *Catalog) Refresh(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	s, err := c.loader.LoadAll(ctx)
	if err != nil {
		if prev := c.current.Load(); prev != nil {
			c.logger.Warn("refresh failed, keeping previous snapshot",
				"snapshot", prev.ID.String(), "error", err)
		} else {
			c.logger.Error("load failed", "error", err)
		}
		return nil, err
	}

	c.current.Store(s)
	c.logger.Info("snapshot loaded",
		"snapshot", s.ID.String(),
		"took", time.Since(start).Round(time.Millisecond),
		"airports", s.Airports.Len(),
		"runways", s.Runways.Len(),
		"navaids", s.Navaids.Len(),
		"airport_frequencies", s.AirportFrequencies.Len(),
		"countries", s.Countries.Len(),
		"regions", s.Regions.Len(),
	)
	return s, nil
}

// Run refreshes every interval until ctx is cancelled. Failures are logged
// and retried at the next tick. A non-positive interval returns at once.
func (c *Catalog) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = c.Refresh(ctx)
		}
	}
}

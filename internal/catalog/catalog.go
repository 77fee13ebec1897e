// Package catalog wires the fixed tables to the serving layer. It owns
// the memoized derived series, readiness reporting, and the optional
// geocoding enrichment of damage sites.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/observability"
)

// Catalog serves the derived sea-level series and the damage site
// inventory. The series is memoized: the raw table is fixed, so the
// derivation is computed once and reused. Recomputation is always safe
// and always yields the same result, so no invalidation exists.
type Catalog struct {
	measurements []domain.Measurement
	geocoder     domain.Geocoder
	logger       *slog.Logger
	metrics      *observability.Metrics

	buildOnce sync.Once
	buildErr  error
	points    []domain.SeriesPoint
	summary   domain.Summary

	mu    sync.RWMutex
	sites []domain.DamageSite

	ready atomic.Bool
}

// New creates a Catalog over the given tables. Pass a nil geocoder to
// disable damage-site enrichment.
func New(measurements []domain.Measurement, sites []domain.DamageSite, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *Catalog {
	return &Catalog{
		measurements: measurements,
		sites:        slices.Clone(sites),
		geocoder:     geocoder,
		logger:       logger,
		metrics:      metrics,
	}
}

// build derives the series and summary exactly once.
func (c *Catalog) build() error {
	c.buildOnce.Do(func() {
		start := time.Now()
		points, err := domain.BuildSeries(c.measurements)
		if err != nil {
			c.buildErr = err
			return
		}
		summary, err := domain.Summarize(points)
		if err != nil {
			c.buildErr = err
			return
		}
		c.points = points
		c.summary = summary
		c.metrics.BuildDuration.Observe(time.Since(start).Seconds())
		c.metrics.ServiceReady.Set(1)
		c.ready.Store(true)
	})
	return c.buildErr
}

// Series returns the derived sea-level series.
func (c *Catalog) Series() ([]domain.SeriesPoint, error) {
	if err := c.build(); err != nil {
		return nil, err
	}
	return c.points, nil
}

// Summary returns the four dashboard scalars.
func (c *Catalog) Summary() (domain.Summary, error) {
	if err := c.build(); err != nil {
		return domain.Summary{}, err
	}
	return c.summary, nil
}

// Snapshot recomputes the full series bundle with a fresh timestamp for
// downstream publication.
func (c *Catalog) Snapshot() (domain.Snapshot, error) {
	return domain.BuildSnapshot(c.measurements)
}

// Sites returns the damage site inventory, optionally filtered by coast.
// An unknown coast yields an empty slice, not an error; validation of the
// query string belongs to the HTTP layer.
func (c *Catalog) Sites(coast domain.Coast) []domain.DamageSite {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if coast == "" {
		return slices.Clone(c.sites)
	}
	filtered := make([]domain.DamageSite, 0, len(c.sites))
	for _, s := range c.sites {
		if s.Coast == coast {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Warm builds the series and, when a geocoder is configured, enriches
// the damage sites with place details. Enrichment failures degrade
// gracefully per site; only a series build failure is returned.
func (c *Catalog) Warm(ctx context.Context) error {
	if err := c.build(); err != nil {
		return err
	}
	if c.geocoder == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, site := range c.sites {
		c.sites[i] = domain.EnrichWithGeocoding(ctx, site, c.geocoder, c.logger)
	}
	c.logger.Info("damage sites enriched", "count", len(c.sites))
	return nil
}

// CheckReadiness returns nil once the series has been built successfully.
func (c *Catalog) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("series has not been built yet")
	}
	return nil
}

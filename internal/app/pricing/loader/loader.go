// Package loader maintains the short-lived snapshot cache over the pricing
// configuration datasets. It is a time-boxed memoization, not a general
// cache: readers always take a complete snapshot, and the only mutation is
// an unconditional swap or clear, so no locking is needed.
package loader

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
)

// DefaultTTL bounds the staleness of a cached snapshot.
const DefaultTTL = 30 * time.Second

// Loader fetches the three configuration datasets and serves them through
// a TTL-bounded snapshot cache. Concurrent loads during a cache miss may
// each fetch; that duplication is accepted in exchange for lock-free reads.
type Loader struct {
	source contracts.PricingSource
	clock  clock.Clock
	ttl    time.Duration

	cached atomic.Pointer[cachedSnapshot]
}

type cachedSnapshot struct {
	snapshot *domain.PricingSnapshot
	loadedAt time.Time
}

// New creates a Loader. A non-positive ttl falls back to DefaultTTL.
func New(source contracts.PricingSource, clk clock.Clock, ttl time.Duration) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Loader{
		source: source,
		clock:  clk,
		ttl:    ttl,
	}
}

// Load returns the cached snapshot when it is younger than the TTL,
// otherwise fetches all three datasets concurrently and caches the result.
// Fetch errors propagate to the caller; the loader never swallows them.
func (l *Loader) Load(ctx context.Context) (*domain.PricingSnapshot, error) {
	if c := l.cached.Load(); c != nil && l.clock.Now().Sub(c.loadedAt) < l.ttl {
		return c.snapshot, nil
	}

	var (
		settings *domain.GlobalPricingSettings
		levels   []*domain.PriceLevel
		matrix   []domain.ProductPriceEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = l.source.FetchGlobalPricingSettings(gctx)
		if err != nil {
			return fmt.Errorf("fetch pricing settings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		levels, err = l.source.FetchPriceLevels(gctx)
		if err != nil {
			return fmt.Errorf("fetch price levels: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matrix, err = l.source.FetchProductPriceMatrix(gctx)
		if err != nil {
			return fmt.Errorf("fetch product price matrix: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := domain.NewPricingSnapshot(settings, levels, matrix)
	l.cached.Store(&cachedSnapshot{
		snapshot: snapshot,
		loadedAt: l.clock.Now(),
	})
	return snapshot, nil
}

// Invalidate clears the cache unconditionally so the next Load refetches
// regardless of remaining TTL. Called by the settings-editing surface after
// any write.
func (l *Loader) Invalidate() {
	l.cached.Store(nil)
}

package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

func newTestLoader(ttl time.Duration) (*Loader, *testutil.FakePricingSource, *clock.MockClock) {
	source := testutil.NewFakePricingSource(
		testutil.DefaultSettings("wholesale"),
		[]*domain.PriceLevel{testutil.BaseLevel("wholesale", "Wholesale", 1)},
		[]domain.ProductPriceEntry{testutil.MatrixEntry("p1", "wholesale", 100)},
	)
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	return New(source, clk, ttl), source, clk
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("first load fetches all three datasets", func(t *testing.T) {
		l, source, _ := newTestLoader(30 * time.Second)

		snap, err := l.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.NotNil(t, snap.ExplicitPrice("p1", "wholesale"))

		assert.Equal(t, 1, source.SettingsFetches)
		assert.Equal(t, 1, source.LevelsFetches)
		assert.Equal(t, 1, source.MatrixFetches)
	})

	t.Run("second load within TTL is served from cache", func(t *testing.T) {
		l, source, clk := newTestLoader(30 * time.Second)

		first, err := l.Load(ctx)
		require.NoError(t, err)

		clk.Advance(29 * time.Second)
		second, err := l.Load(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, source.SettingsFetches)
	})

	t.Run("load after TTL expiry refetches", func(t *testing.T) {
		l, source, clk := newTestLoader(30 * time.Second)

		first, err := l.Load(ctx)
		require.NoError(t, err)

		clk.Advance(30 * time.Second)
		second, err := l.Load(ctx)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Equal(t, 2, source.SettingsFetches)
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		l, source, clk := newTestLoader(0)

		_, err := l.Load(ctx)
		require.NoError(t, err)

		clk.Advance(DefaultTTL - time.Second)
		_, err = l.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, source.SettingsFetches)
	})

	t.Run("fetch error propagates and nothing is cached", func(t *testing.T) {
		l, source, _ := newTestLoader(30 * time.Second)
		source.LevelsErr = errors.New("spanner unavailable")

		_, err := l.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch price levels")

		// recovery: next load succeeds once the source is healthy again
		source.LevelsErr = nil
		snap, err := l.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, snap)
	})

	t.Run("settings fetch error is wrapped", func(t *testing.T) {
		l, source, _ := newTestLoader(30 * time.Second)
		source.SettingsErr = domain.ErrSettingsNotFound

		_, err := l.Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSettingsNotFound))
	})
}

func TestLoader_Invalidate(t *testing.T) {
	ctx := context.Background()
	l, source, _ := newTestLoader(30 * time.Second)

	_, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.SettingsFetches)

	l.Invalidate()

	_, err = l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.SettingsFetches, "invalidate must force a refetch before the TTL expires")
}

package batch_prices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

func newTestQuery() (*Query, *testutil.FakePricingSource) {
	source := testutil.NewFakePricingSource(
		testutil.DefaultSettings("wholesale"),
		[]*domain.PriceLevel{testutil.BaseLevel("wholesale", "Wholesale", 1)},
		[]domain.ProductPriceEntry{
			testutil.MatrixEntry("oil-filter", "wholesale", 100),
			testutil.MatrixEntry("brake-pad", "wholesale", 80),
		},
	)
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	ldr := loader.New(source, clk, 30*time.Second)
	return NewQuery(ldr, source, domain.NewEngine(clk)), source
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves every product", func(t *testing.T) {
		q, _ := newTestQuery()

		results := q.Execute(ctx, &Request{ProductIDs: []string{"oil-filter", "brake-pad"}, Quantity: 1})
		require.Len(t, results, 2)
		assert.Equal(t, "100.00", results["oil-filter"].FinalPrice.String())
		assert.Equal(t, "80.00", results["brake-pad"].FinalPrice.String())
	})

	t.Run("one unresolvable product does not affect the rest", func(t *testing.T) {
		q, _ := newTestQuery()

		results := q.Execute(ctx, &Request{ProductIDs: []string{"oil-filter", "unknown"}, Quantity: 1})
		require.Len(t, results, 2)
		assert.True(t, results["oil-filter"].Resolved())
		assert.False(t, results["unknown"].Resolved())
		assert.Empty(t, results["unknown"].Errors)
	})

	t.Run("shares one snapshot load and one profile fetch", func(t *testing.T) {
		q, source := newTestQuery()
		source.Profiles["c1"] = &domain.CustomerPricingProfile{CustomerID: "c1"}

		q.Execute(ctx, &Request{
			ProductIDs: []string{"oil-filter", "brake-pad", "unknown"},
			CustomerID: "c1",
			Quantity:   1,
		})

		assert.Equal(t, 1, source.SettingsFetches)
		assert.Equal(t, 1, source.LevelsFetches)
		assert.Equal(t, 1, source.MatrixFetches)
		assert.Equal(t, 1, source.ProfileFetches)
	})

	t.Run("empty batch returns an empty map", func(t *testing.T) {
		q, _ := newTestQuery()

		results := q.Execute(ctx, &Request{Quantity: 1})
		assert.Empty(t, results)
	})

	t.Run("snapshot load failure marks every entry", func(t *testing.T) {
		q, source := newTestQuery()
		source.MatrixErr = errors.New("spanner unavailable")

		results := q.Execute(ctx, &Request{ProductIDs: []string{"oil-filter", "brake-pad"}, Quantity: 1})
		require.Len(t, results, 2)
		for _, result := range results {
			assert.False(t, result.Resolved())
			assert.NotEmpty(t, result.Errors)
		}
	})

	t.Run("profile fetch failure marks every entry", func(t *testing.T) {
		q, source := newTestQuery()
		source.ProfileErr = errors.New("spanner unavailable")

		results := q.Execute(ctx, &Request{ProductIDs: []string{"oil-filter"}, CustomerID: "c1", Quantity: 1})
		require.Len(t, results, 1)
		assert.False(t, results["oil-filter"].Resolved())
		assert.NotEmpty(t, results["oil-filter"].Errors)
	})
}

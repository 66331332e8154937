//go:build e2e

package e2e

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/batch_prices"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/effective_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/level_matrix"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/invalidate_cache"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

// Services wires the full resolution stack against a live Spanner emulator.
type Services struct {
	Client *spanner.Client
	Clock  *clock.MockClock
	Loader *loader.Loader

	EffectivePrice  *effective_price.Query
	BatchPrices     *batch_prices.Query
	LevelMatrix     *level_matrix.Query
	InvalidateCache *invalidate_cache.Interactor
}

func setupServices(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	source := repo.NewPricingSource(client)
	ldr := loader.New(source, clk, 30*time.Second)
	engine := domain.NewEngine(clk)

	return &Services{
		Client:          client,
		Clock:           clk,
		Loader:          ldr,
		EffectivePrice:  effective_price.NewQuery(ldr, source, engine),
		BatchPrices:     batch_prices.NewQuery(ldr, source, engine),
		LevelMatrix:     level_matrix.NewQuery(ldr, engine.Levels()),
		InvalidateCache: invalidate_cache.NewInteractor(ldr),
	}, cleanup
}

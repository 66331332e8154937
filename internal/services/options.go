package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/batch_prices"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/effective_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/level_matrix"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/invalidate_cache"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	httphandler "github.com/light-bringer/pricing-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	PricingHandler *httphandler.PricingHandler
	Loader         *loader.Loader
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, cacheTTL time.Duration, logger zerolog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	source := repo.NewPricingSource(spannerClient)
	ldr := loader.New(source, clk, cacheTTL)
	engine := domain.NewEngine(clk)

	effectivePriceQuery := effective_price.NewQuery(ldr, source, engine)
	batchPricesQuery := batch_prices.NewQuery(ldr, source, engine)
	levelMatrixQuery := level_matrix.NewQuery(ldr, engine.Levels())
	invalidateCache := invalidate_cache.NewInteractor(ldr)

	pricingHandler := httphandler.NewPricingHandler(
		effectivePriceQuery,
		batchPricesQuery,
		levelMatrixQuery,
		invalidateCache,
		logger,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		PricingHandler: pricingHandler,
		Loader:         ldr,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}

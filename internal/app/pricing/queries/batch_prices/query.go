package batch_prices

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
)

// Request identifies a batch resolution for one optional customer.
type Request struct {
	ProductIDs []string
	CustomerID string
	Quantity   int64
}

// Query resolves prices for many products in one call, sharing a single
// snapshot load and a single profile fetch across all entries.
type Query struct {
	loader *loader.Loader
	source contracts.PricingSource
	engine *domain.Engine
}

// NewQuery creates a new batch prices query.
func NewQuery(ldr *loader.Loader, source contracts.PricingSource, engine *domain.Engine) *Query {
	return &Query{
		loader: ldr,
		source: source,
		engine: engine,
	}
}

// Execute resolves each product independently and returns results keyed by
// product id. Entries are side-effect-free with respect to each other: one
// product resolving to no price never affects the rest of the batch. When
// the shared snapshot or profile fetch fails, every entry carries that
// failure rather than the call aborting.
func (q *Query) Execute(ctx context.Context, req *Request) map[string]*domain.PriceCalculationResult {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	results := make(map[string]*domain.PriceCalculationResult, len(req.ProductIDs))

	snapshot, err := q.loader.Load(ctx)
	if err != nil {
		for _, productID := range req.ProductIDs {
			results[productID] = domain.NewFailedResult(productID, quantity, err)
		}
		return results
	}

	var profile *domain.CustomerPricingProfile
	if req.CustomerID != "" {
		profile, err = q.source.FetchCustomerPricingProfile(ctx, req.CustomerID)
		if err != nil {
			for _, productID := range req.ProductIDs {
				results[productID] = domain.NewFailedResult(productID, quantity, err)
			}
			return results
		}
	}

	for _, productID := range req.ProductIDs {
		results[productID] = q.engine.Resolve(snapshot, profile, productID, quantity)
	}
	return results
}

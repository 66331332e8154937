package effective_price

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
)

// Request identifies one resolution: a product, an optional customer, and
// a quantity (defaulted to 1 when non-positive).
type Request struct {
	ProductID  string
	CustomerID string
	Quantity   int64
}

// Query resolves the effective price for one product/customer/quantity.
type Query struct {
	loader *loader.Loader
	source contracts.PricingSource
	engine *domain.Engine
}

// NewQuery creates a new effective price query.
func NewQuery(ldr *loader.Loader, source contracts.PricingSource, engine *domain.Engine) *Query {
	return &Query{
		loader: ldr,
		source: source,
		engine: engine,
	}
}

// Execute runs the full resolution pipeline. It never returns an error:
// infrastructure failures are captured into the result's Errors list and
// surfaced with a nil final price, per the engine's output contract.
func (q *Query) Execute(ctx context.Context, req *Request) *domain.PriceCalculationResult {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	snapshot, err := q.loader.Load(ctx)
	if err != nil {
		return domain.NewFailedResult(req.ProductID, quantity, err)
	}

	var profile *domain.CustomerPricingProfile
	if req.CustomerID != "" {
		profile, err = q.source.FetchCustomerPricingProfile(ctx, req.CustomerID)
		if err != nil {
			return domain.NewFailedResult(req.ProductID, quantity, err)
		}
	}

	return q.engine.Resolve(snapshot, profile, req.ProductID, quantity)
}

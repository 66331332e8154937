package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// PricingSource is the external data-access collaborator the engine reads
// its configuration from. Implementations must not cache; caching policy
// belongs to the loader.
type PricingSource interface {
	// FetchGlobalPricingSettings retrieves the global settings, including
	// volume-discount rules and time promotions.
	FetchGlobalPricingSettings(ctx context.Context) (*domain.GlobalPricingSettings, error)

	// FetchPriceLevels retrieves all configured price levels.
	FetchPriceLevels(ctx context.Context) ([]*domain.PriceLevel, error)

	// FetchProductPriceMatrix retrieves all explicit (product, level) prices.
	FetchProductPriceMatrix(ctx context.Context) ([]domain.ProductPriceEntry, error)

	// FetchCustomerPricingProfile retrieves one customer's pricing profile
	// including its custom rules. Returns (nil, nil) when the customer has
	// no profile.
	FetchCustomerPricingProfile(ctx context.Context, customerID string) (*domain.CustomerPricingProfile, error)
}

// LevelPrice is one row of the per-product level listing: the explicit or
// derived price of a product at one active level.
type LevelPrice struct {
	LevelID   string
	LevelName string
	// Price is nil when the level has no resolvable price for the product.
	Price *domain.Money
}

package domain

import "time"

// CustomerPricingProfile carries the per-customer pricing configuration.
// The engine treats it as a read-only snapshot for the duration of one
// resolution call.
type CustomerPricingProfile struct {
	CustomerID           string
	DefaultPriceLevelID  string // empty means use the global default level
	ExtraMarkupPercent   float64
	ExtraDiscountPercent float64
	PriceFloor           *Money
	PriceCeiling         *Money
	AllowCustomRules     bool
	CustomRules          []CustomerCustomPriceRule
}

// CustomerCustomPriceRule is a customer-specific price override. Rules are
// evaluated in list order; the first applicable rule wins.
//
// Exactly one pricing mode is set: FixedPrice, or PercentOfLevelID together
// with PercentOfLevel.
type CustomerCustomPriceRule struct {
	ID        string
	ProductID string     // empty means the rule applies to all products
	ValidFrom *time.Time // nil means unbounded
	ValidTo   *time.Time // nil means unbounded

	FixedPrice       *Money
	PercentOfLevelID string
	PercentOfLevel   float64
}

// IsApplicable reports whether the rule covers the product at the given time.
func (r *CustomerCustomPriceRule) IsApplicable(productID string, now time.Time) bool {
	if r.ProductID != "" && r.ProductID != productID {
		return false
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && now.After(*r.ValidTo) {
		return false
	}
	return true
}

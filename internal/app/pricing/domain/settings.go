package domain

import "time"

// PrecedenceKind identifies one step of the configurable precedence order.
type PrecedenceKind string

const (
	// PrecedenceCustomRule tries the customer's custom price rules.
	PrecedenceCustomRule PrecedenceKind = "CUSTOM_RULE"
	// PrecedenceLevelExplicit tries a direct matrix lookup at the target level.
	PrecedenceLevelExplicit PrecedenceKind = "LEVEL_EXPLICIT"
	// PrecedenceLevelDerived derives the target level from its base level.
	PrecedenceLevelDerived PrecedenceKind = "LEVEL_DERIVED"
	// PrecedenceFallback marks a price produced by the fallback step.
	// It never appears in a configured order, only in results.
	PrecedenceFallback PrecedenceKind = "FALLBACK"
)

// DefaultPrecedenceOrder is used when settings carry no explicit order.
func DefaultPrecedenceOrder() []PrecedenceKind {
	return []PrecedenceKind{PrecedenceCustomRule, PrecedenceLevelExplicit, PrecedenceLevelDerived}
}

// RoundingMode selects the post-calculation normalization strategy.
type RoundingMode string

const (
	RoundingNearest RoundingMode = "ROUND"
	RoundingCeil    RoundingMode = "CEIL"
	RoundingFloor   RoundingMode = "FLOOR"
	RoundingNone    RoundingMode = "NONE"
)

// DiscountType distinguishes percentage discounts from fixed-amount discounts.
type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// GlobalPricingSettings is the admin-owned configuration for the resolution
// engine. The engine reads it as an immutable snapshot and never mutates it.
type GlobalPricingSettings struct {
	PricePrecedenceOrder       []PrecedenceKind
	DefaultPriceLevelID        string
	AllowFallbackToOtherLevels bool
	FallbackLevelID            string
	AllowNegativeDiscounts     bool
	MinPriceFloor              *Money
	MaxPriceCeiling            *Money
	RoundingMode               RoundingMode
	RoundingDecimals           int
	VolumeDiscountsEnabled     bool
	VolumeDiscountRules        []VolumeDiscountRule
	TimePromotionsEnabled      bool
	TimePromotions             []TimePromotion
}

// PrecedenceOrder returns the configured order, or the default when none is set.
func (s *GlobalPricingSettings) PrecedenceOrder() []PrecedenceKind {
	if len(s.PricePrecedenceOrder) == 0 {
		return DefaultPrecedenceOrder()
	}
	return s.PricePrecedenceOrder
}

// VolumeDiscountRule is a quantity-triggered discount. Rules are scanned in
// list order and at most one applies per calculation.
type VolumeDiscountRule struct {
	ID           string
	MinQty       int64
	MaxQty       *int64 // nil means unbounded
	DiscountType DiscountType
	Value        float64
	AppliesToAll bool
	ProductIDs   []string
	IsActive     bool
}

// MatchesQuantity reports whether the quantity falls inside the rule's range.
func (r *VolumeDiscountRule) MatchesQuantity(quantity int64) bool {
	if quantity < r.MinQty {
		return false
	}
	return r.MaxQty == nil || quantity <= *r.MaxQty
}

// AppliesToProduct reports whether the rule covers the given product.
func (r *VolumeDiscountRule) AppliesToProduct(productID string) bool {
	if r.AppliesToAll {
		return true
	}
	for _, id := range r.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// TimePromotion is a date-windowed discount, optionally restricted to
// specific products and price levels. At most one applies per calculation.
type TimePromotion struct {
	ID           string
	Name         string
	StartsAt     time.Time
	EndsAt       time.Time
	DiscountType DiscountType
	Value        float64
	AppliesToAll bool
	ProductIDs   []string
	LevelIDs     []string // empty means any level
	IsActive     bool
}

// IsRunningAt reports whether t falls inside [StartsAt, EndsAt], inclusive
// on both ends.
func (p *TimePromotion) IsRunningAt(t time.Time) bool {
	return !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}

// AppliesToProduct reports whether the promotion covers the given product.
func (p *TimePromotion) AppliesToProduct(productID string) bool {
	if p.AppliesToAll {
		return true
	}
	for _, id := range p.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// AppliesToLevel reports whether the promotion covers the price level that
// supplied the base price. An empty LevelIDs list means no restriction.
func (p *TimePromotion) AppliesToLevel(levelID string) bool {
	if len(p.LevelIDs) == 0 {
		return true
	}
	for _, id := range p.LevelIDs {
		if id == levelID {
			return true
		}
	}
	return false
}

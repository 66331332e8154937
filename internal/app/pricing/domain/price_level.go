package domain

// AdjustmentType distinguishes how a derived level adjusts its base level's price.
type AdjustmentType string

const (
	// AdjustmentPercent scales the base price: base * (1 + value/100).
	AdjustmentPercent AdjustmentType = "PERCENT"
	// AdjustmentFixed shifts the base price: base + value.
	AdjustmentFixed AdjustmentType = "FIXED"
)

// PriceLevel is a named pricing tier. A base level holds direct per-product
// prices in the matrix; a derived level computes its price from another
// level plus an adjustment.
//
// A derived level's BaseLevelID chain is admin-configured and may contain a
// cycle through misconfiguration; the resolver detects that at resolution
// time rather than assuming it absent.
type PriceLevel struct {
	ID          string
	Name        string
	IsBaseLevel bool
	SortOrder   int64
	IsActive    bool

	// Derivation fields, only meaningful when IsBaseLevel is false.
	BaseLevelID     string
	AdjustmentType  AdjustmentType
	AdjustmentValue float64
}

// AdjustedPrice applies this level's adjustment to a base level price.
func (l *PriceLevel) AdjustedPrice(basePrice *Money) *Money {
	if l.AdjustmentType == AdjustmentFixed {
		return basePrice.Add(NewMoneyFromFloat(l.AdjustmentValue))
	}
	return basePrice.ApplyPercent(l.AdjustmentValue)
}

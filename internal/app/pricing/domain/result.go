package domain

import "fmt"

// AppliedAdjustment records the customer markup/discount reconciliation that
// was applied to the base price.
type AppliedAdjustment struct {
	MarkupPercent   float64
	DiscountPercent float64 // effective discount after the negative-discount clamp
}

// AppliedVolumeDiscount records the single volume-discount rule that matched.
type AppliedVolumeDiscount struct {
	RuleID       string
	DiscountType DiscountType
	Value        float64
}

// AppliedPromotion records the single time promotion that matched.
type AppliedPromotion struct {
	PromotionID  string
	Name         string
	DiscountType DiscountType
	Value        float64
}

// PriceCalculationResult is the sole output contract of a resolution. It is
// produced even on total failure, with a nil FinalPrice and a trace entry
// explaining why.
type PriceCalculationResult struct {
	ProductID string
	Quantity  int64

	// FinalPrice is nil when no price could be resolved.
	FinalPrice *Money
	// BasePrice is the price before the adjustment pipeline ran.
	BasePrice *Money

	// Source is the precedence kind that supplied the base price,
	// or PrecedenceFallback when the fallback step produced it.
	Source    PrecedenceKind
	LevelID   string
	LevelName string

	RoundingApplied bool

	Adjustment     *AppliedAdjustment
	VolumeDiscount *AppliedVolumeDiscount
	Promotion      *AppliedPromotion

	// Trace is the ordered, human-readable log of every decision made during
	// this resolution. It lets an admin replay the calculation without
	// re-running the engine.
	Trace []string

	// Errors holds infrastructure failures (data fetch errors) captured at
	// the call boundary. Resolution misses are not errors.
	Errors []string
}

// newResult creates an empty result for one resolution call.
func newResult(productID string, quantity int64) *PriceCalculationResult {
	return &PriceCalculationResult{
		ProductID: productID,
		Quantity:  quantity,
	}
}

// NewFailedResult builds a result that carries only an infrastructure error.
// Used at the public API boundary when the underlying data fetch failed.
func NewFailedResult(productID string, quantity int64, err error) *PriceCalculationResult {
	r := newResult(productID, quantity)
	r.Errors = append(r.Errors, err.Error())
	r.trace("resolution aborted: %v", err)
	return r
}

// Resolved reports whether a final price was produced.
func (r *PriceCalculationResult) Resolved() bool {
	return r.FinalPrice != nil
}

// trace appends a formatted entry to the calculation trace.
func (r *PriceCalculationResult) trace(format string, args ...interface{}) {
	r.Trace = append(r.Trace, fmt.Sprintf(format, args...))
}

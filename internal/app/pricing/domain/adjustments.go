package domain

import "time"

// applyAdjustments runs the fixed-order adjustment pipeline over
// result.FinalPrice. The order is part of the engine's contract and must
// not be changed:
//
//  1. customer markup/discount reconciliation
//  2. customer floor/ceiling clamps
//  3. global floor/ceiling clamps (dominant over the customer bounds)
//  4. at most one volume-discount rule
//  5. at most one time promotion
//  6. rounding
//  7. non-negativity clamp
func (e *Engine) applyAdjustments(snap *PricingSnapshot, profile *CustomerPricingProfile, productID string, quantity int64, now time.Time, result *PriceCalculationResult) {
	settings := snap.Settings

	e.applyCustomerAdjustment(settings, profile, result)

	if profile != nil {
		e.clamp(result, profile.PriceFloor, profile.PriceCeiling, "customer")
	}
	e.clamp(result, settings.MinPriceFloor, settings.MaxPriceCeiling, "global")

	e.applyVolumeDiscount(settings, productID, quantity, result)
	e.applyPromotion(settings, productID, now, result)
	e.applyRounding(settings, result)

	if result.FinalPrice.IsNegative() {
		result.trace("negative price %s clamped to 0", result.FinalPrice)
		result.FinalPrice = NewMoneyFromFloat(0)
	}
}

// applyCustomerAdjustment reconciles the profile's extra markup and
// discount. Unless negative discounts are explicitly permitted, the
// effective discount is capped at the markup so the net adjustment can
// never go below zero.
func (e *Engine) applyCustomerAdjustment(settings *GlobalPricingSettings, profile *CustomerPricingProfile, result *PriceCalculationResult) {
	if profile == nil {
		return
	}

	markup := profile.ExtraMarkupPercent
	discount := profile.ExtraDiscountPercent
	if markup == 0 && discount == 0 {
		return
	}

	effectiveDiscount := discount
	if !settings.AllowNegativeDiscounts && effectiveDiscount > markup {
		effectiveDiscount = markup
		result.trace("discount %.2f%% capped at markup %.2f%% (negative discounts disabled)", discount, markup)
	}

	adjustment := markup - effectiveDiscount
	result.Adjustment = &AppliedAdjustment{
		MarkupPercent:   markup,
		DiscountPercent: effectiveDiscount,
	}
	if adjustment == 0 {
		return
	}

	before := result.FinalPrice
	result.FinalPrice = before.ApplyPercent(adjustment)
	result.trace("customer adjustment %+.2f%% (markup %.2f%%, discount %.2f%%): %s -> %s",
		adjustment, markup, effectiveDiscount, before, result.FinalPrice)
}

// clamp bounds the price to an optional floor/ceiling pair.
func (e *Engine) clamp(result *PriceCalculationResult, floor, ceiling *Money, scope string) {
	if floor != nil && result.FinalPrice.LessThan(floor) {
		result.trace("%s floor applied: %s -> %s", scope, result.FinalPrice, floor)
		result.FinalPrice = floor.Copy()
	}
	if ceiling != nil && result.FinalPrice.GreaterThan(ceiling) {
		result.trace("%s ceiling applied: %s -> %s", scope, result.FinalPrice, ceiling)
		result.FinalPrice = ceiling.Copy()
	}
}

// applyVolumeDiscount scans active rules in list order and applies the
// first one matching the quantity and product, then stops. At most one
// volume discount ever applies.
func (e *Engine) applyVolumeDiscount(settings *GlobalPricingSettings, productID string, quantity int64, result *PriceCalculationResult) {
	if !settings.VolumeDiscountsEnabled || len(settings.VolumeDiscountRules) == 0 {
		return
	}

	for i := range settings.VolumeDiscountRules {
		rule := &settings.VolumeDiscountRules[i]
		if !rule.IsActive || !rule.MatchesQuantity(quantity) || !rule.AppliesToProduct(productID) {
			continue
		}

		before := result.FinalPrice
		if rule.DiscountType == DiscountFixed {
			result.FinalPrice = before.Subtract(NewMoneyFromFloat(rule.Value))
		} else {
			result.FinalPrice = before.Subtract(before.PercentOf(rule.Value))
		}
		result.VolumeDiscount = &AppliedVolumeDiscount{
			RuleID:       rule.ID,
			DiscountType: rule.DiscountType,
			Value:        rule.Value,
		}
		result.trace("volume discount %q applied for qty %d (%s %.2f): %s -> %s",
			rule.ID, quantity, rule.DiscountType, rule.Value, before, result.FinalPrice)
		return
	}
}

// applyPromotion scans active promotions in list order and applies the
// first one whose window contains now, whose product applicability matches,
// and whose level restriction (if any) includes the level that supplied the
// base price. At most one promotion ever applies.
func (e *Engine) applyPromotion(settings *GlobalPricingSettings, productID string, now time.Time, result *PriceCalculationResult) {
	if !settings.TimePromotionsEnabled || len(settings.TimePromotions) == 0 {
		return
	}

	for i := range settings.TimePromotions {
		promo := &settings.TimePromotions[i]
		if !promo.IsActive || !promo.IsRunningAt(now) || !promo.AppliesToProduct(productID) || !promo.AppliesToLevel(result.LevelID) {
			continue
		}

		before := result.FinalPrice
		if promo.DiscountType == DiscountFixed {
			result.FinalPrice = before.Subtract(NewMoneyFromFloat(promo.Value))
		} else {
			result.FinalPrice = before.Subtract(before.PercentOf(promo.Value))
		}
		result.Promotion = &AppliedPromotion{
			PromotionID:  promo.ID,
			Name:         promo.Name,
			DiscountType: promo.DiscountType,
			Value:        promo.Value,
		}
		result.trace("promotion %q applied (%s %.2f): %s -> %s",
			promo.Name, promo.DiscountType, promo.Value, before, result.FinalPrice)
		return
	}
}

// applyRounding normalizes the price per the configured rounding mode and
// records whether the value actually changed.
func (e *Engine) applyRounding(settings *GlobalPricingSettings, result *PriceCalculationResult) {
	if settings.RoundingMode == "" || settings.RoundingMode == RoundingNone {
		return
	}

	rounded, changed := result.FinalPrice.Round(settings.RoundingDecimals, settings.RoundingMode)
	result.RoundingApplied = changed
	if changed {
		result.trace("rounding %s at %d decimals: %s -> %s",
			settings.RoundingMode, settings.RoundingDecimals, result.FinalPrice, rounded)
	}
	result.FinalPrice = rounded
}

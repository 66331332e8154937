package domain

import (
	"time"

	"github.com/light-bringer/pricing-service/internal/pkg/clock"
)

// Engine is the price resolution engine. It walks the admin-configured
// precedence order to find a base price, then runs the adjustment pipeline
// over it. Every decision is appended to the result's trace so a resolution
// can be replayed by a human auditor.
//
// The engine is a pure computation over an immutable PricingSnapshot and an
// optional customer profile; it performs no I/O and holds no mutable state,
// so one instance is safe for concurrent use.
type Engine struct {
	levels *LevelResolver
	rules  *CustomRuleEvaluator
	clock  clock.Clock
}

// NewEngine creates a resolution engine using the given clock for rule
// windows and promotions.
func NewEngine(clk clock.Clock) *Engine {
	levels := NewLevelResolver()
	return &Engine{
		levels: levels,
		rules:  NewCustomRuleEvaluator(levels),
		clock:  clk,
	}
}

// Levels exposes the engine's level resolver for callers that need raw
// per-level prices (the level-matrix listing).
func (e *Engine) Levels() *LevelResolver {
	return e.levels
}

// Resolve computes the price to charge for one product, customer, and
// quantity. profile may be nil for anonymous/customer-less resolution.
// A nil FinalPrice on the result is a normal outcome, not an error.
func (e *Engine) Resolve(snap *PricingSnapshot, profile *CustomerPricingProfile, productID string, quantity int64) *PriceCalculationResult {
	if quantity <= 0 {
		quantity = 1
	}

	result := newResult(productID, quantity)
	now := e.clock.Now()
	settings := snap.Settings

	// Target level: customer's default level, else the global default.
	targetLevelID := settings.DefaultPriceLevelID
	if profile != nil && profile.DefaultPriceLevelID != "" {
		targetLevelID = profile.DefaultPriceLevelID
	}
	targetLevel := snap.Level(targetLevelID)
	if targetLevel != nil {
		result.LevelID = targetLevel.ID
		result.LevelName = targetLevel.Name
	}

	for _, kind := range settings.PrecedenceOrder() {
		if result.BasePrice != nil {
			break
		}

		switch kind {
		case PrecedenceCustomRule:
			e.tryCustomRules(snap, profile, productID, now, result)

		case PrecedenceLevelExplicit:
			if targetLevel == nil || !targetLevel.IsActive {
				continue
			}
			if price := snap.ExplicitPrice(productID, targetLevel.ID); price != nil {
				result.BasePrice = price.Copy()
				result.Source = PrecedenceLevelExplicit
				result.LevelID = targetLevel.ID
				result.LevelName = targetLevel.Name
				result.trace("explicit price %s found at level %q", price, targetLevel.Name)
			}

		case PrecedenceLevelDerived:
			// Only meaningful when the target level is itself derived.
			if targetLevel == nil || targetLevel.IsBaseLevel {
				continue
			}
			if price := e.levels.DerivedPrice(snap, productID, targetLevel); price != nil {
				result.BasePrice = price
				result.Source = PrecedenceLevelDerived
				result.LevelID = targetLevel.ID
				result.LevelName = targetLevel.Name
				result.trace("derived price %s computed at level %q from base level %q", price, targetLevel.Name, targetLevel.BaseLevelID)
			}
		}
	}

	if result.BasePrice == nil && settings.AllowFallbackToOtherLevels {
		e.tryFallback(snap, targetLevelID, productID, result)
	}

	if result.BasePrice == nil {
		result.trace("no price found for product %q", productID)
		return result
	}

	result.FinalPrice = result.BasePrice.Copy()
	e.applyAdjustments(snap, profile, productID, quantity, now, result)
	return result
}

// tryCustomRules walks the profile's rules in list order; the first rule
// that yields a price wins.
func (e *Engine) tryCustomRules(snap *PricingSnapshot, profile *CustomerPricingProfile, productID string, now time.Time, result *PriceCalculationResult) {
	if profile == nil || !profile.AllowCustomRules || len(profile.CustomRules) == 0 {
		return
	}

	for i := range profile.CustomRules {
		rule := &profile.CustomRules[i]
		price := e.rules.Apply(snap, rule, productID, now)
		if price == nil {
			continue
		}

		result.BasePrice = price
		result.Source = PrecedenceCustomRule
		if rule.PercentOfLevelID != "" {
			if ref := snap.Level(rule.PercentOfLevelID); ref != nil {
				result.LevelID = ref.ID
				result.LevelName = ref.Name
			}
			result.trace("custom rule %q matched: %.2f%% of level %q = %s", rule.ID, rule.PercentOfLevel, rule.PercentOfLevelID, price)
		} else {
			result.trace("custom rule %q matched: fixed price %s", rule.ID, price)
		}
		return
	}
}

// tryFallback resolves the price at the configured fallback level, or the
// first active base level, but only when that level differs from the
// already-tried target level.
func (e *Engine) tryFallback(snap *PricingSnapshot, targetLevelID, productID string, result *PriceCalculationResult) {
	fallbackID := snap.Settings.FallbackLevelID
	if fallbackID == "" {
		if base := snap.FirstActiveBaseLevel(); base != nil {
			fallbackID = base.ID
		}
	}
	if fallbackID == "" || fallbackID == targetLevelID {
		return
	}

	price := e.levels.PriceForLevel(snap, productID, fallbackID)
	if price == nil {
		return
	}

	result.BasePrice = price
	result.Source = PrecedenceFallback
	if lvl := snap.Level(fallbackID); lvl != nil {
		result.LevelID = lvl.ID
		result.LevelName = lvl.Name
		result.trace("fallback price %s found at level %q", price, lvl.Name)
	}
}

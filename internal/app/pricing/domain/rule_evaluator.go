package domain

import "time"

// CustomRuleEvaluator computes prices from customer-specific custom rules.
// A rule that cannot produce a price yields nil, not an error; evaluation
// simply continues with the next rule or precedence step.
type CustomRuleEvaluator struct {
	levels *LevelResolver
}

// NewCustomRuleEvaluator creates a new CustomRuleEvaluator.
func NewCustomRuleEvaluator(levels *LevelResolver) *CustomRuleEvaluator {
	return &CustomRuleEvaluator{levels: levels}
}

// Apply evaluates one rule against a product at the given time.
// Returns nil when the rule is scoped to another product, outside its
// validity window, or references a level whose price cannot be resolved.
func (ev *CustomRuleEvaluator) Apply(snap *PricingSnapshot, rule *CustomerCustomPriceRule, productID string, now time.Time) *Money {
	if !rule.IsApplicable(productID, now) {
		return nil
	}

	if rule.FixedPrice != nil {
		return rule.FixedPrice.Copy()
	}

	if rule.PercentOfLevelID != "" {
		levelPrice := ev.levels.PriceForLevel(snap, productID, rule.PercentOfLevelID)
		if levelPrice == nil {
			return nil
		}
		return levelPrice.PercentOf(rule.PercentOfLevel)
	}

	// Rule has no pricing mode set; treat as not applicable.
	return nil
}

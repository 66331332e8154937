package domain

// LevelResolver computes per-level prices: direct matrix lookups for base
// levels and recursive derivation for derived levels.
//
// The derivation walk is a directed, potentially cyclic reference graph over
// price levels. Cycle detection uses an explicit visited-id set threaded
// through the recursion, so a misconfigured chain returns nil instead of
// recursing unboundedly. There is no depth limit beyond that; admins are
// responsible for keeping chains finite.
type LevelResolver struct{}

// NewLevelResolver creates a new LevelResolver.
func NewLevelResolver() *LevelResolver {
	return &LevelResolver{}
}

// PriceForLevel resolves the price of a product at a level: explicit matrix
// lookup first, then derivation for non-base levels. Returns nil when the
// level is unknown or inactive, or when no price can be resolved.
func (lr *LevelResolver) PriceForLevel(snap *PricingSnapshot, productID, levelID string) *Money {
	level := snap.Level(levelID)
	if level == nil || !level.IsActive {
		return nil
	}
	if price := snap.ExplicitPrice(productID, levelID); price != nil {
		return price.Copy()
	}
	if level.IsBaseLevel {
		return nil
	}
	return lr.derive(snap, productID, level, map[string]bool{})
}

// DerivedPrice resolves a non-base level's price purely through derivation
// from its base chain. Returns nil for base levels, inactive levels, and
// unresolvable chains.
func (lr *LevelResolver) DerivedPrice(snap *PricingSnapshot, productID string, level *PriceLevel) *Money {
	if level == nil || !level.IsActive || level.IsBaseLevel {
		return nil
	}
	return lr.derive(snap, productID, level, map[string]bool{})
}

// derive computes a derived level's price. visited holds level ids already
// entered in the current call chain; revisiting one means the base-level
// graph has a cycle, and the resolution fails closed with nil.
func (lr *LevelResolver) derive(snap *PricingSnapshot, productID string, level *PriceLevel, visited map[string]bool) *Money {
	if visited[level.ID] {
		return nil
	}
	visited[level.ID] = true

	base := snap.Level(level.BaseLevelID)
	if base == nil || !base.IsActive {
		return nil
	}

	basePrice := snap.ExplicitPrice(productID, base.ID)
	if basePrice == nil && !base.IsBaseLevel {
		basePrice = lr.derive(snap, productID, base, visited)
	}
	if basePrice == nil {
		return nil
	}

	return level.AdjustedPrice(basePrice)
}

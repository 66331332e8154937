package domain

import "sort"

// ProductPriceEntry is one explicit price from the product price matrix.
// Entries are only meaningful for base levels.
type ProductPriceEntry struct {
	ProductID    string
	PriceLevelID string
	Price        *Money
}

// MatrixKey identifies one (product, level) cell of the price matrix.
type MatrixKey struct {
	ProductID string
	LevelID   string
}

// PricingSnapshot is the immutable view of the three configuration datasets
// the engine works against. Resolutions read it without synchronization; the
// loader replaces whole snapshots, never mutates one in place.
type PricingSnapshot struct {
	Settings *GlobalPricingSettings
	levels   map[string]*PriceLevel
	matrix   map[MatrixKey]*Money
	sorted   []*PriceLevel // all levels ordered by SortOrder
}

// NewPricingSnapshot indexes the raw datasets for lookup. Duplicate matrix
// entries for the same (product, level) pair are a data-integrity violation
// upstream; the last entry read wins.
func NewPricingSnapshot(settings *GlobalPricingSettings, levels []*PriceLevel, entries []ProductPriceEntry) *PricingSnapshot {
	if settings == nil {
		settings = &GlobalPricingSettings{}
	}

	byID := make(map[string]*PriceLevel, len(levels))
	sorted := make([]*PriceLevel, 0, len(levels))
	for _, lvl := range levels {
		if lvl == nil {
			continue
		}
		byID[lvl.ID] = lvl
		sorted = append(sorted, lvl)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	matrix := make(map[MatrixKey]*Money, len(entries))
	for _, e := range entries {
		if e.Price == nil {
			continue
		}
		matrix[MatrixKey{ProductID: e.ProductID, LevelID: e.PriceLevelID}] = e.Price
	}

	return &PricingSnapshot{
		Settings: settings,
		levels:   byID,
		matrix:   matrix,
		sorted:   sorted,
	}
}

// Level returns the price level with the given id, or nil when unknown.
func (s *PricingSnapshot) Level(levelID string) *PriceLevel {
	return s.levels[levelID]
}

// ExplicitPrice returns the matrix price for (productID, levelID), or nil
// when no entry exists.
func (s *PricingSnapshot) ExplicitPrice(productID, levelID string) *Money {
	return s.matrix[MatrixKey{ProductID: productID, LevelID: levelID}]
}

// ActiveLevels returns all active levels ordered by SortOrder.
func (s *PricingSnapshot) ActiveLevels() []*PriceLevel {
	active := make([]*PriceLevel, 0, len(s.sorted))
	for _, lvl := range s.sorted {
		if lvl.IsActive {
			active = append(active, lvl)
		}
	}
	return active
}

// FirstActiveBaseLevel returns the active base level with the lowest
// SortOrder, or nil when none exists. Used by the fallback step.
func (s *PricingSnapshot) FirstActiveBaseLevel() *PriceLevel {
	for _, lvl := range s.sorted {
		if lvl.IsActive && lvl.IsBaseLevel {
			return lvl
		}
	}
	return nil
}

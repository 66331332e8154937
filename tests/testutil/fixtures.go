package testutil

import (
	"context"
	"sync"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// FakePricingSource is an in-memory PricingSource for tests. Fetch counters
// record how many times each dataset was read, and the error fields let a
// test inject a failure per dataset.
type FakePricingSource struct {
	mu sync.Mutex

	Settings *domain.GlobalPricingSettings
	Levels   []*domain.PriceLevel
	Matrix   []domain.ProductPriceEntry
	Profiles map[string]*domain.CustomerPricingProfile

	SettingsErr error
	LevelsErr   error
	MatrixErr   error
	ProfileErr  error

	SettingsFetches int
	LevelsFetches   int
	MatrixFetches   int
	ProfileFetches  int
}

// NewFakePricingSource creates a fake source with the given configuration.
func NewFakePricingSource(settings *domain.GlobalPricingSettings, levels []*domain.PriceLevel, matrix []domain.ProductPriceEntry) *FakePricingSource {
	return &FakePricingSource{
		Settings: settings,
		Levels:   levels,
		Matrix:   matrix,
		Profiles: make(map[string]*domain.CustomerPricingProfile),
	}
}

func (f *FakePricingSource) FetchGlobalPricingSettings(_ context.Context) (*domain.GlobalPricingSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SettingsFetches++
	if f.SettingsErr != nil {
		return nil, f.SettingsErr
	}
	return f.Settings, nil
}

func (f *FakePricingSource) FetchPriceLevels(_ context.Context) ([]*domain.PriceLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LevelsFetches++
	if f.LevelsErr != nil {
		return nil, f.LevelsErr
	}
	return f.Levels, nil
}

func (f *FakePricingSource) FetchProductPriceMatrix(_ context.Context) ([]domain.ProductPriceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MatrixFetches++
	if f.MatrixErr != nil {
		return nil, f.MatrixErr
	}
	return f.Matrix, nil
}

func (f *FakePricingSource) FetchCustomerPricingProfile(_ context.Context, customerID string) (*domain.CustomerPricingProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ProfileFetches++
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	return f.Profiles[customerID], nil
}

// DefaultSettings returns settings with the standard precedence order,
// half-up rounding to two decimals, and no floors, ceilings, or discounts.
func DefaultSettings(defaultLevelID string) *domain.GlobalPricingSettings {
	return &domain.GlobalPricingSettings{
		DefaultPriceLevelID: defaultLevelID,
		RoundingMode:        domain.RoundingNearest,
		RoundingDecimals:    2,
	}
}

// BaseLevel creates an active base level.
func BaseLevel(id, name string, sortOrder int64) *domain.PriceLevel {
	return &domain.PriceLevel{
		ID:          id,
		Name:        name,
		IsBaseLevel: true,
		SortOrder:   sortOrder,
		IsActive:    true,
	}
}

// DerivedLevel creates an active non-base level adjusted from baseLevelID.
func DerivedLevel(id, name string, sortOrder int64, baseLevelID string, adjType domain.AdjustmentType, adjValue float64) *domain.PriceLevel {
	return &domain.PriceLevel{
		ID:              id,
		Name:            name,
		SortOrder:       sortOrder,
		IsActive:        true,
		BaseLevelID:     baseLevelID,
		AdjustmentType:  adjType,
		AdjustmentValue: adjValue,
	}
}

// MatrixEntry creates one explicit price-matrix cell.
func MatrixEntry(productID, levelID string, price float64) domain.ProductPriceEntry {
	return domain.ProductPriceEntry{
		ProductID:    productID,
		PriceLevelID: levelID,
		Price:        domain.NewMoneyFromFloat(price),
	}
}

// Snapshot builds a snapshot directly, bypassing the loader.
func Snapshot(settings *domain.GlobalPricingSettings, levels []*domain.PriceLevel, entries []domain.ProductPriceEntry) *domain.PricingSnapshot {
	return domain.NewPricingSnapshot(settings, levels, entries)
}

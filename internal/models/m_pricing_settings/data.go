package m_pricing_settings

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the singleton global pricing settings row.
type Data struct {
	SettingsID             string             `spanner:"settings_id"`
	PrecedenceOrder        []string           `spanner:"precedence_order"`
	DefaultPriceLevelID    spanner.NullString `spanner:"default_price_level_id"`
	AllowFallback          bool               `spanner:"allow_fallback"`
	FallbackLevelID        spanner.NullString `spanner:"fallback_level_id"`
	AllowNegativeDiscounts bool               `spanner:"allow_negative_discounts"`
	MinFloorNumerator      spanner.NullInt64  `spanner:"min_floor_numerator"`
	MinFloorDenominator    spanner.NullInt64  `spanner:"min_floor_denominator"`
	MaxCeilingNumerator    spanner.NullInt64  `spanner:"max_ceiling_numerator"`
	MaxCeilingDenominator  spanner.NullInt64  `spanner:"max_ceiling_denominator"`
	RoundingMode           string             `spanner:"rounding_mode"`
	RoundingDecimals       int64              `spanner:"rounding_decimals"`
	VolumeDiscountsEnabled bool               `spanner:"volume_discounts_enabled"`
	TimePromotionsEnabled  bool               `spanner:"time_promotions_enabled"`
	UpdatedAt              time.Time          `spanner:"updated_at"`
}

// Model provides type-safe database operations for pricing settings.
type Model struct{}

// NewModel creates a new pricing settings model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting the settings row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading pricing settings.
func (m *Model) ReadColumns() []string {
	return []string{
		SettingsID,
		PrecedenceOrder,
		DefaultPriceLevelID,
		AllowFallback,
		FallbackLevelID,
		AllowNegativeDiscounts,
		MinFloorNumerator,
		MinFloorDenominator,
		MaxCeilingNumerator,
		MaxCeilingDenominator,
		RoundingMode,
		RoundingDecimals,
		VolumeDiscountsEnabled,
		TimePromotionsEnabled,
		UpdatedAt,
	}
}

package m_customer_profile

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one customer pricing profile row. The customer's custom
// rules live in their own table keyed by customer id.
type Data struct {
	CustomerID              string             `spanner:"customer_id"`
	DefaultPriceLevelID     spanner.NullString `spanner:"default_price_level_id"`
	ExtraMarkupPercent      float64            `spanner:"extra_markup_percent"`
	ExtraDiscountPercent    float64            `spanner:"extra_discount_percent"`
	PriceFloorNumerator     spanner.NullInt64  `spanner:"price_floor_numerator"`
	PriceFloorDenominator   spanner.NullInt64  `spanner:"price_floor_denominator"`
	PriceCeilingNumerator   spanner.NullInt64  `spanner:"price_ceiling_numerator"`
	PriceCeilingDenominator spanner.NullInt64  `spanner:"price_ceiling_denominator"`
	AllowCustomRules        bool               `spanner:"allow_custom_rules"`
	UpdatedAt               time.Time          `spanner:"updated_at"`
}

// Model provides type-safe database operations for customer profiles.
type Model struct{}

// NewModel creates a new customer profile model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a customer profile.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading customer profiles.
func (m *Model) ReadColumns() []string {
	return []string{
		CustomerID,
		DefaultPriceLevelID,
		ExtraMarkupPercent,
		ExtraDiscountPercent,
		PriceFloorNumerator,
		PriceFloorDenominator,
		PriceCeilingNumerator,
		PriceCeilingDenominator,
		AllowCustomRules,
		UpdatedAt,
	}
}

package m_price_rule

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one customer custom price rule row. Position preserves
// the admin-configured list order, which carries precedence meaning.
type Data struct {
	RuleID                string              `spanner:"rule_id"`
	CustomerID            string              `spanner:"customer_id"`
	Position              int64               `spanner:"position"`
	ProductID             spanner.NullString  `spanner:"product_id"`
	ValidFrom             spanner.NullTime    `spanner:"valid_from"`
	ValidTo               spanner.NullTime    `spanner:"valid_to"`
	FixedPriceNumerator   spanner.NullInt64   `spanner:"fixed_price_numerator"`
	FixedPriceDenominator spanner.NullInt64   `spanner:"fixed_price_denominator"`
	PercentOfLevelID      spanner.NullString  `spanner:"percent_of_level_id"`
	PercentOfLevel        spanner.NullFloat64 `spanner:"percent_of_level"`
	CreatedAt             time.Time           `spanner:"created_at"`
}

// Model provides type-safe database operations for customer price rules.
type Model struct{}

// NewModel creates a new price rule model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a rule.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading rules.
func (m *Model) ReadColumns() []string {
	return []string{
		RuleID,
		CustomerID,
		Position,
		ProductID,
		ValidFrom,
		ValidTo,
		FixedPriceNumerator,
		FixedPriceDenominator,
		PercentOfLevelID,
		PercentOfLevel,
		CreatedAt,
	}
}

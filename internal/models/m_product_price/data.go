package m_product_price

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one explicit (product, level) price matrix entry.
type Data struct {
	ProductID        string    `spanner:"product_id"`
	LevelID          string    `spanner:"level_id"`
	PriceNumerator   int64     `spanner:"price_numerator"`
	PriceDenominator int64     `spanner:"price_denominator"`
	UpdatedAt        time.Time `spanner:"updated_at"`
}

// Model provides type-safe database operations for the price matrix.
type Model struct{}

// NewModel creates a new product price model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a matrix entry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading matrix entries.
func (m *Model) ReadColumns() []string {
	return []string{
		ProductID,
		LevelID,
		PriceNumerator,
		PriceDenominator,
		UpdatedAt,
	}
}

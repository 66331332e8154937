package m_price_level

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one price level row.
type Data struct {
	LevelID         string              `spanner:"level_id"`
	Name            string              `spanner:"name"`
	IsBaseLevel     bool                `spanner:"is_base_level"`
	SortOrder       int64               `spanner:"sort_order"`
	IsActive        bool                `spanner:"is_active"`
	BaseLevelID     spanner.NullString  `spanner:"base_level_id"`
	AdjustmentType  spanner.NullString  `spanner:"adjustment_type"`
	AdjustmentValue spanner.NullFloat64 `spanner:"adjustment_value"`
	UpdatedAt       time.Time           `spanner:"updated_at"`
}

// Model provides type-safe database operations for price levels.
type Model struct{}

// NewModel creates a new price level model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a price level.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading price levels.
func (m *Model) ReadColumns() []string {
	return []string{
		LevelID,
		Name,
		IsBaseLevel,
		SortOrder,
		IsActive,
		BaseLevelID,
		AdjustmentType,
		AdjustmentValue,
		UpdatedAt,
	}
}

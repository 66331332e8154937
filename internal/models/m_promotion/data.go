package m_promotion

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one time promotion row.
type Data struct {
	PromotionID   string    `spanner:"promotion_id"`
	Position      int64     `spanner:"position"`
	Name          string    `spanner:"name"`
	StartsAt      time.Time `spanner:"starts_at"`
	EndsAt        time.Time `spanner:"ends_at"`
	DiscountType  string    `spanner:"discount_type"`
	DiscountValue float64   `spanner:"discount_value"`
	AppliesToAll  bool      `spanner:"applies_to_all"`
	ProductIDs    []string  `spanner:"product_ids"`
	LevelIDs      []string  `spanner:"level_ids"`
	IsActive      bool      `spanner:"is_active"`
	UpdatedAt     time.Time `spanner:"updated_at"`
}

// Model provides type-safe database operations for time promotions.
type Model struct{}

// NewModel creates a new promotion model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for upserting a promotion.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading promotions.
func (m *Model) ReadColumns() []string {
	return []string{
		PromotionID,
		Position,
		Name,
		StartsAt,
		EndsAt,
		DiscountType,
		DiscountValue,
		AppliesToAll,
		ProductIDs,
		LevelIDs,
		IsActive,
		UpdatedAt,
	}
}

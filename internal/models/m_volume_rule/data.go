package m_volume_rule

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one volume discount rule row. Position preserves the
// admin-configured list order; the first matching rule wins.
type Data struct {
	RuleID        string            `spanner:"rule_id"`
	Position      int64             `spanner:"position"`
	MinQty        int64             `spanner:"min_qty"`
	MaxQty        spanner.NullInt64 `spanner:"max_qty"`
	DiscountType  string            `spanner:"discount_type"`
	DiscountValue float64           `spanner:"discount_value"`
	AppliesToAll  bool              `spanner:"applies_to_all"`
	ProductIDs    []string          `spanner:"product_ids"`
	IsActive      bool              `spanner:"is_active"`
	UpdatedAt     time.Time         `spanner:"updated_at"`
}

// Model provides type-safe database operations for volume discount rules.
type Model struct{}

// NewModel creates a new volume rule model.
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
		Position,
		MinQty,
		MaxQty,
		DiscountType,
		DiscountValue,
		AppliesToAll,
		ProductIDs,
		IsActive,
		UpdatedAt,
	}
}

package m_price_level

// Table name constant
const TableName = "price_levels"

// Field name constants for type-safe database access
const (
	LevelID         = "level_id"
	Name            = "name"
	IsBaseLevel     = "is_base_level"
	SortOrder       = "sort_order"
	IsActive        = "is_active"
	BaseLevelID     = "base_level_id"
	AdjustmentType  = "adjustment_type"
	AdjustmentValue = "adjustment_value"
	UpdatedAt       = "updated_at"
)

package m_volume_rule

// Table name constant
const TableName = "volume_discount_rules"

// Field name constants for type-safe database access
const (
	RuleID        = "rule_id"
	Position      = "position"
	MinQty        = "min_qty"
	MaxQty        = "max_qty"
	DiscountType  = "discount_type"
	DiscountValue = "discount_value"
	AppliesToAll  = "applies_to_all"
	ProductIDs    = "product_ids"
	IsActive      = "is_active"
	UpdatedAt     = "updated_at"
)

package m_promotion

// Table name constant
const TableName = "time_promotions"

// Field name constants for type-safe database access
const (
	PromotionID   = "promotion_id"
	Position      = "position"
	Name          = "name"
	StartsAt      = "starts_at"
	EndsAt        = "ends_at"
	DiscountType  = "discount_type"
	DiscountValue = "discount_value"
	AppliesToAll  = "applies_to_all"
	ProductIDs    = "product_ids"
	LevelIDs      = "level_ids"
	IsActive      = "is_active"
	UpdatedAt     = "updated_at"
)

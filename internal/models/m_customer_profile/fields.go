package m_customer_profile

// Table name constant
const TableName = "customer_pricing_profiles"

// Field name constants for type-safe database access
const (
	CustomerID              = "customer_id"
	DefaultPriceLevelID     = "default_price_level_id"
	ExtraMarkupPercent      = "extra_markup_percent"
	ExtraDiscountPercent    = "extra_discount_percent"
	PriceFloorNumerator     = "price_floor_numerator"
	PriceFloorDenominator   = "price_floor_denominator"
	PriceCeilingNumerator   = "price_ceiling_numerator"
	PriceCeilingDenominator = "price_ceiling_denominator"
	AllowCustomRules        = "allow_custom_rules"
	UpdatedAt               = "updated_at"
)

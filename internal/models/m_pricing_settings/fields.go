package m_pricing_settings

// Table name constant
const TableName = "pricing_settings"

// Field name constants for type-safe database access
const (
	SettingsID              = "settings_id"
	PrecedenceOrder         = "precedence_order"
	DefaultPriceLevelID     = "default_price_level_id"
	AllowFallback           = "allow_fallback"
	FallbackLevelID         = "fallback_level_id"
	AllowNegativeDiscounts  = "allow_negative_discounts"
	MinFloorNumerator       = "min_floor_numerator"
	MinFloorDenominator     = "min_floor_denominator"
	MaxCeilingNumerator     = "max_ceiling_numerator"
	MaxCeilingDenominator   = "max_ceiling_denominator"
	RoundingMode            = "rounding_mode"
	RoundingDecimals        = "rounding_decimals"
	VolumeDiscountsEnabled  = "volume_discounts_enabled"
	TimePromotionsEnabled   = "time_promotions_enabled"
	UpdatedAt               = "updated_at"
)

// GlobalSettingsID is the key of the singleton settings row.
const GlobalSettingsID = "global"

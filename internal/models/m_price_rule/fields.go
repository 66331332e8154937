package m_price_rule

// Table name constant
const TableName = "customer_price_rules"

// Field name constants for type-safe database access
const (
	RuleID                = "rule_id"
	CustomerID            = "customer_id"
	Position              = "position"
	ProductID             = "product_id"
	ValidFrom             = "valid_from"
	ValidTo               = "valid_to"
	FixedPriceNumerator   = "fixed_price_numerator"
	FixedPriceDenominator = "fixed_price_denominator"
	PercentOfLevelID      = "percent_of_level_id"
	PercentOfLevel        = "percent_of_level"
	CreatedAt             = "created_at"
)

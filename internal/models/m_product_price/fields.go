package m_product_price

// Table name constant
const TableName = "product_prices"

// Field name constants for type-safe database access
const (
	ProductID        = "product_id"
	LevelID          = "level_id"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	UpdatedAt        = "updated_at"
)

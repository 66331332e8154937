package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("price_levels").
		Select("level_id", "name", "sort_order").
		Build()

	assert.Equal(t, "SELECT level_id, name, sort_order FROM price_levels", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("price_levels").Build()

	assert.Equal(t, "SELECT * FROM price_levels", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("customer_price_rules").
		Select("rule_id", "position").
		Where(Eq("customer_id", "cust-1")).
		Build()

	assert.Equal(t, "SELECT rule_id, position FROM customer_price_rules WHERE customer_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "cust-1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("customer_price_rules").
		Select("rule_id").
		Where(Eq("customer_id", "cust-1")).
		Where(Eq("product_id", "prod-1")).
		Build()

	assert.Equal(t, "SELECT rule_id FROM customer_price_rules WHERE customer_id = @p0 AND product_id = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "cust-1",
		"p1": "prod-1",
	}, stmt.Params)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("price_levels").
		Select("level_id", "name").
		OrderBy("sort_order", Asc).
		Build()

	assert.Equal(t, "SELECT level_id, name FROM price_levels ORDER BY sort_order ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("time_promotions").
		Select("promotion_id", "name").
		OrderBy("starts_at", Desc).
		Build()

	assert.Equal(t, "SELECT promotion_id, name FROM time_promotions ORDER BY starts_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("product_prices").
		Select("product_id", "level_id").
		Limit(10).
		Build()

	assert.Equal(t, "SELECT product_id, level_id FROM product_prices LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("customer_price_rules").
		Select("rule_id", "customer_id", "position").
		Where(Eq("customer_id", "cust-42")).
		OrderBy("position", Asc).
		Limit(50).
		Build()

	expectedSQL := "SELECT rule_id, customer_id, position FROM customer_price_rules WHERE customer_id = @p0 ORDER BY position ASC LIMIT @limit"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "cust-42",
		"limit": int64(50),
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("price_levels").Select("level_id")

	stmt1 := base.Where(Eq("is_active", true)).Build()
	stmt2 := base.Where(Eq("is_base_level", true)).Build()

	assert.Contains(t, stmt1.SQL, "is_active = @p0")
	assert.NotContains(t, stmt1.SQL, "is_base_level")

	assert.Contains(t, stmt2.SQL, "is_base_level = @p0")
	assert.NotContains(t, stmt2.SQL, "is_active")
}

func TestCondition_Eq(t *testing.T) {
	cond := Eq("customer_id", "cust-1")
	sql, params := cond.SQL(0)

	assert.Equal(t, "customer_id = @p0", sql)
	assert.Equal(t, map[string]interface{}{
		"p0": "cust-1",
	}, params)
}

func TestCondition_EqWithDifferentParamIndex(t *testing.T) {
	cond := Eq("product_id", "prod-9")
	sql, params := cond.SQL(5)

	assert.Equal(t, "product_id = @p5", sql)
	assert.Equal(t, map[string]interface{}{
		"p5": "prod-9",
	}, params)
}

func TestBuilder_String(t *testing.T) {
	builder := From("price_levels").
		Select("level_id", "name").
		Where(Eq("is_active", true))

	str := builder.String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
	assert.Contains(t, str, "price_levels")
}

func TestBuilder_MultipleSelectCalls(t *testing.T) {
	stmt := From("price_levels").
		Select("level_id", "name").
		Select("sort_order", "is_active").
		Build()

	assert.Equal(t, "SELECT level_id, name, sort_order, is_active FROM price_levels", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

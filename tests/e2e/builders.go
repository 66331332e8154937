//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/models/m_customer_profile"
	"github.com/light-bringer/pricing-service/internal/models/m_price_level"
	"github.com/light-bringer/pricing-service/internal/models/m_price_rule"
	"github.com/light-bringer/pricing-service/internal/models/m_pricing_settings"
	"github.com/light-bringer/pricing-service/internal/models/m_product_price"
	"github.com/light-bringer/pricing-service/internal/models/m_volume_rule"
)

func apply(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err)
}

// seedBaseline writes the minimal configuration every scenario starts from:
// global settings, a retail and a wholesale base level, and one product
// priced at both.
func seedBaseline(t *testing.T, client *spanner.Client) {
	t.Helper()
	now := time.Now()

	settings := m_pricing_settings.NewModel()
	levels := m_price_level.NewModel()
	prices := m_product_price.NewModel()

	apply(t, client,
		settings.InsertMut(&m_pricing_settings.Data{
			SettingsID:          m_pricing_settings.GlobalSettingsID,
			PrecedenceOrder:     []string{"CUSTOM_RULE", "LEVEL_EXPLICIT", "LEVEL_DERIVED"},
			DefaultPriceLevelID: spanner.NullString{StringVal: "wholesale", Valid: true},
			RoundingMode:        "ROUND",
			RoundingDecimals:    2,
			UpdatedAt:           now,
		}),
		levels.InsertMut(&m_price_level.Data{
			LevelID: "retail", Name: "Retail", IsBaseLevel: true, SortOrder: 1, IsActive: true, UpdatedAt: now,
		}),
		levels.InsertMut(&m_price_level.Data{
			LevelID: "wholesale", Name: "Wholesale", IsBaseLevel: true, SortOrder: 2, IsActive: true, UpdatedAt: now,
		}),
		prices.InsertMut(&m_product_price.Data{
			ProductID: "oil-filter", LevelID: "retail",
			PriceNumerator: 1299, PriceDenominator: 100, UpdatedAt: now,
		}),
		prices.InsertMut(&m_product_price.Data{
			ProductID: "oil-filter", LevelID: "wholesale",
			PriceNumerator: 10000, PriceDenominator: 100, UpdatedAt: now,
		}),
	)
}

func seedPrice(t *testing.T, client *spanner.Client, productID, levelID string, cents int64) {
	t.Helper()

	model := m_product_price.NewModel()
	apply(t, client, model.InsertMut(&m_product_price.Data{
		ProductID: productID, LevelID: levelID,
		PriceNumerator: cents, PriceDenominator: 100,
		UpdatedAt: time.Now(),
	}))
}

func seedProfile(t *testing.T, client *spanner.Client, customerID string, markup, discount float64) {
	t.Helper()

	model := m_customer_profile.NewModel()
	apply(t, client, model.InsertMut(&m_customer_profile.Data{
		CustomerID:           customerID,
		ExtraMarkupPercent:   markup,
		ExtraDiscountPercent: discount,
		AllowCustomRules:     true,
		UpdatedAt:            time.Now(),
	}))
}

func seedFixedRule(t *testing.T, client *spanner.Client, customerID, ruleID, productID string, cents int64) {
	t.Helper()

	model := m_price_rule.NewModel()
	apply(t, client, model.InsertMut(&m_price_rule.Data{
		RuleID:                ruleID,
		CustomerID:            customerID,
		Position:              1,
		ProductID:             spanner.NullString{StringVal: productID, Valid: productID != ""},
		FixedPriceNumerator:   spanner.NullInt64{Int64: cents, Valid: true},
		FixedPriceDenominator: spanner.NullInt64{Int64: 100, Valid: true},
		CreatedAt:             time.Now(),
	}))
}

func seedVolumeRule(t *testing.T, client *spanner.Client, ruleID string, minQty int64, percent float64) {
	t.Helper()

	model := m_volume_rule.NewModel()
	apply(t, client, model.InsertMut(&m_volume_rule.Data{
		RuleID:        ruleID,
		Position:      1,
		MinQty:        minQty,
		DiscountType:  "PERCENT",
		DiscountValue: percent,
		AppliesToAll:  true,
		IsActive:      true,
		UpdatedAt:     time.Now(),
	}))
}

// Command seed writes a sample pricing configuration into Spanner for local
// development: two base levels, a derived level, a handful of matrix
// entries, one customer profile with custom rules, a volume-discount rule,
// and a time promotion. All rows go in as one atomic commit plan.
package main

import (
	"context"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/light-bringer/pricing-service/internal/models/m_customer_profile"
	"github.com/light-bringer/pricing-service/internal/models/m_price_level"
	"github.com/light-bringer/pricing-service/internal/models/m_price_rule"
	"github.com/light-bringer/pricing-service/internal/models/m_pricing_settings"
	"github.com/light-bringer/pricing-service/internal/models/m_product_price"
	"github.com/light-bringer/pricing-service/internal/models/m_promotion"
	"github.com/light-bringer/pricing-service/internal/models/m_volume_rule"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("tool", "seed").Logger()

	spannerDB := os.Getenv("SPANNER_DB")
	if spannerDB == "" {
		spannerDB = "projects/test-project/instances/dev-instance/databases/pricing-db"
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Spanner client")
	}
	defer client.Close()

	plan := buildSeedPlan()
	comm := committer.NewCommitter(client)
	if err := comm.Apply(ctx, plan); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply seed data")
	}

	logger.Info().Int("mutations", plan.Count()).Msg("seed data applied")
}

func buildSeedPlan() *committer.CommitPlan {
	now := time.Now().UTC()
	plan := committer.NewPlan()

	settingsModel := m_pricing_settings.NewModel()
	plan.Add(settingsModel.InsertMut(&m_pricing_settings.Data{
		SettingsID:             m_pricing_settings.GlobalSettingsID,
		PrecedenceOrder:        []string{"CUSTOM_RULE", "LEVEL_EXPLICIT", "LEVEL_DERIVED"},
		DefaultPriceLevelID:    spanner.NullString{StringVal: "retail", Valid: true},
		AllowFallback:          true,
		FallbackLevelID:        spanner.NullString{StringVal: "retail", Valid: true},
		AllowNegativeDiscounts: false,
		MinFloorNumerator:      spanner.NullInt64{Int64: 0, Valid: true},
		MinFloorDenominator:    spanner.NullInt64{Int64: 1, Valid: true},
		RoundingMode:           "ROUND",
		RoundingDecimals:       2,
		VolumeDiscountsEnabled: true,
		TimePromotionsEnabled:  true,
		UpdatedAt:              now,
	}))

	levelModel := m_price_level.NewModel()
	plan.Add(levelModel.InsertMut(&m_price_level.Data{
		LevelID:     "retail",
		Name:        "Retail",
		IsBaseLevel: true,
		SortOrder:   1,
		IsActive:    true,
		UpdatedAt:   now,
	}))
	plan.Add(levelModel.InsertMut(&m_price_level.Data{
		LevelID:     "wholesale",
		Name:        "Wholesale",
		IsBaseLevel: true,
		SortOrder:   2,
		IsActive:    true,
		UpdatedAt:   now,
	}))
	plan.Add(levelModel.InsertMut(&m_price_level.Data{
		LevelID:         "partner",
		Name:            "Partner",
		IsBaseLevel:     false,
		SortOrder:       3,
		IsActive:        true,
		BaseLevelID:     spanner.NullString{StringVal: "wholesale", Valid: true},
		AdjustmentType:  spanner.NullString{StringVal: "PERCENT", Valid: true},
		AdjustmentValue: spanner.NullFloat64{Float64: 5, Valid: true},
		UpdatedAt:       now,
	}))

	priceModel := m_product_price.NewModel()
	prices := []struct {
		productID string
		levelID   string
		cents     int64
	}{
		{"brake-pad-front", "retail", 4999},
		{"brake-pad-front", "wholesale", 3899},
		{"oil-filter", "retail", 1299},
		{"oil-filter", "wholesale", 949},
		{"spark-plug", "retail", 899},
	}
	for _, p := range prices {
		plan.Add(priceModel.InsertMut(&m_product_price.Data{
			ProductID:        p.productID,
			LevelID:          p.levelID,
			PriceNumerator:   p.cents,
			PriceDenominator: 100,
			UpdatedAt:        now,
		}))
	}

	profileModel := m_customer_profile.NewModel()
	plan.Add(profileModel.InsertMut(&m_customer_profile.Data{
		CustomerID:           "garage-mitte",
		DefaultPriceLevelID:  spanner.NullString{StringVal: "wholesale", Valid: true},
		ExtraMarkupPercent:   0,
		ExtraDiscountPercent: 3,
		AllowCustomRules:     true,
		UpdatedAt:            now,
	}))

	ruleModel := m_price_rule.NewModel()
	validTo := now.AddDate(0, 6, 0)
	plan.Add(ruleModel.InsertMut(&m_price_rule.Data{
		RuleID:                uuid.New().String(),
		CustomerID:            "garage-mitte",
		Position:              1,
		ProductID:             spanner.NullString{StringVal: "oil-filter", Valid: true},
		ValidTo:               spanner.NullTime{Time: validTo, Valid: true},
		FixedPriceNumerator:   spanner.NullInt64{Int64: 849, Valid: true},
		FixedPriceDenominator: spanner.NullInt64{Int64: 100, Valid: true},
		CreatedAt:             now,
	}))
	plan.Add(ruleModel.InsertMut(&m_price_rule.Data{
		RuleID:           uuid.New().String(),
		CustomerID:       "garage-mitte",
		Position:         2,
		PercentOfLevelID: spanner.NullString{StringVal: "wholesale", Valid: true},
		PercentOfLevel:   spanner.NullFloat64{Float64: 97, Valid: true},
		CreatedAt:        now,
	}))

	volumeModel := m_volume_rule.NewModel()
	plan.Add(volumeModel.InsertMut(&m_volume_rule.Data{
		RuleID:        uuid.New().String(),
		Position:      1,
		MinQty:        10,
		DiscountType:  "PERCENT",
		DiscountValue: 5,
		AppliesToAll:  true,
		IsActive:      true,
		UpdatedAt:     now,
	}))

	promoModel := m_promotion.NewModel()
	plan.Add(promoModel.InsertMut(&m_promotion.Data{
		PromotionID:   uuid.New().String(),
		Position:      1,
		Name:          "Spring maintenance",
		StartsAt:      now.AddDate(0, 0, -7),
		EndsAt:        now.AddDate(0, 1, 0),
		DiscountType:  "PERCENT",
		DiscountValue: 10,
		AppliesToAll:  false,
		ProductIDs:    []string{"oil-filter", "spark-plug"},
		IsActive:      true,
		UpdatedAt:     now,
	}))

	return plan
}

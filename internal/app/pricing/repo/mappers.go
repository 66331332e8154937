package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_customer_profile"
	"github.com/light-bringer/pricing-service/internal/models/m_price_level"
	"github.com/light-bringer/pricing-service/internal/models/m_price_rule"
	"github.com/light-bringer/pricing-service/internal/models/m_pricing_settings"
	"github.com/light-bringer/pricing-service/internal/models/m_promotion"
	"github.com/light-bringer/pricing-service/internal/models/m_volume_rule"
)

func settingsToDomain(data *m_pricing_settings.Data) *domain.GlobalPricingSettings {
	order := make([]domain.PrecedenceKind, 0, len(data.PrecedenceOrder))
	for _, kind := range data.PrecedenceOrder {
		order = append(order, domain.PrecedenceKind(kind))
	}

	return &domain.GlobalPricingSettings{
		PricePrecedenceOrder:       order,
		DefaultPriceLevelID:        data.DefaultPriceLevelID.StringVal,
		AllowFallbackToOtherLevels: data.AllowFallback,
		FallbackLevelID:            data.FallbackLevelID.StringVal,
		AllowNegativeDiscounts:     data.AllowNegativeDiscounts,
		MinPriceFloor:              nullMoney(data.MinFloorNumerator, data.MinFloorDenominator),
		MaxPriceCeiling:            nullMoney(data.MaxCeilingNumerator, data.MaxCeilingDenominator),
		RoundingMode:               domain.RoundingMode(data.RoundingMode),
		RoundingDecimals:           int(data.RoundingDecimals),
		VolumeDiscountsEnabled:     data.VolumeDiscountsEnabled,
		TimePromotionsEnabled:      data.TimePromotionsEnabled,
	}
}

func levelToDomain(data *m_price_level.Data) *domain.PriceLevel {
	return &domain.PriceLevel{
		ID:              data.LevelID,
		Name:            data.Name,
		IsBaseLevel:     data.IsBaseLevel,
		SortOrder:       data.SortOrder,
		IsActive:        data.IsActive,
		BaseLevelID:     data.BaseLevelID.StringVal,
		AdjustmentType:  domain.AdjustmentType(data.AdjustmentType.StringVal),
		AdjustmentValue: data.AdjustmentValue.Float64,
	}
}

func profileToDomain(data *m_customer_profile.Data) *domain.CustomerPricingProfile {
	return &domain.CustomerPricingProfile{
		CustomerID:           data.CustomerID,
		DefaultPriceLevelID:  data.DefaultPriceLevelID.StringVal,
		ExtraMarkupPercent:   data.ExtraMarkupPercent,
		ExtraDiscountPercent: data.ExtraDiscountPercent,
		PriceFloor:           nullMoney(data.PriceFloorNumerator, data.PriceFloorDenominator),
		PriceCeiling:         nullMoney(data.PriceCeilingNumerator, data.PriceCeilingDenominator),
		AllowCustomRules:     data.AllowCustomRules,
	}
}

func ruleToDomain(data *m_price_rule.Data) domain.CustomerCustomPriceRule {
	return domain.CustomerCustomPriceRule{
		ID:               data.RuleID,
		ProductID:        data.ProductID.StringVal,
		ValidFrom:        nullTime(data.ValidFrom),
		ValidTo:          nullTime(data.ValidTo),
		FixedPrice:       nullMoney(data.FixedPriceNumerator, data.FixedPriceDenominator),
		PercentOfLevelID: data.PercentOfLevelID.StringVal,
		PercentOfLevel:   data.PercentOfLevel.Float64,
	}
}

func volumeRuleToDomain(data *m_volume_rule.Data) domain.VolumeDiscountRule {
	rule := domain.VolumeDiscountRule{
		ID:           data.RuleID,
		MinQty:       data.MinQty,
		DiscountType: domain.DiscountType(data.DiscountType),
		Value:        data.DiscountValue,
		AppliesToAll: data.AppliesToAll,
		ProductIDs:   data.ProductIDs,
		IsActive:     data.IsActive,
	}
	if data.MaxQty.Valid {
		maxQty := data.MaxQty.Int64
		rule.MaxQty = &maxQty
	}
	return rule
}

func promotionToDomain(data *m_promotion.Data) domain.TimePromotion {
	return domain.TimePromotion{
		ID:           data.PromotionID,
		Name:         data.Name,
		StartsAt:     data.StartsAt,
		EndsAt:       data.EndsAt,
		DiscountType: domain.DiscountType(data.DiscountType),
		Value:        data.DiscountValue,
		AppliesToAll: data.AppliesToAll,
		ProductIDs:   data.ProductIDs,
		LevelIDs:     data.LevelIDs,
		IsActive:     data.IsActive,
	}
}

// nullMoney converts a nullable numerator/denominator pair into Money.
// Both columns must be set for a value to exist; a zero denominator is
// treated as absent rather than failing the whole fetch.
func nullMoney(num, den spanner.NullInt64) *domain.Money {
	if !num.Valid || !den.Valid || den.Int64 == 0 {
		return nil
	}
	money, err := domain.NewMoney(num.Int64, den.Int64)
	if err != nil {
		return nil
	}
	return money
}

func nullTime(t spanner.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

package http

import (
	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// priceResultDTO is the JSON shape of one resolution result. Monetary
// values are rendered as float64 for display; the engine's internal
// arithmetic stays rational.
type priceResultDTO struct {
	ProductID       string             `json:"product_id"`
	Quantity        int64              `json:"quantity"`
	FinalPrice      *float64           `json:"final_price"`
	BasePrice       *float64           `json:"base_price"`
	Source          string             `json:"source,omitempty"`
	LevelID         string             `json:"level_id,omitempty"`
	LevelName       string             `json:"level_name,omitempty"`
	RoundingApplied bool               `json:"rounding_applied"`
	Adjustment      *adjustmentDTO     `json:"adjustment,omitempty"`
	VolumeDiscount  *volumeDiscountDTO `json:"volume_discount,omitempty"`
	Promotion       *promotionDTO      `json:"promotion,omitempty"`
	Trace           []string           `json:"trace"`
	Errors          []string           `json:"errors,omitempty"`
}

type adjustmentDTO struct {
	MarkupPercent   float64 `json:"markup_percent"`
	DiscountPercent float64 `json:"discount_percent"`
}

type volumeDiscountDTO struct {
	RuleID       string  `json:"rule_id"`
	DiscountType string  `json:"discount_type"`
	Value        float64 `json:"value"`
}

type promotionDTO struct {
	PromotionID  string  `json:"promotion_id"`
	Name         string  `json:"name"`
	DiscountType string  `json:"discount_type"`
	Value        float64 `json:"value"`
}

type levelPriceDTO struct {
	LevelID   string   `json:"level_id"`
	LevelName string   `json:"level_name"`
	Price     *float64 `json:"price"`
}

type levelListingDTO struct {
	ProductID string          `json:"product_id"`
	Levels    []levelPriceDTO `json:"levels"`
}

func resultToDTO(result *domain.PriceCalculationResult) *priceResultDTO {
	dto := &priceResultDTO{
		ProductID:       result.ProductID,
		Quantity:        result.Quantity,
		FinalPrice:      moneyToFloat(result.FinalPrice),
		BasePrice:       moneyToFloat(result.BasePrice),
		Source:          string(result.Source),
		LevelID:         result.LevelID,
		LevelName:       result.LevelName,
		RoundingApplied: result.RoundingApplied,
		Trace:           result.Trace,
		Errors:          result.Errors,
	}

	if result.Adjustment != nil {
		dto.Adjustment = &adjustmentDTO{
			MarkupPercent:   result.Adjustment.MarkupPercent,
			DiscountPercent: result.Adjustment.DiscountPercent,
		}
	}
	if result.VolumeDiscount != nil {
		dto.VolumeDiscount = &volumeDiscountDTO{
			RuleID:       result.VolumeDiscount.RuleID,
			DiscountType: string(result.VolumeDiscount.DiscountType),
			Value:        result.VolumeDiscount.Value,
		}
	}
	if result.Promotion != nil {
		dto.Promotion = &promotionDTO{
			PromotionID:  result.Promotion.PromotionID,
			Name:         result.Promotion.Name,
			DiscountType: string(result.Promotion.DiscountType),
			Value:        result.Promotion.Value,
		}
	}
	return dto
}

func levelPricesToDTO(productID string, prices []contracts.LevelPrice) *levelListingDTO {
	levels := make([]levelPriceDTO, 0, len(prices))
	for _, p := range prices {
		levels = append(levels, levelPriceDTO{
			LevelID:   p.LevelID,
			LevelName: p.LevelName,
			Price:     moneyToFloat(p.Price),
		})
	}
	return &levelListingDTO{
		ProductID: productID,
		Levels:    levels,
	}
}

func moneyToFloat(m *domain.Money) *float64 {
	if m == nil {
		return nil
	}
	f := m.Float64()
	return &f
}

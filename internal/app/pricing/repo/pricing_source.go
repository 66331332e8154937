package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_customer_profile"
	"github.com/light-bringer/pricing-service/internal/models/m_price_level"
	"github.com/light-bringer/pricing-service/internal/models/m_price_rule"
	"github.com/light-bringer/pricing-service/internal/models/m_pricing_settings"
	"github.com/light-bringer/pricing-service/internal/models/m_product_price"
	"github.com/light-bringer/pricing-service/internal/models/m_promotion"
	"github.com/light-bringer/pricing-service/internal/models/m_volume_rule"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// PricingSourceRepo implements contracts.PricingSource for Spanner. It only
// reads; all writes belong to the administrative settings surface.
type PricingSourceRepo struct {
	client        *spanner.Client
	settingsModel *m_pricing_settings.Model
	levelModel    *m_price_level.Model
	priceModel    *m_product_price.Model
	profileModel  *m_customer_profile.Model
	ruleModel     *m_price_rule.Model
	volumeModel   *m_volume_rule.Model
	promoModel    *m_promotion.Model
}

// NewPricingSource creates a new Spanner-backed PricingSource.
func NewPricingSource(client *spanner.Client) contracts.PricingSource {
	return &PricingSourceRepo{
		client:        client,
		settingsModel: m_pricing_settings.NewModel(),
		levelModel:    m_price_level.NewModel(),
		priceModel:    m_product_price.NewModel(),
		profileModel:  m_customer_profile.NewModel(),
		ruleModel:     m_price_rule.NewModel(),
		volumeModel:   m_volume_rule.NewModel(),
		promoModel:    m_promotion.NewModel(),
	}
}

// FetchGlobalPricingSettings reads the singleton settings row together with
// the volume-discount rules and time promotions that belong to it.
func (r *PricingSourceRepo) FetchGlobalPricingSettings(ctx context.Context) (*domain.GlobalPricingSettings, error) {
	row, err := r.client.Single().ReadRow(ctx, m_pricing_settings.TableName,
		spanner.Key{m_pricing_settings.GlobalSettingsID}, r.settingsModel.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to read pricing settings: %w", err)
	}

	var data m_pricing_settings.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse pricing settings: %w", err)
	}

	settings := settingsToDomain(&data)

	settings.VolumeDiscountRules, err = r.fetchVolumeRules(ctx)
	if err != nil {
		return nil, err
	}
	settings.TimePromotions, err = r.fetchPromotions(ctx)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// FetchPriceLevels reads every configured price level ordered by sort order.
func (r *PricingSourceRepo) FetchPriceLevels(ctx context.Context) ([]*domain.PriceLevel, error) {
	stmt := query.From(m_price_level.TableName).
		Select(r.levelModel.ReadColumns()...).
		OrderBy(m_price_level.SortOrder, query.Asc).
		Build()

	var levels []*domain.PriceLevel
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read price levels: %w", err)
		}

		var data m_price_level.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price level: %w", err)
		}
		levels = append(levels, levelToDomain(&data))
	}
	return levels, nil
}

// FetchProductPriceMatrix reads the full explicit price matrix.
func (r *PricingSourceRepo) FetchProductPriceMatrix(ctx context.Context) ([]domain.ProductPriceEntry, error) {
	stmt := query.From(m_product_price.TableName).
		Select(r.priceModel.ReadColumns()...).
		Build()

	var entries []domain.ProductPriceEntry
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read price matrix: %w", err)
		}

		var data m_product_price.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price matrix entry: %w", err)
		}

		price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid matrix price for product %s at level %s: %w", data.ProductID, data.LevelID, err)
		}
		entries = append(entries, domain.ProductPriceEntry{
			ProductID:    data.ProductID,
			PriceLevelID: data.LevelID,
			Price:        price,
		})
	}
	return entries, nil
}

// FetchCustomerPricingProfile reads one customer's profile and its rules in
// admin-configured order. Returns (nil, nil) when the customer has no profile.
func (r *PricingSourceRepo) FetchCustomerPricingProfile(ctx context.Context, customerID string) (*domain.CustomerPricingProfile, error) {
	row, err := r.client.Single().ReadRow(ctx, m_customer_profile.TableName,
		spanner.Key{customerID}, r.profileModel.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read customer profile: %w", err)
	}

	var data m_customer_profile.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse customer profile: %w", err)
	}

	profile := profileToDomain(&data)
	profile.CustomRules, err = r.fetchCustomerRules(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *PricingSourceRepo) fetchCustomerRules(ctx context.Context, customerID string) ([]domain.CustomerCustomPriceRule, error) {
	stmt := query.From(m_price_rule.TableName).
		Select(r.ruleModel.ReadColumns()...).
		Where(query.Eq(m_price_rule.CustomerID, customerID)).
		OrderBy(m_price_rule.Position, query.Asc).
		Build()

	var rules []domain.CustomerCustomPriceRule
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read customer price rules: %w", err)
		}

		var data m_price_rule.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse customer price rule: %w", err)
		}
		rules = append(rules, ruleToDomain(&data))
	}
	return rules, nil
}

func (r *PricingSourceRepo) fetchVolumeRules(ctx context.Context) ([]domain.VolumeDiscountRule, error) {
	stmt := query.From(m_volume_rule.TableName).
		Select(r.volumeModel.ReadColumns()...).
		OrderBy(m_volume_rule.Position, query.Asc).
		Build()

	var rules []domain.VolumeDiscountRule
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read volume discount rules: %w", err)
		}

		var data m_volume_rule.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse volume discount rule: %w", err)
		}
		rules = append(rules, volumeRuleToDomain(&data))
	}
	return rules, nil
}

func (r *PricingSourceRepo) fetchPromotions(ctx context.Context) ([]domain.TimePromotion, error) {
	stmt := query.From(m_promotion.TableName).
		Select(r.promoModel.ReadColumns()...).
		OrderBy(m_promotion.Position, query.Asc).
		Build()

	var promos []domain.TimePromotion
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read time promotions: %w", err)
		}

		var data m_promotion.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse time promotion: %w", err)
		}
		promos = append(promos, promotionToDomain(&data))
	}
	return promos, nil
}

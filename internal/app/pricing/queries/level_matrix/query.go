package level_matrix

import (
	"context"
	"fmt"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
)

// Request identifies the product to list level prices for.
type Request struct {
	ProductID string
}

// Query lists a product's explicit-or-derived price at every active level,
// bypassing precedence and customer logic entirely. Backs the admin "what
// would this product cost at every level" view.
type Query struct {
	loader *loader.Loader
	levels *domain.LevelResolver
}

// NewQuery creates a new level matrix query.
func NewQuery(ldr *loader.Loader, levels *domain.LevelResolver) *Query {
	return &Query{
		loader: ldr,
		levels: levels,
	}
}

// Execute returns one entry per active level, ordered by sort order. A nil
// price on an entry means the product has no resolvable price at that level.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.LevelPrice, error) {
	snapshot, err := q.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing snapshot: %w", err)
	}

	active := snapshot.ActiveLevels()
	prices := make([]contracts.LevelPrice, 0, len(active))
	for _, lvl := range active {
		prices = append(prices, contracts.LevelPrice{
			LevelID:   lvl.ID,
			LevelName: lvl.Name,
			Price:     q.levels.PriceForLevel(snapshot, req.ProductID, lvl.ID),
		})
	}
	return prices, nil
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/batch_prices"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/effective_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/level_matrix"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/invalidate_cache"
)

// PricingHandler exposes the pricing engine's public operations over HTTP.
// It's a thin coordinator that delegates to queries and use cases.
//
// Resolution misses are 200 responses with a null final price; only
// malformed requests produce 4xx.
type PricingHandler struct {
	effectivePrice  *effective_price.Query
	batchPrices     *batch_prices.Query
	levelMatrix     *level_matrix.Query
	invalidateCache *invalidate_cache.Interactor
	logger          zerolog.Logger
}

// NewPricingHandler creates a new HTTP pricing handler.
func NewPricingHandler(
	effectivePrice *effective_price.Query,
	batchPrices *batch_prices.Query,
	levelMatrix *level_matrix.Query,
	invalidateCache *invalidate_cache.Interactor,
	logger zerolog.Logger,
) *PricingHandler {
	return &PricingHandler{
		effectivePrice:  effectivePrice,
		batchPrices:     batchPrices,
		levelMatrix:     levelMatrix,
		invalidateCache: invalidateCache,
		logger:          logger,
	}
}

// Register mounts the pricing routes on the echo instance.
func (h *PricingHandler) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/prices/resolve", h.ResolvePrice)
	v1.POST("/prices/batch", h.ResolveBatch)
	v1.GET("/products/:id/levels", h.ListLevelPrices)
	v1.POST("/pricing-cache/invalidate", h.InvalidateCache)
}

type resolveRequest struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Quantity   int64  `json:"quantity"`
}

// ResolvePrice handles single-product price resolution.
func (h *PricingHandler) ResolvePrice(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request payload"))
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, errorBody("product_id is required"))
	}

	requestID := uuid.New().String()
	result := h.effectivePrice.Execute(c.Request().Context(), &effective_price.Request{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
	})

	h.logger.Info().
		Str("request_id", requestID).
		Str("product_id", req.ProductID).
		Str("customer_id", req.CustomerID).
		Bool("resolved", result.Resolved()).
		Msg("price resolved")

	return c.JSON(http.StatusOK, resultToDTO(result))
}

type batchRequest struct {
	ProductIDs []string `json:"product_ids"`
	CustomerID string   `json:"customer_id"`
	Quantity   int64    `json:"quantity"`
}

// ResolveBatch handles batch price resolution for one customer.
func (h *PricingHandler) ResolveBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request payload"))
	}
	if len(req.ProductIDs) == 0 {
		return c.JSON(http.StatusBadRequest, errorBody("product_ids must not be empty"))
	}

	results := h.batchPrices.Execute(c.Request().Context(), &batch_prices.Request{
		ProductIDs: req.ProductIDs,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
	})

	body := make(map[string]*priceResultDTO, len(results))
	for productID, result := range results {
		body[productID] = resultToDTO(result)
	}
	return c.JSON(http.StatusOK, body)
}

// ListLevelPrices handles the per-product level price listing.
func (h *PricingHandler) ListLevelPrices(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, errorBody("product id is required"))
	}

	prices, err := h.levelMatrix.Execute(c.Request().Context(), &level_matrix.Request{ProductID: productID})
	if err != nil {
		h.logger.Error().Err(err).Str("product_id", productID).Msg("level price listing failed")
		return c.JSON(http.StatusInternalServerError, errorBody("failed to load pricing configuration"))
	}

	return c.JSON(http.StatusOK, levelPricesToDTO(productID, prices))
}

// InvalidateCache forces the next load to refetch the configuration.
func (h *PricingHandler) InvalidateCache(c echo.Context) error {
	h.invalidateCache.Execute()
	h.logger.Info().Msg("pricing cache invalidated")
	return c.NoContent(http.StatusNoContent)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

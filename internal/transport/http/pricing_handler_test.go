package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/batch_prices"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/effective_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/level_matrix"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/invalidate_cache"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

func newTestHandler(t *testing.T) (*PricingHandler, *testutil.FakePricingSource, *echo.Echo) {
	t.Helper()

	source := testutil.NewFakePricingSource(
		testutil.DefaultSettings("wholesale"),
		[]*domain.PriceLevel{testutil.BaseLevel("wholesale", "Wholesale", 1)},
		[]domain.ProductPriceEntry{testutil.MatrixEntry("oil-filter", "wholesale", 100)},
	)
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	ldr := loader.New(source, clk, 30*time.Second)
	engine := domain.NewEngine(clk)

	handler := NewPricingHandler(
		effective_price.NewQuery(ldr, source, engine),
		batch_prices.NewQuery(ldr, source, engine),
		level_matrix.NewQuery(ldr, engine.Levels()),
		invalidate_cache.NewInteractor(ldr),
		zerolog.Nop(),
	)

	e := echo.New()
	handler.Register(e)
	return handler, source, e
}

func TestPricingHandler_ResolvePrice(t *testing.T) {
	t.Run("resolves a price", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		body := `{"product_id":"oil-filter","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var dto priceResultDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		require.NotNil(t, dto.FinalPrice)
		assert.Equal(t, 100.0, *dto.FinalPrice)
		assert.Equal(t, "LEVEL_EXPLICIT", dto.Source)
		assert.NotEmpty(t, dto.Trace)
	})

	t.Run("unresolvable product is still a 200", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		body := `{"product_id":"unknown","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var dto priceResultDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Nil(t, dto.FinalPrice)
		assert.NotEmpty(t, dto.Trace)
	})

	t.Run("missing product id is a 400", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(`{"quantity":1}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(`{not json`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPricingHandler_ResolveBatch(t *testing.T) {
	t.Run("returns one result per product", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		body := `{"product_ids":["oil-filter","unknown"],"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/batch", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var results map[string]priceResultDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		require.Len(t, results, 2)
		assert.NotNil(t, results["oil-filter"].FinalPrice)
		assert.Nil(t, results["unknown"].FinalPrice)
	})

	t.Run("empty product list is a 400", func(t *testing.T) {
		_, _, e := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/batch", strings.NewReader(`{"product_ids":[]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPricingHandler_ListLevelPrices(t *testing.T) {
	_, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/oil-filter/levels", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listing levelListingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, "oil-filter", listing.ProductID)
	require.Len(t, listing.Levels, 1)
	assert.Equal(t, "wholesale", listing.Levels[0].LevelID)
	require.NotNil(t, listing.Levels[0].Price)
	assert.Equal(t, 100.0, *listing.Levels[0].Price)
}

func TestPricingHandler_InvalidateCache(t *testing.T) {
	_, source, e := newTestHandler(t)

	// warm the cache
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(`{"product_id":"oil-filter"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, 1, source.SettingsFetches)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/pricing-cache/invalidate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// next resolution refetches
	req = httptest.NewRequest(http.MethodPost, "/api/v1/prices/resolve", strings.NewReader(`{"product_id":"oil-filter"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, 2, source.SettingsFetches)
}

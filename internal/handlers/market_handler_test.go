package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/services"
	"fortune/internal/valuation"
)

// --- mock market service ---

type mockMarketService struct {
	recordPricesFn   func(prices []services.PriceInput) (int, error)
	getPriceSeriesFn func(symbol, priceRange string) (*valuation.Series, error)
}

var _ services.MarketServicer = (*mockMarketService)(nil)

func (m *mockMarketService) RecordPrices(prices []services.PriceInput) (int, error) {
	if m.recordPricesFn != nil {
		return m.recordPricesFn(prices)
	}
	return len(prices), nil
}

func (m *mockMarketService) GetPriceSeries(symbol, priceRange string) (*valuation.Series, error) {
	if m.getPriceSeriesFn != nil {
		return m.getPriceSeriesFn(symbol, priceRange)
	}
	return nil, apperrors.ErrPriceSeriesNotFound
}

func (m *mockMarketService) LatestPrices() (valuation.FixedFeed, error) {
	return valuation.FixedFeed{}, nil
}

// --- mock historian ---

type mockHistorian struct {
	gotBase float64
}

func (m *mockHistorian) PriceHistory(_ context.Context, _, _ string, base float64) (*valuation.Series, bool, error) {
	m.gotBase = base
	return &valuation.Series{Labels: []string{"W1"}, Prices: []float64{base}}, true, nil
}

// --- router setup ---

func setupMarketRouter(handler *MarketHandler) *gin.Engine {
	r := gin.New()
	r.GET("/market/prices", handler.GetPriceSeries)
	r.GET("/market/history", handler.GetPriceHistory)
	r.POST("/pipeline/market/prices", handler.RecordPrices)
	return r
}

// --- tests ---

func TestMarketHandler_GetPriceSeries(t *testing.T) {
	t.Run("returns_bare_series", func(t *testing.T) {
		svc := &mockMarketService{
			getPriceSeriesFn: func(symbol, priceRange string) (*valuation.Series, error) {
				if symbol != "TCS" || priceRange != "1M" {
					t.Errorf("unexpected query %s %s", symbol, priceRange)
				}
				return &valuation.Series{Labels: []string{"2026-01-02"}, Prices: []float64{3500}}, nil
			},
		}
		r := setupMarketRouter(NewMarketHandler(svc, &mockAssetService{}, &mockHistorian{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/market/prices?symbol=TCS&range=1M", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if len(result["labels"].([]interface{})) != 1 || result["prices"].([]interface{})[0].(float64) != 3500 {
			t.Errorf("unexpected series %v", result)
		}
	})

	t.Run("returns_404_no_prices", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, &mockHistorian{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/market/prices?symbol=TCS", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRICE_SERIES_NOT_FOUND")
	})

	t.Run("returns_400_bad_range", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, &mockHistorian{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/market/prices?symbol=TCS&range=5Y", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMarketHandler_GetPriceHistory(t *testing.T) {
	t.Run("uses_reference_price_as_base", func(t *testing.T) {
		assets := &mockAssetService{
			getAssetBySymbolFn: func(symbol string) (*models.Asset, error) {
				return &models.Asset{Symbol: symbol, ReferencePrice: decimal.NewFromInt(2450)}, nil
			},
		}
		historian := &mockHistorian{}
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, assets, historian, &mockAuditService{}))

		rec := doRequest(r, "GET", "/market/history?symbol=RELIANCE", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if historian.gotBase != 2450 {
			t.Errorf("expected base 2450, got %v", historian.gotBase)
		}
		if parseJSON(t, rec)["synthetic"] != true {
			t.Error("expected synthetic flag")
		}
	})

	t.Run("unknown_symbol_leaves_base_to_dashboard", func(t *testing.T) {
		historian := &mockHistorian{gotBase: -1}
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, historian, &mockAuditService{}))

		rec := doRequest(r, "GET", "/market/history?symbol=NEWCO", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if historian.gotBase != 0 {
			t.Errorf("expected zero base, got %v", historian.gotBase)
		}
	})
}

func TestMarketHandler_RecordPrices(t *testing.T) {
	t.Run("returns_count_and_audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, &mockHistorian{}, audit))

		rec := doRequest(r, "POST", "/pipeline/market/prices",
			`{"prices":[{"symbol":"TCS","price":"3500.25","recorded_at":"2026-01-02T00:00:00Z"},{"symbol":"GOLD","price":6200,"recorded_at":"2026-01-02T00:00:00Z"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["prices_recorded"].(float64) != 2 {
			t.Errorf("expected 2 recorded, got %s", rec.Body.String())
		}
		if got := audit.actions(); len(got) != 1 || got[0] != models.AuditRecordPrices {
			t.Errorf("expected RECORD_PRICES audit, got %v", got)
		}
	})

	t.Run("returns_400_empty", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, &mockHistorian{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/market/prices", `{"prices":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns_400_missing_timestamp", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketService{}, &mockAssetService{}, &mockHistorian{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/market/prices", `{"prices":[{"symbol":"TCS","price":1}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

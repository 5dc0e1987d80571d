package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fortune/internal/errors"
	"fortune/internal/logger"
	"fortune/internal/models"
	"fortune/internal/services"
	"fortune/internal/valuation"
)

// PriceHistorian returns price series with a synthetic fallback.
type PriceHistorian interface {
	PriceHistory(ctx context.Context, symbol, priceRange string, base float64) (*valuation.Series, bool, error)
}

// MarketHandler handles market price endpoints.
type MarketHandler struct {
	marketService services.MarketServicer
	assetService  services.AssetServicer
	historian     PriceHistorian
	auditService  services.AuditServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer, assetService services.AssetServicer, historian PriceHistorian, auditService services.AuditServicer) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		assetService:  assetService,
		historian:     historian,
		auditService:  auditService,
	}
}

// PriceSeriesQuery selects a symbol's series.
type PriceSeriesQuery struct {
	Symbol string `form:"symbol" binding:"required,symbol"`
	Range  string `form:"range" binding:"omitempty,price_range"`
}

// RecordPricesRequest represents the request payload for recording prices.
type RecordPricesRequest struct {
	Prices []services.PriceInput `json:"prices" binding:"required,min=1,max=1000,dive"`
}

// PriceHistoryResponse is a price series and whether it was generated.
type PriceHistoryResponse struct {
	valuation.Series
	Synthetic bool `json:"synthetic"`
}

// GetPriceSeries handles reading the recorded prices of a symbol.
// @Summary     Recorded price series
// @Tags        market
// @Produce     json
// @Param       symbol query string true  "Asset symbol"
// @Param       range  query string false "Range (1W, 1M, 3M, 6M, 1Y; default 3M)"
// @Success     200 {object} valuation.Series "Price series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset or prices not found"
// @Router      /market/prices [get]
func (h *MarketHandler) GetPriceSeries(c *gin.Context) {
	var q PriceSeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	series, err := h.marketService.GetPriceSeries(q.Symbol, q.Range)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetPriceHistory handles reading a symbol's series, generating a weekly one
// around the asset's reference price when nothing was recorded.
// @Summary     Price history
// @Tags        market
// @Produce     json
// @Param       symbol query string true  "Asset symbol"
// @Param       range  query string false "Range (1W, 1M, 3M, 6M, 1Y; default 3M)"
// @Success     200 {object} PriceHistoryResponse "Price series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /market/history [get]
func (h *MarketHandler) GetPriceHistory(c *gin.Context) {
	var q PriceSeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var base float64
	asset, err := h.assetService.GetAssetBySymbol(q.Symbol)
	switch {
	case err == nil:
		base = asset.ReferencePrice.InexactFloat64()
	case !errors.Is(err, apperrors.ErrAssetNotFound):
		logger.Get().Warnw("reference price lookup failed", "symbol", q.Symbol, "error", err)
	}

	series, synthetic, err := h.historian.PriceHistory(c.Request.Context(), q.Symbol, q.Range, base)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PriceHistoryResponse{Series: *series, Synthetic: synthetic})
}

// RecordPrices handles price ingestion from the market data pipeline.
// @Summary     Record market prices
// @Description Store price observations. Duplicates of the same symbol and timestamp are skipped.
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    PipelineKey
// @Param       request body RecordPricesRequest true "Price observations"
// @Success     200 {object} map[string]int "Rows inserted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Unknown symbol"
// @Router      /pipeline/market/prices [post]
func (h *MarketHandler) RecordPrices(c *gin.Context) {
	var req RecordPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	count, err := h.marketService.RecordPrices(req.Prices)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("", models.AuditRecordPrices, "asset_price", "", c.ClientIP(),
		map[string]interface{}{"received": len(req.Prices), "inserted": count})

	c.JSON(http.StatusOK, gin.H{"prices_recorded": count})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fortune/internal/analytics"
)

// TradeLog exposes the realized trade history.
type TradeLog interface {
	Trades(ctx context.Context) ([]analytics.Trade, error)
	ClearTrades(ctx context.Context) error
	Realized(ctx context.Context, now time.Time) (*analytics.RealizedSummary, error)
}

// HistoryHandler handles the realized trade history.
type HistoryHandler struct {
	trades TradeLog
	now    func() time.Time
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(trades TradeLog) *HistoryHandler {
	return &HistoryHandler{trades: trades, now: time.Now}
}

// List handles listing realized trades, newest first.
// @Summary     Trade history
// @Tags        history
// @Produce     json
// @Success     200 {array} analytics.Trade "Realized trades"
// @Router      /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	trades, err := h.trades.Trades(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// Clear handles emptying the trade history.
// @Summary     Clear trade history
// @Tags        history
// @Success     204
// @Router      /history [delete]
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.trades.ClearTrades(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary handles aggregating realized P&L.
// @Summary     Realized P&L summary
// @Description Totals, win rate, the trailing twelve months and the ten most profitable symbols
// @Tags        history
// @Produce     json
// @Success     200 {object} analytics.RealizedSummary "Realized summary"
// @Router      /history/summary [get]
func (h *HistoryHandler) Summary(c *gin.Context) {
	summary, err := h.trades.Realized(c.Request.Context(), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

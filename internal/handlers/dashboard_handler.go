package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fortune/internal/analytics"
	"fortune/internal/dashboard"
	apperrors "fortune/internal/errors"
	"fortune/internal/uuid"
	"fortune/internal/valuation"
)

// DashboardServicer values portfolios and computes their analytics.
type DashboardServicer interface {
	Portfolio(ctx context.Context, clientID string) (*dashboard.Snapshot, error)
	Assess(holdings []valuation.EnrichedHolding) (*analytics.RiskSnapshot, error)
	Compare(ctx context.Context, clientA, clientB string) (*analytics.Comparison, error)
}

// DashboardHandler serves the valuation and risk views of a portfolio.
type DashboardHandler struct {
	dashboard DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// ValuationResponse is a valued portfolio with its headline figures.
type ValuationResponse struct {
	dashboard.Snapshot
	Summary    analytics.Summary    `json:"summary"`
	Performers analytics.Performers `json:"performers"`
}

// Valuation handles valuing a client's holdings at simulated market prices.
// @Summary     Portfolio valuation
// @Description Enriched holdings with invested, market value and P&L, plus totals and top and under performers
// @Tags        dashboard
// @Produce     json
// @Param       clientId path string true "Client ID"
// @Success     200 {object} ValuationResponse "Valued portfolio"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     422 {object} ErrorResponse "Holding cannot be valuated"
// @Router      /portfolio/{clientId}/valuation [get]
func (h *DashboardHandler) Valuation(c *gin.Context) {
	snap, ok := h.portfolio(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ValuationResponse{
		Snapshot:   *snap,
		Summary:    analytics.Summarize(snap.Holdings),
		Performers: analytics.RankPerformers(snap.Holdings),
	})
}

// Risk handles computing the risk snapshot of a client's portfolio.
// @Summary     Portfolio risk
// @Description Beta, risk level, 95% VaR, diversification, category exposure and top risk contributors
// @Tags        dashboard
// @Produce     json
// @Param       clientId path string true "Client ID"
// @Success     200 {object} analytics.RiskSnapshot "Risk snapshot"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     422 {object} ErrorResponse "Portfolio has no market value"
// @Router      /portfolio/{clientId}/risk [get]
func (h *DashboardHandler) Risk(c *gin.Context) {
	snap, ok := h.portfolio(c)
	if !ok {
		return
	}

	risk, err := h.dashboard.Assess(snap.Holdings)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"risk": risk})
}

// Distribution handles splitting a client's holdings by P&L sign and category.
// @Summary     P&L distribution
// @Tags        dashboard
// @Produce     json
// @Param       clientId path string true "Client ID"
// @Success     200 {object} analytics.Distribution "Distribution"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /portfolio/{clientId}/distribution [get]
func (h *DashboardHandler) Distribution(c *gin.Context) {
	snap, ok := h.portfolio(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution": analytics.Distribute(snap.Holdings)})
}

// Compare handles comparing the portfolios of two clients.
// @Summary     Compare portfolios
// @Tags        dashboard
// @Produce     json
// @Param       a query string true "First client ID"
// @Param       b query string true "Second client ID"
// @Success     200 {object} analytics.Comparison "Comparison"
// @Failure     400 {object} ErrorResponse "Invalid client IDs"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /portfolio/compare [get]
func (h *DashboardHandler) Compare(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if !uuid.IsValid(a) || !uuid.IsValid(b) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Query parameters a and b must be client IDs"))
		return
	}

	comparison, err := h.dashboard.Compare(c.Request.Context(), a, b)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

func (h *DashboardHandler) portfolio(c *gin.Context) (*dashboard.Snapshot, bool) {
	clientID, err := parsePathID(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}

	snap, err := h.dashboard.Portfolio(c.Request.Context(), clientID)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return snap, true
}

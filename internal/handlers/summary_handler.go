package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fortune/internal/services"
)

// SummaryHandler serves the book-level performance views.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	now            func() time.Time
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, now: time.Now}
}

// Firm handles the firm-wide dashboard.
// @Summary     Firm summary
// @Description Total AUM, client count, average returns, top 5 clients by returns, the last 10 transactions and asset allocation
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.FirmSummary "Firm summary"
// @Router      /dashboard/summary [get]
func (h *SummaryHandler) Firm(c *gin.Context) {
	summary, err := h.summaryService.FirmSummary(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Clients handles listing every client with their performance.
// @Summary     Client summaries
// @Tags        clients
// @Produce     json
// @Success     200 {array} services.ClientSummary "Clients by name"
// @Router      /clients/summaries [get]
func (h *SummaryHandler) Clients(c *gin.Context) {
	summaries, err := h.summaryService.ClientSummaries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": summaries})
}

// Client handles one client's performance.
// @Summary     Client summary
// @Description Portfolio value, invested amount, returns and Sharpe ratio against a 6% risk-free rate
// @Tags        clients
// @Produce     json
// @Param       id path string true "Client ID"
// @Success     200 {object} services.ClientSummary "Client summary"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/summary [get]
func (h *SummaryHandler) Client(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.ClientSummary(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": summary})
}

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fortune/internal/analytics"
	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/services"
)

// Seller executes a sell through the dashboard so the trade reaches the
// realized history.
type Seller interface {
	Sell(ctx context.Context, holdingID string, customPrice *float64) (*analytics.Trade, error)
}

// PortfolioHandler handles holdings and trade execution.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	seller           Seller
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, seller Seller, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		seller:           seller,
		auditService:     auditService,
	}
}

// BuyRequest represents the request payload for buying an asset.
type BuyRequest struct {
	ClientID string           `json:"clientId" binding:"required,uuid"`
	AssetID  string           `json:"assetId" binding:"required,uuid"`
	Quantity decimal.Decimal  `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// SellRequest represents the optional custom price of a sell.
type SellRequest struct {
	Price *float64 `json:"price,omitempty"`
}

// GetHoldings handles listing a client's open holdings.
// @Summary     List holdings
// @Description Get the raw open holdings of a client, oldest first
// @Tags        portfolio
// @Produce     json
// @Param       clientId path string true "Client ID"
// @Success     200 {array}  valuation.RawHolding "Holdings"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /portfolio/{clientId} [get]
func (h *PortfolioHandler) GetHoldings(c *gin.Context) {
	clientID, err := parsePathID(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdings, err := h.portfolioService.GetHoldings(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// Buy handles opening a holding.
// @Summary     Buy asset
// @Description Open a holding for a client. Price defaults to the asset's reference price.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body BuyRequest true "Buy details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input or category limit reached"
// @Failure     404 {object} ErrorResponse "Client or asset not found"
// @Router      /portfolio/buy [post]
func (h *PortfolioHandler) Buy(c *gin.Context) {
	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	holding, err := h.portfolioService.Buy(req.ClientID, req.AssetID, req.Quantity, req.Price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(holding.ClientID, models.AuditBuy, "holding", holding.ID, c.ClientIP(),
		map[string]interface{}{
			"symbol":   holding.Asset.Symbol,
			"quantity": holding.Quantity.String(),
			"price":    holding.AvgBuyPrice.String(),
		})

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// GetHolding handles looking up one open holding.
// @Summary     Get holding
// @Tags        portfolio
// @Produce     json
// @Param       holdingId path string true "Holding ID"
// @Success     200 {object} valuation.RawHolding "Holding"
// @Failure     400 {object} ErrorResponse "Invalid holding ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/holdings/{holdingId} [get]
func (h *PortfolioHandler) GetHolding(c *gin.Context) {
	holdingID, err := parsePathID(c, "holdingId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.portfolioService.GetHolding(holdingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holding.ToRaw())
}

// Close handles closing a holding. The optional price query books the sale
// in the transaction ledger; without it the close is booked at cost.
// @Summary     Close holding
// @Description Delete an open holding, book a SELL in the ledger and return the holding as it was
// @Tags        portfolio
// @Produce     json
// @Param       holdingId path  string true  "Holding ID"
// @Param       price     query number false "Price the holding was sold at"
// @Success     200 {object} valuation.RawHolding "Closed holding"
// @Failure     400 {object} ErrorResponse "Invalid holding ID or price"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/{holdingId} [delete]
func (h *PortfolioHandler) Close(c *gin.Context) {
	holdingID, err := parsePathID(c, "holdingId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var price *decimal.Decimal
	if raw, ok := c.GetQuery("price"); ok {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			respondWithError(c, apperrors.ErrInvalidSellPrice)
			return
		}
		price = &p
	}

	holding, err := h.portfolioService.Close(holdingID, price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"symbol": holding.Asset.Symbol, "quantity": holding.Quantity.String()}
	if price != nil {
		changes["price"] = price.String()
	}
	h.auditService.Log(holding.ClientID, models.AuditSell, "holding", holding.ID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, holding.ToRaw())
}

// Sell handles selling a holding at a custom or simulated price.
// @Summary     Sell holding
// @Description Close a holding and record the realized trade. Without a price the holding is sold at a simulated market price.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       holdingId path string      true  "Holding ID"
// @Param       request   body SellRequest false "Custom sell price"
// @Success     200 {object} analytics.Trade "Realized trade"
// @Failure     400 {object} ErrorResponse "Invalid holding ID or price"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/{holdingId}/sell [post]
func (h *PortfolioHandler) Sell(c *gin.Context) {
	holdingID, err := parsePathID(c, "holdingId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	// The body is optional; an empty one sells at the simulated price.
	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, bindError(err))
		return
	}

	trade, err := h.seller.Sell(c.Request.Context(), holdingID, req.Price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("", models.AuditSell, "holding", holdingID, c.ClientIP(),
		map[string]interface{}{
			"symbol":   trade.Symbol,
			"quantity": trade.Qty,
			"price":    trade.Sell,
			"profit":   trade.Profit,
		})

	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fortune/internal/errors"
	"fortune/internal/pagination"
	"fortune/internal/services"
	"fortune/internal/uuid"
)

// TransactionHandler serves the buy and sell ledger.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles paging through the ledger.
// @Summary     List transactions
// @Description Ledger entries newest first, optionally restricted to one client
// @Tags        transactions
// @Produce     json
// @Param       clientId  query string false "Client ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	clientID := c.Query("clientId")
	if clientID != "" && !uuid.IsValid(clientID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid clientId"))
		return
	}

	result, err := h.transactionService.ListTransactions(page, clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClientTransactions handles listing every ledger entry of a client.
// @Summary     Client transactions
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Client ID"
// @Success     200 {array}  models.Transaction "Transactions, newest first"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/transactions [get]
func (h *TransactionHandler) ClientTransactions(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	txns, err := h.transactionService.ClientTransactions(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

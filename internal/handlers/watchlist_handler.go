package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fortune/internal/uuid"
	"fortune/internal/watchlist"
)

// WatchlistServicer manages the watched symbols.
type WatchlistServicer interface {
	Entries(ctx context.Context) ([]watchlist.Entry, error)
	Add(ctx context.Context, id, symbol string) (watchlist.Entry, error)
	Remove(ctx context.Context, symbol string) error
}

// WatchlistHandler handles the watchlist.
type WatchlistHandler struct {
	watchlist WatchlistServicer
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlist WatchlistServicer) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// AddWatchRequest represents the request payload for watching a symbol.
type AddWatchRequest struct {
	Symbol string `json:"symbol" binding:"required,symbol"`
}

// List handles listing watched symbols with their simulated prices.
// @Summary     List watchlist
// @Tags        watchlist
// @Produce     json
// @Success     200 {array} watchlist.Entry "Watched symbols"
// @Router      /watchlist [get]
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.watchlist.Entries(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": entries})
}

// Add handles watching a symbol.
// @Summary     Watch symbol
// @Tags        watchlist
// @Accept      json
// @Produce     json
// @Param       request body AddWatchRequest true "Symbol"
// @Success     201 {object} watchlist.Entry "Entry added"
// @Failure     400 {object} ErrorResponse "Invalid symbol"
// @Failure     409 {object} ErrorResponse "Already watched"
// @Router      /watchlist [post]
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req AddWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.watchlist.Add(c.Request.Context(), uuid.New(), req.Symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// Remove handles unwatching a symbol.
// @Summary     Unwatch symbol
// @Tags        watchlist
// @Param       symbol path string true "Symbol"
// @Success     204
// @Failure     404 {object} ErrorResponse "Not watched"
// @Router      /watchlist/{symbol} [delete]
func (h *WatchlistHandler) Remove(c *gin.Context) {
	if err := h.watchlist.Remove(c.Request.Context(), c.Param("symbol")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

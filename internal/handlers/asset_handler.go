package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fortune/internal/pagination"
	"fortune/internal/services"
	"fortune/internal/valuation"
)

// AssetHandler handles the asset catalog.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for adding a catalog asset.
type CreateAssetRequest struct {
	Symbol         string          `json:"symbol" binding:"required,symbol"`
	AssetName      string          `json:"assetName" binding:"required,min=1,max=200"`
	Category       string          `json:"category" binding:"required,asset_category"`
	Description    string          `json:"description" binding:"max=500"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
}

// ListAssetsQuery holds the catalog filters.
type ListAssetsQuery struct {
	pagination.PageRequest
	Category string `form:"category" binding:"omitempty,asset_category"`
}

// ListAssets handles listing the catalog.
// @Summary     List assets
// @Description Get a paginated list of tradable assets, optionally filtered by category
// @Tags        assets
// @Produce     json
// @Param       category  query string false "Category (NSE, MF, COMMODITY)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var q ListAssetsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.assetService.ListAssets(q.PageRequest, valuation.Category(q.Category))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving a catalog asset.
// @Summary     Get asset by ID
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAsset(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// CreateAsset handles adding an asset to the catalog.
// @Summary     Create asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	asset, err := h.assetService.CreateAsset(req.Symbol, req.AssetName, valuation.Category(req.Category), req.Description, req.ReferencePrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

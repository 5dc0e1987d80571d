package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/valuation"
)

const (
	commodityHoldingLimit = 3
	defaultHoldingLimit   = 5
)

// HoldingLimit is the maximum number of open holdings a client may have in a
// category.
func HoldingLimit(c valuation.Category) int {
	if c.Normalize() == valuation.CategoryCommodity {
		return commodityHoldingLimit
	}
	return defaultHoldingLimit
}

// portfolioService handles holdings and trade execution.
type portfolioService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db, now: time.Now}
}

// GetHoldings returns the client's open holdings in buy order.
func (s *portfolioService) GetHoldings(clientID string) ([]valuation.RawHolding, error) {
	if err := s.clientExists(s.db, clientID); err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := s.db.Preload("Asset").
		Where("client_id = ?", clientID).
		Order("buy_date ASC, id ASC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	raw := make([]valuation.RawHolding, 0, len(holdings))
	for _, h := range holdings {
		raw = append(raw, h.ToRaw())
	}
	return raw, nil
}

// GetHolding returns a holding with its asset.
func (s *portfolioService) GetHolding(holdingID string) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.Preload("Asset").Where("id = ?", holdingID).First(&holding).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrHoldingNotFound)
	}
	return &holding, nil
}

// Buy opens a new holding. Each buy is its own position; existing holdings of
// the same asset are not merged. A nil price buys at the asset's reference
// price. A client may hold at most 3 commodity positions and 5 in any other
// category.
func (s *portfolioService) Buy(clientID, assetID string, quantity decimal.Decimal, price *decimal.Decimal) (*models.Holding, error) {
	if quantity.LessThan(decimal.NewFromInt(1)) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be at least 1")
	}
	if price != nil && !price.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be positive")
	}

	var holding *models.Holding
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Serializes buys per client so the limit count below stays accurate.
		var client models.Client
		if err := lockClientRow(tx, clientID).First(&client).Error; err != nil {
			return notFoundOr(err, apperrors.ErrClientNotFound)
		}

		var asset models.Asset
		if err := tx.Where("id = ?", assetID).First(&asset).Error; err != nil {
			return notFoundOr(err, apperrors.ErrAssetNotFound)
		}

		var open int64
		if err := tx.Model(&models.Holding{}).
			Joins("JOIN assets ON assets.id = holdings.asset_id").
			Where("holdings.client_id = ? AND assets.category = ?", clientID, asset.Category).
			Count(&open).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if limit := HoldingLimit(asset.Category); open >= int64(limit) {
			return apperrors.WithMessage(apperrors.ErrCategoryLimitReached,
				fmt.Sprintf("Limit reached! You cannot hold more than %d assets in category %s", limit, asset.Category))
		}

		cost := asset.ReferencePrice
		if price != nil {
			cost = *price
		}
		holding = &models.Holding{
			ClientID:    clientID,
			AssetID:     asset.ID,
			Quantity:    quantity,
			AvgBuyPrice: cost,
			BuyDate:     s.now(),
			Asset:       asset,
		}
		if err := tx.Omit("Asset", "Client").Create(holding).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return recordTransaction(tx, &client, holding, models.TransactionBuy, cost, holding.BuyDate)
	})
	if err != nil {
		return nil, err
	}
	return holding, nil
}

// Close removes a holding and returns it as it was before the sale. The
// ledger books the close at price, or at the cost basis when price is nil.
func (s *portfolioService) Close(holdingID string, price *decimal.Decimal) (*models.Holding, error) {
	if price != nil && !price.IsPositive() {
		return nil, apperrors.ErrInvalidSellPrice
	}

	var holding models.Holding
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Asset").Preload("Client").Where("id = ?", holdingID).First(&holding).Error; err != nil {
			return notFoundOr(err, apperrors.ErrHoldingNotFound)
		}
		if err := tx.Delete(&models.Holding{}, "id = ?", holdingID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		sellAt := holding.AvgBuyPrice
		if price != nil {
			sellAt = *price
		}
		return recordTransaction(tx, &holding.Client, &holding, models.TransactionSell, sellAt, s.now())
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// lockClientRow selects the client FOR UPDATE. SQLite has no row locks and
// its dialect drops the clause; writers are serialized there anyway.
func lockClientRow(tx *gorm.DB, clientID string) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", clientID)
}

func (s *portfolioService) clientExists(db *gorm.DB, clientID string) error {
	var count int64
	if err := db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}

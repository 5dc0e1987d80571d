package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/uuid"
)

// recordTransaction appends a ledger entry inside tx. client and holding must
// be loaded; holding.Asset must be preloaded.
func recordTransaction(tx *gorm.DB, client *models.Client, holding *models.Holding, typ models.TransactionType, price decimal.Decimal, at time.Time) error {
	entry := &models.Transaction{
		Reference:  "TXN-" + uuid.New(),
		ClientID:   holding.ClientID,
		ClientName: client.FullName,
		HoldingID:  holding.ID,
		Type:       typ,
		Symbol:     holding.Asset.Symbol,
		Category:   holding.Asset.Category,
		Quantity:   holding.Quantity,
		Price:      price,
		Amount:     price.Mul(holding.Quantity),
		Status:     models.TransactionSuccess,
		ExecutedAt: at,
	}
	if err := tx.Create(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a TransactionServicer over the ledger table.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions pages through the ledger, newest first. A non-empty
// clientID restricts the page to that client.
func (s *transactionService) ListTransactions(page pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error) {
	query := s.db.Model(&models.Transaction{})
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	result, err := pagination.Find[models.Transaction](query, page, "executed_at DESC, id DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// ClientTransactions returns every ledger entry of a client, newest first.
func (s *transactionService) ClientTransactions(clientID string) ([]models.Transaction, error) {
	var count int64
	if err := s.db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrClientNotFound
	}

	txns := []models.Transaction{}
	if err := s.db.Where("client_id = ?", clientID).
		Order("executed_at DESC, id DESC").
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// RecentTransactions returns the latest limit ledger entries firm-wide.
func (s *transactionService) RecentTransactions(limit int) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	if err := s.db.Order("executed_at DESC, id DESC").Limit(limit).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// CountBetween counts ledger entries executed in [from, to).
func (s *transactionService) CountBetween(from, to time.Time) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("executed_at >= ? AND executed_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

package services

import (
	"net/mail"
	"strings"

	"gorm.io/gorm"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/pagination"
)

// clientService handles client management.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// CreateClient registers a client. Emails are unique, compared lower-case.
func (s *clientService) CreateClient(fullName, email, managerID string) (*models.Client, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Full name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "A valid email is required")
	}
	email = addr.Address

	client := &models.Client{
		FullName:  fullName,
		Email:     email,
		ManagerID: managerID,
	}
	if err := s.db.Create(client).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return client, nil
}

// ListClients returns clients ordered by name.
func (s *clientService) ListClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	result, err := pagination.Find[models.Client](s.db.Model(&models.Client{}), page, "full_name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetClient returns a client by ID.
func (s *clientService) GetClient(id string) (*models.Client, error) {
	var client models.Client
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrClientNotFound)
	}
	return &client, nil
}

// DeleteClient erases a client together with its holdings and ledger entries.
// Rows are removed outright so the email can be registered again.
func (s *clientService) DeleteClient(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.Where("id = ?", id).First(&client).Error; err != nil {
			return notFoundOr(err, apperrors.ErrClientNotFound)
		}
		for _, model := range []any{&models.Transaction{}, &models.Holding{}} {
			if err := tx.Unscoped().Where("client_id = ?", id).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Unscoped().Delete(&client).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

package services

import (
	"encoding/json"

	"fortune/internal/logger"
	"fortune/internal/models"

	"gorm.io/gorm"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates an AuditServicer that appends to the audit_logs table.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records a mutation made through the API. Failures are logged and
// swallowed so an audit outage never fails a buy, sell or price ingest.
func (s *auditService) Log(clientID string, action models.AuditAction, resourceType, resourceID, ipAddress string, changes map[string]any) {
	entry := &models.AuditLog{
		ClientID:     clientID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(action, changes),
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("audit write failed",
			"error", err,
			"client_id", clientID,
			"action", action,
			"resource", resourceType+"/"+resourceID,
		)
	}
}

func encodeChanges(action models.AuditAction, changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Get().Warnw("audit changes not serializable", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}

package models

// AuditAction names an audited operation.
type AuditAction string

const (
	AuditBuy          AuditAction = "BUY"
	AuditSell         AuditAction = "SELL"
	AuditCreateClient AuditAction = "CREATE_CLIENT"
	AuditDeleteClient AuditAction = "DELETE_CLIENT"
	AuditRecordPrices AuditAction = "RECORD_PRICES"
)

// AuditLog records trade and client operations.
type AuditLog struct {
	Base
	ClientID     string      `gorm:"index" json:"clientId,omitempty"`
	Action       AuditAction `gorm:"not null" json:"action"`
	ResourceType string      `gorm:"not null" json:"resourceType"`
	ResourceID   string      `json:"resourceId"`
	IPAddress    string      `json:"ipAddress,omitempty"`
	Changes      string      `json:"changes,omitempty"`
}

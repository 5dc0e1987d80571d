package models

import (
	"time"

	"github.com/shopspring/decimal"

	"fortune/internal/valuation"
)

// TransactionType is the side of a ledger entry.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionPending TransactionStatus = "PENDING"
	TransactionFailed  TransactionStatus = "FAILED"
)

// Transaction is one entry of the firm-wide trade ledger. Buys and closes
// write it in the same database transaction as the holding change.
type Transaction struct {
	Base
	Reference  string             `gorm:"not null;uniqueIndex" json:"transactionId"`
	ClientID   string             `gorm:"type:uuid;not null;index" json:"clientId"`
	ClientName string             `gorm:"not null" json:"clientName"`
	HoldingID  string             `gorm:"type:uuid;index" json:"holdingId"`
	Type       TransactionType    `gorm:"not null" json:"type"`
	Symbol     string             `gorm:"not null" json:"asset"`
	Category   valuation.Category `gorm:"not null" json:"category"`
	Quantity   decimal.Decimal    `gorm:"type:numeric(20,6);not null" json:"quantity"`
	Price      decimal.Decimal    `gorm:"type:numeric(20,4);not null" json:"price"`
	Amount     decimal.Decimal    `gorm:"type:numeric(24,4);not null" json:"amount"`
	Status     TransactionStatus  `gorm:"not null" json:"status"`
	ExecutedAt time.Time          `gorm:"not null;index" json:"timestamp"`
}

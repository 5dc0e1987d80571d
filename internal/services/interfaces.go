package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/valuation"
)

// AssetServicer defines the contract for the asset catalog.
type AssetServicer interface {
	CreateAsset(symbol, name string, category valuation.Category, description string, referencePrice decimal.Decimal) (*models.Asset, error)
	ListAssets(page pagination.PageRequest, category valuation.Category) (*pagination.PageResponse[models.Asset], error)
	GetAsset(id string) (*models.Asset, error)
	GetAssetBySymbol(symbol string) (*models.Asset, error)
	SeedDefaults() (int, error)
}

// ClientServicer defines the contract for client management.
type ClientServicer interface {
	CreateClient(fullName, email, managerID string) (*models.Client, error)
	ListClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	GetClient(id string) (*models.Client, error)
	DeleteClient(id string) error
}

// PortfolioServicer defines the contract for holdings and trade execution.
type PortfolioServicer interface {
	GetHoldings(clientID string) ([]valuation.RawHolding, error)
	GetHolding(holdingID string) (*models.Holding, error)
	Buy(clientID, assetID string, quantity decimal.Decimal, price *decimal.Decimal) (*models.Holding, error)
	Close(holdingID string, price *decimal.Decimal) (*models.Holding, error)
}

// PriceInput is one price observation posted by the ingestion pipeline.
type PriceInput struct {
	Symbol     string          `json:"symbol" binding:"required,symbol"`
	Price      decimal.Decimal `json:"price"`
	RecordedAt time.Time       `json:"recorded_at" binding:"required"`
}

// MarketServicer defines the contract for recorded market prices.
type MarketServicer interface {
	RecordPrices(prices []PriceInput) (int, error)
	GetPriceSeries(symbol, priceRange string) (*valuation.Series, error)
	LatestPrices() (valuation.FixedFeed, error)
}

// TransactionServicer defines the contract for the trade ledger.
type TransactionServicer interface {
	ListTransactions(page pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error)
	ClientTransactions(clientID string) ([]models.Transaction, error)
	RecentTransactions(limit int) ([]models.Transaction, error)
	CountBetween(from, to time.Time) (int64, error)
}

// SummaryServicer defines the contract for book-level client and firm summaries.
type SummaryServicer interface {
	ClientSummary(clientID string) (*ClientSummary, error)
	ClientSummaries() ([]ClientSummary, error)
	FirmSummary(now time.Time) (*FirmSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(clientID string, action models.AuditAction, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

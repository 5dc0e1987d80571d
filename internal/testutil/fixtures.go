package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fortune/internal/models"
	"fortune/internal/valuation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestClient creates a client with a unique email.
func CreateTestClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()

	n := nextID()
	client := &models.Client{
		FullName:  fmt.Sprintf("Test Client %d", n),
		Email:     fmt.Sprintf("client%d@test.com", n),
		ManagerID: "rm-1",
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestAsset creates a catalog asset with a unique symbol.
func CreateTestAsset(t *testing.T, db *gorm.DB, category valuation.Category, referencePrice float64) *models.Asset {
	t.Helper()

	n := nextID()
	asset := &models.Asset{
		Symbol:         fmt.Sprintf("TST%d", n),
		AssetName:      fmt.Sprintf("Test Asset %d", n),
		Category:       category,
		ReferencePrice: decimal.NewFromFloat(referencePrice),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestHolding opens a position for client in asset.
func CreateTestHolding(t *testing.T, db *gorm.DB, clientID, assetID string, quantity, avgBuyPrice float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		ClientID:    clientID,
		AssetID:     assetID,
		Quantity:    decimal.NewFromFloat(quantity),
		AvgBuyPrice: decimal.NewFromFloat(avgBuyPrice),
		BuyDate:     time.Now(),
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestPrice records a market price for asset.
func CreateTestPrice(t *testing.T, db *gorm.DB, assetID string, price float64, recordedAt time.Time) *models.AssetPrice {
	t.Helper()

	p := &models.AssetPrice{
		AssetID:    assetID,
		Price:      decimal.NewFromFloat(price),
		RecordedAt: recordedAt,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test price: %v", err)
	}
	return p
}

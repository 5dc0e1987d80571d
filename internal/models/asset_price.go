package models

import (
	"time"

	"fortune/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetPrice is one point of an asset's recorded price history.
// Time-series rows are immutable: no Base embed, no soft deletes.
type AssetPrice struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	AssetID    string          `gorm:"type:uuid;not null;index:idx_asset_prices_asset_time" json:"assetId"`
	Price      decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"price"`
	RecordedAt time.Time       `gorm:"not null;index:idx_asset_prices_asset_time" json:"recordedAt"`
	Asset      Asset           `gorm:"foreignKey:AssetID" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *AssetPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}

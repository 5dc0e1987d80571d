package models

import (
	"github.com/shopspring/decimal"

	"fortune/internal/valuation"
)

// Asset is an entry of the tradable catalog.
type Asset struct {
	Base
	Symbol      string             `gorm:"not null;uniqueIndex" json:"symbol"`
	AssetName   string             `gorm:"not null" json:"assetName"`
	Category    valuation.Category `gorm:"not null;index" json:"category"`
	Description string             `json:"description,omitempty"`
	// ReferencePrice is the unit price used when a buy omits one.
	ReferencePrice decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"referencePrice"`
}

// ToValuation returns the reference data the engines work with.
func (a Asset) ToValuation() valuation.Asset {
	return valuation.Asset{
		AssetID:   a.ID,
		Symbol:    a.Symbol,
		AssetName: a.AssetName,
		Category:  a.Category,
	}
}

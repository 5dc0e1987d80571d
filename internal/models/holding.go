package models

import (
	"time"

	"github.com/shopspring/decimal"

	"fortune/internal/valuation"
)

// Holding is an open position. Each buy creates one; a sell deletes it.
type Holding struct {
	Base
	ClientID    string          `gorm:"type:uuid;not null;index" json:"clientId"`
	AssetID     string          `gorm:"type:uuid;not null;index" json:"assetId"`
	Quantity    decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"quantity"`
	AvgBuyPrice decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"avgBuyPrice"`
	BuyDate     time.Time       `gorm:"not null" json:"buyDate"`

	Asset  Asset  `gorm:"foreignKey:AssetID" json:"asset"`
	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

// ToRaw converts the position into the valuation input record. Asset must be
// preloaded.
func (h Holding) ToRaw() valuation.RawHolding {
	return valuation.RawHolding{
		HoldingID:   h.ID,
		ClientID:    h.ClientID,
		Quantity:    h.Quantity.InexactFloat64(),
		AvgBuyPrice: h.AvgBuyPrice.InexactFloat64(),
		Asset:       h.Asset.ToValuation(),
	}
}

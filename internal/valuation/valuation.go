// Package valuation turns raw holding records into enriched holdings carrying
// a current price, market value, invested amount and unrealized P&L.
package valuation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category is an asset class. The set is open-ended: categories outside the
// known constants are carried through and priced with default parameters.
type Category string

const (
	CategoryCommodity Category = "COMMODITY"
	CategoryNSE       Category = "NSE"
	CategoryMF        Category = "MF"
)

// KnownCategories lists the categories with dedicated risk parameters.
var KnownCategories = []Category{CategoryCommodity, CategoryNSE, CategoryMF}

// Normalize upper-cases and trims a category name.
func (c Category) Normalize() Category {
	return Category(strings.ToUpper(strings.TrimSpace(string(c))))
}

// IsKnown reports whether c is one of KnownCategories.
func (c Category) IsKnown() bool {
	for _, k := range KnownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// ErrInvalidHolding is returned when a raw holding cannot be valuated.
var ErrInvalidHolding = errors.New("invalid holding")

// Asset is the reference data attached to a holding.
type Asset struct {
	AssetID   string   `json:"assetId"`
	Symbol    string   `json:"symbol"`
	AssetName string   `json:"assetName"`
	Category  Category `json:"category"`
}

// RawHolding is a position as returned by the portfolio backend.
type RawHolding struct {
	HoldingID   string  `json:"holdingId"`
	ClientID    string  `json:"clientId,omitempty"`
	Quantity    float64 `json:"quantity"`
	AvgBuyPrice float64 `json:"avgBuyPrice"`
	Asset       Asset   `json:"asset"`
}

// EnrichedHolding is a RawHolding priced at a single valuation tick.
type EnrichedHolding struct {
	RawHolding
	CurrentPrice float64 `json:"curPrice"`
	MarketValue  float64 `json:"mktValue"`
	Invested     float64 `json:"invested"`
	PnL          float64 `json:"pnl"`
	PnLPct       float64 `json:"pnlPct"`
}

// Validate checks the preconditions for valuation.
func (h RawHolding) Validate() error {
	switch {
	case h.Asset.Category.Normalize() == "":
		return fmt.Errorf("%w: holding %q has no asset category", ErrInvalidHolding, h.HoldingID)
	case !(h.AvgBuyPrice > 0) || math.IsInf(h.AvgBuyPrice, 0):
		return fmt.Errorf("%w: holding %q average buy price must be positive", ErrInvalidHolding, h.HoldingID)
	case h.Quantity < 0 || math.IsNaN(h.Quantity) || math.IsInf(h.Quantity, 0):
		return fmt.Errorf("%w: holding %q quantity must be non-negative", ErrInvalidHolding, h.HoldingID)
	}
	return nil
}

// Enrich prices a single holding at currentPrice.
func Enrich(h RawHolding, currentPrice float64) EnrichedHolding {
	marketValue := currentPrice * h.Quantity
	invested := h.AvgBuyPrice * h.Quantity
	return EnrichedHolding{
		RawHolding:   h,
		CurrentPrice: currentPrice,
		MarketValue:  marketValue,
		Invested:     invested,
		PnL:          marketValue - invested,
		PnLPct:       (currentPrice/h.AvgBuyPrice - 1) * 100,
	}
}

// Valuate prices every holding with feed. The input is validated up front so
// a bad record never produces a partial result.
func Valuate(raw []RawHolding, feed PriceFeed) ([]EnrichedHolding, error) {
	for _, h := range raw {
		if err := h.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]EnrichedHolding, 0, len(raw))
	for _, h := range raw {
		e := Enrich(h, feed.Next(h))
		if math.IsInf(e.MarketValue, 0) || math.IsInf(e.Invested, 0) {
			return nil, fmt.Errorf("%w: holding %q value overflows", ErrInvalidHolding, h.HoldingID)
		}
		out = append(out, e)
	}
	return out, nil
}

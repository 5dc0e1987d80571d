package analytics

import "fortune/internal/valuation"

// CategoryPnL is the unrealized P&L of the holdings in one category.
type CategoryPnL struct {
	PnL         float64 `json:"pnl"`
	Count       int     `json:"count"`
	MarketValue float64 `json:"mktValue"`
}

// Distribution partitions holdings by the sign of their P&L and groups them
// by category.
type Distribution struct {
	Profitable []valuation.EnrichedHolding        `json:"profitable"`
	Loss       []valuation.EnrichedHolding        `json:"loss"`
	Neutral    []valuation.EnrichedHolding        `json:"neutral"`
	ByCategory map[valuation.Category]CategoryPnL `json:"byCategory"`
}

// Distribute groups holdings. Empty input yields empty, non-nil groups.
func Distribute(holdings []valuation.EnrichedHolding) Distribution {
	d := Distribution{
		Profitable: []valuation.EnrichedHolding{},
		Loss:       []valuation.EnrichedHolding{},
		Neutral:    []valuation.EnrichedHolding{},
		ByCategory: map[valuation.Category]CategoryPnL{},
	}
	for _, h := range holdings {
		switch {
		case h.PnL > 0:
			d.Profitable = append(d.Profitable, h)
		case h.PnL < 0:
			d.Loss = append(d.Loss, h)
		default:
			d.Neutral = append(d.Neutral, h)
		}

		cat := h.Asset.Category.Normalize()
		g := d.ByCategory[cat]
		g.PnL += h.PnL
		g.Count++
		g.MarketValue += h.MarketValue
		d.ByCategory[cat] = g
	}
	return d
}

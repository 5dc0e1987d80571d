package analytics

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"fortune/internal/valuation"
)

const performerLimit = 3

// Summary holds the headline figures of a valuated portfolio.
type Summary struct {
	Holdings      int     `json:"holdings"`
	Invested      float64 `json:"invested"`
	MarketValue   float64 `json:"mktValue"`
	UnrealizedPnL float64 `json:"unrealizedPnl"`
	// UnrealizedPct is UnrealizedPnL over Invested, 0 when nothing is invested.
	UnrealizedPct float64 `json:"unrealizedPct"`
}

// Summarize totals holdings.
func Summarize(holdings []valuation.EnrichedHolding) Summary {
	invested := make([]float64, len(holdings))
	market := make([]float64, len(holdings))
	pnl := make([]float64, len(holdings))
	for i, h := range holdings {
		invested[i] = h.Invested
		market[i] = h.MarketValue
		pnl[i] = h.PnL
	}

	s := Summary{
		Holdings:      len(holdings),
		Invested:      floats.Sum(invested),
		MarketValue:   floats.Sum(market),
		UnrealizedPnL: floats.Sum(pnl),
	}
	if s.Invested != 0 {
		s.UnrealizedPct = s.UnrealizedPnL / s.Invested * 100
	}
	return s
}

// Performers lists the best and worst holdings by P&L percent.
type Performers struct {
	Top   []valuation.EnrichedHolding `json:"top"`
	Under []valuation.EnrichedHolding `json:"under"`
}

// RankPerformers returns up to three top performers (highest pnlPct first) and
// up to three under performers (lowest first). With fewer than six holdings
// a holding can appear in both lists.
func RankPerformers(holdings []valuation.EnrichedHolding) Performers {
	sorted := make([]valuation.EnrichedHolding, len(holdings))
	copy(sorted, holdings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PnLPct > sorted[j].PnLPct })

	n := min(performerLimit, len(sorted))
	p := Performers{
		Top:   append([]valuation.EnrichedHolding{}, sorted[:n]...),
		Under: make([]valuation.EnrichedHolding, 0, n),
	}
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		p.Under = append(p.Under, sorted[i])
	}
	return p
}

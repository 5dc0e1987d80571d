package analytics

import (
	"sort"
	"time"
)

// TradeType is the kind of a realized trade. Only sells close positions.
type TradeType string

const TradeSell TradeType = "SELL"

const (
	monthWindow   = 12
	topAssetLimit = 10
	monthLayout   = "2006-01"
)

// Trade is a realized trade record. Profit is (Sell - Buy) * Qty.
type Trade struct {
	Date   time.Time `json:"date"`
	Symbol string    `json:"symbol"`
	Type   TradeType `json:"type"`
	Qty    float64   `json:"qty"`
	Buy    float64   `json:"buy"`
	Sell   float64   `json:"sell"`
	Profit float64   `json:"profit"`
}

// NewSellTrade builds a SELL record and computes its profit.
func NewSellTrade(date time.Time, symbol string, qty, buy, sell float64) Trade {
	return Trade{
		Date:   date,
		Symbol: symbol,
		Type:   TradeSell,
		Qty:    qty,
		Buy:    buy,
		Sell:   sell,
		Profit: (sell - buy) * qty,
	}
}

// MonthlyPnL is the realized profit booked in one calendar month.
type MonthlyPnL struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
}

// AssetPnL is the realized profit booked on one symbol.
type AssetPnL struct {
	Symbol string  `json:"symbol"`
	Profit float64 `json:"profit"`
	Trades int     `json:"trades"`
}

// RealizedSummary aggregates the trade log.
type RealizedSummary struct {
	TotalRealized float64      `json:"totalRealized"`
	TotalTrades   int          `json:"totalTrades"`
	Monthly       []MonthlyPnL `json:"monthly"`
	TopAssets     []AssetPnL   `json:"topAssets"`
	Wins          int          `json:"wins"`
	Losses        int          `json:"losses"`
	Neutral       int          `json:"neutral"`
	WinRate       float64      `json:"winRate"`
}

// SummarizeRealized aggregates trades relative to now. The monthly series
// always holds the 12 calendar months ending with now's month, oldest first,
// zero-filled. Trades outside the window still count toward every other figure.
func SummarizeRealized(trades []Trade, now time.Time) RealizedSummary {
	months := TrailingMonths(now, monthWindow)
	monthly := make([]MonthlyPnL, len(months))
	index := make(map[string]int, len(months))
	for i, m := range months {
		monthly[i] = MonthlyPnL{Month: m}
		index[m] = i
	}

	summary := RealizedSummary{
		TotalTrades: len(trades),
		Monthly:     monthly,
		TopAssets:   []AssetPnL{},
	}

	bySymbol := make(map[string]*AssetPnL)
	order := make([]string, 0)
	for _, t := range trades {
		summary.TotalRealized += t.Profit

		if i, ok := index[t.Date.In(now.Location()).Format(monthLayout)]; ok {
			monthly[i].Profit += t.Profit
		}

		a, ok := bySymbol[t.Symbol]
		if !ok {
			a = &AssetPnL{Symbol: t.Symbol}
			bySymbol[t.Symbol] = a
			order = append(order, t.Symbol)
		}
		a.Profit += t.Profit
		a.Trades++

		switch {
		case t.Profit > 0:
			summary.Wins++
		case t.Profit < 0:
			summary.Losses++
		default:
			summary.Neutral++
		}
	}

	for _, s := range order {
		summary.TopAssets = append(summary.TopAssets, *bySymbol[s])
	}
	sort.SliceStable(summary.TopAssets, func(i, j int) bool {
		return summary.TopAssets[i].Profit > summary.TopAssets[j].Profit
	})
	if len(summary.TopAssets) > topAssetLimit {
		summary.TopAssets = summary.TopAssets[:topAssetLimit]
	}

	if summary.TotalTrades > 0 {
		summary.WinRate = float64(summary.Wins) / float64(summary.TotalTrades) * 100
	}
	return summary
}

// TrailingMonths returns n "YYYY-MM" keys ending with the month of now,
// oldest first.
func TrailingMonths(now time.Time, n int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = first.AddDate(0, i-n+1, 0).Format(monthLayout)
	}
	return keys
}

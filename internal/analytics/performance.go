package analytics

import (
	"math"

	"fortune/internal/valuation"
)

// RiskFreeRatePct is the annual risk-free rate the Sharpe ratio is measured
// against, in percent.
const RiskFreeRatePct = 6.0

// minVolatilityPct is the volatility below which a Sharpe ratio is reported as 0.
const minVolatilityPct = 0.01

const defaultAnnualVolatilityPct = 15.0

// annualVolatilityPct is the historical annual volatility of each category,
// in percent.
var annualVolatilityPct = map[valuation.Category]float64{
	valuation.CategoryNSE:       18,
	valuation.CategoryMF:        15,
	valuation.CategoryCommodity: 10,
}

// AnnualVolatility returns the annual volatility of a category in percent.
func AnnualVolatility(c valuation.Category) float64 {
	if v, ok := annualVolatilityPct[c.Normalize()]; ok {
		return v
	}
	return defaultAnnualVolatilityPct
}

// ClientPerformance is the book-level view of one client's portfolio.
type ClientPerformance struct {
	PortfolioValue float64 `json:"portfolioValue"`
	InvestedAmount float64 `json:"investedAmount"`
	TotalGain      float64 `json:"totalGain"`
	// TotalReturns is TotalGain over InvestedAmount in percent.
	TotalReturns float64 `json:"totalReturns"`
	SharpeRatio  float64 `json:"sharpeRatio"`
	AssetCount   int     `json:"assetCount"`
}

// Performance measures a client's valuated holdings.
func Performance(holdings []valuation.EnrichedHolding) ClientPerformance {
	s := Summarize(holdings)
	return ClientPerformance{
		PortfolioValue: s.MarketValue,
		InvestedAmount: s.Invested,
		TotalGain:      s.MarketValue - s.Invested,
		TotalReturns:   s.UnrealizedPct,
		SharpeRatio:    SharpeRatio(holdings, s.UnrealizedPct),
		AssetCount:     s.Holdings,
	}
}

// PortfolioVolatility is the value-weighted annual volatility of holdings in
// percent, 0 for a set without market value.
func PortfolioVolatility(holdings []valuation.EnrichedHolding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.MarketValue
	}
	if total == 0 || math.IsInf(total, 0) {
		return 0
	}

	var vol float64
	for _, h := range holdings {
		vol += h.MarketValue / total * AnnualVolatility(h.Asset.Category)
	}
	return vol
}

// SharpeRatio is (returnsPct - RiskFreeRatePct) / volatility. It is 0 for an
// empty or uninvested portfolio and when volatility is negligible.
func SharpeRatio(holdings []valuation.EnrichedHolding, returnsPct float64) float64 {
	if len(holdings) == 0 {
		return 0
	}
	var invested float64
	for _, h := range holdings {
		invested += h.Invested
	}
	if invested == 0 {
		return 0
	}

	vol := PortfolioVolatility(holdings)
	if vol < minVolatilityPct {
		return 0
	}
	return (returnsPct - RiskFreeRatePct) / vol
}

// Allocation returns each category's share of the total market value in
// percent. When the total is zero the raw (zero) values are returned.
func Allocation(holdings []valuation.EnrichedHolding) map[valuation.Category]float64 {
	values := make(map[valuation.Category]float64)
	var total float64
	for _, h := range holdings {
		values[h.Asset.Category.Normalize()] += h.MarketValue
		total += h.MarketValue
	}
	if total == 0 || math.IsInf(total, 0) {
		return values
	}

	pct := make(map[valuation.Category]float64, len(values))
	for c, v := range values {
		pct[c] = v / total * 100
	}
	return pct
}

// FirmKPIs aggregates client performances into firm-wide headline numbers.
type FirmKPIs struct {
	TotalAUM       float64 `json:"totalAUM"`
	ActiveClients  int     `json:"activeClients"`
	AvgReturns     float64 `json:"avgReturns"`
	AvgSharpeRatio float64 `json:"avgSharpeRatio"`
}

// AggregateFirm totals AUM and averages returns and Sharpe ratios over every
// client, including those without holdings.
func AggregateFirm(perfs []ClientPerformance) FirmKPIs {
	k := FirmKPIs{ActiveClients: len(perfs)}
	var returns, sharpe float64
	for _, p := range perfs {
		k.TotalAUM += p.PortfolioValue
		returns += p.TotalReturns
		sharpe += p.SharpeRatio
	}
	n := float64(max(len(perfs), 1))
	k.AvgReturns = returns / n
	k.AvgSharpeRatio = sharpe / n
	return k
}

package analytics

import (
	"math"

	"fortune/internal/valuation"
)

// PortfolioMetrics is one side of a comparison.
type PortfolioMetrics struct {
	Label            string    `json:"label"`
	TotalValue       float64   `json:"totalValue"`
	CommodityValue   float64   `json:"commodityValue"`
	EquityValue      float64   `json:"equityValue"`
	Beta             float64   `json:"beta"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	InsufficientData bool      `json:"insufficientData"`
}

// Comparison pairs the metrics of two holding sets. It does not rank them.
type Comparison struct {
	A PortfolioMetrics `json:"a"`
	B PortfolioMetrics `json:"b"`
}

// Measure computes the comparison metrics of one holding set. A set without
// market value reports beta 1.0 and flags InsufficientData.
func (m RiskModel) Measure(label string, holdings []valuation.EnrichedHolding) PortfolioMetrics {
	pm := PortfolioMetrics{Label: label}
	for _, h := range holdings {
		pm.TotalValue += h.MarketValue
		switch h.Asset.Category.Normalize() {
		case valuation.CategoryCommodity:
			pm.CommodityValue += h.MarketValue
		case valuation.CategoryNSE:
			pm.EquityValue += h.MarketValue
		}
	}
	pm.Beta = m.PortfolioBeta(holdings, 1.0)
	pm.InsufficientData = pm.TotalValue == 0 || math.IsInf(pm.TotalValue, 0)
	pm.RiskLevel = Classify(pm.Beta)
	return pm
}

// Compare measures two independently valuated holding sets.
func (m RiskModel) Compare(labelA string, a []valuation.EnrichedHolding, labelB string, b []valuation.EnrichedHolding) Comparison {
	return Comparison{
		A: m.Measure(labelA, a),
		B: m.Measure(labelB, b),
	}
}

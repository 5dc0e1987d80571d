package analytics

import (
	"fmt"
	"math"
	"sort"

	"fortune/internal/valuation"
)

// RiskLevel classifies a portfolio beta.
type RiskLevel string

const (
	RiskConservative RiskLevel = "CONSERVATIVE"
	RiskModerate     RiskLevel = "MODERATE"
	RiskAggressive   RiskLevel = "AGGRESSIVE"
)

const (
	conservativeBelow = 0.8
	aggressiveAbove   = 1.2

	commodityWarnPct     = 30.0
	unrealizedLossWarn   = 0.10
	concentrationWarnPct = 50.0
)

// Classify maps a beta onto a risk level. Both 0.8 and 1.2 are MODERATE.
func Classify(beta float64) RiskLevel {
	switch {
	case beta < conservativeBelow:
		return RiskConservative
	case beta > aggressiveAbove:
		return RiskAggressive
	default:
		return RiskModerate
	}
}

// Contributor is one holding's share of the weighted beta sum.
type Contributor struct {
	HoldingID    string             `json:"holdingId"`
	Symbol       string             `json:"symbol"`
	Category     valuation.Category `json:"category"`
	MarketValue  float64            `json:"mktValue"`
	Weight       float64            `json:"weight"`
	Contribution float64            `json:"contribution"`
	Percent      float64            `json:"percent"`
}

// Exposure is the market value held in each category. Percent always carries
// the known categories, zero when absent.
type Exposure struct {
	Value   map[valuation.Category]float64 `json:"value"`
	Percent map[valuation.Category]float64 `json:"percent"`
}

// RiskSnapshot is the risk decomposition of one holding set.
type RiskSnapshot struct {
	TotalValue           float64       `json:"totalValue"`
	WeightedBetaSum      float64       `json:"weightedBetaSum"`
	Beta                 float64       `json:"beta"`
	RiskLevel            RiskLevel     `json:"riskLevel"`
	VaR95                float64       `json:"var95"`
	DiversificationScore float64       `json:"diversificationScore"`
	Exposure             Exposure      `json:"exposure"`
	TopContributors      []Contributor `json:"topContributors"`
	Warnings             []string      `json:"warnings"`
	Alerts               []string      `json:"alerts"`
}

// Assess computes the beta, VaR, contributor ranking and category exposure of
// holdings. It returns ErrInsufficientData for an empty or zero-value set.
func (m RiskModel) Assess(holdings []valuation.EnrichedHolding) (*RiskSnapshot, error) {
	if len(holdings) == 0 {
		return nil, fmt.Errorf("%w: no holdings", ErrInsufficientData)
	}

	var totalValue, weightedSum, invested, unrealized float64
	exposure := make(map[valuation.Category]float64, len(valuation.KnownCategories))
	contributors := make([]Contributor, 0, len(holdings))
	for _, h := range holdings {
		cat := h.Asset.Category.Normalize()
		w := m.Weight(cat)
		contribution := h.MarketValue * w

		totalValue += h.MarketValue
		weightedSum += contribution
		invested += h.Invested
		unrealized += h.PnL
		exposure[cat] += h.MarketValue

		contributors = append(contributors, Contributor{
			HoldingID:    h.HoldingID,
			Symbol:       h.Asset.Symbol,
			Category:     cat,
			MarketValue:  h.MarketValue,
			Weight:       w,
			Contribution: contribution,
		})
	}
	if totalValue == 0 {
		return nil, fmt.Errorf("%w: total market value is zero", ErrInsufficientData)
	}
	if math.IsInf(totalValue, 0) || math.IsNaN(totalValue) || math.IsInf(weightedSum, 0) {
		return nil, fmt.Errorf("%w: total market value is not finite", ErrInsufficientData)
	}

	beta := weightedSum / totalValue

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Contribution > contributors[j].Contribution
	})
	for i := range contributors {
		if weightedSum != 0 {
			contributors[i].Percent = contributors[i].Contribution / weightedSum * 100
		}
	}
	if limit := m.ContributorsCap; limit > 0 && len(contributors) > limit {
		contributors = contributors[:limit]
	}

	percent := make(map[valuation.Category]float64, len(exposure))
	for _, c := range valuation.KnownCategories {
		percent[c] = 0
	}
	for c, v := range exposure {
		percent[c] = v / totalValue * 100
	}

	snap := &RiskSnapshot{
		TotalValue:           totalValue,
		WeightedBetaSum:      weightedSum,
		Beta:                 beta,
		RiskLevel:            Classify(beta),
		VaR95:                -(totalValue * m.VaRFactor * beta),
		DiversificationScore: clamp(100-beta*20, 0, 100),
		Exposure:             Exposure{Value: exposure, Percent: percent},
		TopContributors:      contributors,
		Warnings:             []string{},
		Alerts:               []string{},
	}

	if beta > aggressiveAbove {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("High portfolio beta (%.2f) - portfolio is more volatile than the market", beta))
	}
	if p := percent[valuation.CategoryCommodity]; p > commodityWarnPct {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("High commodity exposure (%.1f%%) - consider rebalancing", p))
	}
	if invested > 0 && unrealized < -invested*unrealizedLossWarn {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("Unrealized loss of %.1f%% of invested capital", -unrealized/invested*100))
	}
	for _, c := range sortedCategories(percent) {
		if p := percent[c]; p > concentrationWarnPct {
			snap.Alerts = append(snap.Alerts,
				fmt.Sprintf("Concentration risk: %.1f%% of the portfolio is in %s", p, c))
		}
	}
	return snap, nil
}

// PortfolioBeta returns the weighted beta of holdings, or fallback when the
// set carries no finite market value.
func (m RiskModel) PortfolioBeta(holdings []valuation.EnrichedHolding, fallback float64) float64 {
	var total, weighted float64
	for _, h := range holdings {
		total += h.MarketValue
		weighted += h.MarketValue * m.Weight(h.Asset.Category)
	}
	if total == 0 || math.IsInf(total, 0) || math.IsInf(weighted, 0) {
		return fallback
	}
	return weighted / total
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func sortedCategories[V any](m map[valuation.Category]V) []valuation.Category {
	keys := make([]valuation.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

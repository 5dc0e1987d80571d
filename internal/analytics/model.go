// Package analytics computes portfolio-level risk and performance metrics from
// valuated holdings and from the realized trade log. Every function is a pure
// function of its inputs.
package analytics

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"fortune/internal/valuation"
)

// ErrInsufficientData is returned when a metric cannot be computed without
// dividing by zero, e.g. an empty or zero-value portfolio.
var ErrInsufficientData = errors.New("insufficient data")

const (
	defaultCategoryWeight = 1.0
	defaultVaRFactor      = 0.05
	defaultContributors   = 3
)

// RiskModel holds the parameters of the beta and VaR estimates.
type RiskModel struct {
	// Weights maps a category to its beta weight. Categories absent from the
	// table use DefaultWeight.
	Weights       map[valuation.Category]float64
	DefaultWeight float64
	// VaRFactor is the daily volatility factor of the parametric VaR.
	// Revisions of the dashboard used 0.05 and 0.0165.
	VaRFactor       float64
	ContributorsCap int
}

type riskModelFile struct {
	Weights         map[string]float64 `toml:"weights"`
	DefaultWeight   float64            `toml:"default_weight"`
	VaRFactor       float64            `toml:"var_daily_volatility"`
	ContributorsCap int                `toml:"top_contributors"`
}

// DefaultRiskModel returns the stock weight table.
func DefaultRiskModel() RiskModel {
	return RiskModel{
		Weights: map[valuation.Category]float64{
			valuation.CategoryCommodity: 1.5,
			valuation.CategoryNSE:       1.0,
			valuation.CategoryMF:        0.7,
		},
		DefaultWeight:   defaultCategoryWeight,
		VaRFactor:       defaultVaRFactor,
		ContributorsCap: defaultContributors,
	}
}

// Weight returns the beta weight for a category.
func (m RiskModel) Weight(c valuation.Category) float64 {
	if w, ok := m.Weights[c.Normalize()]; ok {
		return w
	}
	return m.DefaultWeight
}

// LoadRiskModel reads a TOML file over the default model. Keys missing from
// the file keep their default values; weights are merged per category.
//
//	var_daily_volatility = 0.0165
//	[weights]
//	COMMODITY = 1.6
func LoadRiskModel(path string) (RiskModel, error) {
	model := DefaultRiskModel()
	data, err := os.ReadFile(path)
	if err != nil {
		return model, fmt.Errorf("failed to read risk model %s: %w", path, err)
	}

	var file riskModelFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return model, fmt.Errorf("failed to parse risk model %s: %w", path, err)
	}

	for c, w := range file.Weights {
		model.Weights[valuation.Category(c).Normalize()] = w
	}
	if file.DefaultWeight > 0 {
		model.DefaultWeight = file.DefaultWeight
	}
	if file.VaRFactor > 0 {
		model.VaRFactor = file.VaRFactor
	}
	if file.ContributorsCap > 0 {
		model.ContributorsCap = file.ContributorsCap
	}
	return model, model.Validate()
}

// Validate rejects weights and factors that would make the estimates meaningless.
func (m RiskModel) Validate() error {
	for c, w := range m.Weights {
		if w < 0 {
			return fmt.Errorf("negative weight %v for category %s", w, c)
		}
	}
	if m.DefaultWeight < 0 {
		return fmt.Errorf("negative default weight %v", m.DefaultWeight)
	}
	if m.VaRFactor <= 0 || m.VaRFactor >= 1 {
		return fmt.Errorf("var_daily_volatility must be in (0, 1), got %v", m.VaRFactor)
	}
	if m.ContributorsCap <= 0 {
		return fmt.Errorf("top_contributors must be positive, got %d", m.ContributorsCap)
	}
	return nil
}

package valuation

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	commodityVolatility = 0.08
	defaultVolatility   = 0.04

	weeklyStep   = 0.03
	seriesFloor  = 0.1
	seriesLength = 12
)

// PriceFeed produces the current price of a holding's asset.
type PriceFeed interface {
	Next(h RawHolding) float64
}

// VolatilityBound returns the half-width of the uniform noise band for a category.
func VolatilityBound(c Category) float64 {
	if c.Normalize() == CategoryCommodity {
		return commodityVolatility
	}
	return defaultVolatility
}

// NoiseFeed perturbs the average buy price by uniform noise within the
// category's volatility bound. It stands in for a live market feed.
type NoiseFeed struct {
	mu  sync.Mutex
	src rand.Source
}

// NewNoiseFeed returns an unseeded feed; every valuation differs.
func NewNoiseFeed() *NoiseFeed {
	return &NoiseFeed{src: rand.NewPCG(rand.Uint64(), rand.Uint64())}
}

// NewSeededNoiseFeed returns a reproducible feed.
func NewSeededNoiseFeed(seed uint64) *NoiseFeed {
	return &NoiseFeed{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Noise draws n in (-v, +v) for the category.
func (f *NoiseFeed) Noise(c Category) float64 {
	v := VolatilityBound(c)
	f.mu.Lock()
	defer f.mu.Unlock()
	return distuv.Uniform{Min: -v, Max: v, Src: f.src}.Rand()
}

// Next implements PriceFeed.
func (f *NoiseFeed) Next(h RawHolding) float64 {
	return h.AvgBuyPrice * (1 + f.Noise(h.Asset.Category))
}

// FixedFeed prices holdings from a symbol → price table. Symbols missing from
// the table are priced at their average buy price.
type FixedFeed map[string]float64

// Next implements PriceFeed.
func (f FixedFeed) Next(h RawHolding) float64 {
	if p, ok := f[h.Asset.Symbol]; ok {
		return p
	}
	return h.AvgBuyPrice
}

// Series is a labelled price history.
type Series struct {
	Labels []string  `json:"labels"`
	Prices []float64 `json:"prices"`
}

// SyntheticWeeklySeries builds a weekly price path starting at base with
// uniform ±3% steps. Each point is floored at 0.1. A nil src uses the global
// generator.
func SyntheticWeeklySeries(base float64, weeks int, src rand.Source) Series {
	if weeks <= 0 {
		weeks = seriesLength
	}
	step := distuv.Uniform{Min: -weeklyStep, Max: weeklyStep, Src: src}

	s := Series{
		Labels: make([]string, 0, weeks),
		Prices: make([]float64, 0, weeks),
	}
	price := max(base, seriesFloor)
	for i := 0; i < weeks; i++ {
		if i > 0 {
			price = max(price*(1+step.Rand()), seriesFloor)
		}
		s.Labels = append(s.Labels, fmt.Sprintf("W%d", i+1))
		s.Prices = append(s.Prices, price)
	}
	return s
}

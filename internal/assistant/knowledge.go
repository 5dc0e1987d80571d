package assistant

import "strings"

const (
	financialDefinitions = `FINANCIAL DEFINITIONS:
- Portfolio: Collection of investments held by a client
- Asset: Individual investment (stock, commodity, mutual fund)
- Holding: Specific position in an asset
- Unrealized P&L: Gains or losses not yet realized through sale
- Realized P&L: Gains or losses from completed trades
- Beta: Measure of portfolio volatility relative to market (1.0 = market average)
- VaR (Value at Risk): Maximum potential loss at a given confidence level
- Concentration Risk: Over-exposure to a single asset or category`

	riskHeuristics = `RISK HEURISTICS:
- Beta > 1.2: Aggressive portfolio (high volatility)
- Beta 0.8-1.2: Moderate portfolio
- Beta < 0.8: Conservative portfolio
- Commodity exposure > 30%: Higher volatility risk
- Any category > 50%: Concentration risk
- VaR at 95% confidence: 5% chance of loss exceeding the calculated amount`

	portfolioRules = `PORTFOLIO RULES:
- Maximum 5 holdings per category (NSE, MF)
- Maximum 3 holdings in COMMODITY
- Diversification reduces risk
- Regular rebalancing maintains target allocation`

	visualizationSemantics = `VISUALIZATION SEMANTICS:
- Line charts: Show trends over time (performance, value changes)
- Doughnut and pie charts: Show allocation percentages (category distribution)
- Bar charts: Compare values across categories
- Sharp spikes or dips: Volatility events`
)

var chartNotes = map[string]string{
	"line":     "Line charts show trends over time. Look for upward trends (bullish), downward trends (bearish), or volatility spikes.",
	"doughnut": "Doughnut charts show allocation percentages. Large segments indicate concentration risk.",
	"pie":      "Pie charts show allocation percentages. Large segments indicate concentration risk.",
	"bar":      "Bar charts compare values across categories. Higher bars indicate greater exposure or performance.",
}

// Knowledge returns the reference snippets relevant to a question. The
// portfolio rules are always included.
func Knowledge(question, chartType string) string {
	q := strings.ToLower(question)
	var snippets []string

	if containsAny(q, "risk", "var", "volatility", "beta") {
		snippets = append(snippets, riskHeuristics)
	}
	if containsAny(q, "chart", "graph", "visualization", "trend") || chartType != "" {
		snippets = append(snippets, visualizationSemantics)
		if note, ok := chartNotes[strings.ToLower(chartType)]; ok {
			snippets = append(snippets, note)
		}
	}
	if containsAny(q, "asset", "stock", "commodity", "mutual fund", "performance", "p&l", "pnl") {
		snippets = append(snippets, financialDefinitions)
	}
	snippets = append(snippets, portfolioRules)

	return strings.Join(snippets, "\n\n")
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

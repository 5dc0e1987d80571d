package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"fortune/internal/analytics"
	"fortune/internal/valuation"
)

// Currency used to render amounts in prompts.
const Currency = money.USD

// FormatMoney renders amount in Currency, e.g. $1,234.50.
func FormatMoney(amount float64) string {
	cur := money.GetCurrency(Currency)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), Currency).Display()
}

// PortfolioContext renders the analytics of one portfolio as markdown for the
// language model. risk may be nil when the portfolio is empty.
func PortfolioContext(summary analytics.Summary, risk *analytics.RiskSnapshot, performers analytics.Performers) string {
	var b strings.Builder
	b.WriteString("## Portfolio Summary\n")
	fmt.Fprintf(&b, "- Invested: %s\n", FormatMoney(summary.Invested))
	fmt.Fprintf(&b, "- Market value: %s\n", FormatMoney(summary.MarketValue))
	fmt.Fprintf(&b, "- Unrealized P&L: %s (%.2f%%)\n", FormatMoney(summary.UnrealizedPnL), summary.UnrealizedPct)

	if risk == nil {
		b.WriteString("- Holdings: none\n")
		return b.String()
	}

	b.WriteString("\n## Risk\n")
	fmt.Fprintf(&b, "- Beta: %.2f (%s)\n", risk.Beta, risk.RiskLevel)
	fmt.Fprintf(&b, "- 1-day VaR 95%%: %s\n", FormatMoney(risk.VaR95))
	fmt.Fprintf(&b, "- Diversification score: %.0f/100\n", risk.DiversificationScore)

	b.WriteString("\n## Allocation\n")
	for _, c := range sortedCategories(risk.Exposure.Percent) {
		fmt.Fprintf(&b, "- %s: %s (%.1f%%)\n", c, FormatMoney(risk.Exposure.Value[c]), risk.Exposure.Percent[c])
	}

	if len(risk.TopContributors) > 0 {
		b.WriteString("\n## Top Risk Contributors\n")
		for _, c := range risk.TopContributors {
			fmt.Fprintf(&b, "- %s (%s): %.1f%% of risk\n", c.Symbol, c.Category, c.Percent)
		}
	}

	writePerformers(&b, "Top Performers", performers.Top)
	writePerformers(&b, "Under Performers", performers.Under)

	if len(risk.Warnings)+len(risk.Alerts) > 0 {
		b.WriteString("\n## Warnings\n")
		for _, a := range risk.Alerts {
			fmt.Fprintf(&b, "- ALERT: %s\n", a)
		}
		for _, w := range risk.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

func writePerformers(b *strings.Builder, title string, holdings []valuation.EnrichedHolding) {
	if len(holdings) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n", title)
	for _, h := range holdings {
		fmt.Fprintf(b, "- %s: %+.2f%% (%s)\n", h.Asset.Symbol, h.PnLPct, FormatMoney(h.PnL))
	}
}

func sortedCategories(m map[valuation.Category]float64) []valuation.Category {
	out := make([]valuation.Category, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

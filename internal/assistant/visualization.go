package assistant

import (
	"fmt"
	"sort"
	"strings"
)

// Visualization describes the chart the user is looking at.
type Visualization struct {
	ChartType         string         `json:"chartType" binding:"omitempty,chart_type"`
	ChartID           string         `json:"chartId,omitempty"`
	XAxis             string         `json:"xAxis,omitempty"`
	YAxis             string         `json:"yAxis,omitempty"`
	AssetSymbol       string         `json:"assetSymbol,omitempty"`
	TimeRange         string         `json:"timeRange,omitempty"`
	CalculatedMetrics map[string]any `json:"calculatedMetrics,omitempty"`
	HoverData         map[string]any `json:"hoverData,omitempty"`
}

// Strategy explains one kind of chart.
type Strategy interface {
	Supports(chartType string) bool
	Explain(v Visualization, portfolioContext string) string
}

// Strategies are tried in order; the first match wins.
var Strategies = []Strategy{
	barStrategy{},
	lineStrategy{},
	allocationStrategy{},
}

// Explain describes v using the first strategy that supports its chart type.
func Explain(v *Visualization, portfolioContext string) string {
	if v == nil || strings.TrimSpace(v.ChartType) == "" {
		return "## Visualization Context\n\nNo visualization context provided. Please hover over or select a chart to get specific insights."
	}
	for _, s := range Strategies {
		if s.Supports(v.ChartType) {
			return s.Explain(*v, portfolioContext)
		}
	}
	return defaultStrategy{}.Explain(*v, portfolioContext)
}

type barStrategy struct{}

func (barStrategy) Supports(chartType string) bool { return strings.EqualFold(chartType, "bar") }

func (barStrategy) Explain(v Visualization, _ string) string {
	var b strings.Builder
	b.WriteString("## Bar Chart Analysis\n\n")
	fmt.Fprintf(&b, "This bar chart compares **%s** across **%s**.\n\n", or(v.YAxis, "values"), or(v.XAxis, "categories"))
	b.WriteString("**Interpretation:**\n")
	b.WriteString("• **Taller bars**: Indicate higher values or greater exposure\n")
	b.WriteString("• **Shorter bars**: Represent lower values or minimal exposure\n")
	b.WriteString("• **Comparison**: Use to identify top performers or areas needing attention\n\n")
	writeMap(&b, "**Selected Bar Details:**\n", "- %s: %v\n", v.HoverData)
	return b.String()
}

type lineStrategy struct{}

func (lineStrategy) Supports(chartType string) bool { return strings.EqualFold(chartType, "line") }

func (lineStrategy) Explain(v Visualization, portfolioContext string) string {
	var b strings.Builder
	b.WriteString("## Line Chart Analysis\n\n")
	fmt.Fprintf(&b, "This line chart displays **%s** over **%s**.\n\n", or(v.YAxis, "portfolio value"), or(v.XAxis, "time"))
	if writeMap(&b, "**At the selected point:**\n", "- %s: %v\n", v.HoverData) {
		b.WriteString("\n")
	}
	b.WriteString("**What to look for:**\n")
	b.WriteString("• **Upward trends**: Indicate positive performance and growth\n")
	b.WriteString("• **Downward trends**: May signal market corrections or underperformance\n")
	b.WriteString("• **Volatility spikes**: Sharp increases or decreases suggest high-risk periods\n")
	b.WriteString("• **Steady growth**: Consistent upward movement indicates stable performance\n\n")
	if portfolioContext != "" {
		b.WriteString("**Portfolio Context:**\n")
		b.WriteString(portfolioContext)
		b.WriteString("\n")
	}
	return b.String()
}

type allocationStrategy struct{}

func (allocationStrategy) Supports(chartType string) bool {
	return strings.EqualFold(chartType, "doughnut") || strings.EqualFold(chartType, "pie")
}

func (allocationStrategy) Explain(v Visualization, portfolioContext string) string {
	var b strings.Builder
	b.WriteString("## Allocation Chart Analysis\n\n")
	b.WriteString("This doughnut chart shows **portfolio allocation** across different asset categories.\n\n")
	if writeMap(&b, "**Current Allocation:**\n", "• %s: %v%%\n", v.CalculatedMetrics) {
		b.WriteString("\n")
	}
	b.WriteString("**Risk Assessment:**\n")
	b.WriteString("• **Balanced allocation** (30-40% per category): Lower concentration risk\n")
	b.WriteString("• **High concentration** (>50% in one category): Increased volatility risk\n")
	b.WriteString("• **Commodity exposure** >30%: Higher volatility expected\n\n")
	b.WriteString("**Recommendation:**\n")
	b.WriteString("Monitor allocation weekly. Consider rebalancing if any category exceeds 50% of total portfolio value.\n")
	if portfolioContext != "" {
		b.WriteString("\n**Portfolio Context:**\n")
		b.WriteString(portfolioContext)
	}
	return b.String()
}

type defaultStrategy struct{}

func (defaultStrategy) Supports(string) bool { return true }

func (defaultStrategy) Explain(v Visualization, _ string) string {
	return "## Chart Analysis\n\nThis " + v.ChartType + " chart displays portfolio data. Hover over specific data points for detailed insights."
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// writeMap writes m in key order under header. It reports whether anything
// was written.
func writeMap(b *strings.Builder, header, line string, m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(header)
	for _, k := range keys {
		fmt.Fprintf(b, line, k, m[k])
	}
	return true
}

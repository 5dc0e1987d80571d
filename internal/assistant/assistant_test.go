package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"fortune/internal/analytics"
	"fortune/internal/dashboard"
	apperrors "fortune/internal/errors"
	"fortune/internal/logger"
	"fortune/internal/valuation"
)

func init() {
	logger.Init("test")
}

type recordingLLM struct {
	prompt string
	reply  string
	err    error
}

func (r *recordingLLM) Generate(_ context.Context, prompt string) (string, error) {
	r.prompt = prompt
	return r.reply, r.err
}

type stubPortfolios struct {
	holdings []valuation.EnrichedHolding
	err      error
}

func (s stubPortfolios) Portfolio(_ context.Context, clientID string) (*dashboard.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dashboard.Snapshot{ClientID: clientID, Holdings: s.holdings}, nil
}

func (s stubPortfolios) Assess(h []valuation.EnrichedHolding) (*analytics.RiskSnapshot, error) {
	return analytics.DefaultRiskModel().Assess(h)
}

func commodityHeavy() []valuation.EnrichedHolding {
	gold := valuation.RawHolding{HoldingID: "h1", Quantity: 10, AvgBuyPrice: 100,
		Asset: valuation.Asset{Symbol: "GOLD", Category: valuation.CategoryCommodity}}
	tcs := valuation.RawHolding{HoldingID: "h2", Quantity: 1, AvgBuyPrice: 100,
		Asset: valuation.Asset{Symbol: "TCS", Category: valuation.CategoryNSE}}
	return []valuation.EnrichedHolding{valuation.Enrich(gold, 110), valuation.Enrich(tcs, 90)}
}

func TestExplain_StrategySelection(t *testing.T) {
	tests := []struct {
		chartType string
		heading   string
	}{
		{"bar", "## Bar Chart Analysis"},
		{"BAR", "## Bar Chart Analysis"},
		{"line", "## Line Chart Analysis"},
		{"doughnut", "## Allocation Chart Analysis"},
		{"Pie", "## Allocation Chart Analysis"},
		{"scatter", "## Chart Analysis"},
	}
	for _, tt := range tests {
		t.Run(tt.chartType, func(t *testing.T) {
			got := Explain(&Visualization{ChartType: tt.chartType}, "")
			assert.True(t, strings.HasPrefix(got, tt.heading), got)
		})
	}

	assert.Contains(t, Explain(nil, ""), "No visualization context provided")
	assert.Contains(t, Explain(&Visualization{}, ""), "No visualization context provided")
}

func TestExplain_Details(t *testing.T) {
	bar := Explain(&Visualization{ChartType: "bar", XAxis: "category", HoverData: map[string]any{"b": 2, "a": 1}}, "")
	assert.Contains(t, bar, "compares **values** across **category**")
	assert.Less(t, strings.Index(bar, "- a: 1"), strings.Index(bar, "- b: 2"), "hover data is sorted")

	pie := Explain(&Visualization{ChartType: "pie", CalculatedMetrics: map[string]any{"NSE": 60}}, "ctx")
	assert.Contains(t, pie, "• NSE: 60%")
	assert.Contains(t, pie, "**Portfolio Context:**\nctx")
}

func TestKnowledge(t *testing.T) {
	k := Knowledge("What is my beta?", "")
	assert.Contains(t, k, "RISK HEURISTICS")
	assert.Contains(t, k, "PORTFOLIO RULES")
	assert.NotContains(t, k, "VISUALIZATION SEMANTICS")

	k = Knowledge("hello", "line")
	assert.Contains(t, k, "VISUALIZATION SEMANTICS")
	assert.Contains(t, k, "Line charts show trends over time")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,500.00", FormatMoney(1500))
	assert.Equal(t, "$0.46", FormatMoney(0.455))
}

func TestPortfolioContext(t *testing.T) {
	h := commodityHeavy()
	risk, err := analytics.DefaultRiskModel().Assess(h)
	require.NoError(t, err)

	out := PortfolioContext(analytics.Summarize(h), risk, analytics.RankPerformers(h))
	assert.Contains(t, out, "- Market value: $1,190.00")
	assert.Contains(t, out, "(AGGRESSIVE)")
	assert.Contains(t, out, "- COMMODITY: $1,100.00")
	assert.Contains(t, out, "## Top Performers\n- GOLD: +10.00%")
	assert.Contains(t, out, "## Warnings")

	empty := PortfolioContext(analytics.Summary{}, nil, analytics.Performers{})
	assert.Contains(t, empty, "- Holdings: none")
}

func TestChat_WithClient(t *testing.T) {
	llm := &recordingLLM{reply: strings.Repeat("- point\n", 40)}
	svc := NewService(llm, stubPortfolios{holdings: commodityHeavy()})

	resp := svc.Chat(context.Background(), ChatRequest{
		Message:       "What are my risks?",
		ClientID:      "c1",
		Visualization: &Visualization{ChartType: "doughnut"},
	})

	assert.Contains(t, llm.prompt, "BEGIN PORTFOLIO DATA")
	assert.Contains(t, llm.prompt, "## Allocation Chart Analysis")
	assert.Contains(t, llm.prompt, "USER QUESTION: What are my risks?")

	assert.Equal(t, ConfidenceHigh, resp.Confidence)
	assert.Equal(t, TypeAnalytical, resp.Type)
	assert.True(t, strings.HasPrefix(resp.Response, "## Analysis"))
	assert.NotEmpty(t, resp.Insights, "risk alerts become insights")
	assert.Len(t, resp.SuggestedQuestions, 7)
}

func TestChat_NoClient(t *testing.T) {
	llm := &recordingLLM{reply: "## Beta\n\nshort"}
	svc := NewService(llm, stubPortfolios{})

	resp := svc.Chat(context.Background(), ChatRequest{Message: "Explain beta"})

	assert.Contains(t, llm.prompt, "No client selected")
	assert.Equal(t, "## Beta\n\nshort", resp.Response)
	assert.Equal(t, ConfidenceLow, resp.Confidence)
	assert.Empty(t, resp.Insights)
	assert.Equal(t, []string{"Explain portfolio beta", "What is concentration risk?"}, resp.SuggestedQuestions)
}

func TestChat_PortfolioUnavailable(t *testing.T) {
	llm := &recordingLLM{reply: "ok"}
	svc := NewService(llm, stubPortfolios{err: apperrors.ErrClientNotFound})

	svc.Chat(context.Background(), ChatRequest{Message: "hi", ClientID: "missing"})
	assert.Contains(t, llm.prompt, "temporarily unavailable")
}

func TestChat_LLMFailure(t *testing.T) {
	svc := NewService(&recordingLLM{err: errors.New("quota exceeded")}, nil)

	resp := svc.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.True(t, strings.HasPrefix(resp.Response, "## Error\n\n"))
	assert.Equal(t, ConfidenceLow, resp.Confidence)
	assert.Equal(t, TypeInformational, resp.Type)
	assert.NotEmpty(t, resp.SuggestedQuestions)
}

func TestChat_EchoFallback(t *testing.T) {
	svc := NewService(nil, stubPortfolios{holdings: commodityHeavy()})

	resp := svc.Chat(context.Background(), ChatRequest{Message: "summary please", ClientID: "c1"})
	assert.Equal(t, TypeInformational, resp.Type)
	assert.Contains(t, resp.Response, "No AI model is configured")
	assert.Contains(t, resp.Response, "Market value: $1,190.00")
	assert.NotContains(t, resp.Response, "USER QUESTION")
}

func TestExtractText(t *testing.T) {
	_, err := extractText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoContent)

	text, err := extractText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "## A"}, {Text: "\nB"}}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "## A\nB", text)
}

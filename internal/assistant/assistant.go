// Package assistant answers relationship-manager questions about a portfolio
// and the charts on screen, grounding a language model in the analytics.
package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"fortune/internal/analytics"
	"fortune/internal/dashboard"
	"fortune/internal/logger"
	"fortune/internal/valuation"
)

// Confidence of a chat answer.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// ResponseType classifies a chat answer.
type ResponseType string

const (
	TypeInformational ResponseType = "INFORMATIONAL"
	TypeAnalytical    ResponseType = "ANALYTICAL"
	TypeExperimental  ResponseType = "EXPERIMENTAL"
)

const (
	contextMarker  = "CONTEXT / PORTFOLIO DATA:\n"
	questionMarker = "\n\nUSER QUESTION: "
)

// ChatRequest is a question from the dashboard.
type ChatRequest struct {
	Message       string         `json:"message" binding:"required,max=2000"`
	ClientID      string         `json:"clientId,omitempty"`
	Visualization *Visualization `json:"visualizationContext,omitempty"`
	CurrentPage   string         `json:"currentPage,omitempty"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Response           string       `json:"response"`
	Confidence         Confidence   `json:"confidence"`
	Type               ResponseType `json:"type"`
	Insights           []string     `json:"insights"`
	Explanation        string       `json:"explanation"`
	SuggestedQuestions []string     `json:"suggestedQuestions"`
}

// Portfolios supplies valued holdings and their risk.
type Portfolios interface {
	Portfolio(ctx context.Context, clientID string) (*dashboard.Snapshot, error)
	Assess(holdings []valuation.EnrichedHolding) (*analytics.RiskSnapshot, error)
}

// Service answers chat requests.
type Service struct {
	llm        LLM
	portfolios Portfolios
	log        *zap.SugaredLogger
}

// NewService creates a Service. A nil llm falls back to EchoLLM.
func NewService(llm LLM, portfolios Portfolios) *Service {
	if llm == nil {
		llm = EchoLLM{}
	}
	return &Service{llm: llm, portfolios: portfolios, log: logger.Named("assistant")}
}

// Chat answers req. Failures never surface as errors; they produce a LOW
// confidence informational answer instead.
func (s *Service) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	portfolioCtx, warnings := s.portfolioContext(ctx, req.ClientID)

	var sections []string
	chartType := ""
	if req.Visualization != nil {
		chartType = req.Visualization.ChartType
		sections = append(sections, Explain(req.Visualization, portfolioCtx))
	}
	sections = append(sections, portfolioCtx)
	if req.CurrentPage != "" {
		sections = append(sections, "**Current Page:** "+req.CurrentPage)
	}
	fullContext := Knowledge(req.Message, chartType) + "\n\n" + strings.Join(sections, "\n\n")

	text, err := s.llm.Generate(ctx, buildPrompt(req.Message, fullContext))
	if err != nil {
		s.log.Warnw("language model call failed", "error", err)
		resp := errorResponse("I'm currently unable to process your request. Please try again in a moment, or rephrase your question.")
		resp.SuggestedQuestions = suggestedQuestions(req)
		return resp
	}

	resp := ChatResponse{
		Response:           formatResponse(text),
		Confidence:         estimateConfidence(text),
		Type:               TypeAnalytical,
		Insights:           warnings,
		Explanation:        "Generated from portfolio analytics",
		SuggestedQuestions: suggestedQuestions(req),
	}
	if _, ok := s.llm.(EchoLLM); ok {
		resp.Type = TypeInformational
		resp.Explanation = "No language model configured"
	}
	if resp.Insights == nil {
		resp.Insights = []string{}
	}
	return resp
}

// portfolioContext renders the client's analytics, along with its alerts and
// warnings for the insights list.
func (s *Service) portfolioContext(ctx context.Context, clientID string) (string, []string) {
	if clientID == "" || s.portfolios == nil {
		return "(No client selected. Suggest selecting a client for portfolio-specific answers.)", nil
	}

	snap, err := s.portfolios.Portfolio(ctx, clientID)
	if err != nil {
		s.log.Warnw("portfolio context unavailable", "client_id", clientID, "error", err)
		return "(Portfolio data temporarily unavailable for this client.)", nil
	}

	// An empty portfolio has no risk snapshot; the summary still renders.
	risk, _ := s.portfolios.Assess(snap.Holdings)

	var insights []string
	if risk != nil {
		insights = append(insights, risk.Alerts...)
		insights = append(insights, risk.Warnings...)
	}

	body := PortfolioContext(analytics.Summarize(snap.Holdings), risk, analytics.RankPerformers(snap.Holdings))
	return "--- BEGIN PORTFOLIO DATA ---\n" + body + "--- END PORTFOLIO DATA ---", insights
}

func buildPrompt(message, data string) string {
	var b strings.Builder
	b.WriteString("You are a portfolio analyst assistant. Give crisp, short answers. ")
	b.WriteString("Use bullet points; avoid long paragraphs. Never give financial advice.\n\n")
	b.WriteString("If PORTFOLIO DATA is provided below, use it to give specific risks, numbers and insights. ")
	b.WriteString("Reference actual figures (allocation %, beta, P&L) from the data.\n\n")
	b.WriteString("Keep it under 150 words, 3-5 bullets, one ## heading.\n\n")
	if data != "" {
		b.WriteString(contextMarker)
		b.WriteString(data)
	}
	b.WriteString(questionMarker)
	b.WriteString(message)
	b.WriteString("\n\nReply concisely using the data above when provided. Main point first, then bullet insights.")
	return b.String()
}

func estimateConfidence(text string) Confidence {
	switch {
	case len(text) > 200 && (strings.Contains(text, "•") || strings.Contains(text, "- ")):
		return ConfidenceHigh
	case len(text) > 100:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func formatResponse(text string) string {
	if !strings.Contains(text, "##") {
		return "## Analysis\n\n" + text
	}
	return text
}

func suggestedQuestions(req ChatRequest) []string {
	var qs []string
	if req.Visualization != nil {
		qs = append(qs,
			"What does this chart tell me about my portfolio?",
			"Are there any anomalies in this visualization?",
		)
	}
	if req.ClientID != "" {
		qs = append(qs,
			"What are the main risks in this portfolio?",
			"Which assets are performing best?",
			"Should I rebalance this portfolio?",
		)
	}
	return append(qs, "Explain portfolio beta", "What is concentration risk?")
}

func errorResponse(message string) ChatResponse {
	return ChatResponse{
		Response:    "## Error\n\n" + message,
		Confidence:  ConfidenceLow,
		Type:        TypeInformational,
		Insights:    []string{},
		Explanation: "Error response",
	}
}

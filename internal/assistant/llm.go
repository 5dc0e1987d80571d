package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// LLM generates a completion for a prompt.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoContent is returned when the model answers with no text.
var ErrNoContent = errors.New("no content generated")

// GeminiLLM calls the Gemini API.
type GeminiLLM struct {
	client *genai.Client
	model  string
}

// NewGeminiLLM creates a Gemini-backed LLM.
func NewGeminiLLM(ctx context.Context, apiKey, model string) (*GeminiLLM, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiLLM{client: client, model: model}, nil
}

// Generate implements LLM.
func (g *GeminiLLM) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(result)
}

func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrNoContent
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrNoContent
	}
	return b.String(), nil
}

// EchoLLM answers without a model by returning the context section of the
// prompt. It is used when no API key is configured.
type EchoLLM struct{}

// Generate implements LLM.
func (EchoLLM) Generate(_ context.Context, prompt string) (string, error) {
	_, rest, found := strings.Cut(prompt, contextMarker)
	if !found {
		return "## Portfolio Assistant\n\nNo AI model is configured. Ask about a selected client to see their analytics.", nil
	}
	body, _, _ := strings.Cut(rest, questionMarker)
	return "## Portfolio Assistant\n\nNo AI model is configured; here is the data on file.\n\n" + strings.TrimSpace(body), nil
}

// Package advisor generates spending advice with Google's Gemini models.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// errEmptyReply is returned when the model answers with no text.
var errEmptyReply = errors.New("model returned no text")

// contentGenerator is the part of *genai.Models the advisor uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini is a core.TextGenerator backed by the Gemini API.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini API client authenticated with apiKey.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{models: models, model: model}
}

// Generate sends prompt as a single user turn and returns the reply text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errEmptyReply
	}
	return text, nil
}

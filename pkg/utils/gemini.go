package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-pro"

// GeminiTextGenerator calls Google's Gemini models.
type GeminiTextGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiTextGenerator(ctx context.Context, apiKey, model string) (*GeminiTextGenerator, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiTextGenerator) Model() string { return g.model }

func (g *GeminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrGeneratorFailure, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyGeneration
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", ErrEmptyGeneration
	}
	return out.String(), nil
}

func (g *GeminiTextGenerator) Close() error {
	return g.client.Close()
}

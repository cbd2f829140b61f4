package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface is the external generative text service: one prompt
// in, one text blob out. Implementations make no promise about the shape of
// the returned text.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// NewTextGenerator picks the implementation for cfg.Provider.
func NewTextGenerator(ctx context.Context, cfg GeneratorConfig) (TextGeneratorInterface, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing API key for %s text generator", cfg.Provider)
	}

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAITextGenerator(cfg.APIKey, cfg.Model), nil
	case "gemini":
		client, err := NewGeminiTextGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported text generator provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenerator calls the chat completions API.
type OpenAITextGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAITextGenerator(apiKey, model string) *OpenAITextGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAITextGenerator) Model() string { return o.model }

func (o *OpenAITextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrGeneratorFailure, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyGeneration
	}
	return resp.Choices[0].Message.Content, nil
}

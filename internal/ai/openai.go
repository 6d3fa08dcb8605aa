package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAIGenerator talks to any OpenAI compatible endpoint.
type openAIGenerator struct {
	api *openai.Client
}

func NewOpenAIGenerator(baseURL, apiKey string) TextGenerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &openAIGenerator{api: openai.NewClientWithConfig(config)}
}

func (g *openAIGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("LLM API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *openAIGenerator) Close() error { return nil }

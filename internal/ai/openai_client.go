package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Vovarama1992/assistbot/internal/logging"
)

var ErrEmptyChoices = errors.New("completion returned no choices")

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds the adapter. baseURL may be empty to use the
// public API.
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) Result {
	logger := logging.Component("ai")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("model", c.model).Msg("openai request failed")
		return Failure(fmt.Errorf("openai: %w", err))
	}

	if len(resp.Choices) == 0 {
		logger.Error().Str("model", c.model).Msg("empty choices")
		return Failure(ErrEmptyChoices)
	}

	raw := resp.Choices[0].Message.Content
	logger.Debug().Int("chars", len(raw)).Msg("completion received")

	return Success(raw)
}

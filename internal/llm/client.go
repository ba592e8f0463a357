// Package llm — клиент OpenAI-совместимого API для демонстрационного
// агента. Через BaseURL работает и с Ollama.
package llm

import (
	"context"
	"errors"

	"mcpizza/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	rateLimiter *RateLimiter
}

func NewClient(cfg config.OpenAI) *Client {
	clientCfg := openai.DefaultConfig(cfg.KeyAI)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		rateLimiter: NewRateLimiter(60, 90000),
	}
}

// Chat выполняет один ход диалога с инструментами. Возвращает
// сообщение ассистента; вызовы инструментов разбирает вызывающий.
func (c *Client) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	if err := c.rateLimiter.AllowRequest(ctx); err != nil {
		return openai.ChatCompletionMessage{}, err
	}

	// Грубая оценка: ~4 символа на токен
	estimatedTokens := c.maxTokens
	for _, msg := range messages {
		estimatedTokens += len(msg.Content) / 4
	}
	if err := c.rateLimiter.AllowTokens(ctx, estimatedTokens); err != nil {
		return openai.ChatCompletionMessage{}, err
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		Tools:     tools,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, err
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("пустой ответ модели")
	}

	if resp.Usage.TotalTokens > estimatedTokens {
		c.rateLimiter.ConsumeTokens(resp.Usage.TotalTokens - estimatedTokens)
	}
	return resp.Choices[0].Message, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/yaronha/demo-llm-agent/pkg/config"
)

// Client wraps a language model behind a single-prompt completion call.
// The underlying provider is selected by configuration.
type Client struct {
	model       llms.Model
	temperature float64
}

// NewClient builds a client for the configured provider.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	var (
		model llms.Model
		err   error
	)

	switch cfg.Provider {
	case "", "openai":
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		model, err = openai.New(opts...)
	case "ollama":
		model, err = ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.OllamaURL),
		)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm provider: %w", err)
	}

	return &Client{model: model, temperature: cfg.Temperature}, nil
}

// NewClientFromModel wraps an existing model. Used by tests.
func NewClientFromModel(model llms.Model, temperature float64) *Client {
	return &Client{model: model, temperature: temperature}
}

// Generate runs a single completion for prompt and returns the raw text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	answer, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	return answer, nil
}

// Embedder returns an embedder backed by the same provider, for use by the
// vector store. Not every provider supports embeddings.
func (c *Client) Embedder() (embeddings.Embedder, error) {
	ec, ok := c.model.(embeddings.EmbedderClient)
	if !ok {
		return nil, errors.New("llm provider does not support embeddings")
	}
	embedder, err := embeddings.NewEmbedder(ec)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return embedder, nil
}

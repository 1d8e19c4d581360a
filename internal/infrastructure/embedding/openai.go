package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	BaseURL    string // e.g. "https://api.openai.com/v1" or a local server
	APIKey     string // optional for local endpoints
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// OpenAIBackend calls an OpenAI-compatible /embeddings endpoint.
type OpenAIBackend struct {
	client     *openai.Client
	model      string
	maxRetries int
	backoff    time.Duration
}

func NewOpenAIBackend(cfg OpenAIConfig) (*OpenAIBackend, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("embedding base url is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("embedding model is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIBackend{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
	}, nil
}

// OpenAILoader builds the client and probes the endpoint once.
func OpenAILoader(cfg OpenAIConfig) Loader {
	return func(ctx context.Context) (Backend, error) {
		b, err := NewOpenAIBackend(cfg)
		if err != nil {
			return nil, err
		}
		if _, err := b.Embed(ctx, "warmup"); err != nil {
			return nil, fmt.Errorf("probe embedding endpoint: %w", err)
		}
		return b, nil
	}
}

func (b *OpenAIBackend) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error
	for i := 0; i < b.maxRetries; i++ {
		resp, err := b.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(b.model),
			Input: []string{text},
		})
		if err == nil {
			if len(resp.Data) == 0 {
				return nil, errors.New("no embedding data in response")
			}
			return resp.Data[0].Embedding, nil
		}
		lastErr = err

		// don't sleep after last attempt
		if i < b.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(b.backoff * time.Duration(i+1)):
			}
		}
	}
	return nil, fmt.Errorf("create embeddings after %d attempts: %w", b.maxRetries, lastErr)
}

// ABOUTME: OpenAI-backed embedder with retry and exponential backoff
// ABOUTME: Requests 384-dimensional text-embedding-3-small vectors
package embed

import (
	"context"
	"fmt"
	"time"

	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/coursekit/lessonsearch/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultEmbeddingModel is the model used when none is configured.
const DefaultEmbeddingModel = openai.SmallEmbedding3

// OpenAIConfig holds configuration for the OpenAI embedder.
type OpenAIConfig struct {
	APIKey     string
	Model      openai.EmbeddingModel
	Dimension  int
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultOpenAIConfig returns the default embedder configuration.
func DefaultOpenAIConfig(apiKey string) *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:     apiKey,
		Model:      DefaultEmbeddingModel,
		Dimension:  models.EmbeddingDimension,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
	}
}

// OpenAIEmbedder generates real embeddings via the OpenAI API. It requests
// vectors truncated to the configured dimension so results are
// interchangeable with the mock embedder's.
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dim        int
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIEmbedder creates an embedder with default configuration.
func NewOpenAIEmbedder(apiKey string) (*OpenAIEmbedder, error) {
	return NewOpenAIEmbedderWithConfig(DefaultOpenAIConfig(apiKey))
}

// NewOpenAIEmbedderWithConfig creates an embedder with custom configuration.
func NewOpenAIEmbedderWithConfig(cfg *OpenAIConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(cfg.APIKey),
		model:      cfg.Model,
		dim:        cfg.Dimension,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Embed generates an embedding vector, retrying transient failures with
// exponential backoff.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(e.retryDelay, attempt)):
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
		resp, err := e.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequestStrings{
			Input:      []string{text},
			Model:      e.model,
			Dimensions: e.dim,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", e.maxRetries+1, lastErr)
}

// Dimension returns the configured vector length.
func (e *OpenAIEmbedder) Dimension() int {
	return e.dim
}

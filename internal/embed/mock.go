// ABOUTME: Mock embedder returning uniform random vectors with fake latency
// ABOUTME: Placeholder for a real embedding model; scores it feeds are not semantic
package embed

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/coursekit/lessonsearch/internal/models"
)

const (
	mockMinDelay = 40 * time.Millisecond
	mockMaxDelay = 120 * time.Millisecond
)

// MockEmbedder returns uniformly distributed random values in [-0.5, 0.5)
// regardless of the input text, after a randomized delay that stands in for
// network latency. The cosine scores it produces are NOT real semantic
// similarity; swap in the OpenAI embedder for meaningful ranking.
type MockEmbedder struct {
	dim      int
	minDelay time.Duration
	maxDelay time.Duration
}

// NewMockEmbedder creates a mock embedder at the standard dimension.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{
		dim:      models.EmbeddingDimension,
		minDelay: mockMinDelay,
		maxDelay: mockMaxDelay,
	}
}

// NewMockEmbedderWithDelay creates a mock embedder with a custom latency
// window (zero delays make tests instant).
func NewMockEmbedderWithDelay(minDelay, maxDelay time.Duration) *MockEmbedder {
	return &MockEmbedder{
		dim:      models.EmbeddingDimension,
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Embed returns a random vector after the simulated latency, or the
// context's error if the caller cancels first.
func (e *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if delay := e.pickDelay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	vector := make([]float64, e.dim)
	for i := range vector {
		vector[i] = rand.Float64() - 0.5
	}
	return vector, nil
}

// Dimension returns the fixed vector length.
func (e *MockEmbedder) Dimension() int {
	return e.dim
}

func (e *MockEmbedder) pickDelay() time.Duration {
	if e.maxDelay <= e.minDelay {
		return e.minDelay
	}
	return e.minDelay + time.Duration(rand.Int64N(int64(e.maxDelay-e.minDelay)))
}

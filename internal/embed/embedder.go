// ABOUTME: Embedder interface for turning text into fixed-length vectors
// ABOUTME: Implemented by the mock random embedder and the OpenAI client
package embed

import "context"

// Embedder produces a fixed-length vector for a text string. Embed blocks
// until the vector is ready and honors context cancellation, so callers can
// abandon an in-flight search when a newer query supersedes it.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Dimension() int
}

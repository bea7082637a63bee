// ABOUTME: Content-hash cache wrapping any embedder
// ABOUTME: Avoids recomputing vectors for previously embedded text
package embed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// CachedEmbedder memoizes vectors by content hash. Embedding calls are the
// expensive step against a real model, so identical text is only embedded
// once per process.
type CachedEmbedder struct {
	inner   Embedder
	mu      sync.RWMutex
	vectors map[string][]float64
}

// NewCachedEmbedder wraps an embedder with an in-memory vector cache.
func NewCachedEmbedder(inner Embedder) *CachedEmbedder {
	return &CachedEmbedder{
		inner:   inner,
		vectors: make(map[string][]float64),
	}
}

// Embed returns the cached vector for the text if present, otherwise
// delegates to the wrapped embedder and stores the result.
func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	key := contentHash(text)

	c.mu.RLock()
	cached, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return copyVector(cached), nil
	}

	vector, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = copyVector(vector)
	c.mu.Unlock()

	return vector, nil
}

// Dimension returns the wrapped embedder's vector length.
func (c *CachedEmbedder) Dimension() int {
	return c.inner.Dimension()
}

// Size returns the number of cached vectors.
func (c *CachedEmbedder) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func copyVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// ABOUTME: Cosine similarity scoring over indexed transcript chunks
// ABOUTME: Threshold filter plus stable descending sort by confidence
package search

import (
	"math"
	"sort"

	"github.com/coursekit/lessonsearch/internal/models"
)

// scoredChunk pairs a chunk with its similarity to the query vector.
type scoredChunk struct {
	chunk models.TranscriptChunk
	score float64
}

// scoreChunks computes cosine similarity between the query vector and each
// chunk, keeps chunks scoring at or above the threshold, and sorts them
// descending by score. The sort is stable so ties keep scan order.
func scoreChunks(chunks []models.TranscriptChunk, queryVector []float64, threshold float64) []scoredChunk {
	var scored []scoredChunk
	for _, chunk := range chunks {
		score := CosineSimilarity(queryVector, chunk.Vector)
		if score >= threshold {
			scored = append(scored, scoredChunk{chunk: chunk, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored
}

// CosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths and zero-magnitude vectors score 0 rather than
// producing NaN from a zero division.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

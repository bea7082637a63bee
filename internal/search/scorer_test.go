// ABOUTME: Tests for cosine similarity and chunk scoring
// ABOUTME: Verifies math edge cases, threshold filtering, and ordering
package search

import (
	"math"
	"testing"

	"github.com/coursekit/lessonsearch/internal/models"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 2, 3},
			want: 1.0,
		},
		{
			name: "orthogonal vectors",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 0.0,
		},
		{
			name: "opposite vectors",
			a:    []float64{1, 0},
			b:    []float64{-1, 0},
			want: -1.0,
		},
		{
			name: "scaled vectors",
			a:    []float64{1, 1},
			b:    []float64{5, 5},
			want: 1.0,
		},
		{
			name: "mismatched lengths",
			a:    []float64{1, 2},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
		{
			name: "zero vector",
			a:    []float64{0, 0, 0},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %f, want %f", got, tt.want)
			}
			if math.IsNaN(got) {
				t.Error("CosineSimilarity() returned NaN")
			}
		})
	}
}

func TestScoreChunks(t *testing.T) {
	query := []float64{1, 0, 0}
	chunks := []models.TranscriptChunk{
		{ID: 1, Vector: []float64{0, 1, 0}},          // score 0
		{ID: 2, Vector: []float64{1, 0, 0}},          // score 1
		{ID: 3, Vector: []float64{0.8, 0.6, 0}},      // score 0.8
		{ID: 4, Vector: []float64{0.6, 0.8, 0}},      // score 0.6
		{ID: 5, Vector: []float64{0.5, 0.8660254, 0}}, // score 0.5
	}

	scored := scoreChunks(chunks, query, 0.55)

	if len(scored) != 3 {
		t.Fatalf("Expected 3 chunks at or above threshold, got %d", len(scored))
	}

	wantOrder := []int64{2, 3, 4}
	for i, sc := range scored {
		if sc.chunk.ID != wantOrder[i] {
			t.Errorf("Position %d has chunk %d, want %d", i, sc.chunk.ID, wantOrder[i])
		}
	}
}

func TestScoreChunks_StableTies(t *testing.T) {
	query := []float64{1, 0}
	chunks := []models.TranscriptChunk{
		{ID: 10, Vector: []float64{1, 0}},
		{ID: 20, Vector: []float64{2, 0}},
		{ID: 30, Vector: []float64{3, 0}},
	}

	scored := scoreChunks(chunks, query, 0.5)

	wantOrder := []int64{10, 20, 30}
	for i, sc := range scored {
		if sc.chunk.ID != wantOrder[i] {
			t.Errorf("Tie broken out of scan order: position %d has chunk %d", i, sc.chunk.ID)
		}
	}
}

func TestScoreChunks_Empty(t *testing.T) {
	if scored := scoreChunks(nil, []float64{1, 0}, 0.5); len(scored) != 0 {
		t.Errorf("Expected no scored chunks, got %d", len(scored))
	}
}

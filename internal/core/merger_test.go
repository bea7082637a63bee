// ABOUTME: Tests for merging time-adjacent result chunks
// ABOUTME: Verifies gap threshold, lesson isolation, and single-pass behavior
package core

import (
	"testing"

	"github.com/coursekit/lessonsearch/internal/models"
)

func snippet(lessonID string, start, end int, text string) models.RankedSnippet {
	return models.RankedSnippet{
		LessonID:     lessonID,
		StartSeconds: start,
		EndSeconds:   end,
		Text:         text,
	}
}

func TestMergeAdjacent_WithinWindow(t *testing.T) {
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 10, "first part"),
		snippet("lesson-1", 15, 20, "second part"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged result, got %d", len(merged))
	}
	if merged[0].Text != "first part second part" {
		t.Errorf("Text = %q", merged[0].Text)
	}
	if merged[0].StartSeconds != 0 || merged[0].EndSeconds != 20 {
		t.Errorf("Range = %d-%d, want 0-20", merged[0].StartSeconds, merged[0].EndSeconds)
	}
}

func TestMergeAdjacent_GapTooLarge(t *testing.T) {
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 10, "first"),
		snippet("lesson-1", 16, 20, "second"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 2 {
		t.Fatalf("Expected 2 results for a 6 second gap, got %d", len(merged))
	}
}

func TestMergeAdjacent_DifferentLessons(t *testing.T) {
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 10, "first"),
		snippet("lesson-2", 10, 20, "second"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 2 {
		t.Fatalf("Chunks from different lessons must not merge, got %d results", len(merged))
	}
}

func TestMergeAdjacent_KeepsFirstChunkMetadata(t *testing.T) {
	first := snippet("lesson-1", 0, 10, "first")
	first.Confidence = 0.91
	first.Snippet = "**first** snippet"
	second := snippet("lesson-1", 12, 18, "second")
	second.Confidence = 0.75
	second.Snippet = "other snippet"

	merged := MergeAdjacent([]models.RankedSnippet{first, second})

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged result, got %d", len(merged))
	}
	if merged[0].Confidence != 0.91 {
		t.Errorf("Confidence = %f, want the first chunk's 0.91", merged[0].Confidence)
	}
	if merged[0].Snippet != "**first** snippet" {
		t.Errorf("Snippet = %q, want the first chunk's", merged[0].Snippet)
	}
}

func TestMergeAdjacent_EndTimeNeverShrinks(t *testing.T) {
	// The second chunk is fully contained in the first one's range.
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 30, "outer"),
		snippet("lesson-1", 5, 12, "inner"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged result, got %d", len(merged))
	}
	if merged[0].EndSeconds != 30 {
		t.Errorf("EndSeconds = %d, want 30", merged[0].EndSeconds)
	}
}

func TestMergeAdjacent_SinglePass(t *testing.T) {
	// The third chunk is adjacent to the first but not to the second.
	// After the pass moves on, it is never re-merged with the first.
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 10, "a"),
		snippet("lesson-1", 100, 110, "b"),
		snippet("lesson-1", 12, 14, "c"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 3 {
		t.Fatalf("Expected 3 results from a single left-to-right pass, got %d", len(merged))
	}
}

func TestMergeAdjacent_Chain(t *testing.T) {
	results := []models.RankedSnippet{
		snippet("lesson-1", 0, 10, "a"),
		snippet("lesson-1", 12, 22, "b"),
		snippet("lesson-1", 25, 30, "c"),
	}

	merged := MergeAdjacent(results)

	if len(merged) != 1 {
		t.Fatalf("Expected chained merge into 1 result, got %d", len(merged))
	}
	if merged[0].Text != "a b c" {
		t.Errorf("Text = %q, want %q", merged[0].Text, "a b c")
	}
	if merged[0].EndSeconds != 30 {
		t.Errorf("EndSeconds = %d, want 30", merged[0].EndSeconds)
	}
}

func TestMergeAdjacent_Empty(t *testing.T) {
	if merged := MergeAdjacent(nil); len(merged) != 0 {
		t.Errorf("Expected no results, got %d", len(merged))
	}
}

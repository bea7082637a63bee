// ABOUTME: Tests for query log analytics
// ABOUTME: Verifies totals, unique users, normalization, and popularity order
package search

import (
	"fmt"
	"testing"

	"github.com/coursekit/lessonsearch/internal/models"
)

func logEntry(userID, courseID, query string) models.QueryLogEntry {
	return models.QueryLogEntry{UserID: userID, CourseID: courseID, QueryText: query}
}

func TestSummarize(t *testing.T) {
	entries := []models.QueryLogEntry{
		logEntry("user-1", "", "Closures"),
		logEntry("user-2", "", "closures "),
		logEntry("user-1", "", "recursion"),
		logEntry("user-3", "", "CLOSURES"),
	}

	got := summarize(entries, "")

	if got.TotalSearches != 4 {
		t.Errorf("TotalSearches = %d, want 4", got.TotalSearches)
	}
	if got.UniqueUsers != 3 {
		t.Errorf("UniqueUsers = %d, want 3", got.UniqueUsers)
	}
	if len(got.PopularQueries) != 2 {
		t.Fatalf("PopularQueries has %d entries, want 2", len(got.PopularQueries))
	}

	// Case and surrounding whitespace fold into one query string.
	if got.PopularQueries[0].Query != "closures" || got.PopularQueries[0].Count != 3 {
		t.Errorf("Top query = %+v, want closures x3", got.PopularQueries[0])
	}
	if got.PopularQueries[1].Query != "recursion" || got.PopularQueries[1].Count != 1 {
		t.Errorf("Second query = %+v, want recursion x1", got.PopularQueries[1])
	}
}

func TestSummarize_CourseFilter(t *testing.T) {
	entries := []models.QueryLogEntry{
		logEntry("user-1", "course-1", "arrays"),
		logEntry("user-2", "course-2", "slices"),
		logEntry("user-2", "course-1", "arrays"),
	}

	got := summarize(entries, "course-1")

	if got.TotalSearches != 2 {
		t.Errorf("TotalSearches = %d, want 2", got.TotalSearches)
	}
	if got.UniqueUsers != 2 {
		t.Errorf("UniqueUsers = %d, want 2", got.UniqueUsers)
	}
	if len(got.PopularQueries) != 1 || got.PopularQueries[0].Query != "arrays" {
		t.Errorf("PopularQueries = %+v, want only arrays", got.PopularQueries)
	}
}

func TestSummarize_AnonymousUsersNotCounted(t *testing.T) {
	entries := []models.QueryLogEntry{
		logEntry("", "", "anonymous query"),
		logEntry("user-1", "", "named query"),
	}

	got := summarize(entries, "")

	if got.TotalSearches != 2 {
		t.Errorf("TotalSearches = %d, want 2", got.TotalSearches)
	}
	if got.UniqueUsers != 1 {
		t.Errorf("UniqueUsers = %d, want 1", got.UniqueUsers)
	}
}

func TestSummarize_TopTenCutoff(t *testing.T) {
	var entries []models.QueryLogEntry
	for i := 0; i < 12; i++ {
		query := fmt.Sprintf("query-%02d", i)
		// query-00 appears most often, query-11 least.
		for j := 0; j < 12-i; j++ {
			entries = append(entries, logEntry("user-1", "", query))
		}
	}

	got := summarize(entries, "")

	if len(got.PopularQueries) != 10 {
		t.Fatalf("PopularQueries has %d entries, want 10", len(got.PopularQueries))
	}
	if got.PopularQueries[0].Query != "query-00" {
		t.Errorf("Top query = %q, want query-00", got.PopularQueries[0].Query)
	}
	for i := 1; i < len(got.PopularQueries); i++ {
		if got.PopularQueries[i].Count > got.PopularQueries[i-1].Count {
			t.Errorf("PopularQueries not sorted by count at position %d", i)
		}
	}
}

func TestSummarize_TiesSortAlphabetically(t *testing.T) {
	entries := []models.QueryLogEntry{
		logEntry("user-1", "", "zebra"),
		logEntry("user-1", "", "apple"),
	}

	got := summarize(entries, "")

	if got.PopularQueries[0].Query != "apple" {
		t.Errorf("Tied queries should sort alphabetically, got %q first", got.PopularQueries[0].Query)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := summarize(nil, "")

	if got.TotalSearches != 0 || got.UniqueUsers != 0 || len(got.PopularQueries) != 0 {
		t.Errorf("Expected zero analytics, got %+v", got)
	}
}

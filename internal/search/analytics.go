// ABOUTME: Aggregate analytics over the search query log
// ABOUTME: Totals, distinct users, and the most frequent query strings
package search

import (
	"sort"
	"strings"

	"github.com/coursekit/lessonsearch/internal/models"
)

// popularQueryCount is how many top query strings analytics reports.
const popularQueryCount = 10

// summarize computes analytics over log entries, optionally scoped to one
// course. Query strings are counted case-insensitively after trimming.
func summarize(entries []models.QueryLogEntry, courseID string) models.Analytics {
	users := make(map[string]struct{})
	counts := make(map[string]int)
	total := 0

	for _, entry := range entries {
		if courseID != "" && entry.CourseID != courseID {
			continue
		}
		total++
		if entry.UserID != "" {
			users[entry.UserID] = struct{}{}
		}
		normalized := strings.ToLower(strings.TrimSpace(entry.QueryText))
		if normalized != "" {
			counts[normalized]++
		}
	}

	popular := make([]models.PopularQuery, 0, len(counts))
	for query, count := range counts {
		popular = append(popular, models.PopularQuery{Query: query, Count: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Query < popular[j].Query
	})
	if len(popular) > popularQueryCount {
		popular = popular[:popularQueryCount]
	}

	return models.Analytics{
		TotalSearches:  total,
		UniqueUsers:    len(users),
		PopularQueries: popular,
	}
}

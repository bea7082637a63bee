// ABOUTME: Merges time-adjacent result chunks from the same lesson
// ABOUTME: Single left-to-right pass extending the running chunk's end time
package core

import "github.com/coursekit/lessonsearch/internal/models"

// MergeWindowSeconds is the largest gap between a merged chunk's end and
// the next chunk's start that still counts as adjacent.
const MergeWindowSeconds = 5

// MergeAdjacent coalesces results that belong to the same lesson and start
// no more than MergeWindowSeconds after the running chunk's end. Merging
// extends the end time to the later of the two and joins the texts with a
// single space. This is one left-to-right pass over the list as given: a
// chunk is never re-merged against an earlier result once iteration has
// moved on. Chunks from different lessons never merge.
func MergeAdjacent(results []models.RankedSnippet) []models.RankedSnippet {
	if len(results) == 0 {
		return results
	}

	merged := make([]models.RankedSnippet, 0, len(results))
	current := results[0]

	for _, next := range results[1:] {
		if next.LessonID == current.LessonID && next.StartSeconds <= current.EndSeconds+MergeWindowSeconds {
			if next.EndSeconds > current.EndSeconds {
				current.EndSeconds = next.EndSeconds
			}
			current.Text = current.Text + " " + next.Text
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// ABOUTME: Error types for the two failure surfaces of the search service
// ABOUTME: IndexingError and SearchError wrap causes for errors.Is/As chains
package search

import "fmt"

// IndexingError reports a failed reindex. Reindexing is not transactional:
// the lesson's prior chunks are deleted before new ones are embedded, so a
// failure partway leaves the lesson unindexed until the next attempt.
type IndexingError struct {
	LessonID string
	Err      error
}

func (e *IndexingError) Error() string {
	return fmt.Sprintf("indexing lesson %s: %v", e.LessonID, e.Err)
}

func (e *IndexingError) Unwrap() error {
	return e.Err
}

// SearchError reports a failed search. Callers surface a generic message
// and may simply retry; query logging failures never produce one.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("searching %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

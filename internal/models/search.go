// ABOUTME: Search result and option types for transcript search
// ABOUTME: Defines RankedSnippet and the per-call search options
package models

// UnknownLessonTitle is returned when a result chunk's lesson cannot be
// resolved in the catalog (dangling lesson references are tolerated).
const UnknownLessonTitle = "Untitled lesson"

// SearchOptions narrows and tunes a single search call. Zero values fall
// back to the service defaults.
type SearchOptions struct {
	UserID    string  `json:"user_id,omitempty"`
	CourseID  string  `json:"course_id,omitempty"`
	LessonID  string  `json:"lesson_id,omitempty"`
	Limit     int     `json:"limit,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// RankedSnippet is one search result: a (possibly merged) transcript
// passage with its similarity score and a highlighted snippet.
type RankedSnippet struct {
	ChunkID      int64   `json:"chunk_id"`
	LessonID     string  `json:"lesson_id"`
	LessonTitle  string  `json:"lesson_title"`
	StartSeconds int     `json:"start_seconds"`
	EndSeconds   int     `json:"end_seconds"`
	Text         string  `json:"text"`
	Snippet      string  `json:"snippet"`
	Confidence   float64 `json:"confidence"`
}

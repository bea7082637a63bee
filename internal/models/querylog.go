// ABOUTME: Query log models for search history and aggregate analytics
// ABOUTME: Defines the append-only QueryLogEntry and Analytics read types
package models

import "time"

// TopResultCount is how many leading result chunk IDs each log entry keeps.
const TopResultCount = 5

// QueryLogEntry records one executed search. Entries are append-only and
// never mutated; IDs are assigned by the log store from a monotonic counter.
type QueryLogEntry struct {
	ID           int64     `json:"id"`
	SearchID     string    `json:"search_id"`
	UserID       string    `json:"user_id"`
	CourseID     string    `json:"course_id,omitempty"`
	QueryText    string    `json:"query_text"`
	TopResultIDs []int64   `json:"top_result_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// PopularQuery is one entry in the analytics top-queries list.
type PopularQuery struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Analytics summarizes query log activity, optionally scoped to a course.
type Analytics struct {
	TotalSearches  int            `json:"total_searches"`
	UniqueUsers    int            `json:"unique_users"`
	PopularQueries []PopularQuery `json:"popular_queries"`
}

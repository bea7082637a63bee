// ABOUTME: Append-only query log persistence over SQLite
// ABOUTME: Stores top result IDs as a JSON array column
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coursekit/lessonsearch/internal/models"
)

// QueryLogStore handles search query log persistence
type QueryLogStore struct {
	db *DB
}

// NewQueryLogStore creates a new QueryLogStore
func NewQueryLogStore(db *DB) *QueryLogStore {
	return &QueryLogStore{db: db}
}

// Append records a log entry and returns it with its assigned ID.
func (s *QueryLogStore) Append(ctx context.Context, entry models.QueryLogEntry) (models.QueryLogEntry, error) {
	idsJSON, err := json.Marshal(entry.TopResultIDs)
	if err != nil {
		return models.QueryLogEntry{}, fmt.Errorf("failed to marshal result ids: %w", err)
	}

	entry.CreatedAt = time.Now()
	result, err := s.db.Exec(`
		INSERT INTO search_queries (search_id, user_id, course_id, query_text, top_result_ids, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.SearchID, entry.UserID, nullString(entry.CourseID), entry.QueryText, string(idsJSON), entry.CreatedAt)
	if err != nil {
		return models.QueryLogEntry{}, fmt.Errorf("failed to insert log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.QueryLogEntry{}, fmt.Errorf("failed to read log entry id: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// RecentByUser returns the user's most recent entries, newest first.
func (s *QueryLogStore) RecentByUser(ctx context.Context, userID string, limit int) ([]models.QueryLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, search_id, user_id, course_id, query_text, top_result_ids, created_at
		FROM search_queries
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanEntries(rows)
}

// All returns every log entry in append order.
func (s *QueryLogStore) All(ctx context.Context) ([]models.QueryLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, search_id, user_id, course_id, query_text, top_result_ids, created_at
		FROM search_queries
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanEntries(rows)
}

// scanEntries scans rows into log entries
func (s *QueryLogStore) scanEntries(rows *sql.Rows) ([]models.QueryLogEntry, error) {
	var entries []models.QueryLogEntry

	for rows.Next() {
		var (
			entry    models.QueryLogEntry
			courseID sql.NullString
			idsJSON  string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.SearchID,
			&entry.UserID,
			&courseID,
			&entry.QueryText,
			&idsJSON,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}

		if courseID.Valid {
			entry.CourseID = courseID.String
		}
		if err := json.Unmarshal([]byte(idsJSON), &entry.TopResultIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result ids: %w", err)
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// nullString converts empty strings to NULL for optional columns
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// ABOUTME: Repository interfaces for chunk and query log persistence
// ABOUTME: Implemented by the in-memory, SQLite, and Charm KV backends
package storage

import (
	"context"

	"github.com/coursekit/lessonsearch/internal/models"
)

// ScanFilter narrows a chunk scan to a set of lessons. An empty LessonIDs
// slice scans everything.
type ScanFilter struct {
	LessonIDs []string
}

// Matches reports whether a chunk passes the filter.
func (f ScanFilter) Matches(chunk models.TranscriptChunk) bool {
	if len(f.LessonIDs) == 0 {
		return true
	}
	for _, id := range f.LessonIDs {
		if chunk.LessonID == id {
			return true
		}
	}
	return false
}

// ChunkRepository stores indexed transcript chunks. Insert assigns
// monotonic IDs and creation timestamps and returns the stored chunks.
// There is no update-in-place: reindexing a lesson deletes its chunks and
// inserts a fresh set.
type ChunkRepository interface {
	Insert(ctx context.Context, chunks []models.TranscriptChunk) ([]models.TranscriptChunk, error)
	DeleteByLesson(ctx context.Context, lessonID string) (int, error)
	Scan(ctx context.Context, filter ScanFilter) ([]models.TranscriptChunk, error)
}

// QueryLogRepository stores the append-only search query log. Append
// assigns the entry's monotonic ID and timestamp.
type QueryLogRepository interface {
	Append(ctx context.Context, entry models.QueryLogEntry) (models.QueryLogEntry, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.QueryLogEntry, error)
	All(ctx context.Context) ([]models.QueryLogEntry, error)
}

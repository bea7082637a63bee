// ABOUTME: In-memory chunk and query log store guarded by a mutex
// ABOUTME: Reference backend matching the original in-process collections
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/coursekit/lessonsearch/internal/models"
)

// MemoryStore keeps chunks and log entries in process memory. It is the
// reference backend: state lives for the life of the process and the query
// log grows unbounded. All access goes through one mutex.
type MemoryStore struct {
	mu          sync.Mutex
	chunks      []models.TranscriptChunk
	nextChunkID int64
	entries     []models.QueryLogEntry
	nextEntryID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextChunkID: 1,
		nextEntryID: 1,
	}
}

// Insert assigns IDs and timestamps and appends the chunks.
func (s *MemoryStore) Insert(ctx context.Context, chunks []models.TranscriptChunk) ([]models.TranscriptChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := make([]models.TranscriptChunk, len(chunks))
	for i, chunk := range chunks {
		chunk.ID = s.nextChunkID
		s.nextChunkID++
		chunk.CreatedAt = now
		stored[i] = chunk
		s.chunks = append(s.chunks, chunk)
	}

	return stored, nil
}

// DeleteByLesson removes every chunk for the lesson and returns the count.
func (s *MemoryStore) DeleteByLesson(ctx context.Context, lessonID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.chunks[:0]
	removed := 0
	for _, chunk := range s.chunks {
		if chunk.LessonID == lessonID {
			removed++
			continue
		}
		kept = append(kept, chunk)
	}
	s.chunks = kept

	return removed, nil
}

// Scan returns all chunks passing the filter, in insertion order.
func (s *MemoryStore) Scan(ctx context.Context, filter ScanFilter) ([]models.TranscriptChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.TranscriptChunk
	for _, chunk := range s.chunks {
		if filter.Matches(chunk) {
			results = append(results, chunk)
		}
	}

	return results, nil
}

// Append assigns the entry's ID and timestamp and records it.
func (s *MemoryStore) Append(ctx context.Context, entry models.QueryLogEntry) (models.QueryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextEntryID
	s.nextEntryID++
	entry.CreatedAt = time.Now()

	ids := make([]int64, len(entry.TopResultIDs))
	copy(ids, entry.TopResultIDs)
	entry.TopResultIDs = ids

	s.entries = append(s.entries, entry)
	return entry, nil
}

// RecentByUser returns the user's most recent entries, newest first.
func (s *MemoryStore) RecentByUser(ctx context.Context, userID string, limit int) ([]models.QueryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.QueryLogEntry
	for i := len(s.entries) - 1; i >= 0 && len(results) < limit; i-- {
		if s.entries[i].UserID == userID {
			results = append(results, s.entries[i])
		}
	}

	return results, nil
}

// All returns every log entry in append order.
func (s *MemoryStore) All(ctx context.Context) ([]models.QueryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.QueryLogEntry, len(s.entries))
	copy(results, s.entries)
	return results, nil
}

// ABOUTME: Cloud-synced chunk and query log store over Charm KV
// ABOUTME: JSON-encoded records under chunk:/querylog: prefixes with counters
package storage

import (
	"context"
	"sort"
	"time"

	"github.com/coursekit/lessonsearch/internal/charm"
	"github.com/coursekit/lessonsearch/internal/models"
)

// Counter names for monotonic ID assignment.
const (
	chunkCounter    = "chunks"
	queryLogCounter = "querylog"
)

// CharmStore persists chunks and log entries in Charm KV so a personal
// index syncs across devices. Keys are zero-padded so lexicographic key
// order matches ID order.
type CharmStore struct {
	client *charm.Client
}

// NewCharmStore creates a store over an open charm client.
func NewCharmStore(client *charm.Client) *CharmStore {
	return &CharmStore{client: client}
}

// Insert assigns IDs from the chunk counter and stores each chunk.
func (s *CharmStore) Insert(ctx context.Context, chunks []models.TranscriptChunk) ([]models.TranscriptChunk, error) {
	now := time.Now()
	stored := make([]models.TranscriptChunk, len(chunks))

	for i, chunk := range chunks {
		id, err := s.client.NextID(chunkCounter)
		if err != nil {
			return nil, err
		}
		chunk.ID = id
		chunk.CreatedAt = now

		if err := s.client.SetJSON(charm.ChunkKey(id), chunk); err != nil {
			return nil, err
		}
		stored[i] = chunk
	}

	return stored, nil
}

// DeleteByLesson removes every chunk for the lesson and returns the count.
func (s *CharmStore) DeleteByLesson(ctx context.Context, lessonID string) (int, error) {
	keys, err := s.client.ListKeys(charm.ChunkPrefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		var chunk models.TranscriptChunk
		if err := s.client.GetJSON(key, &chunk); err != nil {
			continue
		}
		if chunk.LessonID != lessonID {
			continue
		}
		if err := s.client.Delete(key); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// Scan returns all chunks passing the filter, in ID order.
func (s *CharmStore) Scan(ctx context.Context, filter ScanFilter) ([]models.TranscriptChunk, error) {
	keys, err := s.client.ListKeys(charm.ChunkPrefix)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	var chunks []models.TranscriptChunk
	for _, key := range keys {
		var chunk models.TranscriptChunk
		if err := s.client.GetJSON(key, &chunk); err != nil {
			continue
		}
		if filter.Matches(chunk) {
			chunks = append(chunks, chunk)
		}
	}

	return chunks, nil
}

// Append assigns the entry's ID from the log counter and stores it.
func (s *CharmStore) Append(ctx context.Context, entry models.QueryLogEntry) (models.QueryLogEntry, error) {
	id, err := s.client.NextID(queryLogCounter)
	if err != nil {
		return models.QueryLogEntry{}, err
	}
	entry.ID = id
	entry.CreatedAt = time.Now()

	if err := s.client.SetJSON(charm.QueryLogKey(id), entry); err != nil {
		return models.QueryLogEntry{}, err
	}

	return entry, nil
}

// RecentByUser returns the user's most recent entries, newest first.
func (s *CharmStore) RecentByUser(ctx context.Context, userID string, limit int) ([]models.QueryLogEntry, error) {
	entries, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var results []models.QueryLogEntry
	for i := len(entries) - 1; i >= 0 && len(results) < limit; i-- {
		if entries[i].UserID == userID {
			results = append(results, entries[i])
		}
	}

	return results, nil
}

// All returns every log entry in append order.
func (s *CharmStore) All(ctx context.Context) ([]models.QueryLogEntry, error) {
	keys, err := s.client.ListKeys(charm.QueryLogPrefix)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	var entries []models.QueryLogEntry
	for _, key := range keys {
		var entry models.QueryLogEntry
		if err := s.client.GetJSON(key, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ABOUTME: Chunk persistence over SQLite with BLOB-encoded vectors
// ABOUTME: Implements insert, delete-by-lesson, and filtered scans
package sqlite

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/coursekit/lessonsearch/internal/storage"
)

// ChunkStore handles transcript chunk persistence. Row IDs come from the
// table's AUTOINCREMENT counter, so chunk IDs stay monotonic across
// reindexes.
type ChunkStore struct {
	db *DB
}

// NewChunkStore creates a new ChunkStore
func NewChunkStore(db *DB) *ChunkStore {
	return &ChunkStore{db: db}
}

// Insert stores the chunks and returns them with assigned IDs.
func (s *ChunkStore) Insert(ctx context.Context, chunks []models.TranscriptChunk) ([]models.TranscriptChunk, error) {
	now := time.Now()
	stored := make([]models.TranscriptChunk, len(chunks))

	for i, chunk := range chunks {
		result, err := s.db.Exec(`
			INSERT INTO transcript_chunks (lesson_id, start_seconds, end_seconds, text, vector, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.LessonID, chunk.StartSeconds, chunk.EndSeconds, chunk.Text, vectorToBlob(chunk.Vector), now)
		if err != nil {
			return nil, fmt.Errorf("failed to insert chunk: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read chunk id: %w", err)
		}

		chunk.ID = id
		chunk.CreatedAt = now
		stored[i] = chunk
	}

	return stored, nil
}

// DeleteByLesson removes all chunks for a lesson and returns the count.
func (s *ChunkStore) DeleteByLesson(ctx context.Context, lessonID string) (int, error) {
	result, err := s.db.Exec("DELETE FROM transcript_chunks WHERE lesson_id = ?", lessonID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chunks: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted chunks: %w", err)
	}

	return int(affected), nil
}

// Scan returns all chunks passing the filter, in id order.
func (s *ChunkStore) Scan(ctx context.Context, filter storage.ScanFilter) ([]models.TranscriptChunk, error) {
	query := `
		SELECT id, lesson_id, start_seconds, end_seconds, text, vector, created_at
		FROM transcript_chunks
	`
	var args []interface{}

	if len(filter.LessonIDs) > 0 {
		placeholders := make([]string, len(filter.LessonIDs))
		for i, id := range filter.LessonIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += " WHERE lesson_id IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan chunks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chunks []models.TranscriptChunk
	for rows.Next() {
		var (
			chunk models.TranscriptChunk
			blob  []byte
		)
		if err := rows.Scan(
			&chunk.ID,
			&chunk.LessonID,
			&chunk.StartSeconds,
			&chunk.EndSeconds,
			&chunk.Text,
			&blob,
			&chunk.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		chunk.Vector = blobToVector(blob)
		chunks = append(chunks, chunk)
	}

	return chunks, rows.Err()
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

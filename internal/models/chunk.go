// ABOUTME: TranscriptChunk represents an indexed window of lesson transcript text
// ABOUTME: Carries the chunk's time range and its embedding vector
package models

import "time"

// EmbeddingDimension is the fixed vector length produced by all embedders.
const EmbeddingDimension = 384

// TranscriptChunk is one window of a lesson's transcript, created in bulk
// when the lesson is (re)indexed. IDs are assigned by the chunk store at
// index time from a monotonic counter.
type TranscriptChunk struct {
	ID           int64     `json:"id"`
	LessonID     string    `json:"lesson_id"`
	StartSeconds int       `json:"start_seconds"`
	EndSeconds   int       `json:"end_seconds"`
	Text         string    `json:"text"`
	Vector       []float64 `json:"vector"`
	CreatedAt    time.Time `json:"created_at"`
}

// Timecode is a caption-level timing entry for a transcript, usually parsed
// from an SRT file. The chunker uses the entry at a chunk's index (when one
// exists) as that chunk's start time.
type Timecode struct {
	StartSeconds int    `json:"start_seconds"`
	EndSeconds   int    `json:"end_seconds"`
	Text         string `json:"text,omitempty"`
}

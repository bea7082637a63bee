// ABOUTME: Chunker splits transcript text into overlapping fixed-size windows
// ABOUTME: Estimates per-chunk time ranges from timecodes or a pacing heuristic
package core

import (
	"strings"

	"github.com/coursekit/lessonsearch/internal/models"
)

const (
	// TargetChunkSize is the nominal window length in characters.
	TargetChunkSize = 500
	// ChunkOverlap is how far consecutive windows overlap.
	ChunkOverlap = 100
	// boundaryBackoff is the furthest a window end may retreat to land on
	// a space, as a fraction of the target size.
	boundaryBackoff = 0.20

	// fallbackChunkGapSeconds spaces chunk start times when no timecodes
	// are available.
	fallbackChunkGapSeconds = 30
	// readingCharsPerSecond converts chunk length to an estimated duration.
	readingCharsPerSecond = 10
)

// Window is one chunk of transcript text with its estimated time range.
// Times are heuristic placeholders, not measured audio alignment; callers
// must not treat them as exact.
type Window struct {
	Text         string
	StartSeconds int
	EndSeconds   int
}

// ChunkTranscript slides a TargetChunkSize window across the text with
// ChunkOverlap characters of overlap. When a window would end mid-word it
// retreats to the nearest preceding space, unless that space is more than
// 20% before the window's nominal end. Empty text yields no windows; text
// shorter than the target size yields exactly one window spanning it all.
func ChunkTranscript(text string, timecodes []models.Timecode) []Window {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	maxBackoff := int(float64(TargetChunkSize) * boundaryBackoff)

	var windows []Window
	pos := 0
	chunkIndex := 0

	for pos < len(runes) {
		end := pos + TargetChunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			// Retreat to a word boundary when one is close enough.
			if cut := lastSpaceBefore(runes, pos, end); cut > pos && end-cut <= maxBackoff {
				end = cut
			}
		}

		chunkText := strings.TrimSpace(string(runes[pos:end]))
		if chunkText != "" {
			start := chunkIndex * fallbackChunkGapSeconds
			if chunkIndex < len(timecodes) {
				start = timecodes[chunkIndex].StartSeconds
			}
			windows = append(windows, Window{
				Text:         chunkText,
				StartSeconds: start,
				EndSeconds:   start + len([]rune(chunkText))/readingCharsPerSecond,
			})
		}

		if end >= len(runes) {
			break
		}

		next := end - ChunkOverlap
		if next <= pos {
			// Guarantee forward progress on pathological input.
			next = end
		}
		pos = next
		chunkIndex++
	}

	return windows
}

// lastSpaceBefore returns the index of the last space in runes[pos:end],
// or pos if there is none.
func lastSpaceBefore(runes []rune, pos, end int) int {
	for i := end - 1; i > pos; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return pos
}

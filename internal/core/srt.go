// ABOUTME: SRT subtitle parsing into transcript timecodes
// ABOUTME: Handles sequence numbers, HH:MM:SS,mmm ranges, and multi-line cues
package core

import (
	"strconv"
	"strings"

	"github.com/coursekit/lessonsearch/internal/models"
)

// ParseSRT parses SRT subtitle text into timecode entries, one per cue
// line. Sequence numbers and blank lines are skipped; a cue's timestamp
// carries over each text line under it.
//
//	1
//	00:00:00,000 --> 00:00:01,830
//	Welcome back to the course.
func ParseSRT(text string) []models.Timecode {
	if text == "" {
		return nil
	}

	var (
		entries      []models.Timecode
		currentStart int
		currentEnd   int
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isDigitsOnly(line) {
			continue
		}

		if strings.Contains(line, "-->") {
			parts := strings.Split(line, "-->")
			if len(parts) == 2 {
				currentStart = parseSRTTimestamp(strings.TrimSpace(parts[0]))
				currentEnd = parseSRTTimestamp(strings.TrimSpace(parts[1]))
			}
			continue
		}

		entries = append(entries, models.Timecode{
			StartSeconds: currentStart,
			EndSeconds:   currentEnd,
			Text:         line,
		})
	}

	return entries
}

// parseSRTTimestamp converts "HH:MM:SS,mmm" to whole seconds. Malformed
// timestamps parse to 0. Milliseconds are dropped.
func parseSRTTimestamp(ts string) int {
	// Some tools emit a period instead of a comma before milliseconds.
	if i := strings.IndexAny(ts, ",."); i >= 0 {
		ts = ts[:i]
	}

	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}

func isDigitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

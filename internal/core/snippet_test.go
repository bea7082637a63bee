// ABOUTME: Tests for snippet building and query highlighting
// ABOUTME: Verifies whole-word bolding, truncation, and ellipsis placement
package core

import (
	"strings"
	"testing"
)

func TestBuildSnippet_Highlighting(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{
			name:  "single match",
			text:  "the quick brown fox",
			query: "quick",
			want:  "the **quick** brown fox",
		},
		{
			name:  "case insensitive",
			text:  "Closures are powerful",
			query: "closures",
			want:  "**Closures** are powerful",
		},
		{
			name:  "multiple query words",
			text:  "quick brown fox",
			query: "quick fox",
			want:  "**quick** brown **fox**",
		},
		{
			name:  "whole words only",
			text:  "foxes are not a fox",
			query: "fox",
			want:  "foxes are not a **fox**",
		},
		{
			name:  "no match",
			text:  "nothing relevant here",
			query: "missing",
			want:  "nothing relevant here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSnippet(tt.text, tt.query); got != tt.want {
				t.Errorf("BuildSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSnippet_TruncatesAroundFirstMatch(t *testing.T) {
	text := strings.Repeat("padding ", 50) + "needle in the haystack " + strings.Repeat("padding ", 50)

	got := BuildSnippet(text, "needle")

	if !strings.HasPrefix(got, "...") {
		t.Error("Snippet should start with ellipsis when text before the match is cut")
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Snippet should end with ellipsis when text after the match is cut")
	}
	if !strings.Contains(got, "**needle**") {
		t.Errorf("Snippet should contain the highlighted match, got %q", got)
	}
	if len([]rune(got)) > SnippetLength+6 {
		t.Errorf("Snippet length %d exceeds limit", len([]rune(got)))
	}
}

func TestBuildSnippet_NoMatchTruncatesFromStart(t *testing.T) {
	text := strings.Repeat("x", 600)

	got := BuildSnippet(text, "absent")

	if strings.HasPrefix(got, "...") {
		t.Error("Snippet should start at the beginning when there is no match")
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Snippet should end with ellipsis")
	}
	if len([]rune(got)) != SnippetLength+3 {
		t.Errorf("Snippet length = %d, want %d", len([]rune(got)), SnippetLength+3)
	}
}

func TestBuildSnippet_ShortTextUntouched(t *testing.T) {
	text := "short text without matches"

	got := BuildSnippet(text, "zzz")

	if got != text {
		t.Errorf("BuildSnippet() = %q, want unchanged text", got)
	}
}

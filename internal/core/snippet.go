// ABOUTME: Snippet builder producing highlighted, truncated result excerpts
// ABOUTME: Bolds whole-word query matches and centers the cut on the first hit
package core

import (
	"regexp"
	"strings"
)

const (
	// SnippetLength is the approximate maximum snippet size in characters.
	SnippetLength = 240
	// snippetLeftContext is how much text is kept before the first match.
	snippetLeftContext = 50
	// boldMarker wraps highlighted query words.
	boldMarker = "**"
)

// BuildSnippet wraps case-insensitive whole-word matches of each query word
// in bold markers, then truncates the text to roughly SnippetLength
// characters centered on the first match, with snippetLeftContext
// characters of left context. Ellipses mark truncation boundaries.
func BuildSnippet(text, query string) string {
	highlighted := highlightWords(text, query)
	runes := []rune(highlighted)

	start := 0
	if idx := firstMarkerIndex(runes); idx >= 0 {
		start = idx - snippetLeftContext
		if start < 0 {
			start = 0
		}
	}

	end := start + SnippetLength
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet = snippet + "..."
	}
	return snippet
}

// highlightWords bolds each whitespace-separated query word wherever it
// appears as a whole word, ignoring case.
func highlightWords(text, query string) string {
	highlighted := text
	for _, word := range strings.Fields(query) {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			continue
		}
		highlighted = re.ReplaceAllString(highlighted, boldMarker+"$0"+boldMarker)
	}
	return highlighted
}

// firstMarkerIndex returns the rune index of the first bold marker, or -1.
func firstMarkerIndex(runes []rune) int {
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == '*' && runes[i+1] == '*' {
			return i
		}
	}
	return -1
}

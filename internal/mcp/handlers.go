// ABOUTME: MCP tool handler implementations for the search server
// ABOUTME: Validates arguments and maps service results to JSON responses
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coursekit/lessonsearch/internal/core"
	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/coursekit/lessonsearch/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	service *search.Service
}

// IndexTranscript handles the index_transcript tool
func (h *Handlers) IndexTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lessonID, err := request.RequireString("lesson_id")
	if err != nil {
		return mcp.NewToolResultError("lesson_id argument is required and must be a string"), nil
	}
	transcript, err := request.RequireString("transcript")
	if err != nil {
		return mcp.NewToolResultError("transcript argument is required and must be a string"), nil
	}

	var timecodes []models.Timecode
	if request.GetBool("srt", false) {
		timecodes = core.ParseSRT(transcript)
		transcript = joinTimecodeText(timecodes)
	}

	count, err := h.service.Index(ctx, lessonID, transcript, timecodes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("indexing failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"lesson_id":   lessonID,
		"chunk_count": count,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchTranscripts handles the search_transcripts tool
func (h *Handlers) SearchTranscripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	opts := models.SearchOptions{
		UserID:    request.GetString("user_id", ""),
		CourseID:  request.GetString("course_id", ""),
		LessonID:  request.GetString("lesson_id", ""),
		Limit:     request.GetInt("limit", 0),
		Threshold: request.GetFloat("threshold", 0),
	}

	results, err := h.service.Search(ctx, query, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"query":   query,
		"results": results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RecentSearches handles the recent_searches tool
func (h *Handlers) RecentSearches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id argument is required and must be a string"), nil
	}

	limit := request.GetInt("limit", 0)

	entries, err := h.service.RecentSearches(ctx, userID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read recent searches: %v", err)), nil
	}

	response := map[string]interface{}{
		"user_id":  userID,
		"searches": entries,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchAnalytics handles the search_analytics tool
func (h *Handlers) SearchAnalytics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := request.GetString("course_id", "")

	analytics, err := h.service.Analytics(ctx, courseID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute analytics: %v", err)), nil
	}

	responseJSON, err := json.Marshal(analytics)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// Shutdown waits for pending asynchronous query log writes
func (h *Handlers) Shutdown() {
	h.service.Flush()
}

// joinTimecodeText reassembles cue text into one transcript string
func joinTimecodeText(timecodes []models.Timecode) string {
	parts := make([]string, 0, len(timecodes))
	for _, tc := range timecodes {
		if tc.Text != "" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, " ")
}

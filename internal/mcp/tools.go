// ABOUTME: MCP tool definitions and registration for the search server
// ABOUTME: Defines JSON schemas for the four transcript search tools
package mcp

import (
	"github.com/coursekit/lessonsearch/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *search.Service) *Handlers {
	handlers := &Handlers{service: service}

	// 1. index_transcript - (re)index one lesson's transcript
	server.AddTool(mcp.Tool{
		Name:        "index_transcript",
		Description: "Index a lesson transcript for semantic search. Replaces any previously indexed chunks for the lesson.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lesson_id": map[string]interface{}{
					"type":        "string",
					"description": "Lesson the transcript belongs to",
				},
				"transcript": map[string]interface{}{
					"type":        "string",
					"description": "Raw transcript text, or SRT subtitle text when srt is true",
				},
				"srt": map[string]interface{}{
					"type":        "boolean",
					"description": "Parse the transcript as SRT subtitles to recover timecodes",
				},
			},
			Required: []string{"lesson_id", "transcript"},
		},
	}, handlers.IndexTranscript)

	// 2. search_transcripts - semantic search over indexed lessons
	server.AddTool(mcp.Tool{
		Name:        "search_transcripts",
		Description: "Search indexed lesson transcripts by semantic similarity. Returns ranked, highlighted passages.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query text",
				},
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User issuing the query (recorded in the query log)",
				},
				"course_id": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to lessons of this course",
				},
				"lesson_id": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to a single lesson",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum results to return (default: 20)",
					"default":     20,
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum similarity score (default: 0.55)",
					"default":     0.55,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchTranscripts)

	// 3. recent_searches - a user's latest queries
	server.AddTool(mcp.Tool{
		Name:        "recent_searches",
		Description: "List a user's most recent search queries, newest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User whose searches to list",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum entries to return (default: 10)",
					"default":     10,
				},
			},
			Required: []string{"user_id"},
		},
	}, handlers.RecentSearches)

	// 4. search_analytics - aggregate query log statistics
	server.AddTool(mcp.Tool{
		Name:        "search_analytics",
		Description: "Aggregate search statistics: total searches, unique users, and the most popular queries.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"course_id": map[string]interface{}{
					"type":        "string",
					"description": "Scope analytics to a single course",
				},
			},
		},
	}, handlers.SearchAnalytics)

	return handlers
}

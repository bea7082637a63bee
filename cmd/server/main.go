// ABOUTME: Main entry point for the lessonsearch MCP server with stdio transport
// ABOUTME: Initializes storage, embedder, and MCP server with all tools
package main

import (
	"log"
	"os"

	"github.com/coursekit/lessonsearch/internal/catalog"
	"github.com/coursekit/lessonsearch/internal/embed"
	"github.com/coursekit/lessonsearch/internal/mcp"
	"github.com/coursekit/lessonsearch/internal/search"
	"github.com/coursekit/lessonsearch/internal/storage/sqlite"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	db, err := sqlite.Open(sqlite.DefaultDBPath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var embedder embed.Embedder
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		openaiEmbedder, err := embed.NewOpenAIEmbedder(apiKey)
		if err != nil {
			log.Fatalf("Failed to initialize OpenAI embedder: %v", err)
		}
		embedder = embed.NewCachedEmbedder(openaiEmbedder)
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - using mock embeddings")
		embedder = embed.NewCachedEmbedder(embed.NewMockEmbedder())
	}

	cat := catalog.Empty()
	if path := os.Getenv("LESSONSEARCH_CATALOG"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		cat = loaded
	}

	service := search.NewService(
		sqlite.NewChunkStore(db),
		sqlite.NewQueryLogStore(db),
		embedder,
		cat,
	)
	defer service.Flush()

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Lesson Search",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, service)

	// Start server with stdio transport
	log.Println("lessonsearch MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

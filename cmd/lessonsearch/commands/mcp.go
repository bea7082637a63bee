// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to index and search transcripts via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coursekit/lessonsearch/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs lessonsearch as an MCP (Model Context Protocol) server, enabling
LLM agents to index transcripts and search them via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  lessonsearch mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "lessonsearch": {
  #       "command": "lessonsearch",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - using mock embeddings")
	}

	service, cleanup, err := buildService()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Lesson Search",
		versionInfo.Version,
	)

	// Register MCP tools and get handlers for shutdown
	handlers := mcp.RegisterTools(server, service)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("lessonsearch MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		// Drain pending query log writes, then close the backend
		handlers.Shutdown()
		cleanup()

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		cleanup()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

// ABOUTME: CLI command to index a lesson transcript
// ABOUTME: Reads plain text or SRT input and replaces the lesson's chunks
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursekit/lessonsearch/internal/core"
	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/joho/godotenv"
)

var (
	indexFile string
	indexSRT  bool
)

// NewIndexCmd creates index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <lesson-id> [transcript]",
		Short: "Index a lesson transcript",
		Long: `Index a lesson transcript for semantic search.

Indexing is a full replace: existing chunks for the lesson are removed
before the new transcript is chunked and embedded.

Examples:
  lessonsearch index lesson-42 "Welcome to the course..."
  lessonsearch index lesson-42 --file transcript.txt
  lessonsearch index lesson-42 --file captions.srt --srt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runIndex,
	}

	cmd.Flags().StringVar(&indexFile, "file", "", "Read transcript from file")
	cmd.Flags().BoolVar(&indexSRT, "srt", false, "Parse input as SRT subtitles with timecodes")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	lessonID := args[0]

	var text string
	if indexFile != "" {
		data, err := os.ReadFile(indexFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 1 {
		text = args[1]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no transcript provided")
	}

	var timecodes []models.Timecode
	if indexSRT {
		timecodes = core.ParseSRT(text)
		if len(timecodes) == 0 {
			return fmt.Errorf("no SRT entries found in input")
		}
		parts := make([]string, 0, len(timecodes))
		for _, tc := range timecodes {
			parts = append(parts, tc.Text)
		}
		text = strings.Join(parts, " ")
	}

	service, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := service.Index(context.Background(), lessonID, text, timecodes)
	if err != nil {
		return fmt.Errorf("indexing lesson: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Indexed lesson %s (%d chunks)\n", lessonID, count)
	}
	return nil
}

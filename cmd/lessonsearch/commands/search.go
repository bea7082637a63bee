// ABOUTME: CLI command to search indexed lesson transcripts
// ABOUTME: Supports lesson/course scoping, limits, and threshold overrides
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/joho/godotenv"
)

var (
	searchUser      string
	searchCourse    string
	searchLesson    string
	searchLimit     int
	searchThreshold float64
)

// NewSearchCmd creates search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search lesson transcripts",
		Long: `Search indexed lesson transcripts by semantic similarity.

Results are ranked by cosine similarity against the query embedding,
with adjacent passages from the same lesson merged into one result.

Examples:
  lessonsearch search "closures in javascript"
  lessonsearch search --course course-1 "recursion"
  lessonsearch search --lesson lesson-42 --limit 3 "base case"
  lessonsearch search --format json "big o notation"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchUser, "user", "", "User ID recorded in the query log")
	cmd.Flags().StringVar(&searchCourse, "course", "", "Restrict search to one course")
	cmd.Flags().StringVar(&searchLesson, "lesson", "", "Restrict search to one lesson")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (default 20)")
	cmd.Flags().Float64Var(&searchThreshold, "threshold", 0, "Minimum similarity score (default 0.55)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if searchLimit != 0 {
		if err := validatePositiveInt(searchLimit, "limit"); err != nil {
			return err
		}
	}
	if searchThreshold < 0 || searchThreshold > 1 {
		return fmt.Errorf("threshold must be 0-1, got %f", searchThreshold)
	}

	query := args[0]

	service, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := service.Search(context.Background(), query, models.SearchOptions{
		UserID:    searchUser,
		CourseID:  searchCourse,
		LessonID:  searchLesson,
		Limit:     searchLimit,
		Threshold: searchThreshold,
	})
	if err != nil {
		return fmt.Errorf("searching transcripts: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No results found for query: %s\n", query)
		}
		return nil
	}

	// Format output
	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		// Table format
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tLESSON\tTIME\tSNIPPET\n")
		fmt.Fprintf(w, "-----\t------\t----\t-------\n")

		for _, result := range results {
			fmt.Fprintf(w, "%.3f\t%s\t%s-%s\t%s\n",
				result.Confidence,
				truncate(result.LessonTitle, 25),
				formatTimecode(result.StartSeconds),
				formatTimecode(result.EndSeconds),
				truncate(result.Snippet, 60))
		}
		w.Flush()

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(results))
		}
	}

	return nil
}

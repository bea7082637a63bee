// ABOUTME: CLI command to list a user's recent searches
// ABOUTME: Reads the append-only query log, newest first
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	recentLimit int
)

// NewRecentCmd creates recent command
func NewRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent <user-id>",
		Short: "List a user's recent searches",
		Long: `List a user's most recent search queries, newest first.

Examples:
  lessonsearch recent user-7
  lessonsearch recent user-7 --limit 20
  lessonsearch recent user-7 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runRecent,
	}

	cmd.Flags().IntVar(&recentLimit, "limit", 10, "Maximum entries to return")

	return cmd
}

func runRecent(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(recentLimit, "limit"); err != nil {
		return err
	}

	userID := args[0]

	service, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := service.RecentSearches(context.Background(), userID, recentLimit)
	if err != nil {
		return fmt.Errorf("listing recent searches: %w", err)
	}

	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No searches recorded for user: %s\n", userID)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "WHEN\tQUERY\tCOURSE\tRESULTS\n")
		fmt.Fprintf(w, "----\t-----\t------\t-------\n")

		for _, entry := range entries {
			course := entry.CourseID
			if course == "" {
				course = "(all)"
			}
			ids := make([]string, 0, len(entry.TopResultIDs))
			for _, id := range entry.TopResultIDs {
				ids = append(ids, fmt.Sprintf("%d", id))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				formatTime(entry.CreatedAt),
				truncate(entry.QueryText, 40),
				truncate(course, 15),
				strings.Join(ids, ","))
		}
		w.Flush()

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d search(es)\n", len(entries))
		}
	}

	return nil
}

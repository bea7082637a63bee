// ABOUTME: CLI command to summarize search activity
// ABOUTME: Reports totals, unique users, and the most popular queries
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	analyticsCourse string
)

// NewAnalyticsCmd creates analytics command
func NewAnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Summarize search activity",
		Long: `Summarize logged search activity: total searches, unique users,
and the most frequent queries.

Examples:
  lessonsearch analytics
  lessonsearch analytics --course course-1
  lessonsearch analytics --format json`,
		Args: cobra.NoArgs,
		RunE: runAnalytics,
	}

	cmd.Flags().StringVar(&analyticsCourse, "course", "", "Restrict analytics to one course")

	return cmd
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	service, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := service.Analytics(context.Background(), analyticsCourse)
	if err != nil {
		return fmt.Errorf("computing analytics: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Total searches: %d\n", summary.TotalSearches)
	fmt.Fprintf(cmd.OutOrStdout(), "Unique users:   %d\n", summary.UniqueUsers)

	if len(summary.PopularQueries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nNo queries logged yet\n")
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "COUNT\tQUERY\n")
	fmt.Fprintf(w, "-----\t-----\n")
	for _, pq := range summary.PopularQueries {
		fmt.Fprintf(w, "%d\t%s\n", pq.Count, truncate(pq.Query, 50))
	}
	w.Flush()

	return nil
}

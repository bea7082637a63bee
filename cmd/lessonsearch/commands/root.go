// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point for index, search, recent, analytics, mcp, version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██╗     ███████╗███████╗███████╗ ██████╗ ███╗   ██╗
██║     ██╔════╝██╔════╝██╔════╝██╔═══██╗████╗  ██║
██║     █████╗  ███████╗███████╗██║   ██║██╔██╗ ██║
██║     ██╔══╝  ╚════██║╚════██║██║   ██║██║╚██╗██║
███████╗███████╗███████║███████║╚██████╔╝██║ ╚████║
╚══════╝╚══════╝╚══════╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝
        semantic search over lesson transcripts`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessonsearch",
		Short: "Semantic search over course lesson transcripts",
		Long: banner + `

lessonsearch indexes lesson transcripts into overlapping chunks with
embedding vectors and answers similarity searches over them, with a
query log feeding recent-search and analytics views.

Transcripts can be plain text or SRT subtitles; results come back as
ranked, highlighted passages with estimated time ranges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Subcommands
	cmd.AddCommand(NewIndexCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewRecentCmd())
	cmd.AddCommand(NewAnalyticsCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

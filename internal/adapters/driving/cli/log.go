package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var logLimitFlag int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the audit change log",
	Long: `Prints the recorded change log entries in chronological order.
Use --limit to show only the most recent entries.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVar(&logLimitFlag, "limit", 0, "show only the last N entries (0 shows all)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	if reporter == nil {
		if err := initServices(); err != nil {
			return err
		}
	}
	if reporter == nil {
		return errors.New("report service not configured")
	}

	entries, err := reporter.ChangeLog(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("Change log is empty.")
		return nil
	}

	if logLimitFlag > 0 && len(entries) > logLimitFlag {
		entries = entries[len(entries)-logLimitFlag:]
	}

	for _, entry := range entries {
		cmd.Printf("=== RUN %s %s ===\n", entry.RunID, entry.RecordedAt.UTC().Format(time.RFC3339))
		for _, block := range entry.Blocks {
			cmd.Printf("%s (%d):\n", block.Category, block.Count)
			for _, line := range block.Lines {
				cmd.Printf("  %s\n", line)
			}
		}
		cmd.Println()
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the last observation",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if reporter == nil {
		if err := initServices(); err != nil {
			return err
		}
	}
	if reporter == nil {
		return errors.New("report service not configured")
	}

	ctx := context.Background()

	snap, err := reporter.LatestSnapshot(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No observations yet.")
			return nil
		}
		return err
	}

	pending, err := reporter.Pending(ctx)
	if err != nil {
		return err
	}
	entries, err := reporter.ChangeLog(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Last observation: %s\n", snap.CapturedAt.UTC().Format(time.RFC3339))
	cmd.Printf("Fingerprint:      %.12s\n", snap.Fingerprint)
	cmd.Printf("Pending releases: %d\n", len(pending))
	cmd.Printf("Log entries:      %d\n", len(entries))
	return nil
}

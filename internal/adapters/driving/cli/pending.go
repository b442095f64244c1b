package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List releases still awaiting detail",
	Long: `Lists departures that have left the roster but have not yet
appeared in the release-detail feed.`,
	RunE: runPending,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}

func runPending(cmd *cobra.Command, _ []string) error {
	if reporter == nil {
		if err := initServices(); err != nil {
			return err
		}
	}
	if reporter == nil {
		return errors.New("report service not configured")
	}

	pending, err := reporter.Pending(context.Background())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		cmd.Println("No pending releases.")
		return nil
	}

	now := time.Now()
	cmd.Printf("%d pending release(s):\n", len(pending))
	for _, p := range pending {
		days := int(p.Age(now).Hours() / 24)
		cmd.Printf("  %s | pending %dd since %s\n",
			p.Booking.FormatLine(), days, p.DetectedAt.UTC().Format("2006-01-02"))
	}
	return nil
}

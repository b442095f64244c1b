package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

var strictFlag bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Perform one observation of the roster",
	Long: `Fetches the roster and the release-detail feed, diffs against the
previous observation, reconciles pending releases, and appends any
changes to the audit log.`,
	RunE: runObservation,
}

func init() {
	runCmd.Flags().BoolVar(&strictFlag, "strict", false, "fail the run when record blocks are discarded")
	rootCmd.AddCommand(runCmd)
}

func runObservation(cmd *cobra.Command, _ []string) error {
	if observer == nil {
		if err := initServices(); err != nil {
			return err
		}
	}
	if observer == nil {
		return errors.New("observation not configured: set roster_url in the config file")
	}

	result, err := observer.Run(context.Background())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRunInProgress):
			return errors.New("an observation run is already in progress")
		case errors.Is(err, domain.ErrFetchFailed):
			return fmt.Errorf("roster unavailable: %w", err)
		case errors.Is(err, domain.ErrParseFailed):
			return fmt.Errorf("roster extraction failed: %w", err)
		case errors.Is(err, domain.ErrPersistFailed):
			return fmt.Errorf("could not persist observation: %w", err)
		default:
			return fmt.Errorf("observation failed: %w", err)
		}
	}

	renderResult(cmd, result)
	return nil
}

func renderResult(cmd *cobra.Command, r *domain.ObservationResult) {
	if r.IsFirstRun {
		cmd.Printf("First observation: baseline established (%d records).\n",
			r.Stats.Blocks-r.Stats.Discarded)
		return
	}
	if !r.HasChanged {
		cmd.Println("No changes since the last observation.")
		return
	}

	if r.TotalAdded > 0 {
		cmd.Printf("BOOKED (%d):\n", r.TotalAdded)
		for _, b := range r.Added {
			cmd.Printf("  %s\n", b.FormatLine())
		}
		if r.TotalAdded > len(r.Added) {
			cmd.Printf("  ... and %d more\n", r.TotalAdded-len(r.Added))
		}
	}

	if r.TotalRemoved > 0 {
		cmd.Printf("RELEASED (%d):\n", r.TotalRemoved)
		for _, res := range r.Resolved {
			cmd.Printf("  %s\n", formatRelease(res))
		}
		shown := len(r.Resolved)
		for _, b := range r.Removed {
			if containsResolved(r.Resolved, b.ID) {
				continue
			}
			cmd.Printf("  %s | release detail pending\n", b.FormatLine())
			shown++
		}
		if r.TotalRemoved > shown {
			cmd.Printf("  ... and %d more\n", r.TotalRemoved-shown)
		}
	}

	if len(r.Updated) > 0 {
		cmd.Printf("UPDATED (%d):\n", len(r.Updated))
		for _, res := range r.Updated {
			cmd.Printf("  %s\n", formatRelease(res))
		}
	}

	if r.TotalAdded == 0 && r.TotalRemoved == 0 && len(r.Updated) == 0 {
		cmd.Println("Roster text changed but no records were added or removed.")
	}

	if r.PendingCount > 0 {
		cmd.Printf("%d release(s) awaiting detail.\n", r.PendingCount)
	}
	if r.ExpiredPending > 0 {
		cmd.Printf("%d stale pending release(s) expired.\n", r.ExpiredPending)
	}
	if r.Stats.Degraded() {
		cmd.Printf("Warning: extraction degraded (%d blocks discarded).\n", r.Stats.Discarded)
	}
}

func formatRelease(r domain.ResolvedRelease) string {
	return fmt.Sprintf("%s | release: %s at %s, served %s, bail %s",
		r.Booking.FormatLine(), r.Detail.ReleaseType, r.Detail.ReleasedAt,
		r.Detail.TimeServed, r.Detail.Bail)
}

func containsResolved(resolved []domain.ResolvedRelease, id string) bool {
	for _, r := range resolved {
		if r.Booking.ID == id {
			return true
		}
	}
	return false
}

package driving

import (
	"context"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

// Observer executes observation runs. This is the core's single entry
// point for external collaborators.
type Observer interface {
	// Run performs one observation: fetch both sources, extract, diff
	// against the previous snapshot, reconcile pending releases, append
	// the change log, then commit state — in that order.
	//
	// Runs are serialised; a concurrent call fails with
	// domain.ErrRunInProgress.
	Run(ctx context.Context) (*domain.ObservationResult, error)
}

package driven

import (
	"context"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

// StateStore persists observation state between runs: the last-seen
// snapshot and the pending-release queue. Implementations must preserve
// pending-queue insertion order.
type StateStore interface {
	// LatestSnapshot returns the most recent stored snapshot,
	// or domain.ErrNotFound when no observation has run yet.
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)

	// SaveSnapshot stores a snapshot as the new latest observation.
	SaveSnapshot(ctx context.Context, snap domain.Snapshot) error

	// ListPending returns all queued pending releases in insertion order.
	ListPending(ctx context.Context) ([]domain.PendingRelease, error)

	// AddPending appends an entry to the pending-release queue.
	AddPending(ctx context.Context, pending domain.PendingRelease) error

	// RemovePending deletes a queue entry by ID.
	RemovePending(ctx context.Context, id string) error
}

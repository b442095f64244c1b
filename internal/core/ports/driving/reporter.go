package driving

import (
	"context"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

// Reporter exposes read-only views of persisted observation state for
// downstream reporting.
type Reporter interface {
	// ChangeLog re-parses the full audit log and returns every entry.
	ChangeLog(ctx context.Context) ([]domain.ChangeLogEntry, error)

	// Pending returns the queued pending releases in insertion order.
	Pending(ctx context.Context) ([]domain.PendingRelease, error)

	// LatestSnapshot returns the last stored snapshot, or
	// domain.ErrNotFound before the first run.
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

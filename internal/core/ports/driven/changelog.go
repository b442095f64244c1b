package driven

import (
	"context"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

// ChangeLog is the append-only audit trail of detected events.
// Downstream reporting re-parses the whole log on each read; there is
// no streaming cursor. Entries are never rewritten.
type ChangeLog interface {
	// Append writes one run's entry to the end of the log.
	Append(ctx context.Context, entry domain.ChangeLogEntry) error

	// ReadAll re-parses the log from scratch and returns every entry
	// in append order.
	ReadAll(ctx context.Context) ([]domain.ChangeLogEntry, error)
}

package domain

import "time"

// EventCategory classifies a change-log section.
type EventCategory string

const (
	// EventBooked records roster additions.
	EventBooked EventCategory = "BOOKED"

	// EventReleased records roster removals, with release detail when
	// one matched immediately.
	EventReleased EventCategory = "RELEASED"

	// EventUpdated records pending releases resolved on a later run.
	EventUpdated EventCategory = "UPDATED"
)

// EventBlock is one category section within a change-log entry:
// a count plus the formatted record lines. Count is the true total;
// Lines may be capped for display.
type EventBlock struct {
	Category EventCategory
	Count    int
	Lines    []string
}

// ChangeLogEntry is one run's appended audit record. Entries are
// append-only; the log is never rewritten except by out-of-band repair.
type ChangeLogEntry struct {
	// RunID uniquely identifies the run that produced the entry.
	RunID string

	// RecordedAt is when the entry was appended.
	RecordedAt time.Time

	// Blocks holds the non-empty category sections in fixed order:
	// BOOKED, RELEASED, UPDATED.
	Blocks []EventBlock
}

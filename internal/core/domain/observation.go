package domain

// ResolvedRelease pairs a booking with the release detail that
// resolved it, for RELEASED and UPDATED reporting.
type ResolvedRelease struct {
	Booking BookingRecord
	Detail  ReleaseDetail
}

// ExtractionStats reports per-field extraction failure counters.
// Fail-soft sentinel values hide parsing regressions; these counters
// are the diagnostic channel that surfaces them (strict mode).
type ExtractionStats struct {
	// Blocks is the number of record blocks seen in the roster text.
	Blocks int

	// Discarded counts blocks lacking the booking identifier field.
	Discarded int

	// NameFailures counts blocks whose name field did not match.
	NameFailures int

	// BookDateFailures counts book dates that degraded to DateUnknown.
	BookDateFailures int

	// ReleaseDateFailures counts release dates that degraded to DateUnknown.
	ReleaseDateFailures int

	// ChargeLinesSkipped counts charge lines that matched no pattern.
	ChargeLinesSkipped int
}

// Degraded reports whether any field fell back to a sentinel value
// or any block was discarded.
func (s ExtractionStats) Degraded() bool {
	return s.Discarded > 0 || s.NameFailures > 0 ||
		s.BookDateFailures > 0 || s.ReleaseDateFailures > 0 ||
		s.ChargeLinesSkipped > 0
}

// ObservationResult is the outcome of a single observation run,
// consumed by external collaborators (CLI, dashboards, notifiers).
type ObservationResult struct {
	// IsFirstRun is true when no prior snapshot existed. The current
	// roster establishes a baseline; no BOOKED events are emitted.
	IsFirstRun bool

	// HasChanged is false when the snapshot fingerprint matched the
	// previous one and all diff work was skipped.
	HasChanged bool

	// Added holds newly appeared records, capped for display.
	Added []BookingRecord

	// Removed holds departed records, capped for display.
	Removed []BookingRecord

	// Resolved holds removals whose release detail matched immediately.
	Resolved []ResolvedRelease

	// Updated holds prior pending releases resolved this run.
	Updated []ResolvedRelease

	// TotalAdded and TotalRemoved are the true counts before capping.
	TotalAdded   int
	TotalRemoved int

	// PendingCount is the queue depth after reconciliation.
	PendingCount int

	// ExpiredPending counts queue entries dropped by the staleness bound.
	ExpiredPending int

	// Stats carries extraction failure counters for diagnostics.
	Stats ExtractionStats
}

package domain

import "time"

// ReleaseDetail is secondary-source release information for one person,
// keyed by cleaned name. Matching to a BookingRecord is by exact
// cleaned-name equality; formatting drift between the two sources
// silently fails to match (see NameMatcher for the pluggable strategy).
type ReleaseDetail struct {
	// ReleasedAt is the exact release timestamp string from the feed.
	ReleasedAt string

	// ReleaseType is the feed's release-type code (e.g. "PR", "BOND").
	ReleaseType string

	// TimeServed is the feed's duration token (e.g. "2d4h").
	TimeServed string

	// Bail is the feed's currency amount (e.g. "$500.00").
	Bail string
}

// PendingRelease is a booking that disappeared from the roster before
// its ReleaseDetail was available. It persists across runs until a
// matching detail appears or the entry exceeds the staleness bound.
type PendingRelease struct {
	// ID uniquely identifies the queue entry.
	ID string

	// Name is the cleaned name used for matching.
	Name string

	// Booking is the full record as last seen on the roster.
	Booking BookingRecord

	// DetectedAt is when the departure was first observed.
	DetectedAt time.Time
}

// Age returns how long the entry has been queued as of now.
func (p PendingRelease) Age(now time.Time) time.Duration {
	return now.Sub(p.DetectedAt)
}

package driven

import "github.com/custodia-labs/rollcall/internal/core/domain"

// RosterExtractor converts raw roster text into a mapping from booking
// ID to record. Extraction is a pure function of the input text: it
// never fails, and unparsable fields degrade to sentinel values. The
// returned stats expose what degraded.
type RosterExtractor interface {
	Extract(text string) (map[string]domain.BookingRecord, domain.ExtractionStats)
}

// ReleaseExtractor converts the secondary feed's text into a mapping
// from cleaned name to release detail. Non-matching lines are ignored;
// a total parse failure yields an empty map (fail-open) so that
// reconciliation can still run.
type ReleaseExtractor interface {
	Extract(text string) map[string]domain.ReleaseDetail
}

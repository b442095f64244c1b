package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Sentinel values for unparsable or absent date fields.
// The upstream roster format is known to drift; extraction degrades to
// these values instead of failing the record.
const (
	// DateUnknown marks a date field that failed to parse.
	DateUnknown = "Unknown"

	// NotReleased marks an inmate still in custody.
	NotReleased = "Not Released"
)

// BookingRecord represents one inmate's state at observation time.
// Records are reconstructed fresh on every extraction and never mutated;
// identity across snapshots is by ID only.
type BookingRecord struct {
	// ID is the source-assigned booking number, unique within a snapshot.
	ID string

	// Name is the normalized person name (whitespace-collapsed,
	// trailing punctuation stripped).
	Name string

	// BookedAt is the booking timestamp string, or DateUnknown.
	BookedAt string

	// ReleasedAt is the release timestamp string, NotReleased while in
	// custody, or DateUnknown when the field was present but unparsable.
	ReleasedAt string

	// Charges is the deduplicated set of offense-description strings.
	// Order-insensitive; compared by exact string match only.
	Charges []string
}

// FormatLine renders the record as a single change-log line.
func (r BookingRecord) FormatLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | booked %s | released %s", r.ID, r.Name, r.BookedAt, r.ReleasedAt)
	if len(r.Charges) > 0 {
		b.WriteString(" | charges: ")
		b.WriteString(strings.Join(r.Charges, "; "))
	}
	return b.String()
}

// SortedCharges returns the charge set in lexical order.
// Charge order is not significant; sorting gives stable output.
func (r BookingRecord) SortedCharges() []string {
	out := make([]string, len(r.Charges))
	copy(out, r.Charges)
	sort.Strings(out)
	return out
}

// CleanName normalizes a person name for cross-source matching:
// trim, collapse internal whitespace, strip a single trailing period.
// Cleaning is idempotent.
func CleanName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = strings.TrimSuffix(name, ".")
	return name
}

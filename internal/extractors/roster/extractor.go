// Package roster parses the jail roster text dump into booking records.
package roster

import (
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.RosterExtractor = (*Extractor)(nil)

// Roster timestamps carry the time before the date.
const timestampLayout = "15:04 01/02/2006"

// noReleaseSentinel is the roster's "no release date" marker.
const noReleaseSentinel = "--"

var (
	// nameRe captures the name label up to the booking-number lookahead
	// boundary or end of line.
	nameRe = regexp.MustCompile(`Name:\s*(.*?)\s*(?:Booking No:|$)`)

	// bookingNoRe captures the record's companion identifier field.
	// A block without it is not a record.
	bookingNoRe = regexp.MustCompile(`Booking No:\s*([A-Za-z0-9-]+)`)

	bookedRe   = regexp.MustCompile(`Booked:\s*(\S+(?:\s+\S+)?)`)
	releasedRe = regexp.MustCompile(`Released:\s*(\S+(?:\s+\S+)?)`)

	timestampRe = regexp.MustCompile(`^\d{1,2}:\d{2}\s+\d{2}/\d{2}/\d{4}$`)

	// chargeHeaderRe recognises the three-column charges header.
	chargeHeaderRe = regexp.MustCompile(`^\s*Statute\s+Description\s+Court\s*$`)

	// chargeRe expects a leading statute code, an offense phrase and a
	// trailing court-type token.
	chargeRe = regexp.MustCompile(`^\s*(\d[\dA-Za-z.()-]*)\s+(.+?)\s+([A-Za-z]+)\s*$`)
)

// Extractor parses roster text. It is stateless and safe for
// concurrent use.
type Extractor struct{}

// New creates a roster extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract converts raw roster text into a mapping from booking ID to
// record. Blocks lacking the booking-number field are discarded; every
// other failure degrades per-field and is counted in the stats.
func (e *Extractor) Extract(text string) (map[string]domain.BookingRecord, domain.ExtractionStats) {
	records := make(map[string]domain.BookingRecord)
	var stats domain.ExtractionStats

	for _, block := range splitBlocks(text) {
		stats.Blocks++

		rec, ok := parseBlock(block, &stats)
		if !ok {
			stats.Discarded++
			continue
		}
		records[rec.ID] = rec
	}

	return records, stats
}

// splitBlocks splits the roster text into per-record line groups using
// the record-start marker (the Name label).
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Name:") {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	return blocks
}

func parseBlock(lines []string, stats *domain.ExtractionStats) (domain.BookingRecord, bool) {
	block := strings.Join(lines, "\n")

	m := bookingNoRe.FindStringSubmatch(block)
	if m == nil {
		return domain.BookingRecord{}, false
	}

	rec := domain.BookingRecord{
		ID:         m[1],
		Name:       parseName(lines, stats),
		BookedAt:   parseBookDate(block, stats),
		ReleasedAt: parseReleaseDate(block, stats),
		Charges:    parseCharges(lines, stats),
	}
	return rec, true
}

// parseName takes the name from the marker line up to the lookahead
// boundary. A captured name ending in a comma indicates the original
// document wrapped the name across a line, so the next line is
// appended. This is a heuristic, not guaranteed correct.
func parseName(lines []string, stats *domain.ExtractionStats) string {
	m := nameRe.FindStringSubmatch(lines[0])
	if m == nil || strings.TrimSpace(m[1]) == "" {
		stats.NameFailures++
		return "Unknown"
	}

	name := m[1]
	if strings.HasSuffix(name, ",") && len(lines) > 1 {
		name += " " + strings.TrimSpace(lines[1])
	}
	return domain.CleanName(name)
}

func parseBookDate(block string, stats *domain.ExtractionStats) string {
	m := bookedRe.FindStringSubmatch(block)
	if m == nil || !validTimestamp(m[1]) {
		stats.BookDateFailures++
		return domain.DateUnknown
	}
	return m[1]
}

// parseReleaseDate maps the roster's no-release sentinel to
// NotReleased. An absent label also means NotReleased: the source
// omits the field for in-custody inmates, so its absence is not
// counted as a failure. A present but unparsable value degrades to
// DateUnknown.
func parseReleaseDate(block string, stats *domain.ExtractionStats) string {
	m := releasedRe.FindStringSubmatch(block)
	if m == nil {
		return domain.NotReleased
	}
	if m[1] == noReleaseSentinel {
		return domain.NotReleased
	}
	if !validTimestamp(m[1]) {
		stats.ReleaseDateFailures++
		return domain.DateUnknown
	}
	return m[1]
}

func validTimestamp(s string) bool {
	if !timestampRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(timestampLayout, s)
	return err == nil
}

// parseCharges extracts the charge sub-section beginning after the
// three-column header. Lines not matching the charge pattern are
// skipped silently: a missed charge does not fail the record.
func parseCharges(lines []string, stats *domain.ExtractionStats) []string {
	var charges []string
	seen := make(map[string]bool)
	inSection := false

	for _, line := range lines {
		if !inSection {
			if chargeHeaderRe.MatchString(line) {
				inSection = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := chargeRe.FindStringSubmatch(line)
		if m == nil {
			stats.ChargeLinesSkipped++
			continue
		}

		offense := strings.TrimSpace(m[2])
		if seen[offense] {
			continue
		}
		seen[offense] = true
		charges = append(charges, offense)
	}

	return charges
}

// Package releases parses the secondary release-detail feed.
package releases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ReleaseExtractor = (*Extractor)(nil)

// lineRe is the feed's fixed five-field line pattern:
// date, time, name, release-type code, duration, currency amount.
var lineRe = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(\d{1,2}:\d{2})\s+(.+?)\s+([A-Z]{2,6})\s+(\S+)\s+(\$[\d,]+(?:\.\d{2})?)\s*$`)

// Extractor parses release feed text. It is stateless and safe for
// concurrent use.
type Extractor struct{}

// New creates a release feed extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract converts feed text into a mapping from cleaned name to
// release detail. Non-matching lines are ignored; feed-wide garbage
// yields an empty map so reconciliation can still run.
func (e *Extractor) Extract(text string) map[string]domain.ReleaseDetail {
	details := make(map[string]domain.ReleaseDetail)

	for _, line := range strings.Split(text, "\n") {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := domain.CleanName(m[3])
		if name == "" {
			continue
		}

		details[name] = domain.ReleaseDetail{
			// Keep the roster's time-then-date ordering.
			ReleasedAt:  fmt.Sprintf("%s %s", m[2], m[1]),
			ReleaseType: m[4],
			TimeServed:  m[5],
			Bail:        m[6],
		}
	}

	return details
}

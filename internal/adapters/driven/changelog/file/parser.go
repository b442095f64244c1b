package file

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

const timeLayout = time.RFC3339

var (
	headerRe   = regexp.MustCompile(`^=== RUN (\S+) (\S+) ===$`)
	categoryRe = regexp.MustCompile(`^(BOOKED|RELEASED|UPDATED) \((\d+)\):$`)
)

// ParseLog rebuilds the entries from the raw log text. Lines that fit
// no known shape are skipped: the log may carry manual annotations and
// partially written trailing entries must not poison the whole read.
func ParseLog(text string) ([]domain.ChangeLogEntry, error) {
	var entries []domain.ChangeLogEntry
	var current *domain.ChangeLogEntry
	var block *domain.EventBlock

	flushBlock := func() {
		if current != nil && block != nil {
			current.Blocks = append(current.Blocks, *block)
		}
		block = nil
	}
	flushEntry := func() {
		flushBlock()
		if current != nil {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			flushEntry()
			recordedAt, err := time.Parse(timeLayout, m[2])
			if err != nil {
				return nil, fmt.Errorf("bad entry timestamp %q: %w", m[2], err)
			}
			current = &domain.ChangeLogEntry{RunID: m[1], RecordedAt: recordedAt}
			continue
		}

		if current == nil {
			continue
		}

		if m := categoryRe.FindStringSubmatch(line); m != nil {
			flushBlock()
			count, _ := strconv.Atoi(m[2])
			block = &domain.EventBlock{
				Category: domain.EventCategory(m[1]),
				Count:    count,
			}
			continue
		}

		if block != nil && strings.HasPrefix(line, "  ") {
			block.Lines = append(block.Lines, line[2:])
			continue
		}
	}
	flushEntry()

	return entries, nil
}

// Package file implements the append-only change log as a plain text
// file.
//
// The log is the durable audit trail: human-readable as-is, and
// machine-readable by re-parsing the whole file from scratch (there is
// no streaming cursor). Entries are only ever appended; repair is an
// out-of-band maintenance operation, not core behaviour.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure ChangeLog implements the interface.
var _ driven.ChangeLog = (*ChangeLog)(nil)

// ChangeLog is a file-backed implementation of driven.ChangeLog.
// Appends are serialised and written in a single call so concurrent
// readers never observe a torn entry.
type ChangeLog struct {
	mu   sync.Mutex
	path string
}

// NewChangeLog creates a change log at dir/changelog.txt.
// If dir is empty, defaults to ~/.rollcall/data.
func NewChangeLog(dir string) (*ChangeLog, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".rollcall", "data")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	return &ChangeLog{path: filepath.Join(dir, "changelog.txt")}, nil
}

// Path returns the log file path.
func (l *ChangeLog) Path() string {
	return l.path
}

// Append writes one run's entry to the end of the log.
func (l *ChangeLog) Append(_ context.Context, entry domain.ChangeLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening change log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatEntry(entry)); err != nil {
		return fmt.Errorf("appending change log entry: %w", err)
	}
	return nil
}

// ReadAll re-parses the log from scratch and returns every entry in
// append order. A missing file means an empty log.
func (l *ChangeLog) ReadAll(_ context.Context) ([]domain.ChangeLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading change log: %w", err)
	}

	return ParseLog(string(data))
}

// FormatEntry renders one entry as a self-delimiting text block:
//
//	=== RUN <id> <RFC3339> ===
//	BOOKED (2):
//	  <record line>
//	  <record line>
//
// followed by a blank line.
func FormatEntry(entry domain.ChangeLogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== RUN %s %s ===\n", entry.RunID, entry.RecordedAt.UTC().Format(timeLayout))
	for _, block := range entry.Blocks {
		fmt.Fprintf(&b, "%s (%d):\n", block.Category, block.Count)
		for _, line := range block.Lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

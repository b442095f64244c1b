// Package sqlite persists observation state in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/rollcall/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StateStore = (*Store)(nil)

// Store is a SQLite-backed state store. It keeps snapshot history
// (latest wins for diffing) and the pending-release queue in
// insertion order.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.rollcall/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rollcall", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// LatestSnapshot returns the most recent stored snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT fingerprint, raw_text, captured_at
		FROM snapshots ORDER BY id DESC LIMIT 1
	`)

	var snap domain.Snapshot
	var capturedAt sql.NullTime
	if err := row.Scan(&snap.Fingerprint, &snap.RawText, &capturedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	if capturedAt.Valid {
		snap.CapturedAt = capturedAt.Time
	}

	return &snap, nil
}

// SaveSnapshot appends a snapshot as the new latest observation.
// History is kept so past observations stay auditable.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (fingerprint, raw_text, captured_at)
		VALUES (?, ?, ?)
	`, snap.Fingerprint, snap.RawText, snap.CapturedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// ListPending returns queued pending releases in insertion order.
func (s *Store) ListPending(ctx context.Context) ([]domain.PendingRelease, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, booking, detected_at
		FROM pending_releases ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pending releases: %w", err)
	}
	defer rows.Close()

	var pending []domain.PendingRelease //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.PendingRelease
		var bookingJSON string
		var detectedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &bookingJSON, &detectedAt); err != nil {
			return nil, fmt.Errorf("scanning pending release: %w", err)
		}

		if err := json.Unmarshal([]byte(bookingJSON), &p.Booking); err != nil {
			return nil, fmt.Errorf("unmarshaling booking: %w", err)
		}
		if detectedAt.Valid {
			p.DetectedAt = detectedAt.Time
		}
		pending = append(pending, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending releases: %w", err)
	}

	return pending, nil
}

// AddPending appends an entry to the pending queue.
func (s *Store) AddPending(ctx context.Context, pending domain.PendingRelease) error {
	if pending.ID == "" {
		return domain.ErrInvalidInput
	}

	bookingJSON, err := json.Marshal(pending.Booking)
	if err != nil {
		return fmt.Errorf("marshalling booking: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pending_releases (id, name, booking, detected_at)
		VALUES (?, ?, ?, ?)
	`, pending.ID, pending.Name, string(bookingJSON), pending.DetectedAt.UTC())

	if err != nil {
		return fmt.Errorf("adding pending release: %w", err)
	}
	return nil
}

// RemovePending deletes a queue entry by ID.
func (s *Store) RemovePending(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pending_releases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("removing pending release: %w", err)
	}
	return nil
}

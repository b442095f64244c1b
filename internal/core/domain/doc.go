// Package domain defines the core business entities for Rollcall.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BookingRecord: One inmate's state at observation time
//   - Snapshot: A fingerprinted observation of the full roster text
//   - ReleaseDetail: Secondary-feed release information keyed by cleaned name
//   - PendingRelease: A departure awaiting its release detail
//   - ChangeLogEntry: One run's appended audit record
//   - ObservationResult: The outcome of a single observation run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRunInProgress indicates an observation run is already executing.
	// Runs are serialised; a second caller must wait for the first.
	ErrRunInProgress = errors.New("observation run in progress")

	// Run failure classes. The CLI reports each distinctly so an operator
	// can tell "could not retrieve source" from "could not persist".

	// ErrFetchFailed indicates an upstream source could not be retrieved.
	// Fatal for the run; no partial state is committed.
	ErrFetchFailed = errors.New("source fetch failed")

	// ErrParseFailed indicates the roster text could not be processed at all.
	// Per-field extraction failures degrade to sentinel values instead.
	ErrParseFailed = errors.New("source parse failed")

	// ErrPersistFailed indicates state or change-log persistence failed.
	// Fatal and reported distinctly from fetch failures: a swallowed
	// persistence error risks silent data loss.
	ErrPersistFailed = errors.New("persistence failed")
)

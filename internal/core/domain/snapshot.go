package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Snapshot is one complete observation of the roster text at a point
// in time. Two snapshots with equal fingerprints are assumed
// byte-identical; the differ is skipped entirely in that case.
type Snapshot struct {
	// RawText is the extracted roster text blob.
	RawText string

	// Fingerprint is a content hash of RawText, used as a cheap
	// equality check before any diff work.
	Fingerprint string

	// CapturedAt is the timestamp of the run that took the snapshot.
	CapturedAt time.Time
}

// NewSnapshot builds a snapshot of rawText captured at the given time.
func NewSnapshot(rawText string, capturedAt time.Time) Snapshot {
	return Snapshot{
		RawText:     rawText,
		Fingerprint: Fingerprint(rawText),
		CapturedAt:  capturedAt,
	}
}

// Fingerprint returns the content hash of a text blob as lowercase hex.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

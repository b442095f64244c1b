package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	now := time.Date(2024, 1, 17, 14, 10, 0, 0, time.UTC)
	snap := NewSnapshot("roster text", now)

	assert.Equal(t, "roster text", snap.RawText)
	assert.Equal(t, Fingerprint("roster text"), snap.Fingerprint)
	assert.Equal(t, now, snap.CapturedAt)
}

func TestFingerprint_EqualForEqualText(t *testing.T) {
	assert.Equal(t, Fingerprint("same"), Fingerprint("same"))
}

func TestFingerprint_DiffersForDifferentText(t *testing.T) {
	assert.NotEqual(t, Fingerprint("one"), Fingerprint("two"))
}

func TestFingerprint_HexEncoded(t *testing.T) {
	fp := Fingerprint("")
	assert.Len(t, fp, 64)
	assert.Regexp(t, "^[0-9a-f]+$", fp)
}

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30, cfg.MaxPendingAgeDays)
	assert.Equal(t, 30, cfg.DisplayCap)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
roster_url = "https://county.example/roster"
releases_url = "https://county.example/releases"
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://county.example/roster", cfg.RosterURL)
	assert.Equal(t, "https://county.example/releases", cfg.ReleasesURL)
	assert.Equal(t, 30, cfg.MaxPendingAgeDays, "unset keys keep defaults")
	assert.InDelta(t, 1.0, cfg.FetchRatePerSec, 0.001)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not { toml"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Config{
		RosterURL:         "https://county.example/roster",
		ReleasesURL:       "https://county.example/releases",
		DataDir:           "/var/lib/rollcall",
		MaxPendingAgeDays: 14,
		StrictExtraction:  true,
		FetchRatePerSec:   0.5,
		DisplayCap:        10,
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

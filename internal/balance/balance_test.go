package balance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileSeedsDefault(t *testing.T) {
	ledger, err := Load(filepath.Join(t.TempDir(), "ledger.json"), 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, ledger.Chips)
	assert.Zero(t, ledger.HandsPlayed)
	assert.Zero(t, ledger.BestStreak)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	ledger := &Ledger{Chips: 1240, BestStreak: 4, HandsPlayed: 31}
	require.NoError(t, ledger.Save(path))
	assert.False(t, ledger.UpdatedAt.IsZero(), "save stamps the update time")

	loaded, err := Load(path, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1240, loaded.Chips)
	assert.Equal(t, 4, loaded.BestStreak)
	assert.Equal(t, 31, loaded.HandsPlayed)
}

func TestLoadRejectsCorruptLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path, 1000)
	assert.Error(t, err)
}

func TestLoadRejectsNegativeBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chips": -5}`), 0o644))

	_, err := Load(path, 1000)
	assert.Error(t, err)
}

func TestRecordTracksBestStreak(t *testing.T) {
	ledger := &Ledger{Chips: 1000}

	ledger.Record(1020, 1)
	ledger.Record(1040, 2)
	ledger.Record(1020, 0)

	assert.Equal(t, 1020, ledger.Chips)
	assert.Equal(t, 3, ledger.HandsPlayed)
	assert.Equal(t, 2, ledger.BestStreak)
}

package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"headsup/internal/balance"
	"headsup/internal/game"
	"headsup/internal/randutil"
)

func TestLedgerRecorderPersistsAfterEveryHand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.json")
	ledger, err := balance.Load(path, 1000)
	require.NoError(t, err)

	logger := log.New(io.Discard)
	g := game.New(game.DefaultOptions(), randutil.New(42), logger)
	recorder := &ledgerRecorder{
		ledger: ledger,
		game:   g,
		path:   path,
		logger: logger,
	}
	g.Events().Subscribe(recorder)

	_, err = g.Deal()
	require.NoError(t, err)
	_, err = g.Fold(game.PlayerSeat)
	require.NoError(t, err)

	// The file must already reflect the finished hand, with no further
	// save step between hands.
	saved, err := balance.Load(path, 0)
	require.NoError(t, err)
	require.Equal(t, 1, saved.HandsPlayed)
	require.Equal(t, g.Snapshot().PlayerStack, saved.Chips)

	_, err = g.Deal()
	require.NoError(t, err)
	_, err = g.Check(game.PlayerSeat)
	require.NoError(t, err)
	_, err = g.Fold(game.BotSeat)
	require.NoError(t, err)

	saved, err = balance.Load(path, 0)
	require.NoError(t, err)
	require.Equal(t, 2, saved.HandsPlayed)
	require.Equal(t, g.Snapshot().PlayerStack, saved.Chips)
	require.Equal(t, g.Snapshot().WinStreak, saved.BestStreak)
}

// Package balance persists the player's chip count and records between
// sessions. The ledger is a small JSON file written atomically so a crash
// mid-save never corrupts it.
package balance

import (
	"encoding/json"
	"fmt"
	"time"

	"headsup/internal/fileutil"
)

// Ledger is the player's persistent record.
type Ledger struct {
	Chips       int       `json:"chips"`
	BestStreak  int       `json:"best_streak"`
	HandsPlayed int       `json:"hands_played"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Load reads the ledger from path. A missing file yields a fresh ledger
// seeded with defaultChips.
func Load(path string, defaultChips int) (*Ledger, error) {
	data, ok, err := fileutil.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	if !ok {
		return &Ledger{Chips: defaultChips}, nil
	}

	var ledger Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("decoding ledger %s: %w", path, err)
	}
	if ledger.Chips < 0 {
		return nil, fmt.Errorf("ledger %s holds a negative balance", path)
	}
	return &ledger, nil
}

// Save writes the ledger to path, stamping the update time.
func (l *Ledger) Save(path string) error {
	l.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// Record folds a finished hand into the ledger.
func (l *Ledger) Record(chips, streak int) {
	l.Chips = chips
	l.HandsPlayed++
	if streak > l.BestStreak {
		l.BestStreak = streak
	}
}

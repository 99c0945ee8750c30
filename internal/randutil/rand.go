// Package randutil centralises how random sources are constructed so that
// shuffles and bot decisions are reproducible from a single seed.
package randutil

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded from the provided value. Seed 0 means
// "not set" and falls back to the wall clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

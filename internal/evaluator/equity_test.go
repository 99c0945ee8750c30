package evaluator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateEquityAcesAreFavourite(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	eq, err := EstimateEquity(cards(t, "As Ad"), nil, 2000, rng)
	require.NoError(t, err)
	// Pocket aces win roughly 85% of heads-up showdowns.
	assert.Greater(t, eq, 0.75)

	eq, err = EstimateEquity(cards(t, "2c 7d"), nil, 2000, rng)
	require.NoError(t, err)
	assert.Less(t, eq, 0.55)
}

func TestEstimateEquityMadeHandOnRiver(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	// Nut flush on a completed board loses to nothing here.
	eq, err := EstimateEquity(cards(t, "Ah Kh"), cards(t, "Qh Jh 2h 3c 4d"), 500, rng)
	require.NoError(t, err)
	assert.Greater(t, eq, 0.95)
}

func TestEstimateEquityValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, err := EstimateEquity(cards(t, "Ah"), nil, 10, rng)
	require.Error(t, err)

	_, err = EstimateEquityParallel(cards(t, "Ah"), nil, 10, rng)
	require.Error(t, err)
}

func TestEstimateEquityParallelAgreesRoughly(t *testing.T) {
	hole := cards(t, "Ks Kd")
	board := cards(t, "2c 7h Jd")

	seq, err := EstimateEquity(hole, board, 3000, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	par, err := EstimateEquityParallel(hole, board, 3000, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	assert.InDelta(t, seq, par, 0.06)
}

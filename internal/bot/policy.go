// Package bot implements the opponent's decision policy. Decide is a pure
// function of the visible game state, the difficulty parameters and a
// single random draw, so every branch is unit-testable with a forced draw.
package bot

import (
	"fmt"
	"strings"

	"headsup/internal/deck"
	"headsup/internal/evaluator"
)

// Difficulty selects a tier of the parameter table
type Difficulty int

const (
	Passive Difficulty = iota
	Balanced
	Aggressive
)

// String returns the difficulty name
func (d Difficulty) String() string {
	switch d {
	case Passive:
		return "passive"
	case Balanced:
		return "balanced"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a name to a difficulty tier
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "passive":
		return Passive, nil
	case "balanced":
		return Balanced, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return Balanced, fmt.Errorf("unknown difficulty %q (want passive, balanced or aggressive)", s)
	}
}

// Params are the tunables for one difficulty tier. Per-tier behaviour is
// configuration data, not code branches; the table below is the default
// and can be overridden from the config file.
type Params struct {
	BetThreshold  float64 // bet when strength exceeds this
	CallThreshold float64 // call when strength exceeds this
	BluffChance   float64 // chance in [0,1) to bet regardless of strength
	BetSize       int     // fixed bet size in chips
}

// Params returns the default parameter table entry for the tier.
func (d Difficulty) Params() Params {
	switch d {
	case Passive:
		return Params{BetThreshold: 65, CallThreshold: 20, BluffChance: 0.05, BetSize: 25}
	case Aggressive:
		return Params{BetThreshold: 40, CallThreshold: 30, BluffChance: 0.40, BetSize: 100}
	default:
		return Params{BetThreshold: 50, CallThreshold: 25, BluffChance: 0.15, BetSize: 50}
	}
}

// Action is the policy's chosen move
type Action int

const (
	Check Action = iota
	Bet
	Call
	Fold
)

// String returns the action name
func (a Action) String() string {
	return [...]string{"check", "bet", "call", "fold"}[a]
}

// Decision is the policy output. Amount is set only for Bet.
type Decision struct {
	Action Action
	Amount int
}

// Decide picks the bot's move. draw must be a uniform sample from [0,1);
// it is the only nondeterministic input, injected so replays reproduce.
//
// Facing no bet the bot bets its fixed size when the hand is strong enough
// or the draw lands inside the bluff window, otherwise it checks. Facing a
// bet it calls on strength or half the bluff window, otherwise folds.
func Decide(hole, community []deck.Card, pot, toCall, stack int, params Params, draw float64) Decision {
	strength := Strength(hole, community)

	if toCall == 0 {
		if strength > params.BetThreshold || draw < params.BluffChance {
			amount := params.BetSize
			if amount > stack {
				amount = stack
			}
			if amount > 0 {
				return Decision{Action: Bet, Amount: amount}
			}
		}
		return Decision{Action: Check}
	}

	if toCall > stack {
		// Cannot cover the bet; there are no partial calls or side pots.
		return Decision{Action: Fold}
	}
	if strength > params.CallThreshold || draw < params.BluffChance/2 {
		return Decision{Action: Call}
	}
	return Decision{Action: Fold}
}

// Strength scores the bot's hand on a rough 0-100 scale. It is a
// heuristic, not an equity calculation, and is fully deterministic.
//
// Preflop: a pocket pair scores 60 plus the pair value, an unpaired hand
// with a ten-or-better scores 40 plus the high card, suited rags 30 plus
// the high card, everything else 10 plus the high card. Postflop: the
// best five-of-seven category maps to a base (high card 15, pair 55, two
// pair 75, trips-or-better 95) plus half the primary tie-break value to
// order hands inside a category.
func Strength(hole, community []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}

	if len(community) == 0 {
		v1, v2 := hole[0].Value(), hole[1].Value()
		high := v1
		if v2 > high {
			high = v2
		}

		switch {
		case v1 == v2:
			return float64(60 + v1)
		case high >= 10:
			return float64(40 + high)
		case hole[0].Suit == hole[1].Suit:
			return float64(30 + high)
		default:
			return float64(10 + high)
		}
	}

	all := make([]deck.Card, 0, 7)
	all = append(all, hole...)
	all = append(all, community...)

	rank, err := evaluator.Evaluate(all)
	if err != nil {
		return 0
	}

	var base float64
	switch rank.Category {
	case evaluator.HighCard:
		base = 15
	case evaluator.Pair:
		base = 55
	case evaluator.TwoPair:
		base = 75
	default:
		base = 95
	}

	if len(rank.Key) > 0 {
		base += float64(rank.Key[0]) / 2
	}
	return base
}

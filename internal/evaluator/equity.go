package evaluator

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"headsup/internal/deck"
)

// EstimateEquity estimates the chance the hole cards beat one random
// opponent by Monte Carlo sampling: deal the opponent and the missing
// board cards from the unseen stub, run the showdown, repeat. Ties count
// half. The result is in [0,1].
func EstimateEquity(hole, board []deck.Card, samples int, rng *rand.Rand) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("estimate equity: need 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("estimate equity: board has %d cards", len(board))
	}

	stub := unseenCards(hole, board)
	wins, ties := runSamples(hole, board, stub, samples, rng)
	if samples <= 0 {
		return 0, nil
	}
	return (float64(wins) + float64(ties)/2) / float64(samples), nil
}

// EstimateEquityParallel splits the samples across workers. Each worker
// gets an independent RNG derived from the caller's so results stay
// reproducible for a given seed and worker count.
func EstimateEquityParallel(hole, board []deck.Card, samples int, rng *rand.Rand) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("estimate equity: need 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("estimate equity: board has %d cards", len(board))
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > samples {
		workers = 1
	}

	stub := unseenCards(hole, board)

	type tally struct{ wins, ties int }
	results := make([]tally, workers)

	g, _ := errgroup.WithContext(context.Background())
	per := samples / workers
	extra := samples % workers

	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		seed := rng.Int63()
		slot := &results[w]
		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(seed))
			slot.wins, slot.ties = runSamples(hole, board, stub, n, workerRng)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	wins, ties := 0, 0
	for _, r := range results {
		wins += r.wins
		ties += r.ties
	}
	if samples <= 0 {
		return 0, nil
	}
	return (float64(wins) + float64(ties)/2) / float64(samples), nil
}

func runSamples(hole, board, stub []deck.Card, samples int, rng *rand.Rand) (wins, ties int) {
	need := 5 - len(board)
	draw := make([]deck.Card, len(stub))
	hero := make([]deck.Card, 0, 7)
	villain := make([]deck.Card, 0, 7)

	for i := 0; i < samples; i++ {
		copy(draw, stub)
		rng.Shuffle(len(draw), func(a, b int) {
			draw[a], draw[b] = draw[b], draw[a]
		})

		oppHole := draw[:2]
		runout := draw[2 : 2+need]

		hero = hero[:0]
		hero = append(hero, hole...)
		hero = append(hero, board...)
		hero = append(hero, runout...)

		villain = villain[:0]
		villain = append(villain, oppHole...)
		villain = append(villain, board...)
		villain = append(villain, runout...)

		heroRank, err := Evaluate(hero)
		if err != nil {
			continue
		}
		villainRank, err := Evaluate(villain)
		if err != nil {
			continue
		}

		switch Compare(heroRank, villainRank) {
		case 1:
			wins++
		case 0:
			ties++
		}
	}
	return wins, ties
}

// unseenCards returns the 52-card set minus the known cards
func unseenCards(hole, board []deck.Card) []deck.Card {
	used := make(map[deck.Card]bool, len(hole)+len(board))
	for _, c := range hole {
		used[c] = true
	}
	for _, c := range board {
		used[c] = true
	}

	stub := make([]deck.Card, 0, 52-len(used))
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card := deck.NewCard(rank, suit)
			if !used[card] {
				stub = append(stub, card)
			}
		}
	}
	return stub
}

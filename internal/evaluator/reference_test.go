package evaluator

import "headsup/internal/deck"

// referenceScore7 is an independent brute-force evaluator used only to
// cross-check the production one. It scores each 5-card subset into a
// single packed integer (4 bits per field: category then five key slots)
// and keeps the maximum. Written with counting arrays rather than the
// production code's map-based classifier so a shared bug is unlikely.
func referenceScore7(cards []deck.Card) uint64 {
	var best uint64
	n := len(cards)
	// Choosing 5 of 7 is dropping 2.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sub := make([]deck.Card, 0, 5)
			for k := 0; k < n; k++ {
				if k != i && k != j {
					sub = append(sub, cards[k])
				}
			}
			if s := referenceScore5(sub); s > best {
				best = s
			}
		}
	}
	return best
}

func referenceScore5(c []deck.Card) uint64 {
	var counts [15]int
	for _, card := range c {
		counts[card.Value()]++
	}

	flush := true
	for _, card := range c[1:] {
		if card.Suit != c[0].Suit {
			flush = false
		}
	}

	straightHigh := 0
	for high := 14; high >= 6; high-- {
		run := true
		for v := high - 4; v <= high; v++ {
			if counts[v] == 0 {
				run = false
				break
			}
		}
		if run {
			straightHigh = high
			break
		}
	}
	if straightHigh == 0 && counts[14] > 0 && counts[2] > 0 && counts[3] > 0 && counts[4] > 0 && counts[5] > 0 {
		straightHigh = 5
	}

	var quads, trips int
	var pairs, singles []int
	for v := 14; v >= 2; v-- {
		switch counts[v] {
		case 4:
			quads = v
		case 3:
			trips = v
		case 2:
			pairs = append(pairs, v)
		case 1:
			singles = append(singles, v)
		}
	}

	var cat int
	var key []int
	switch {
	case flush && straightHigh > 0:
		cat, key = 8, []int{straightHigh}
	case quads > 0:
		cat, key = 7, append([]int{quads}, singles...)
	case trips > 0 && len(pairs) > 0:
		cat, key = 6, []int{trips, pairs[0]}
	case flush:
		cat, key = 5, singles
	case straightHigh > 0:
		cat, key = 4, []int{straightHigh}
	case trips > 0:
		cat, key = 3, append([]int{trips}, singles...)
	case len(pairs) >= 2:
		cat, key = 2, append([]int{pairs[0], pairs[1]}, singles...)
	case len(pairs) == 1:
		cat, key = 1, append([]int{pairs[0]}, singles...)
	default:
		cat, key = 0, singles
	}

	score := uint64(cat)
	for slot := 0; slot < 5; slot++ {
		score <<= 4
		if slot < len(key) {
			score |= uint64(key[slot])
		}
	}
	return score
}

// Package evaluator ranks poker hands. A hand of up to seven cards is
// scored by enumerating every five-card subset and keeping the best one,
// so the same code path serves the flop, turn and river.
package evaluator

import (
	"fmt"
	"sort"

	"headsup/internal/deck"
)

// Category enumerates hand categories from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name. This string is part of
// the display contract: the presentation layer shows it verbatim at
// showdown.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is a hand category plus its tie-break key, highest significance
// first. Category dominates; within a category keys compare element-wise.
type HandRank struct {
	Category Category
	Key      []int
}

// String returns the category name
func (hr HandRank) String() string {
	return hr.Category.String()
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 on an exact tie.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	n := len(a.Key)
	if len(b.Key) < n {
		n = len(b.Key)
	}
	for i := 0; i < n; i++ {
		if a.Key[i] != b.Key[i] {
			if a.Key[i] > b.Key[i] {
				return 1
			}
			return -1
		}
	}
	// Keys only differ in length when comparing partial hands; the longer
	// key has more live cards behind it.
	switch {
	case len(a.Key) > len(b.Key):
		return 1
	case len(a.Key) < len(b.Key):
		return -1
	}
	return 0
}

// Evaluate returns the best five-card HandRank reachable from the given
// 2-7 cards. With fewer than five cards only multiplicity categories are
// possible; at showdown the input is always seven cards.
func Evaluate(cards []deck.Card) (HandRank, error) {
	switch {
	case len(cards) < 2 || len(cards) > 7:
		return HandRank{}, fmt.Errorf("evaluate: need 2-7 cards, got %d", len(cards))
	case len(cards) <= 5:
		return classify(cards), nil
	}

	var best HandRank
	first := true

	// Enumerate every 5-card subset (C(7,5)=21 at showdown).
	n := len(cards)
	subset := make([]deck.Card, 5)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			rank := classify(subset)
			if first || Compare(rank, best) > 0 {
				best = rank
				first = false
			}
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			subset[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	return best, nil
}

// classify ranks a hand of at most five cards. Straights and flushes
// require exactly five.
func classify(cards []deck.Card) HandRank {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var flush bool
	var straightHigh int
	if len(cards) == 5 {
		flush = true
		for _, c := range cards[1:] {
			if c.Suit != cards[0].Suit {
				flush = false
				break
			}
		}
		straightHigh = straightTop(values)
	}

	switch {
	case flush && straightHigh > 0:
		return HandRank{Category: StraightFlush, Key: []int{straightHigh}}
	case hasCount(counts, 4):
		quad := valueWithCount(counts, 4)
		return HandRank{Category: FourOfAKind, Key: append([]int{quad}, kickers(values, quad)...)}
	case hasCount(counts, 3) && pairBelowTrips(counts):
		trip := valueWithCount(counts, 3)
		pair := highestPairExcluding(counts, trip)
		return HandRank{Category: FullHouse, Key: []int{trip, pair}}
	case flush:
		return HandRank{Category: Flush, Key: values}
	case straightHigh > 0:
		return HandRank{Category: Straight, Key: []int{straightHigh}}
	case hasCount(counts, 3):
		trip := valueWithCount(counts, 3)
		return HandRank{Category: ThreeOfAKind, Key: append([]int{trip}, kickers(values, trip)...)}
	case pairCount(counts) >= 2:
		high := highestPairExcluding(counts, 0)
		low := highestPairExcluding(counts, high)
		return HandRank{Category: TwoPair, Key: append([]int{high, low}, kickers(values, high, low)...)}
	case pairCount(counts) == 1:
		pair := highestPairExcluding(counts, 0)
		return HandRank{Category: Pair, Key: append([]int{pair}, kickers(values, pair)...)}
	default:
		return HandRank{Category: HighCard, Key: values}
	}
}

// straightTop returns the top card of a straight formed by five descending
// values, or 0. The wheel (A-2-3-4-5) counts with top card 5.
func straightTop(desc []int) int {
	if len(desc) != 5 {
		return 0
	}
	run := true
	for i := 1; i < 5; i++ {
		if desc[i] != desc[0]-i {
			run = false
			break
		}
	}
	if run {
		return desc[0]
	}
	// Ace plays low: A,5,4,3,2 sorted descending.
	if desc[0] == 14 && desc[1] == 5 && desc[2] == 4 && desc[3] == 3 && desc[4] == 2 {
		return 5
	}
	return 0
}

func hasCount(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// valueWithCount returns the highest value appearing exactly n times
func valueWithCount(counts map[int]int, n int) int {
	best := 0
	for v, c := range counts {
		if c == n && v > best {
			best = v
		}
	}
	return best
}

func pairCount(counts map[int]int) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}

// pairBelowTrips reports whether a full house is present: a pair alongside
// the best trips. With five cards two sets of trips cannot occur.
func pairBelowTrips(counts map[int]int) bool {
	trip := valueWithCount(counts, 3)
	for v, c := range counts {
		if v != trip && c >= 2 {
			return true
		}
	}
	return false
}

// highestPairExcluding returns the highest value with 2+ cards, skipping
// the excluded value.
func highestPairExcluding(counts map[int]int, exclude int) int {
	best := 0
	for v, c := range counts {
		if c >= 2 && v != exclude && v > best {
			best = v
		}
	}
	return best
}

// kickers returns the values not used by the made hand, descending.
func kickers(desc []int, used ...int) []int {
	isUsed := make(map[int]bool, len(used))
	for _, u := range used {
		isUsed[u] = true
	}
	var out []int
	for _, v := range desc {
		if !isUsed[v] {
			out = append(out, v)
		}
	}
	return out
}

// Outcome identifies the showdown result from the player's perspective.
type Outcome int

const (
	PlayerWins Outcome = iota
	BotWins
	Split
)

// String returns the outcome label shown at showdown
func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "Player"
	case BotWins:
		return "Bot"
	default:
		return "Tie"
	}
}

// DetermineWinner evaluates both seven-card hands and returns the outcome
// together with the winning rank. On a split either rank serves as the
// winning description.
func DetermineWinner(playerCards, botCards []deck.Card) (Outcome, HandRank, error) {
	playerRank, err := Evaluate(playerCards)
	if err != nil {
		return Split, HandRank{}, fmt.Errorf("player hand: %w", err)
	}
	botRank, err := Evaluate(botCards)
	if err != nil {
		return Split, HandRank{}, fmt.Errorf("bot hand: %w", err)
	}

	switch Compare(playerRank, botRank) {
	case 1:
		return PlayerWins, playerRank, nil
	case -1:
		return BotWins, botRank, nil
	default:
		return Split, playerRank, nil
	}
}

package evaluator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headsup/internal/deck"
)

// cards parses a space-separated list like "As Kd Th" into deck cards.
func cards(t *testing.T, s string) []deck.Card {
	t.Helper()

	ranks := map[byte]deck.Rank{
		'2': deck.Two, '3': deck.Three, '4': deck.Four, '5': deck.Five,
		'6': deck.Six, '7': deck.Seven, '8': deck.Eight, '9': deck.Nine,
		'T': deck.Ten, 'J': deck.Jack, 'Q': deck.Queen, 'K': deck.King,
		'A': deck.Ace,
	}
	suits := map[byte]deck.Suit{
		'c': deck.Clubs, 'd': deck.Diamonds, 'h': deck.Hearts, 's': deck.Spades,
	}

	var out []deck.Card
	for _, tok := range strings.Fields(s) {
		require.Len(t, tok, 2, "bad card token %q", tok)
		rank, ok := ranks[tok[0]]
		require.True(t, ok, "bad rank in %q", tok)
		suit, ok := suits[tok[1]]
		require.True(t, ok, "bad suit in %q", tok)
		out = append(out, deck.NewCard(rank, suit))
	}
	return out
}

func mustEvaluate(t *testing.T, s string) HandRank {
	t.Helper()
	rank, err := Evaluate(cards(t, s))
	require.NoError(t, err)
	return rank
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		want  Category
		key   []int
	}{
		{"pocket aces over trip kings board", "As Ad Ks Kd Kc 2h 3s", FullHouse, []int{13, 14}},
		{"royal flush", "Ts Js Qs Ks As", StraightFlush, []int{14}},
		{"wheel straight", "Ah 2c 3d 4s 5h", Straight, []int{5}},
		{"six high straight", "2h 3c 4d 5s 6h", Straight, []int{6}},
		{"quads with kicker", "9c 9d 9h 9s Ah 2c 3d", FourOfAKind, []int{9, 14}},
		{"flush beats straight", "2h 5h 9h Jh Kh 3c 4d", Flush, []int{13, 11, 9, 5, 2}},
		{"two pair with kicker", "Ac Ad Kc Kd Qh 2s 3s", TwoPair, []int{14, 13, 12}},
		{"pair with three kickers", "Ac Ad Kc Qd Jh 2s 3s", Pair, []int{14, 13, 12, 11}},
		{"trips with two kickers", "7c 7d 7h Ac Kd 2s 3s", ThreeOfAKind, []int{7, 14, 13}},
		{"high card", "Ac Kd 9h 5s 3c 2d 7h", HighCard, []int{14, 13, 9, 7, 5}},
		{"wheel straight flush", "Ah 2h 3h 4h 5h 9c 9d", StraightFlush, []int{5}},
		{"full house from two trips", "7c 7d 7h 4c 4d 4h As", FullHouse, []int{7, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEvaluate(t, tt.hand)
			assert.Equal(t, tt.want, got.Category, "category")
			assert.Equal(t, tt.key, got.Key, "tie-break key")
		})
	}
}

func TestEvaluateInputBounds(t *testing.T) {
	_, err := Evaluate(nil)
	require.Error(t, err)
	_, err = Evaluate(cards(t, "Ac"))
	require.Error(t, err)
	_, err = Evaluate(cards(t, "Ac Ad Ks Kd Kc 2h 3s 4s"))
	require.Error(t, err)

	// Two cards is the minimum: pocket pair classifies as a pair.
	rank, err := Evaluate(cards(t, "Ac Ad"))
	require.NoError(t, err)
	assert.Equal(t, Pair, rank.Category)
}

func TestCompareOrdering(t *testing.T) {
	royal := mustEvaluate(t, "Ts Js Qs Ks As")
	quads := mustEvaluate(t, "9c 9d 9h 9s Ah 2c 3d")
	wheel := mustEvaluate(t, "Ah 2c 3d 4s 5h")
	sixHigh := mustEvaluate(t, "2h 3c 4d 5s 6h")

	assert.Equal(t, 1, Compare(royal, quads), "royal above quads")
	assert.Equal(t, 1, Compare(sixHigh, wheel), "six-high straight above wheel")
	assert.Equal(t, -1, Compare(wheel, sixHigh))
	assert.Equal(t, 0, Compare(wheel, wheel))
}

func TestCompareKickers(t *testing.T) {
	aceKicker := mustEvaluate(t, "Tc Td Ac 5d 2h 3s 7s")
	kingKicker := mustEvaluate(t, "Th Ts Kc 5c 2d 3d 7c")
	assert.Equal(t, 1, Compare(aceKicker, kingKicker), "pair of tens, ace kicker wins")

	higherTwoPair := mustEvaluate(t, "Ac Ad 2c 2d Kh 7s 8s")
	lowerTwoPair := mustEvaluate(t, "Kc Kd Qc Qd Ah 7c 8c")
	assert.Equal(t, 1, Compare(higherTwoPair, lowerTwoPair), "aces-up beats kings-up")
}

func TestDetermineWinner(t *testing.T) {
	board := "Ks Kd Kc 2h 3s"

	outcome, rank, err := DetermineWinner(
		cards(t, "As Ad "+board),
		cards(t, "Qc Jd "+board),
	)
	require.NoError(t, err)
	assert.Equal(t, PlayerWins, outcome)
	assert.Equal(t, FullHouse, rank.Category)
	assert.Equal(t, "Full House", rank.String())
}

func TestDetermineWinnerTie(t *testing.T) {
	// The board plays for both seats: neither hole card improves it.
	board := "As Ks Qs Js Ts"

	outcome, rank, err := DetermineWinner(
		cards(t, "2c 3d "+board),
		cards(t, "4h 5c "+board),
	)
	require.NoError(t, err)
	assert.Equal(t, Split, outcome)
	assert.Equal(t, StraightFlush, rank.Category)
	assert.Equal(t, "Tie", Split.String())
}

// TestTotalOrderAgainstReference cross-checks the evaluator against the
// independent packed-integer reference over random 7-card hands: for every
// pair of sampled hands exactly one of >, <, == must hold and both
// evaluators must agree on which.
func TestTotalOrderAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	const numHands = 60
	hands := make([][]deck.Card, numHands)
	ranks := make([]HandRank, numHands)
	refs := make([]uint64, numHands)

	for i := range hands {
		hands[i] = randomHand(rng, 7)
		var err error
		ranks[i], err = Evaluate(hands[i])
		require.NoError(t, err)
		refs[i] = referenceScore7(hands[i])
	}

	for i := 0; i < numHands; i++ {
		for j := 0; j < numHands; j++ {
			got := Compare(ranks[i], ranks[j])
			want := 0
			if refs[i] > refs[j] {
				want = 1
			} else if refs[i] < refs[j] {
				want = -1
			}
			require.Equal(t, want, got,
				"hands %v vs %v: evaluator=%d reference=%d", hands[i], hands[j], got, want)
			// Antisymmetry.
			require.Equal(t, -got, Compare(ranks[j], ranks[i]))
		}
	}
}

func randomHand(rng *rand.Rand, n int) []deck.Card {
	full := make([]deck.Card, 0, 52)
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			full = append(full, deck.NewCard(rank, suit))
		}
	}
	rng.Shuffle(len(full), func(a, b int) { full[a], full[b] = full[b], full[a] })
	return full[:n]
}

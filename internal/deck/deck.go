package deck

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when a card is requested from an exhausted deck.
// A full hand consumes at most 12 of 52 cards, so hitting this during play
// indicates a programming defect rather than a recoverable condition.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a standard 52-card deck, consumed from the top after a
// shuffle. Clubs through spades, deuce through ace, in fixed generation
// order before shuffling.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// New creates a new shuffled deck using the provided RNG. Passing the same
// seeded RNG reproduces the same permutation, which is how tests replay
// hands deterministically.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle rewinds the deck and applies a Fisher-Yates permutation. Every
// ordering of the 52 cards is equally likely.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// DrawN draws n cards from the top of the deck
func (d *Deck) DrawN(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrEmptyDeck
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Burn draws one card and discards it, unseen. Table convention before
// revealing the flop, turn and river.
func (d *Deck) Burn() error {
	_, err := d.Draw()
	return err
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Package game implements the heads-up round state machine. A Game owns
// the authoritative state for one table; every exported action validates
// its preconditions, then either mutates and returns a fresh snapshot or
// returns a named error leaving the state untouched. The engine is a
// synchronous reducer: no goroutines, no timers, one action in, one state
// out. Pacing between actions belongs to the presentation layer.
package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"headsup/internal/bot"
	"headsup/internal/deck"
	"headsup/internal/evaluator"
)

// Street represents the stage of a hand
type Street int

const (
	Start Street = iota
	Preflop
	Flop
	Turn
	River
	Showdown
)

// String returns the street name
func (s Street) String() string {
	return [...]string{"start", "preflop", "flop", "turn", "river", "showdown"}[s]
}

// SeatID identifies a seat at the table
type SeatID int

const (
	PlayerSeat SeatID = iota
	BotSeat
)

// Other returns the opposing seat
func (s SeatID) Other() SeatID {
	if s == PlayerSeat {
		return BotSeat
	}
	return PlayerSeat
}

// String returns the seat name
func (s SeatID) String() string {
	if s == PlayerSeat {
		return "player"
	}
	return "bot"
}

// Seat holds one seat's chip ledger for the current hand
type Seat struct {
	Stack  int
	Folded bool
}

// Result records how the last hand ended.
type Result struct {
	Winner      evaluator.Outcome
	Description string // winning hand category at showdown, empty on folds
	PotWon      int
	ByFold      bool
}

// Options configures a new game
type Options struct {
	Blind       int
	PlayerStack int
	BotStack    int
	BotParams   bot.Params
}

// DefaultOptions returns the standard table setup
func DefaultOptions() Options {
	return Options{
		Blind:       10,
		PlayerStack: 1000,
		BotStack:    1000,
		BotParams:   bot.Balanced.Params(),
	}
}

// Game is the round state machine. All fields are owned exclusively by
// the Game; callers see state only through Snapshot copies.
type Game struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger
	bus    *EventBus

	street     Street
	deck       *deck.Deck
	holes      [2][]deck.Card
	community  []deck.Card
	pot        int
	currentBet int
	turn       SeatID
	seats      [2]Seat
	streak     int
	checked    bool // acting seat already checked this street
	lastResult *Result
}

// New creates a game. The RNG drives both the shuffle and the bot's
// bluff draws, so a seeded RNG replays an entire session.
func New(opts Options, rng *rand.Rand, logger *log.Logger) *Game {
	return &Game{
		opts:   opts,
		rng:    rng,
		logger: logger.WithPrefix("game"),
		bus:    NewEventBus(),
		street: Start,
		seats: [2]Seat{
			{Stack: opts.PlayerStack},
			{Stack: opts.BotStack},
		},
	}
}

// Events returns the bus engine events are published on
func (g *Game) Events() *EventBus {
	return g.bus
}

// Snapshot is a read-only projection of the game state. The bot's hole
// cards are always populated; withholding them from display outside
// showdown is the presentation layer's job.
type Snapshot struct {
	Street      Street
	PlayerHole  []deck.Card
	BotHole     []deck.Card
	Community   []deck.Card
	Pot         int
	CurrentBet  int
	Turn        SeatID
	PlayerStack int
	BotStack    int
	WinStreak   int
	LastResult  *Result
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Street:      g.street,
		PlayerHole:  append([]deck.Card(nil), g.holes[PlayerSeat]...),
		BotHole:     append([]deck.Card(nil), g.holes[BotSeat]...),
		Community:   append([]deck.Card(nil), g.community...),
		Pot:         g.pot,
		CurrentBet:  g.currentBet,
		Turn:        g.turn,
		PlayerStack: g.seats[PlayerSeat].Stack,
		BotStack:    g.seats[BotSeat].Stack,
		WinStreak:   g.streak,
	}
	if g.lastResult != nil {
		result := *g.lastResult
		snap.LastResult = &result
	}
	return snap
}

// handInProgress reports whether a betting street is active
func (g *Game) handInProgress() bool {
	return g.street >= Preflop && g.street <= River
}

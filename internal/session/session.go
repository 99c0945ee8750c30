// Package session paces a heads-up game for interactive play. The engine
// itself resolves every action synchronously; the session schedules the
// bot's reply on an injectable clock so the opponent appears to think,
// and delays the update that reveals new streets. Tests drive the clock
// with quartz's mock.
package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"headsup/internal/bot"
	"headsup/internal/game"
)

// Update is delivered on the updates channel whenever the bot acts.
// Decision carries the move the bot chose.
type Update struct {
	Snapshot game.Snapshot
	Decision bot.Decision
	Err      error
}

// Session wraps a game with bot scheduling. Player actions are applied
// synchronously and return the resulting snapshot; when an action leaves
// the bot on turn, its reply arrives later on Updates.
type Session struct {
	mu     sync.Mutex
	game   *game.Game
	clock  quartz.Clock
	logger *log.Logger

	thinkDelay  time.Duration
	revealDelay time.Duration

	updates chan Update
}

// New creates a session. The consumer must drain Updates; the channel is
// buffered but a stalled reader will eventually block the clock callbacks.
func New(g *game.Game, clock quartz.Clock, logger *log.Logger, thinkDelay, revealDelay time.Duration) *Session {
	return &Session{
		game:        g,
		clock:       clock,
		logger:      logger.WithPrefix("session"),
		thinkDelay:  thinkDelay,
		revealDelay: revealDelay,
		updates:     make(chan Update, 16),
	}
}

// Updates returns the channel carrying the bot's replies.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

// Deal starts a new hand.
func (s *Session) Deal() (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.game.Deal()
	if err != nil {
		return game.Snapshot{}, err
	}
	s.scheduleBotLocked(snap)
	return snap, nil
}

// Check passes the player's action.
func (s *Session) Check() (game.Snapshot, error) {
	return s.apply(func() (game.Snapshot, error) {
		return s.game.Check(game.PlayerSeat)
	})
}

// Bet opens the street's betting for the given amount.
func (s *Session) Bet(amount int) (game.Snapshot, error) {
	return s.apply(func() (game.Snapshot, error) {
		return s.game.Bet(game.PlayerSeat, amount)
	})
}

// Call matches the bot's outstanding bet.
func (s *Session) Call() (game.Snapshot, error) {
	return s.apply(func() (game.Snapshot, error) {
		return s.game.Call(game.PlayerSeat)
	})
}

// Fold concedes the hand to the bot.
func (s *Session) Fold() (game.Snapshot, error) {
	return s.apply(func() (game.Snapshot, error) {
		return s.game.Fold(game.PlayerSeat)
	})
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

func (s *Session) apply(action func() (game.Snapshot, error)) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := action()
	if err != nil {
		return game.Snapshot{}, err
	}
	s.scheduleBotLocked(snap)
	return snap, nil
}

func (s *Session) scheduleBotLocked(snap game.Snapshot) {
	if snap.Turn != game.BotSeat {
		return
	}
	s.logger.Debug("scheduling bot reply", "delay", s.thinkDelay)
	s.clock.AfterFunc(s.thinkDelay, s.runBot)
}

// runBot fires from the clock. The turn may no longer be the bot's if the
// hand was torn down in between, so it re-checks under the lock.
func (s *Session) runBot() {
	s.mu.Lock()

	snap := s.game.Snapshot()
	if snap.Turn != game.BotSeat || snap.Street == game.Start || snap.Street == game.Showdown {
		s.mu.Unlock()
		return
	}

	before := snap.Street
	decision, after, err := s.game.BotTurn()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("bot turn failed", "error", err)
		s.updates <- Update{Err: err}
		return
	}

	update := Update{Snapshot: after, Decision: decision}

	// Hold the update back when the bot's move revealed new cards or
	// ended the hand, so the reveal reads as its own beat.
	if after.Street != before && s.revealDelay > 0 {
		s.clock.AfterFunc(s.revealDelay, func() {
			s.updates <- update
		})
		return
	}
	s.updates <- update
}

package tui

import (
	"fmt"
	"sync"

	"github.com/muesli/termenv"

	"headsup/internal/evaluator"
	"headsup/internal/game"
)

// Cue names an audio beat tied to a game event.
type Cue string

const (
	CueDeal  Cue = "deal"
	CueChips Cue = "chips"
	CueFold  Cue = "fold"
	CueWin   Cue = "win"
)

// CueFor maps a game event to its cue.
func CueFor(e game.Event) (Cue, bool) {
	switch e.EventType() {
	case game.EventDeal:
		return CueDeal, true
	case game.EventChipMove:
		return CueChips, true
	case game.EventFold:
		return CueFold, true
	case game.EventWin:
		return CueWin, true
	default:
		return "", false
	}
}

// Notifier renders cues on the terminal: a bell for in-hand cues and an
// OSC desktop notification when the player takes down a pot. It
// subscribes to the game's event bus.
type Notifier struct {
	mu    sync.Mutex
	out   *termenv.Output
	muted bool
}

// NewNotifier creates a notifier writing to out.
func NewNotifier(out *termenv.Output, muted bool) *Notifier {
	return &Notifier{out: out, muted: muted}
}

// SetMuted toggles cue output.
func (n *Notifier) SetMuted(muted bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.muted = muted
}

// Muted reports whether cues are suppressed.
func (n *Notifier) Muted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.muted
}

// OnEvent implements game.EventSubscriber.
func (n *Notifier) OnEvent(e game.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.muted {
		return
	}

	cue, ok := CueFor(e)
	if !ok {
		return
	}

	switch cue {
	case CueWin:
		if win, ok := e.(game.WinEvent); ok && win.Winner == evaluator.PlayerWins {
			body := "You win the pot"
			if win.Description != "" {
				body = fmt.Sprintf("You win %d with %s", win.Amount, win.Description)
			}
			n.out.Notify("headsup", body)
		}
		fmt.Fprint(n.out, "\a")
	default:
		fmt.Fprint(n.out, "\a")
	}
}

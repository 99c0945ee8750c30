package game

import "errors"

// Action validation errors. Every failed validation is rejected before any
// mutation: the caller sees the error and an unchanged game.
var (
	// ErrIllegalCheck is returned for a check while a bet is outstanding.
	ErrIllegalCheck = errors.New("cannot check while a bet is outstanding")

	// ErrInsufficientStack is returned when a bet or call exceeds the
	// acting seat's stack.
	ErrInsufficientStack = errors.New("amount exceeds stack")

	// ErrInsufficientChips is returned by Deal when either seat cannot
	// post the blind. The caller decides what happens next (rebuy, end
	// of session); the engine does not.
	ErrInsufficientChips = errors.New("stack below blind")

	// ErrOutOfTurn is returned when a seat acts out of turn.
	ErrOutOfTurn = errors.New("not this seat's turn")

	// ErrNoHand is returned for an action when no hand is in progress.
	ErrNoHand = errors.New("no hand in progress")

	// ErrHandInProgress is returned by Deal mid-hand.
	ErrHandInProgress = errors.New("hand already in progress")

	// ErrBetOutstanding is returned for a bet while one is already
	// outstanding; the flat heads-up model has no raising.
	ErrBetOutstanding = errors.New("bet already outstanding")

	// ErrNothingToCall is returned for a call with no outstanding bet.
	ErrNothingToCall = errors.New("no bet to call")
)

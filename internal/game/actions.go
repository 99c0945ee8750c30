package game

import (
	"fmt"
	"time"

	"headsup/internal/bot"
	"headsup/internal/deck"
	"headsup/internal/evaluator"
)

// Deal starts a new hand. Valid only between hands (Start, Showdown, or
// after a fold reset). Both seats post the blind, hole cards go out
// alternating player-bot-player-bot, and the player acts first preflop.
func (g *Game) Deal() (Snapshot, error) {
	if g.handInProgress() {
		return Snapshot{}, ErrHandInProgress
	}
	if g.seats[PlayerSeat].Stack < g.opts.Blind || g.seats[BotSeat].Stack < g.opts.Blind {
		return Snapshot{}, ErrInsufficientChips
	}

	d := deck.New(g.rng)
	dealt, err := d.DrawN(4)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dealing hole cards: %w", err)
	}

	g.deck = d
	g.holes[PlayerSeat] = []deck.Card{dealt[0], dealt[2]}
	g.holes[BotSeat] = []deck.Card{dealt[1], dealt[3]}
	g.community = nil
	g.seats[PlayerSeat].Stack -= g.opts.Blind
	g.seats[BotSeat].Stack -= g.opts.Blind
	g.seats[PlayerSeat].Folded = false
	g.seats[BotSeat].Folded = false
	g.pot = 2 * g.opts.Blind
	g.currentBet = 0
	g.checked = false
	g.street = Preflop
	g.turn = PlayerSeat
	g.lastResult = nil

	g.logger.Debug("dealt new hand", "blind", g.opts.Blind, "pot", g.pot)
	g.bus.Publish(DealEvent{Blind: g.opts.Blind, Pot: g.pot, timestamp: time.Now()})

	return g.Snapshot(), nil
}

// Check passes the action. Valid only with no outstanding bet. When both
// seats have checked the street advances.
func (g *Game) Check(seat SeatID) (Snapshot, error) {
	if !g.handInProgress() {
		return Snapshot{}, ErrNoHand
	}
	if seat != g.turn {
		return Snapshot{}, ErrOutOfTurn
	}
	if g.currentBet != 0 {
		return Snapshot{}, ErrIllegalCheck
	}

	if !g.checked {
		g.checked = true
		g.turn = seat.Other()
		g.logger.Debug("check", "seat", seat, "street", g.street)
		return g.Snapshot(), nil
	}

	// Both seats checked the street through.
	g.logger.Debug("check", "seat", seat, "street", g.street)
	if err := g.advanceStreet(); err != nil {
		return Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// Bet puts chips in, opening the street's betting. The amount becomes the
// outstanding bet the other seat must match. There is no raising in this
// flat heads-up model: one bet per street, answered by a call or a fold.
func (g *Game) Bet(seat SeatID, amount int) (Snapshot, error) {
	if !g.handInProgress() {
		return Snapshot{}, ErrNoHand
	}
	if seat != g.turn {
		return Snapshot{}, ErrOutOfTurn
	}
	if g.currentBet != 0 {
		return Snapshot{}, ErrBetOutstanding
	}
	if amount <= 0 || amount > g.seats[seat].Stack {
		return Snapshot{}, ErrInsufficientStack
	}

	g.seats[seat].Stack -= amount
	g.pot += amount
	g.currentBet = amount
	g.checked = false
	g.turn = seat.Other()

	g.logger.Debug("bet", "seat", seat, "amount", amount, "pot", g.pot)
	g.bus.Publish(ChipMoveEvent{Seat: seat, Amount: amount, PotAfter: g.pot, timestamp: time.Now()})

	return g.Snapshot(), nil
}

// Call matches the outstanding bet and advances the street.
func (g *Game) Call(seat SeatID) (Snapshot, error) {
	if !g.handInProgress() {
		return Snapshot{}, ErrNoHand
	}
	if seat != g.turn {
		return Snapshot{}, ErrOutOfTurn
	}
	if g.currentBet == 0 {
		return Snapshot{}, ErrNothingToCall
	}
	if g.currentBet > g.seats[seat].Stack {
		return Snapshot{}, ErrInsufficientStack
	}

	amount := g.currentBet
	g.seats[seat].Stack -= amount
	g.pot += amount
	g.currentBet = 0

	g.logger.Debug("call", "seat", seat, "amount", amount, "pot", g.pot)
	g.bus.Publish(ChipMoveEvent{Seat: seat, Amount: amount, PotAfter: g.pot, timestamp: time.Now()})

	if err := g.advanceStreet(); err != nil {
		return Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// Fold concedes the hand. The opposing seat collects the pot and the hand
// resets to Start, skipping any remaining streets.
func (g *Game) Fold(seat SeatID) (Snapshot, error) {
	if !g.handInProgress() {
		return Snapshot{}, ErrNoHand
	}
	if seat != g.turn {
		return Snapshot{}, ErrOutOfTurn
	}

	winner := seat.Other()
	pot := g.pot
	street := g.street

	g.seats[seat].Folded = true
	g.seats[winner].Stack += pot
	g.pot = 0
	g.currentBet = 0
	g.street = Start

	outcome := evaluator.BotWins
	if winner == PlayerSeat {
		outcome = evaluator.PlayerWins
		g.streak++
	} else {
		g.streak = 0
	}
	g.lastResult = &Result{Winner: outcome, PotWon: pot, ByFold: true}

	g.logger.Debug("fold", "seat", seat, "street", street, "pot", pot)
	g.bus.Publish(FoldEvent{Seat: seat, Street: street, timestamp: time.Now()})
	g.bus.Publish(WinEvent{Winner: outcome, Amount: pot, timestamp: time.Now()})

	return g.Snapshot(), nil
}

// BotTurn runs the bot's decision policy and applies the chosen action.
// The caller invokes it when the turn indicator points at the bot,
// typically after a presentation-side delay; the engine itself never
// schedules anything.
func (g *Game) BotTurn() (bot.Decision, Snapshot, error) {
	if !g.handInProgress() {
		return bot.Decision{}, Snapshot{}, ErrNoHand
	}
	if g.turn != BotSeat {
		return bot.Decision{}, Snapshot{}, ErrOutOfTurn
	}

	decision := bot.Decide(
		g.holes[BotSeat], g.community,
		g.pot, g.currentBet, g.seats[BotSeat].Stack,
		g.opts.BotParams, g.rng.Float64(),
	)

	var snap Snapshot
	var err error
	switch decision.Action {
	case bot.Check:
		snap, err = g.Check(BotSeat)
	case bot.Bet:
		snap, err = g.Bet(BotSeat, decision.Amount)
	case bot.Call:
		snap, err = g.Call(BotSeat)
	case bot.Fold:
		snap, err = g.Fold(BotSeat)
	}
	if err != nil {
		return decision, Snapshot{}, fmt.Errorf("applying bot %s: %w", decision.Action, err)
	}

	g.logger.Debug("bot acted", "action", decision.Action, "amount", decision.Amount)
	return decision, snap, nil
}

// advanceStreet burns a card and reveals the next community cards, or
// runs the showdown from the river. The player acts first on every new
// street in this simplified heads-up convention.
func (g *Game) advanceStreet() error {
	switch g.street {
	case Preflop, Flop, Turn:
		if err := g.deck.Burn(); err != nil {
			return fmt.Errorf("burning before %s: %w", g.street+1, err)
		}
		reveal := 1
		if g.street == Preflop {
			reveal = 3
		}
		cards, err := g.deck.DrawN(reveal)
		if err != nil {
			return fmt.Errorf("revealing %s: %w", g.street+1, err)
		}
		g.community = append(g.community, cards...)
		g.street++
	case River:
		return g.showdown()
	default:
		return ErrNoHand
	}

	g.currentBet = 0
	g.checked = false
	g.turn = PlayerSeat
	g.logger.Debug("street advanced", "street", g.street, "community", g.community)
	return nil
}

// showdown compares both seven-card hands, pays out the pot and ends the
// hand. A split pot divides evenly; the odd chip on an odd pot goes to
// the player. The win streak counts consecutive player-favorable
// resolutions: it grows on a player win, resets on a bot win, and a split
// leaves it alone.
func (g *Game) showdown() error {
	playerCards := append(append([]deck.Card(nil), g.holes[PlayerSeat]...), g.community...)
	botCards := append(append([]deck.Card(nil), g.holes[BotSeat]...), g.community...)

	outcome, rank, err := evaluator.DetermineWinner(playerCards, botCards)
	if err != nil {
		return fmt.Errorf("showdown: %w", err)
	}

	pot := g.pot
	amount := pot
	switch outcome {
	case evaluator.PlayerWins:
		g.seats[PlayerSeat].Stack += pot
		g.streak++
	case evaluator.BotWins:
		g.seats[BotSeat].Stack += pot
		g.streak = 0
	case evaluator.Split:
		share := pot / 2
		g.seats[PlayerSeat].Stack += share + pot%2
		g.seats[BotSeat].Stack += share
		amount = share
	}

	g.pot = 0
	g.currentBet = 0
	g.street = Showdown
	g.lastResult = &Result{Winner: outcome, Description: rank.String(), PotWon: pot}

	g.logger.Debug("showdown", "winner", outcome, "hand", rank, "pot", pot)
	g.bus.Publish(WinEvent{
		Winner:      outcome,
		Amount:      amount,
		Description: rank.String(),
		Board:       append([]deck.Card(nil), g.community...),
		timestamp:   time.Now(),
	})

	return nil
}

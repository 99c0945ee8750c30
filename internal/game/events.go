package game

import (
	"time"

	"headsup/internal/deck"
	"headsup/internal/evaluator"
)

// EventType tags the discrete engine events the presentation layer maps
// to audio and visual cues. Each tag is emitted exactly once per
// corresponding state transition.
type EventType string

const (
	EventDeal     EventType = "deal"
	EventChipMove EventType = "chip_move"
	EventFold     EventType = "fold"
	EventWin      EventType = "win"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents any engine event
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// DealEvent is published when a new hand is dealt
type DealEvent struct {
	Blind     int
	Pot       int
	timestamp time.Time
}

func (e DealEvent) EventType() EventType { return EventDeal }
func (e DealEvent) Timestamp() time.Time { return e.timestamp }

// ChipMoveEvent is published when chips move into the pot
type ChipMoveEvent struct {
	Seat      SeatID
	Amount    int
	PotAfter  int
	timestamp time.Time
}

func (e ChipMoveEvent) EventType() EventType { return EventChipMove }
func (e ChipMoveEvent) Timestamp() time.Time { return e.timestamp }

// FoldEvent is published when a seat folds
type FoldEvent struct {
	Seat      SeatID
	Street    Street
	timestamp time.Time
}

func (e FoldEvent) EventType() EventType { return EventFold }
func (e FoldEvent) Timestamp() time.Time { return e.timestamp }

// WinEvent is published when a pot is awarded, at showdown or after a
// fold. On a split pot Winner is evaluator.Split and Amount is the share
// paid to each seat.
type WinEvent struct {
	Winner      evaluator.Outcome
	Amount      int
	Description string
	Board       []deck.Card
	timestamp   time.Time
}

func (e WinEvent) EventType() EventType { return EventWin }
func (e WinEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives engine events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus is a basic in-memory fan-out for engine events. Delivery is
// synchronous and in subscription order; the engine never blocks on I/O
// because subscribers are expected to hand work off.
type EventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *EventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber
func (bus *EventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *EventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

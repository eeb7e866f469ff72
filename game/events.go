package game

import "github.com/google/uuid"

// EventType names something the engine reports.
type EventType int

const (
	EventRoundStart EventType = iota
	EventFruitEaten
	EventCollision
)

// String returns the log name of the event type.
func (t EventType) String() string {
	switch t {
	case EventRoundStart:
		return "round-start"
	case EventFruitEaten:
		return "fruit-eaten"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Event describes one engine transition and the state right after it.
type Event struct {
	Type   EventType
	Round  uuid.UUID
	Head   Point
	Length int
}

// EventHandler receives events from an EventBus.
type EventHandler func(Event)

// EventBus delivers engine events synchronously on the emitting goroutine.
// Subscribe before the engine starts running; handlers must not block.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

// NewEventBus creates a bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for events of type t.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit is a no-op on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtProjectileFired EventType = iota
	EvtEntityDestroyed
	EvtScoreChanged
	EvtShieldsWiped
	EvtGameOver
)

// DestroyedPayload describes a collision kill
type DestroyedPayload struct {
	Victim Kind
	By     Kind
	Bounds Rect
}

// GameOverPayload tells why the game ended
type GameOverPayload struct {
	Won   bool
	Score int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events in emission order. Events emitted by
// handlers wait for the next Dispatch.
func (eb *EventBus) Dispatch() {
	pending := eb.queue
	eb.queue = nil
	for _, e := range pending {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
}

package clover

import "github.com/go-gl/mathgl/mgl64"

const (
	BOUNCE EventType = iota
	ARMED
	GRAB
	RELEASE
	FINISH
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case BOUNCE:
		return "bounce"
	case ARMED:
		return "armed"
	case GRAB:
		return "grab"
	case RELEASE:
		return "release"
	case FINISH:
		return "finish"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// BounceEvent is emitted for every audible ball bounce
type BounceEvent struct {
	// Axis is 0 for a wall, 1 for a floor or a ceiling
	Axis      int
	Intensity float64
}

func (e BounceEvent) Type() EventType { return BOUNCE }

type ArmedEvent struct {
	Armed bool
}

func (e ArmedEvent) Type() EventType { return ARMED }

type GrabEvent struct {
	Position mgl64.Vec2
}

func (e GrabEvent) Type() EventType { return GRAB }

// ReleaseEvent carries the velocity handed over to the ball
type ReleaseEvent struct {
	Velocity mgl64.Vec2
}

func (e ReleaseEvent) Type() EventType { return RELEASE }

type FinishEvent struct {
	Elapsed float64
	Tier    Tier
}

func (e FinishEvent) Type() EventType { return FINISH }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}

// discard drops the buffered events without notifying
func (e *Events) discard() {
	e.buffer = e.buffer[:0]
}

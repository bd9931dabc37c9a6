package collide

import (
	"unsafe"

	"github.com/Ignitarium-AI/fcl-fork/geom"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent fires on the first step a pair is found colliding
type CollisionEnterEvent struct {
	A *geom.Object
	B *geom.Object
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

// CollisionStayEvent fires on every subsequent step the pair keeps colliding
type CollisionStayEvent struct {
	A *geom.Object
	B *geom.Object
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

// CollisionExitEvent fires on the first step a previously colliding pair separates
type CollisionExitEvent struct {
	A *geom.Object
	B *geom.Object
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

type pairKey struct {
	a *geom.Object
	b *geom.Object
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(a, b *geom.Object) pairKey {
	ptrA := uintptr(unsafe.Pointer(a))
	ptrB := uintptr(unsafe.Pointer(b))

	if ptrB < ptrA {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks colliding pairs across steps and dispatches
// enter/stay/exit transitions to subscribed listeners.
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollisions marks the pairs found colliding in the current step
func (e *Events) recordCollisions(pairs []Pair) {
	for _, pair := range pairs {
		e.currentActivePairs[makePairKey(pair.A, pair.B)] = true
	}
}

// forgetBody drops all tracking state referring to a removed body
func (e *Events) forgetBody(body *geom.Object) {
	for pair := range e.previousActivePairs {
		if pair.a == body || pair.b == body {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.a == body || pair.b == body {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, CollisionStayEvent{A: pair.a, B: pair.b})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, CollisionEnterEvent{A: pair.a, B: pair.b})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			// Pair was active but is no longer, Exit
			e.buffer = append(e.buffer, CollisionExitEvent{A: pair.a, B: pair.b})
		}
	}

	// Swap for next step and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}

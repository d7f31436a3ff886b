package collide

import (
	"bytes"
	"slices"

	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/contact"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "enter"
	case COLLISION_STAY:
		return "stay"
	case COLLISION_EXIT:
		return "exit"
	}
	return "unknown"
}

type pairKey struct {
	bodyA *actor.RigidBody
	bodyB *actor.RigidBody
}

// makePairKey creates a normalized pair key, ordered by body ID
func makePairKey(bodyA, bodyB *actor.RigidBody) pairKey {
	if bytes.Compare(bodyB.ID[:], bodyA.ID[:]) < 0 {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent is sent on the first step a pair collides.
// Contact is the contact of that step, as seen from BodyA.
type CollisionEnterEvent struct {
	BodyA   *actor.RigidBody
	BodyB   *actor.RigidBody
	Contact contact.Info
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

// CollisionStayEvent is sent on every following step the pair still collides.
type CollisionStayEvent struct {
	BodyA   *actor.RigidBody
	BodyB   *actor.RigidBody
	Contact contact.Info
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

// CollisionExitEvent is sent on the first step the pair no longer collides.
type CollisionExitEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager. Use NewEvents: the zero value has no maps.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]collision

	// Pairs in the order they were first recorded, so events are delivered in detection order
	previousOrder []pairKey
	currentOrder  []pairKey
}

// collision keeps the bodies in query order, the order the contact is expressed in
type collision struct {
	bodyA *actor.RigidBody
	bodyB *actor.RigidBody
	info  contact.Info
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]collision),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollision is called for every pair found colliding during the step
func (e *Events) recordCollision(bodyA, bodyB *actor.RigidBody, info contact.Info) {
	pair := makePairKey(bodyA, bodyB)
	if _, ok := e.currentActivePairs[pair]; !ok {
		e.currentOrder = append(e.currentOrder, pair)
	}
	e.currentActivePairs[pair] = collision{bodyA: bodyA, bodyB: bodyB, info: info}
}

// forget drops every tracked pair involving body, without emitting an exit event
func (e *Events) forget(body *actor.RigidBody) {
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.currentActivePairs, pair)
		}
	}

	involves := func(pair pairKey) bool {
		return pair.bodyA == body || pair.bodyB == body
	}
	e.previousOrder = slices.DeleteFunc(e.previousOrder, involves)
	e.currentOrder = slices.DeleteFunc(e.currentOrder, involves)
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit.
// Enter and Stay events follow the order the pairs were recorded in this step,
// Exit events the order they were recorded in the previous one.
func (e *Events) processCollisionEvents() {
	for _, pair := range e.currentOrder {
		c := e.currentActivePairs[pair]
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: c.bodyA, BodyB: c.bodyB, Contact: c.info})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: c.bodyA, BodyB: c.bodyB, Contact: c.info})
		}
	}

	for _, pair := range e.previousOrder {
		if _, ok := e.currentActivePairs[pair]; !ok {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Current pairs become the previous ones for the next step
	clear(e.previousActivePairs)
	for _, pair := range e.currentOrder {
		e.previousActivePairs[pair] = true
	}
	clear(e.currentActivePairs)

	e.previousOrder, e.currentOrder = e.currentOrder, e.previousOrder[:0]
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}

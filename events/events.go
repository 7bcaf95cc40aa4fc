// Package events implements contact Enter/Stay/Exit classification and
// sleep/wake notification, adapted from the teacher's trigger.go.
// The teacher's trigger-vs-collision split has no counterpart in the
// data model here (Material carries no IsTrigger flag) and is
// dropped; everything else — the active-pair bookkeeping, the
// listener-by-type dispatch, the buffer-then-flush pattern — is kept.
package events

import "fmt"

// EventType classifies a dispatched Event.
type EventType uint8

const (
	ContactEnter EventType = iota
	ContactStay
	ContactExit
	OnSleep
	OnWake
)

// Event is implemented by every event this package dispatches.
type Event[Id comparable] interface {
	Type() EventType
}

// ContactEnterEvent fires the first tick a pair is found colliding.
type ContactEnterEvent[Id comparable] struct{ A, B Id }

func (ContactEnterEvent[Id]) Type() EventType { return ContactEnter }

// ContactStayEvent fires every subsequent tick the pair remains in contact.
type ContactStayEvent[Id comparable] struct{ A, B Id }

func (ContactStayEvent[Id]) Type() EventType { return ContactStay }

// ContactExitEvent fires the tick a previously-colliding pair separates.
type ContactExitEvent[Id comparable] struct{ A, B Id }

func (ContactExitEvent[Id]) Type() EventType { return ContactExit }

// SleepEvent fires the tick a body transitions into sleep.
type SleepEvent[Id comparable] struct{ Body Id }

func (SleepEvent[Id]) Type() EventType { return OnSleep }

// WakeEvent fires the tick a body transitions out of sleep.
type WakeEvent[Id comparable] struct{ Body Id }

func (WakeEvent[Id]) Type() EventType { return OnWake }

// Listener receives a dispatched Event.
type Listener[Id comparable] func(Event[Id])

type pairKey[Id comparable] struct{ a, b Id }

// normalizePair canonicalizes (a, b) so the same unordered pair maps
// to the same pairKey regardless of argument order. Id has no
// ordering of its own (only comparable), so the canonical order is
// derived from each value's string form instead: stable across calls,
// and what the broad phase's Sweep-and-Prune pair order can flip tick
// to tick without Dispatcher mistaking it for a different pair.
func normalizePair[Id comparable](a, b Id) pairKey[Id] {
	if fmt.Sprint(b) < fmt.Sprint(a) {
		a, b = b, a
	}
	return pairKey[Id]{a, b}
}

// Dispatcher tracks the active contact set between ticks to classify
// Enter/Stay/Exit, buffers events during a tick, and flushes them to
// subscribed listeners at the end of it.
type Dispatcher[Id comparable] struct {
	listeners map[EventType][]Listener[Id]
	buffer    []Event[Id]

	previousActive map[pairKey[Id]]bool
	currentActive  map[pairKey[Id]]bool

	sleepStates map[Id]bool
}

// NewDispatcher builds an empty Dispatcher.
func NewDispatcher[Id comparable]() *Dispatcher[Id] {
	return &Dispatcher[Id]{
		listeners:      make(map[EventType][]Listener[Id]),
		buffer:         make([]Event[Id], 0, 64),
		previousActive: make(map[pairKey[Id]]bool),
		currentActive:  make(map[pairKey[Id]]bool),
		sleepStates:    make(map[Id]bool),
	}
}

// Subscribe registers listener for every event of eventType.
func (d *Dispatcher[Id]) Subscribe(eventType EventType, listener Listener[Id]) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// RecordContact marks (a, b) active for the current tick; call once
// per resolved contact before Flush.
func (d *Dispatcher[Id]) RecordContact(a, b Id) {
	d.currentActive[normalizePair(a, b)] = true
}

// RecordSleepState notes a body's current IsSleeping flag so Flush can
// emit Sleep/Wake transitions.
func (d *Dispatcher[Id]) RecordSleepState(id Id, isSleeping bool) {
	tracked, exists := d.sleepStates[id]
	if !exists {
		d.sleepStates[id] = isSleeping
		return
	}
	if !tracked && isSleeping {
		d.buffer = append(d.buffer, SleepEvent[Id]{Body: id})
		d.sleepStates[id] = true
	} else if tracked && !isSleeping {
		d.buffer = append(d.buffer, WakeEvent[Id]{Body: id})
		d.sleepStates[id] = false
	}
}

// Flush classifies the tick's active pairs against the previous
// tick's, dispatches every buffered event to its listeners, then
// rotates the active-pair sets for the next tick.
func (d *Dispatcher[Id]) Flush() {
	for pair := range d.currentActive {
		if d.previousActive[pair] {
			d.buffer = append(d.buffer, ContactStayEvent[Id]{A: pair.a, B: pair.b})
		} else {
			d.buffer = append(d.buffer, ContactEnterEvent[Id]{A: pair.a, B: pair.b})
		}
	}
	for pair := range d.previousActive {
		if !d.currentActive[pair] {
			d.buffer = append(d.buffer, ContactExitEvent[Id]{A: pair.a, B: pair.b})
		}
	}

	for _, event := range d.buffer {
		for _, listener := range d.listeners[event.Type()] {
			listener(event)
		}
	}
	d.buffer = d.buffer[:0]

	d.previousActive, d.currentActive = d.currentActive, d.previousActive
	clear(d.currentActive)
}

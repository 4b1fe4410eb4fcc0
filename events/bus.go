// ABOUTME: Synchronous in-process event bus with per-handler fault isolation
// ABOUTME: Fan-out runs on the caller's stack; handler panics are contained
package events

import (
	"log"
	"sync"
)

// Handler receives the payload dispatched for an event type. Payload shapes
// are documented on the Type constants.
type Handler func(payload any)

type subscription struct {
	handler Handler
}

// Bus delivers dispatched events to every subscribed handler for that type,
// synchronously and in subscription order. A handler that panics is logged
// and skipped; its siblings still run. Dispatching from inside a handler is
// re-entrant: the nested dispatch completes before the outer one resumes.
type Bus struct {
	mu       sync.Mutex
	handlers map[Type][]*subscription
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]*subscription),
	}
}

// Subscribe registers handler for eventType and returns a function that
// removes exactly this registration. Subscribing the same handler twice
// yields two independent registrations.
func (b *Bus) Subscribe(eventType Type, handler Handler) func() {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, s := range subs {
			if s == sub {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch invokes every handler currently registered for eventType. It never
// panics to its caller; a type with no subscribers is a silent no-op. There is
// no retry and no deferral: by the time Dispatch returns, every handler (and
// any handlers of nested dispatches) has completed.
func (b *Bus) Dispatch(eventType Type, payload any) {
	b.mu.Lock()
	subs := b.handlers[eventType]
	// Snapshot so handlers can subscribe/unsubscribe during dispatch without
	// affecting the current fan-out.
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.invoke(eventType, sub.handler, payload)
	}
}

func (b *Bus) invoke(eventType Type, handler Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("warning: handler for event %s failed: %v", eventType, r)
		}
	}()
	handler(payload)
}

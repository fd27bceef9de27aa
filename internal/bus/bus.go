// Package bus is the in-process event bus. Services emit state changes on
// it; the agent and the control API subscribe to keep their views current.
package bus

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// Handler receives one event. Handlers run on the emitting goroutine and
// must hand long work off to their own goroutine.
type Handler func(ctx context.Context, event models.Event)

// Emitter is the publishing side of the bus, the only part services need.
type Emitter interface {
	Emit(ctx context.Context, event models.Event)
}

type listener struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to the handlers registered for their type.
type Bus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[models.EventType][]listener
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{listeners: make(map[models.EventType][]listener)}
}

// On registers handler for events of type t and returns a function that
// removes it again.
func (b *Bus) On(t models.EventType, handler Handler) (off func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[t] = append(b.listeners[t], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		kept := b.listeners[t][:0]
		for _, l := range b.listeners[t] {
			if l.id != id {
				kept = append(kept, l)
			}
		}
		b.listeners[t] = kept
	}
}

// Emit calls every handler registered for event.Type in registration order.
func (b *Bus) Emit(ctx context.Context, event models.Event) {
	// Copy under the lock, dispatch without it: handlers may emit or
	// unsubscribe themselves.
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.listeners[event.Type]))
	for _, l := range b.listeners[event.Type] {
		handlers = append(handlers, l.handler)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx, event)
	}
}

// Recorder is an [Emitter] that keeps every emitted event. Tests and the
// control API use it to observe what a call announced.
type Recorder struct {
	mu     sync.Mutex
	events []models.Event
}

// Emit implements [Emitter].
func (r *Recorder) Emit(_ context.Context, event models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t models.EventType) []models.Event {
	var out []models.Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

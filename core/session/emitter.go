// Package session provides assistant session capabilities: a client for the
// hosted assistant and a scripted offline session.
package session

import (
	"sync"

	"github.com/koscakluka/ema-callui/core/events"
)

// Emitter keeps the named-event handlers of a session.
//
// Emit runs handlers inline, in registration order. Sessions call it from a
// single goroutine at a time so handlers never run concurrently with each
// other.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[events.Kind][]func(events.Event)
}

// On registers a handler for events of the given kind.
func (e *Emitter) On(kind events.Kind, handler func(events.Event)) {
	if handler == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = map[events.Kind][]func(events.Event){}
	}
	e.handlers[kind] = append(e.handlers[kind], handler)
}

func (e *Emitter) Emit(event events.Event) {
	e.mu.RLock()
	handlers := e.handlers[event.Kind()]
	e.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

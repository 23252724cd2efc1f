// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/tabmate/internal/logger"
)

// Handler is called for each dispatched event. Returning true marks the event
// as consumed, which suppresses the dispatcher's default behaviour.
type Handler func(e Event) bool

// SubscriptionID identifies one Subscribe call.
type SubscriptionID int

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	nextID   SubscriptionID
	handlers map[Type][]subscription
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler for eventType and returns an ID for Unsubscribe.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: id, handler: handler})
	logger.DebugTagf("event", "subscribed #%d to %v", id, eventType)
	return id
}

// Unsubscribe removes the handler registered under id. It reports whether a
// handler was removed, so calling it twice is harmless.
func (m *Manager) Unsubscribe(id SubscriptionID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for eventType, subs := range m.handlers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			// Copy so an in-flight Dispatch keeps its own slice.
			rest := make([]subscription, 0, len(subs)-1)
			rest = append(rest, subs[:i]...)
			rest = append(rest, subs[i+1:]...)
			if len(rest) == 0 {
				delete(m.handlers, eventType)
			} else {
				m.handlers[eventType] = rest
			}
			logger.DebugTagf("event", "unsubscribed #%d from %v", id, eventType)
			return true
		}
	}
	return false
}

// Count returns the number of handlers subscribed to eventType.
func (m *Manager) Count(eventType Type) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers[eventType])
}

// Dispatch runs every handler for eventType synchronously, in subscription
// order, and reports whether any of them consumed the event.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	m.mu.RLock()
	subs := m.handlers[eventType]
	m.mu.RUnlock()

	if len(subs) == 0 {
		return false
	}

	e := Event{Type: eventType, Data: data}
	consumed := false
	for _, s := range subs {
		if s.handler(e) {
			consumed = true
		}
	}
	return consumed
}

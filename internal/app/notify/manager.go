// Package notify provides the queue-changed notification manager.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// subscription represents a subscriber's channel.
type subscription struct {
	id string
	ch chan Event
}

// Manager fans queue change events out to subscribers. Broadcasting is
// fire-and-forget: a subscriber that does not drain its channel loses
// events instead of blocking the mutating operation.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]*subscription),
	}
}

// Subscribe adds a subscriber and returns its subscription ID together
// with the channel events are delivered on.
func (m *Manager) Subscribe() (string, <-chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	sub := &subscription{
		id: id,
		ch: make(chan Event, 16),
	}
	m.subscriptions[id] = sub
	return id, sub.ch
}

// Unsubscribe removes a subscription and closes its channel.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sub, ok := m.subscriptions[subscriptionID]; ok {
		delete(m.subscriptions, subscriptionID)
		close(sub.ch)
	}
}

// Broadcast delivers an event to all subscribers without blocking.
func (m *Manager) Broadcast(e Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscriptions {
		select {
		case sub.ch <- e:
		default:
			// Subscriber is not keeping up, drop the event
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

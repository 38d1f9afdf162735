// Package stream fans conversation events out to live subscribers.
package stream

import (
	"sync"

	"nutricoach/internal/conversation"
)

// DefaultBuffer is the per-subscriber queue length. Events beyond it are
// dropped for that subscriber.
const DefaultBuffer = 32

// Hub is a conversation.Publisher with per-client subscriptions.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[*Subscription]struct{}
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{subs: make(map[string]map[*Subscription]struct{}), buffer: buffer}
}

// Subscription receives the events of one client until closed.
type Subscription struct {
	hub      *Hub
	clientID string
	ch       chan conversation.Event
	once     sync.Once
}

// C is closed when the subscription or the hub closes.
func (s *Subscription) C() <-chan conversation.Event {
	return s.ch
}

func (s *Subscription) Close() {
	s.hub.remove(s)
}

// Subscribe registers a subscriber for clientID. On a closed hub the
// returned subscription is already closed.
func (h *Hub) Subscribe(clientID string) *Subscription {
	s := &Subscription{hub: h, clientID: clientID, ch: make(chan conversation.Event, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		s.once.Do(func() { close(s.ch) })
		return s
	}
	if h.subs[clientID] == nil {
		h.subs[clientID] = make(map[*Subscription]struct{})
	}
	h.subs[clientID][s] = struct{}{}
	return s
}

func (h *Hub) Publish(clientID string, ev conversation.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[clientID] {
		select {
		case s.ch <- ev:
		default:
		}
	}
}

// Subscribers counts the live subscriptions of clientID.
func (h *Hub) Subscribers(clientID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[clientID])
}

// Close ends every subscription. Publish after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, set := range h.subs {
		for s := range set {
			s.once.Do(func() { close(s.ch) })
		}
		delete(h.subs, id)
	}
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set := h.subs[s.clientID]; set != nil {
		delete(set, s)
		if len(set) == 0 {
			delete(h.subs, s.clientID)
		}
	}
	s.once.Do(func() { close(s.ch) })
}

package conversation

import (
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nutricoach/internal/model"
)

const (
	DefaultSessionTTL  = 24 * time.Hour
	DefaultMaxSessions = 10000
)

// Conversation is the ordered message log of one client.
type Conversation struct {
	clientID string
	pub      Publisher

	mu       sync.Mutex
	messages []model.Message
	busy     bool

	Controller Controller
}

// Acquire marks a turn as running. It fails when one already is.
func (c *Conversation) Acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

func (c *Conversation) Release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// LastAssistantMessage returns the most recent assistant message.
func (c *Conversation) LastAssistantMessage() (model.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Origin == model.OriginAssistant {
			return c.messages[i], true
		}
	}
	return model.Message{}, false
}

func (c *Conversation) Append(m model.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
	c.publish(EventAppended, m)
}

// ReplaceLast overwrites the trailing message in place, keeping its id.
func (c *Conversation) ReplaceLast(m model.Message) error {
	c.mu.Lock()
	if len(c.messages) == 0 {
		c.mu.Unlock()
		return ErrNoPlaceholder
	}
	last := len(c.messages) - 1
	m.ID = c.messages[last].ID
	c.messages[last] = m
	c.mu.Unlock()
	c.publish(EventReplaced, m)
	return nil
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *Conversation) Clear() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
	c.Controller.Forget()
	c.publish(EventReset, model.Message{})
}

func (c *Conversation) publish(t EventType, m model.Message) {
	if c.pub != nil {
		c.pub.Publish(c.clientID, Event{Type: t, Message: m})
	}
}

// Store keeps one Conversation per client, evicting idle ones after ttl.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Conversation]
	pub      Publisher
}

// NewStore creates a Store. Non-positive limits take the defaults.
func NewStore(maxSessions int, ttl time.Duration, pub Publisher) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Conversation](maxSessions, nil, ttl),
		pub:      pub,
	}
}

// Get returns the client's conversation, creating an empty one.
func (s *Store) Get(clientID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.sessions.Get(clientID); ok {
		return c
	}
	c := &Conversation{clientID: clientID, pub: s.pub}
	s.sessions.Add(clientID, c)
	return c
}

func (s *Store) Len() int {
	return s.sessions.Len()
}

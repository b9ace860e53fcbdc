package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Editor event types published by the session.
const (
	EntityCreated   = "entity.created"
	EntityDestroyed = "entity.destroyed"
	PrefabSynced    = "prefab.synced"
	ClipSaved       = "clip.saved"
	AnimationEvent  = "animation.event"
)

// Event is one editor notification. Data carries a per-type payload.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

// New builds an event stamped with the current time.
func New(eventType, source string, data any) Event {
	return Event{Type: eventType, Source: source, Timestamp: time.Now(), Data: data}
}

// Handler receives events synchronously on the publisher's goroutine.
type Handler func(Event)

// Subscription identifies one registered handler and can cancel it.
type Subscription struct {
	id        string
	eventType string
	cancel    func()
}

func (s *Subscription) ID() string {
	return s.id
}

func (s *Subscription) EventType() string {
	return s.eventType
}

// Cancel removes the handler. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Bus is the in-process editor event bus. Delivery is synchronous: Publish
// returns after every handler ran, matching the editor's single-threaded
// operation model. The mutex only guards the subscription table.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]map[string]Handler)}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]Handler)
	}
	id := uuid.NewString()
	b.handlers[eventType][id] = handler

	return &Subscription{
		id:        id,
		eventType: eventType,
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if m, ok := b.handlers[eventType]; ok {
				delete(m, id)
			}
		},
	}
}

// Publish delivers the event to every handler of its type and returns the
// handler count.
func (b *Bus) Publish(event Event) int {
	b.mu.RLock()
	m := b.handlers[event.Type]
	handlers := make([]Handler, 0, len(m))
	for _, h := range m {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return len(handlers)
}

// Subscribers returns the handler count for an event type.
func (b *Bus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

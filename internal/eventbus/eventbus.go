package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"shuttle/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventLoadStarted   = domain.EventLoadStarted
	EventLoadCompleted = domain.EventLoadCompleted
	EventLoadFailed    = domain.EventLoadFailed
)

// Re-export domain event types
type LoadStartedEvent = domain.LoadStartedEvent
type LoadCompletedEvent = domain.LoadCompletedEvent
type LoadFailedEvent = domain.LoadFailedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]int
	byID      map[int]EventHandler
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]int),
		byID:      make(map[int]EventHandler),
		eventChan: make(chan DomainEvent, 100),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.byID[id] = handler
	b.handlers[eventType] = append(b.handlers[eventType], id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.byID, id)
		ids := b.handlers[eventType]
		for i, hid := range ids {
			if hid == id {
				b.handlers[eventType] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards any queued events.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			ids := b.handlers[event.Type()]
			handlers := make([]EventHandler, 0, len(ids))
			for _, id := range ids {
				if h, ok := b.byID[id]; ok {
					handlers = append(handlers, h)
				}
			}
			b.mu.RUnlock()

			// Handlers run on the dispatch goroutine so events arrive
			// in publish order.
			for _, handler := range handlers {
				b.call(handler, event)
			}

		case <-b.quit:
			return
		}
	}
}

func (b *bus) call(handler EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadStarted   EventType = "LoadStarted"
	EventLoadCompleted EventType = "LoadCompleted"
	EventLoadFailed    EventType = "LoadFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadStartedEvent is emitted when the load phase begins
type LoadStartedEvent struct {
	Sources []string // provider titles, in declaration order
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// LoadCompletedEvent is emitted once the merged item list is ready
type LoadCompletedEvent struct {
	Items     []Item
	FromCache bool
}

func (e LoadCompletedEvent) Type() EventType { return EventLoadCompleted }

// LoadFailedEvent is emitted when any provider fails
type LoadFailedEvent struct {
	Err error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

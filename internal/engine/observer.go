package engine

import "time"

// EventType represents catalog lifecycle phases
type EventType string

const (
	EventTableCreate EventType = "table_create"
	EventTableDrop   EventType = "table_drop"
)

// Event represents a catalog lifecycle event. Record-level operations
// do not emit events; they are the hot path.
type Event struct {
	Type      EventType   // Type of event
	Table     string      // Table name
	TableID   string      // Table identity for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Event-specific data (e.g., arity, record count)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}

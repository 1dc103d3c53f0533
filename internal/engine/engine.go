package engine

import (
	"sort"
	"time"

	"github.com/leengari/recstore/internal/domain/errors"
	"github.com/leengari/recstore/internal/domain/schema"
)

// Engine is the catalog: it owns zero or more tables keyed by name and
// is the entry point for the storage engine. Engines are explicitly
// constructed and explicitly owned, never process-wide singletons, so
// several independent instances can coexist in one process.
type Engine struct {
	tables    map[string]*Table
	observers []Observer // Observers for catalog lifecycle events
}

// New creates a new Engine instance with an empty catalog.
func New() *Engine {
	return &Engine{
		tables:    make(map[string]*Table),
		observers: make([]Observer, 0),
	}
}

// CreateTable registers a new empty table under name.
func (e *Engine) CreateTable(name string, sch *schema.Schema) (*Table, error) {
	if _, exists := e.tables[name]; exists {
		return nil, &errors.TableExistsError{Name: name}
	}

	t := NewTable(name, sch)
	e.tables[name] = t

	e.notify(Event{Type: EventTableCreate, Table: name, TableID: t.ID.String(), Data: sch.Arity()})
	return t, nil
}

// GetTable resolves a table name.
func (e *Engine) GetTable(name string) (*Table, error) {
	t, exists := e.tables[name]
	if !exists {
		return nil, &errors.TableNotFoundError{Name: name}
	}
	return t, nil
}

// DropTable removes a table and everything it owns. Records and index
// entries die with their table.
func (e *Engine) DropTable(name string) error {
	t, exists := e.tables[name]
	if !exists {
		return &errors.TableNotFoundError{Name: name}
	}

	delete(e.tables, name)

	e.notify(Event{Type: EventTableDrop, Table: name, TableID: t.ID.String(), Data: t.Len()})
	return nil
}

// Tables returns the catalog's table names in sorted order.
func (e *Engine) Tables() []string {
	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged  EventType = "SelectionChanged"
	EventSelectionCleared  EventType = "SelectionCleared"
	EventAllSelected       EventType = "AllSelected"
	EventDispatchCompleted EventType = "DispatchCompleted"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when an engine is toggled in or out of
// the selection
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection is cleared
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// AllSelectedEvent is emitted when all visible engines are selected at once
type AllSelectedEvent struct {
	Names []string
}

func (e AllSelectedEvent) Type() EventType { return EventAllSelected }

// DispatchCompletedEvent is emitted after a dispatch burst finishes.
// URLs holds every URL handed to the launcher, in catalog order.
// Failed counts launcher calls that returned an error.
type DispatchCompletedEvent struct {
	Query  string
	URLs   []string
	Failed int
}

func (e DispatchCompletedEvent) Type() EventType { return EventDispatchCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Theme           string
	DefaultSelected []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

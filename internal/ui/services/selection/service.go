package selection

import (
	"sort"

	"multisearch/internal/eventbus"
)

// Service handles selection logic. Every name in the selection is a
// catalog name; filter changes never prune it.
type Service struct {
	state   *State
	bus     eventbus.EventBus
	validFn func(string) bool // reports whether a name exists in the catalog
}

// NewService creates a new selection service. validFn guards Toggle
// against names outside the catalog; a nil validFn accepts everything.
func NewService(bus eventbus.EventBus, validFn func(string) bool) *Service {
	return &Service{
		state: &State{
			SelectedEngines: make(map[string]bool),
		},
		bus:     bus,
		validFn: validFn,
	}
}

// Toggle flips membership of the named engine. Unknown names are a
// silent no-op so the selection can never hold a name outside the
// catalog.
func (s *Service) Toggle(name string) {
	if s.validFn != nil && !s.validFn(name) {
		return
	}

	var added, removed []string

	if s.state.SelectedEngines[name] {
		delete(s.state.SelectedEngines, name)
		removed = append(removed, name)
	} else {
		s.state.SelectedEngines[name] = true
		added = append(added, name)
	}

	s.publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.SelectedEngines),
	})
}

// SelectAll sets the selection to exactly the given visible names.
// Replace, not union: anything selected under a different filter that is
// not in the visible set gets dropped.
func (s *Service) SelectAll(visibleNames []string) {
	s.state.SelectedEngines = make(map[string]bool, len(visibleNames))
	for _, name := range visibleNames {
		s.state.SelectedEngines[name] = true
	}

	s.publish(eventbus.AllSelectedEvent{
		Names: visibleNames,
	})
}

// ClearAll empties the selection unconditionally.
func (s *Service) ClearAll() {
	s.state.SelectedEngines = make(map[string]bool)

	s.publish(eventbus.SelectionClearedEvent{})
}

// IsSelected checks if an engine is selected
func (s *Service) IsSelected(name string) bool {
	return s.state.SelectedEngines[name]
}

// Selected returns a copy of the selection set.
func (s *Service) Selected() map[string]bool {
	selected := make(map[string]bool, len(s.state.SelectedEngines))
	for name := range s.state.SelectedEngines {
		selected[name] = true
	}
	return selected
}

// SelectedNames returns the selected names, sorted.
func (s *Service) SelectedNames() []string {
	names := make([]string, 0, len(s.state.SelectedEngines))
	for name := range s.state.SelectedEngines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of selected engines
func (s *Service) Count() int {
	return len(s.state.SelectedEngines)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.SelectedEngines) > 0
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

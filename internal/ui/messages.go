package ui

import (
	"multisearch/internal/eventbus"
)

// EventMsg wraps a domain event forwarded into the Bubble Tea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// dispatchedMsg is the result of a dispatch command
type dispatchedMsg struct {
	opened int
}

// copiedMsg is the result of a copy-to-clipboard command
type copiedMsg struct {
	count int
	err   error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

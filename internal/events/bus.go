// Package events re-exports the platform event bus for convenience and
// defines the domain events modules communicate with.
package events

import (
	platformevents "bhph_crm_backend/platform/events"
	"bhph_crm_backend/platform/logger"
)

// Bus is a type alias to the platform event bus interface.
type Bus = platformevents.Bus

// Event is a type alias to the platform event interface.
type Event = platformevents.Event

// Handler is a type alias to the platform event handler.
type Handler = platformevents.Handler

// HandlerFunc adapts functions to the Handler interface.
type HandlerFunc = platformevents.HandlerFunc

// BaseEvent provides common event fields.
type BaseEvent = platformevents.BaseEvent

// InMemoryBus is a type alias to the platform InMemoryBus
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
// This is a convenience re-export from platform/events.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// NewBaseEvent creates a base event stamped with the current time.
func NewBaseEvent() BaseEvent {
	return platformevents.NewBaseEvent()
}

// Package events carries domain events between modules so that, for
// example, scoring a finance application can trigger notifications
// without the underwriting code knowing about email.
// This is part of the platform layer and contains no business logic.
package events

import (
	"context"
	"time"
)

// Bus publishes domain events and dispatches them to subscribers.
type Bus interface {
	// Publish delivers the event to every subscriber of its name.
	// Delivery is asynchronous.
	Publish(ctx context.Context, event Event)

	// PublishSync delivers the event and waits for every subscriber,
	// returning the first handler error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for events whose EventName matches.
	Subscribe(eventName string, handler Handler)
}

// Event is implemented by every domain event.
type Event interface {
	// EventName uniquely identifies the event type, e.g. "leads.created".
	EventName() string
	// OccurredAt reports when the event happened.
	OccurredAt() time.Time
}

// Handler consumes events delivered by the bus.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// BaseEvent supplies the timestamp shared by all concrete events.
// Embed it and call NewBaseEvent when constructing the event.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps a BaseEvent with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

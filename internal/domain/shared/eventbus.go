package shared

import "context"

// EventHandler reacts to events published after a ledger mutation commits.
// EventTypes lists the types it wants; nil subscribes it to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher is what the mutation service sees. A returned error is
// logged by the caller and never rolls back the write.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber manages handler registration.
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus is started once by the server and stopped after the HTTP
// listener drains, so queued activity entries are still written.
type EventBus interface {
	EventPublisher
	EventSubscriber
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

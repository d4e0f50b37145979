package event

import (
	"context"
	"errors"
	"sync"

	"github.com/ledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrBusStopped is returned by Publish on an asynchronous bus after Stop
var ErrBusStopped = errors.New("event bus stopped")

type envelope struct {
	ctx   context.Context
	event shared.DomainEvent
}

// InMemoryEventBus delivers domain events to in-process handlers.
//
// By default Publish calls every handler before returning. WithAsyncQueue
// makes Publish enqueue instead; a single worker started by Start then
// delivers events in publish order, and Stop drains the queue.
type InMemoryEventBus struct {
	registry  *HandlerRegistry
	logger    *zap.Logger
	queueSize int

	mu      sync.RWMutex
	queue   chan envelope
	stopped bool
	wg      sync.WaitGroup
}

// BusOption configures an InMemoryEventBus
type BusOption func(*InMemoryEventBus)

// WithAsyncQueue enables asynchronous delivery through a queue of size n
func WithAsyncQueue(n int) BusOption {
	return func(b *InMemoryEventBus) {
		b.queueSize = n
	}
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger, opts ...BusOption) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers events. Handler failures are logged and never returned to
// the publisher.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if b.queueSize <= 0 {
		for _, event := range events {
			b.deliver(ctx, event)
		}
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped || b.queue == nil {
		return ErrBusStopped
	}

	// handlers run after the request returns, so they must not inherit its cancellation
	detached := context.WithoutCancel(ctx)
	for _, event := range events {
		select {
		case b.queue <- envelope{ctx: detached, event: event}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe registers handler for eventTypes, or for handler.EventTypes() when none are given
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
}

// Start starts the delivery worker of an asynchronous bus
func (b *InMemoryEventBus) Start(_ context.Context) error {
	if b.queueSize <= 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.queue != nil {
		return nil
	}
	b.queue = make(chan envelope, b.queueSize)
	b.stopped = false

	b.wg.Add(1)
	go b.run(b.queue)

	b.logger.Info("event bus started", zap.Int("queue_size", b.queueSize))
	return nil
}

// Stop closes the queue and waits for queued events to be delivered or for ctx to end
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	if b.queue == nil || b.stopped {
		b.mu.Unlock()
		return nil
	}
	b.stopped = true
	close(b.queue)
	b.queue = nil
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("event bus stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *InMemoryEventBus) run(queue <-chan envelope) {
	defer b.wg.Done()
	for env := range queue {
		b.deliver(env.ctx, env.event)
	}
}

func (b *InMemoryEventBus) deliver(ctx context.Context, event shared.DomainEvent) {
	for _, handler := range b.registry.GetHandlers(event.EventType()) {
		if err := b.dispatchToHandler(ctx, handler, event); err != nil {
			b.logger.Error("handler failed to process event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()
	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)

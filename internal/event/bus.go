package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-process Bus. Handlers run synchronously on the
// publisher's goroutine in subscription order.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler of event.Type, even after one fails. Failures
// come back as a *DeliveryError.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	return deliver(ctx, event, handlers)
}

// Subscribe appends handler to the handlers of eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// DeliveryError lists the handlers of one event that failed. Handlers that
// succeeded are not part of it, so Redeliver never runs them twice.
type DeliveryError struct {
	Event  Event
	errs   []error
	failed []Handler
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf(ErrMsgHandlersFailedFormat, len(e.failed), e.Event.Type, errors.Join(e.errs...))
}

// Unwrap exposes every handler error to errors.Is and errors.As
func (e *DeliveryError) Unwrap() []error {
	return e.errs
}

// Failed is the number of handlers that need redelivery
func (e *DeliveryError) Failed() int {
	return len(e.failed)
}

// Redeliver runs only the failed handlers again. It returns nil once all of
// them succeed, else a narrower DeliveryError.
func (e *DeliveryError) Redeliver(ctx context.Context) error {
	return deliver(ctx, e.Event, e.failed)
}

func deliver(ctx context.Context, event Event, handlers []Handler) error {
	var failure *DeliveryError
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			if failure == nil {
				failure = &DeliveryError{Event: event}
			}
			failure.errs = append(failure.errs, err)
			failure.failed = append(failure.failed, h)
		}
	}
	if failure == nil {
		return nil
	}
	return failure
}

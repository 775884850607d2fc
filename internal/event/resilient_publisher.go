package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// ResilientPublisher wraps a Bus with background retries. Events that still fail
// after maxRetries are appended to the dead-letter file.
//
// When the inner bus reports a *DeliveryError only the failed handlers are
// retried. Any other error retries the whole event, so handlers of such buses
// must tolerate running again.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	mu       sync.Mutex
	shutdown bool
}

// NewResilientPublisher creates a publisher writing exhausted events to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
	}, nil
}

// Publish attempts delivery once and retries in the background on failure.
// The caller is never failed by a subscriber error.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// The request context is gone by now
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.retryDelay, attempt))

		if lastErr = p.redeliver(ctx, event, lastErr); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	if err := p.deadLetter.Write(event, p.maxRetries+1, lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// redeliver retries what failed last time
func (p *ResilientPublisher) redeliver(ctx context.Context, event Event, lastErr error) error {
	var failure *DeliveryError
	if errors.As(lastErr, &failure) {
		return failure.Redeliver(ctx)
	}
	return p.inner.Publish(ctx, event)
}

// Shutdown stops accepting retries and waits for in-flight ones, bounded by ctx
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.shutdown = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		_ = p.deadLetter.Close()
		return ctx.Err()
	}
	return p.deadLetter.Close()
}

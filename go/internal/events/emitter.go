package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	defaultPublishTimeout = 5 * time.Second
	defaultQueueSize      = 1024
)

var ErrEmitterClosed = errors.New("emitter closed")

// Recorder counts publish outcomes.
type Recorder interface {
	RecordEventPublished(entity, op string, success bool)
	RecordEventDropped(entity, op string)
}

// NoOpRecorder is used when metrics aren't needed.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordEventPublished(string, string, bool) {}
func (NoOpRecorder) RecordEventDropped(string, string) {}

// job is either an event to publish or a flush marker.
type job struct {
	event ChangeEvent
	flush chan struct{}
}

// Emitter stamps events with an id and time and queues them for a
// background publisher. A full queue drops the event. Failures are
// logged and counted, never returned.
type Emitter struct {
	publisher Publisher
	clock     clockwork.Clock
	recorder  Recorder
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan job
	done   chan struct{}
}

// EmitterOption customizes an Emitter.
type EmitterOption func(*emitterOptions)

type emitterOptions struct {
	queueSize int
}

// WithQueueSize bounds the number of events waiting for the publisher.
// Values below one keep the default.
func WithQueueSize(n int) EmitterOption {
	return func(o *emitterOptions) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// NewEmitter creates an emitter and starts its publish loop. A nil
// recorder disables counting. Close stops the loop.
func NewEmitter(publisher Publisher, clock clockwork.Clock, recorder Recorder, opts ...EmitterOption) *Emitter {
	options := emitterOptions{queueSize: defaultQueueSize}
	for _, opt := range opts {
		opt(&options)
	}

	if publisher == nil {
		publisher = Nop{}
	}
	if recorder == nil {
		recorder = NoOpRecorder{}
	}
	e := &Emitter{
		publisher: publisher,
		clock:     clock,
		recorder:  recorder,
		timeout:   defaultPublishTimeout,
		queue:     make(chan job, options.queueSize),
		done:      make(chan struct{}),
	}
	go e.run()
	return e
}

// Emit queues one change and returns at once. A nil emitter does nothing.
func (e *Emitter) Emit(_ context.Context, entity string, op Op, key string, payload any) {
	if e == nil {
		return
	}

	event := ChangeEvent{
		ID:         uuid.New(),
		Entity:     entity,
		Op:         op,
		Key:        key,
		OccurredAt: e.clock.Now().UTC(),
		Payload:    payload,
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		e.drop(event, "emitter closed, dropping change event")
		return
	}

	select {
	case e.queue <- job{event: event}:
	default:
		e.drop(event, "event queue full, dropping change event")
	}
}

// Flush blocks until every event queued before the call has been handed
// to the publisher.
func (e *Emitter) Flush(ctx context.Context) error {
	if e == nil {
		return nil
	}

	marker := make(chan struct{})

	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return ErrEmitterClosed
	}
	select {
	case e.queue <- job{flush: marker}:
	case <-ctx.Done():
		e.mu.RUnlock()
		return ctx.Err()
	}
	e.mu.RUnlock()

	select {
	case <-marker:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits for the queue to drain or ctx
// to expire.
func (e *Emitter) Close(ctx context.Context) error {
	if e == nil {
		return nil
	}

	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
	}
	e.mu.Unlock()

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		log.Warn().Int("pending", len(e.queue)).Msg("event queue not drained before shutdown")
		return ctx.Err()
	}
}

func (e *Emitter) run() {
	defer close(e.done)
	for j := range e.queue {
		if j.flush != nil {
			close(j.flush)
			continue
		}
		e.publish(j.event)
	}
}

func (e *Emitter) publish(event ChangeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	err := e.publisher.Publish(ctx, event)
	e.recorder.RecordEventPublished(event.Entity, string(event.Op), err == nil)
	if err != nil {
		log.Warn().
			Err(err).
			Str("event_id", event.ID.String()).
			Str("entity", event.Entity).
			Str("op", string(event.Op)).
			Msg("failed to publish change event")
	}
}

func (e *Emitter) drop(event ChangeEvent, msg string) {
	e.recorder.RecordEventDropped(event.Entity, string(event.Op))
	log.Warn().
		Str("event_id", event.ID.String()).
		Str("entity", event.Entity).
		Str("op", string(event.Op)).
		Msg(msg)
}

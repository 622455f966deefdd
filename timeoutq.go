// Package timeoutq provides a FIFO queue whose entries expire on their
// own timers.  An entry leaves the queue either when it is retrieved
// through Next or when its time to live elapses, whichever comes first.
package timeoutq

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/symonk/timeoutq/internal/contract"
	"github.com/symonk/timeoutq/internal/deque"
	"github.com/symonk/timeoutq/internal/telemetry"
)

// NoExpiry is the time to live of entries that are only ever removed
// through Next.  Any negative duration behaves the same.
const NoExpiry time.Duration = -1

// RemovalFunc is notified once when its entry leaves the queue.
type RemovalFunc[T any] func(value T, expired bool)

// ExpiredFunc is notified for every entry that timed out.
type ExpiredFunc[T any] func(value T)

// Stats is a snapshot of what happened to the entries of a queue.
type Stats = telemetry.Snapshot

type entry[T any] struct {
	id        uint64
	value     T
	onRemoved RemovalFunc[T]
	timer     clockwork.Timer
	node      *deque.Node[*entry[T]]
}

// Queue is a FIFO queue of values that each carry an independent expiry
// timer.  It is safe for concurrent use.
type Queue[T any] struct {
	mu      sync.Mutex
	entries contract.Container[*entry[T]]
	nextID  uint64
	stopped bool

	defaultTTL time.Duration
	onExpired  ExpiredFunc[T]
	clock      clockwork.Clock
	logger     zerolog.Logger
	stats      telemetry.Counters
}

// Ensure Queue implements StoppableConsumer
var _ contract.StoppableConsumer[any] = (*Queue[any])(nil)

// New instantiates a new Queue and applies the appropriate
// functional options to it.
func New[T any](opts ...Option) *Queue[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	q := &Queue[T]{
		entries:    deque.New[*entry[T]](),
		defaultTTL: cfg.defaultTTL,
		clock:      cfg.clock,
		logger:     cfg.logger,
	}
	if fn, ok := cfg.onExpired.(ExpiredFunc[T]); ok {
		q.onExpired = fn
	}
	return q
}

// Push appends value to the tail of the queue and returns it unchanged.
//
// Without WithTTL the queue's default time to live applies.  When the
// effective time to live is zero or greater a timer is armed that removes
// the entry, wherever it sits in the queue, once the duration elapses.
// Push(v, OnRemoved(fn)) is the same as Push(v, WithTTL(defaultTTL), OnRemoved(fn)).
func (q *Queue[T]) Push(value T, opts ...PushOption) T {
	var p pushConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	ttl := q.defaultTTL
	if p.hasTTL {
		ttl = p.ttl
	}

	q.mu.Lock()
	q.nextID++
	e := &entry[T]{id: q.nextID, value: value}
	if fn, ok := p.onRemoved.(RemovalFunc[T]); ok {
		e.onRemoved = fn
	}
	e.node = q.entries.PushBack(e)
	armed := ttl >= 0 && !q.stopped
	q.stats.Pushed()
	q.mu.Unlock()

	if armed {
		q.arm(e, ttl)
	}
	q.logger.Debug().Uint64("entry", e.id).Dur("ttl", ttl).Bool("armed", armed).Msg("pushed")
	return value
}

// arm schedules the expiry of e.  The clock is called without holding the
// lock because a fake clock may run the function before AfterFunc returns.
func (q *Queue[T]) arm(e *entry[T], ttl time.Duration) {
	timer := q.clock.AfterFunc(ttl, func() { q.expire(e) })

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped || !q.entries.Contains(e.node) {
		timer.Stop()
		return
	}
	e.timer = timer
}

func (q *Queue[T]) expire(e *entry[T]) {
	q.mu.Lock()
	if q.stopped || !q.entries.Remove(e.node) {
		// retrieved through Next first
		q.mu.Unlock()
		return
	}
	e.timer = nil
	q.stats.Expired()
	q.mu.Unlock()

	q.logger.Debug().Uint64("entry", e.id).Msg("expired")

	if q.onExpired != nil {
		q.notify(e.id, func() { q.onExpired(e.value) })
	}
	if e.onRemoved != nil {
		q.notify(e.id, func() { e.onRemoved(e.value, true) })
	}
}

// Next removes the oldest entry and returns its value.  The boolean is
// false when the queue is empty.
func (q *Queue[T]) Next() (T, bool) {
	q.mu.Lock()
	e, ok := q.entries.PopFront()
	if !ok {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	q.stats.Retrieved()
	q.mu.Unlock()

	if e.onRemoved != nil {
		q.notify(e.id, func() { e.onRemoved(e.value, false) })
	}
	return e.value, true
}

// Len returns the number of entries currently in the queue.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.entries.Length()
}

// Stop cancels every pending expiry timer.  Entries already in the queue
// stay retrievable through Next but will no longer expire, later pushes
// are queued without a timer.  Stop is safe to call multiple times.
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return
	}
	q.stopped = true

	disarmed := 0
	for _, e := range q.entries.Values() {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
			disarmed++
		}
	}
	q.logger.Debug().Int("disarmed", disarmed).Msg("stopped")
}

// Stats returns the counters of the queue.
func (q *Queue[T]) Stats() Stats {
	return q.stats.Snapshot()
}

// notify runs a user callback.  A panic is recovered and logged so that
// it can neither unwind a timer goroutine nor leak into Next.
func (q *Queue[T]) notify(id uint64, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.stats.Panicked()
			q.logger.Error().Uint64("entry", id).Interface("panic", r).Msg("callback panicked")
		}
	}()
	fn()
}

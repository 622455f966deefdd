package timeoutq

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type config struct {
	defaultTTL time.Duration
	onExpired  any
	clock      clockwork.Clock
	logger     zerolog.Logger
}

func defaultConfig() config {
	return config{
		defaultTTL: NoExpiry,
		clock:      clockwork.NewRealClock(),
		logger:     zerolog.Nop(),
	}
}

// Option configures a Queue at construction time.
type Option func(c *config)

// WithDefaultTTL sets the time to live used by every push that does not
// carry its own.  A negative duration means entries never expire.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.defaultTTL = ttl
	}
}

// OnExpired registers a function that is called with the value of every
// entry removed because its time to live elapsed.  It is never called for
// entries retrieved through Next.  A function whose value type does not
// match the queue is ignored.
func OnExpired[T any](fn func(value T)) Option {
	return func(c *config) {
		if fn != nil {
			c.onExpired = ExpiredFunc[T](fn)
		}
	}
}

// WithClock swaps the clock used to schedule expiry timers.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger, the queue is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

type pushConfig struct {
	ttl       time.Duration
	hasTTL    bool
	onRemoved any
}

// PushOption configures a single Push.
type PushOption func(p *pushConfig)

// WithTTL overrides the queue's default time to live for one entry.
func WithTTL(ttl time.Duration) PushOption {
	return func(p *pushConfig) {
		p.ttl = ttl
		p.hasTTL = true
	}
}

// OnRemoved registers a function that is called exactly once when the
// entry leaves the queue.  expired tells whether it timed out or was
// retrieved through Next.  A function whose value type does not match the
// queue is ignored.
func OnRemoved[T any](fn func(value T, expired bool)) PushOption {
	return func(p *pushConfig) {
		if fn != nil {
			p.onRemoved = RemovalFunc[T](fn)
		}
	}
}

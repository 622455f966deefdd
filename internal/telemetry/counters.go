package telemetry

import "sync/atomic"

// Counters aggregates what happened to the entries of a single queue.
type Counters struct {
	pushed    atomic.Uint64
	retrieved atomic.Uint64
	expired   atomic.Uint64
	panics    atomic.Uint64
}

// Snapshot is a point in time copy of Counters.
type Snapshot struct {
	Pushed    uint64
	Retrieved uint64
	Expired   uint64
	Panics    uint64
}

// Pending returns the number of entries that were pushed but have not
// left yet.
func (s Snapshot) Pending() uint64 {
	return s.Pushed - s.Retrieved - s.Expired
}

func (c *Counters) Pushed()    { c.pushed.Add(1) }
func (c *Counters) Retrieved() { c.retrieved.Add(1) }
func (c *Counters) Expired()   { c.expired.Add(1) }
func (c *Counters) Panicked()  { c.panics.Add(1) }

// Snapshot returns the collected values.  Removals are loaded before
// pushes so that Pending never underflows while the queue is in use.
func (c *Counters) Snapshot() Snapshot {
	var s Snapshot
	s.Panics = c.panics.Load()
	s.Expired = c.expired.Load()
	s.Retrieved = c.retrieved.Load()
	s.Pushed = c.pushed.Load()
	return s
}

// Reset sets all counters back to zero.
func (c *Counters) Reset() {
	c.pushed.Store(0)
	c.retrieved.Store(0)
	c.expired.Store(0)
	c.panics.Store(0)
}

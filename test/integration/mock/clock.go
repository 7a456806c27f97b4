package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests. It implements the adapter.Clock
// interface so roll-up windows can be pinned to a known date.
type Clock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewClock creates a clock starting at the real current time.
func NewClock() *Clock {
	return &Clock{current: time.Now().UTC()}
}

// SetCurrentTime pins the clock to the given instant.
func (c *Clock) SetCurrentTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

package drive

import (
	"sync"
	"time"
)

// Clock measures seconds since Start. Reads never go backwards.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	start   time.Time
	started bool
	last    float64
}

// NewClock returns a stopped clock reading zero. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start begins measuring. Later calls are ignored.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.start = c.now()
	c.started = true
}

// Seconds returns the elapsed time, or zero before Start.
func (c *Clock) Seconds() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return 0
	}
	s := c.now().Sub(c.start).Seconds()
	if s < c.last {
		s = c.last
	}
	c.last = s
	return s
}

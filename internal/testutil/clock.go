package testutil

import (
	"sync"
	"time"
)

// StepClock provides a thread-safe clock that advances by a fixed step on
// every reading.
//
// Durations measured against it are reproducible across runs, which keeps
// report snapshots stable.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// Epoch is the first time returned by a new StepClock.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewStepClock creates a clock starting at Epoch that advances by step.
//
// A zero step defaults to one millisecond.
func NewStepClock(step time.Duration) *StepClock {
	if step == 0 {
		step = time.Millisecond
	}
	return &StepClock{now: Epoch, step: step}
}

// Now returns the current time and advances the clock by one step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Reset moves the clock back to Epoch.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = Epoch
}

package serialize

import (
	"fmt"
	"sync/atomic"
	"time"
)

// canceller holds the deadline state for one serialize invocation. A timer
// callback sets the aborted flag when the deadline elapses, independent of
// whether the engine is between checkpoints; the engine observes the flag at
// the next checkpoint. Once set, the flag never resets for the lifetime of
// the call.
//
// The timer callback runs on a different goroutine, so the flag is atomic.
type canceller struct {
	started time.Time
	aborted atomic.Bool
	timer   *time.Timer
}

// start arms the deadline timer. A zero or negative timeout means no
// deadline. Must be paired with stop on every exit path so the callback
// cannot outlive the call.
func (c *canceller) start(timeout time.Duration) {
	c.started = time.Now()
	if timeout > 0 {
		c.timer = time.AfterFunc(timeout, func() {
			c.aborted.Store(true)
		})
	}
}

// check fails with RetCDeadlineExceeded once the deadline has fired. Called
// at every checkpoint, immediately after a potential suspension, so that an
// already-fired deadline is observed within one yield interval.
func (c *canceller) check() error {
	if c.aborted.Load() {
		elapsed := time.Since(c.started)
		return &Error{
			Code:    RetCDeadlineExceeded,
			Msg:     fmt.Sprintf("serialization aborted after %v", elapsed),
			Elapsed: elapsed,
		}
	}
	return nil
}

// stop cancels the pending timer. Safe to call when no timer was armed.
func (c *canceller) stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
}

// elapsed returns the wall time since start.
func (c *canceller) elapsed() time.Duration {
	return time.Since(c.started)
}

package serialize

import (
	"runtime"
	"time"
)

// yielder decides when the traversal must suspend and hand the thread back
// to the scheduler. It holds no knowledge of cancellation or output; its
// single responsibility is the time/operation-based suspension policy.
//
// Written and read only by the engine goroutine, so no synchronization.
type yielder struct {
	lastYield time.Time
	ops       int
	totalOps  int

	every    time.Duration
	everyOps int
}

func newYielder(every time.Duration, everyOps int) *yielder {
	return &yielder{
		lastYield: time.Now(),
		every:     every,
		everyOps:  everyOps,
	}
}

// shouldYield records one operation and reports whether a suspension is due,
// either because the time budget since the last yield is spent or because
// enough operations have accumulated.
func (y *yielder) shouldYield() bool {
	y.ops++
	y.totalOps++
	if y.ops > y.everyOps {
		return true
	}
	return time.Since(y.lastYield) > y.every
}

// reset re-arms the policy after a suspension.
func (y *yielder) reset() {
	y.lastYield = time.Now()
	y.ops = 0
}

// suspend performs the cooperative suspension: it yields the processor so
// other runnable goroutines (timer callbacks, the responsiveness probe, the
// caller's other work) get a chance to run, then re-arms the policy.
func (y *yielder) suspend() {
	runtime.Gosched()
	y.reset()
}

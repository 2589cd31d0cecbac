// Package serialize implements an incremental, cooperatively-yielding,
// cancellable, cycle-safe JSON serialization engine.
//
// The engine walks a value.Value graph depth-first and produces standard
// JSON text. What sets it apart from a plain marshaller is its scheduling
// behavior: at every checkpoint of the traversal it consults a yield policy
// (time elapsed since the last yield, or number of operations performed) and
// voluntarily hands the thread back to the Go scheduler when due. After each
// suspension it re-checks a deadline, so a configured timeout interrupts the
// operation within one yield interval of firing even on inputs that would
// otherwise keep the goroutine busy for seconds.
//
// Key Components:
//
//   - ISerializer: common interface for the cooperative and the reference
//     implementations. Both produce byte-identical output for cycle-free
//     inputs; the reference implementation never yields and never times out
//     and exists so tests and fixtures have something to compare against.
//
//   - Options: timeout and yield thresholds. The defaults (5ms / 100 ops)
//     bound the longest uninterruptible span of a serialization call.
//
//   - Error: typed failure carrying a return code and the elapsed wall time.
//     A deadline produces RetCDeadlineExceeded; reference cycles are NOT
//     errors - the cyclic edge is emitted as the "[Circular]" sentinel and
//     traversal continues.
//
// Output Contract:
//
//	All-or-nothing. A call either returns the complete serialized text or
//	an error; no partial output is ever exposed. Long strings are escaped
//	in fixed-size chunks so that a single huge string cannot monopolize
//	the thread between checkpoints; chunking is purely a scheduling
//	technique and never changes the produced bytes.
//
// Thread Safety:
//
//	A single Serialize call runs on the calling goroutine. The only state
//	shared with another goroutine is the deadline flag, written by a timer
//	callback and read at checkpoints via an atomic. Distinct calls are
//	fully independent and may run concurrently.
package serialize

package serialize

import (
	"fmt"
	"time"

	"github.com/coopjson/cjson/lib/value"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

const (
	// DefaultYieldEvery is the time threshold after which a checkpoint
	// suspends.
	DefaultYieldEvery = 5 * time.Millisecond
	// DefaultYieldEveryOps is the operation-count threshold after which a
	// checkpoint suspends.
	DefaultYieldEveryOps = 100
	// DefaultChunkSize is the size in bytes above which strings are escaped
	// in chunks.
	DefaultChunkSize = 10000
	// DefaultChunkYieldEvery is the number of chunks between extra
	// checkpoints inside a single long string.
	DefaultChunkYieldEvery = 10

	// circularSentinel replaces a cyclic edge in the output.
	circularSentinel = `"[Circular]"`

	// timeLayout is the fixed textual convention for date/time values:
	// UTC ISO-8601 with millisecond precision.
	timeLayout = "2006-01-02T15:04:05.000Z"
)

// Options configures one serialize invocation. The zero value of any field
// falls back to its default; a zero Timeout means no deadline.
type Options struct {
	// Timeout is the maximum wall-clock budget. Zero disables the deadline.
	Timeout time.Duration
	// YieldEvery is the suspension time threshold.
	YieldEvery time.Duration
	// YieldEveryOps is the suspension operation-count threshold.
	YieldEveryOps int
	// ChunkSize is the string length above which escaping is chunked.
	ChunkSize int
	// ChunkYieldEvery is the chunk count between in-string checkpoints.
	ChunkYieldEvery int
}

// DefaultOptions returns the default configuration with no deadline.
func DefaultOptions() Options {
	return Options{
		YieldEvery:      DefaultYieldEvery,
		YieldEveryOps:   DefaultYieldEveryOps,
		ChunkSize:       DefaultChunkSize,
		ChunkYieldEvery: DefaultChunkYieldEvery,
	}
}

func (o Options) withDefaults() Options {
	if o.YieldEvery <= 0 {
		o.YieldEvery = DefaultYieldEvery
	}
	if o.YieldEveryOps <= 0 {
		o.YieldEveryOps = DefaultYieldEveryOps
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.ChunkYieldEvery <= 0 {
		o.ChunkYieldEvery = DefaultChunkYieldEvery
	}
	return o
}

// Stats reports scheduling observations from one serialize invocation. Used
// by tests and the perf harness; not part of the correctness contract.
type Stats struct {
	// Suspensions is the number of cooperative yields performed.
	Suspensions int
	// Ops is the total number of checkpoints passed.
	Ops int
	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}

// --------------------------------------------------------------------------
// Entry Points
// --------------------------------------------------------------------------

// Serialize walks v depth-first and returns its JSON text. The traversal
// suspends cooperatively per the yield thresholds in opts, and fails with
// RetCDeadlineExceeded if opts.Timeout elapses first. Either the complete
// text is returned or an error; never partial output.
func Serialize(v value.Value, opts Options) (string, error) {
	text, _, err := SerializeStats(v, opts)
	return text, err
}

// SerializeStats is Serialize plus scheduling observations.
func SerializeStats(v value.Value, opts Options) (string, Stats, error) {
	opts = opts.withDefaults()

	e := &engine{
		yield: newYielder(opts.YieldEvery, opts.YieldEveryOps),
		path:  make(pathSet),
		opts:  opts,
	}

	e.cancel.start(opts.Timeout)
	defer e.cancel.stop()

	err := e.visit(v)
	stats := Stats{
		Suspensions: e.suspensions,
		Ops:         e.yield.totalOps,
		Elapsed:     e.cancel.elapsed(),
	}
	if err != nil {
		return "", stats, err
	}
	return string(e.buf), stats, nil
}

// --------------------------------------------------------------------------
// Engine
// --------------------------------------------------------------------------

// engine holds the per-invocation traversal state. Created fresh for every
// top-level call; nothing is shared between invocations.
type engine struct {
	yield  *yielder
	cancel canceller
	path   pathSet
	opts   Options

	buf         []byte
	suspensions int
}

// checkpoint is consulted at entry to every visit (pre-order) and between
// chunks of long strings. It first lets the yield policy suspend if due,
// then observes the deadline, in that order, so a deadline that fired while
// the engine was suspended is seen immediately on resume.
func (e *engine) checkpoint() error {
	if e.yield.shouldYield() {
		e.yield.suspend()
		e.suspensions++
	}
	return e.cancel.check()
}

func (e *engine) visit(v value.Value) error {
	if err := e.checkpoint(); err != nil {
		return err
	}

	if v == nil {
		e.buf = append(e.buf, "null"...)
		return nil
	}

	switch n := v.(type) {
	case value.Null:
		e.buf = append(e.buf, "null"...)
	case value.Bool:
		if n {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case value.Number:
		e.buf = appendNumber(e.buf, float64(n))
	case value.String:
		return e.writeString(string(n))
	case value.Time:
		e.buf = append(e.buf, '"')
		e.buf = n.Std().UTC().AppendFormat(e.buf, timeLayout)
		e.buf = append(e.buf, '"')
	case value.Func:
		// Only reached as an array element; object members of this kind
		// are skipped by visitObject.
		e.buf = append(e.buf, "null"...)
	case *value.Array:
		return e.visitArray(n)
	case *value.Object:
		return e.visitObject(n)
	default:
		return NewError(RetCInternalError, fmt.Sprintf("unsupported value variant %s", v.Kind()))
	}
	return nil
}

func (e *engine) visitArray(a *value.Array) error {
	if e.path.enter(a) {
		e.buf = append(e.buf, circularSentinel...)
		return nil
	}
	defer e.path.leave(a)

	e.buf = append(e.buf, '[')
	for i, item := range a.Items {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		if skip(item) {
			// Function-like elements have no representation; they degrade
			// to null so the array keeps its length.
			e.buf = append(e.buf, "null"...)
			continue
		}
		if err := e.visit(item); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, ']')
	return nil
}

func (e *engine) visitObject(o *value.Object) error {
	if e.path.enter(o) {
		e.buf = append(e.buf, circularSentinel...)
		return nil
	}
	defer e.path.leave(o)

	e.buf = append(e.buf, '{')
	first := true
	for _, key := range o.Keys() {
		member, _ := o.Get(key)
		if member == nil || skip(member) {
			continue
		}
		if !first {
			e.buf = append(e.buf, ',')
		}
		first = false
		e.buf = append(e.buf, '"')
		e.buf = appendEscaped(e.buf, key)
		e.buf = append(e.buf, '"', ':')
		if err := e.visit(member); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, '}')
	return nil
}

// writeString emits a quoted, escaped string. Strings longer than the chunk
// size are escaped in rune-aligned chunks with an extra checkpoint every
// ChunkYieldEvery chunks, so a huge string cannot monopolize the thread.
// The produced bytes are identical to one-pass escaping.
func (e *engine) writeString(s string) error {
	e.buf = append(e.buf, '"')
	if len(s) <= e.opts.ChunkSize {
		e.buf = appendEscaped(e.buf, s)
	} else {
		chunks := 0
		for len(s) > 0 {
			var chunk string
			chunk, s = splitChunk(s, e.opts.ChunkSize)
			e.buf = appendEscaped(e.buf, chunk)
			chunks++
			if chunks%e.opts.ChunkYieldEvery == 0 {
				if err := e.checkpoint(); err != nil {
					return err
				}
			}
		}
	}
	e.buf = append(e.buf, '"')
	return nil
}

// skip reports whether v is an opaque function-like value, which is omitted
// from objects and nulled in arrays.
func skip(v value.Value) bool {
	return v != nil && v.Kind() == value.KindFunc
}

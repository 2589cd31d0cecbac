package serialize

import (
	"math"
	"time"

	"github.com/coopjson/cjson/lib/value"
)

// ISerializer is the interface for all serializer implementations.
type ISerializer interface {
	// Serialize produces the JSON text for v.
	// It returns the serialized text and an error if any.
	Serialize(v value.Value) (string, error)
}

// NewCooperativeSerializer creates a serializer backed by the yielding,
// cancellable engine, configured once and reusable across calls. Each call
// gets its own deadline timer and traversal state, so a single instance is
// safe for concurrent use.
func NewCooperativeSerializer(opts Options) ISerializer {
	return &cooperativeSerializerImpl{opts: opts.withDefaults()}
}

// NewReferenceSerializer creates the non-yielding, non-cancellable reference
// serializer. Its output is byte-identical to the cooperative engine's for
// cycle-free inputs; tests and fixtures compare against it.
func NewReferenceSerializer() ISerializer {
	return &referenceSerializerImpl{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see ISerializer)
// --------------------------------------------------------------------------

type cooperativeSerializerImpl struct {
	opts Options
}

func (s *cooperativeSerializerImpl) Serialize(v value.Value) (string, error) {
	return Serialize(v, s.opts)
}

type referenceSerializerImpl struct{}

func (s *referenceSerializerImpl) Serialize(v value.Value) (string, error) {
	return Reference(v)
}

// Reference serializes v without yielding and without a deadline. It shares
// the engine's emit path, so equivalence with the cooperative serializer is
// structural rather than asserted.
func Reference(v value.Value) (string, error) {
	return Serialize(v, Options{
		YieldEvery:      time.Hour,
		YieldEveryOps:   math.MaxInt / 2,
		ChunkSize:       math.MaxInt / 2,
		ChunkYieldEvery: math.MaxInt / 2,
	})
}

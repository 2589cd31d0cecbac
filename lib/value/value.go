package value

import "time"

// --------------------------------------------------------------------------
// Kinds
// --------------------------------------------------------------------------

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindTime
	KindFunc
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindTime:
		return "Time"
	case KindFunc:
		return "Func"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Value Interface
// --------------------------------------------------------------------------

// Value is implemented by every node variant. The serialization engine only
// ever reads Values; it never mutates them.
type Value interface {
	Kind() Kind
}

// --------------------------------------------------------------------------
// Scalar Variants
// --------------------------------------------------------------------------

// Null is the explicit null value. Note the difference to an absent value
// (a nil Value): null is emitted, absent object members are skipped.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Number is a numeric value. All numbers are float64, matching the numeric
// model of the serialized format.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// String is a text value.
type String string

func (String) Kind() Kind { return KindString }

// Time is a date/time value. It serializes to a fixed UTC ISO-8601 form with
// millisecond precision.
type Time time.Time

func (Time) Kind() Kind { return KindTime }

// Std returns the underlying time.Time.
func (t Time) Std() time.Time { return time.Time(t) }

// Func is an opaque function-like value. Funcs are skipped when they appear
// as object members and degrade to null as array elements. The string is a
// display name carried for diagnostics only; it never appears in output.
type Func string

func (Func) Kind() Kind { return KindFunc }

// --------------------------------------------------------------------------
// Composite Variants
// --------------------------------------------------------------------------

// Array is an ordered sequence of Values. Always used via pointer so that
// reference identity is meaningful.
type Array struct {
	Items []Value
}

func (*Array) Kind() Kind { return KindArray }

// NewArray creates an Array from the given items.
func NewArray(items ...Value) *Array {
	return &Array{Items: items}
}

// Append adds items to the end of the array and returns the array for
// chaining.
func (a *Array) Append(items ...Value) *Array {
	a.Items = append(a.Items, items...)
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Items) }

// Object is a mapping from string keys to Values with insertion-order
// significant iteration. Always used via pointer so that reference identity
// is meaningful.
type Object struct {
	keys    []string
	entries map[string]Value
}

func (*Object) Kind() Kind { return KindObject }

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

// Set inserts or updates a key. A new key is appended to the iteration
// order; updating an existing key keeps its original position. Returns the
// object for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = v
	return o
}

// Get returns the value for a key. The boolean indicates whether the key
// is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

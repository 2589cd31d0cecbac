// Package value defines the in-memory data model consumed by the serialization
// engine. A document is a tree (or, with shared references, a graph) of Value
// nodes covering the usual JSON shapes plus two extras: date/time values, which
// serialize to a fixed textual form, and opaque function-like values, which are
// skipped during serialization.
//
// The package focuses on:
//   - Insertion-order-preserving objects (iteration order is the order in
//     which keys were first set, never sorted)
//   - Pointer-typed composites (*Array, *Object) so that reference identity
//     can be used for cycle detection
//   - Read-only consumption: nothing in this module mutates a Value after
//     construction except the Object/Array builder methods themselves
//
// Key Components:
//
//   - Value: the interface implemented by every node variant.
//
//   - Null, Bool, Number, String, Time, Func: scalar variants.
//
//   - Array, Object: composite variants. Both are used via pointer so that
//     two occurrences of the same composite in a document can be told apart
//     from two structurally equal but distinct composites.
//
//   - FromGo: a convenience converter from plain Go values (maps, slices,
//     scalars) used by the test harness and CLI. Map keys are sorted for
//     determinism since Go maps have no insertion order; code that cares
//     about key order must build an Object directly.
//
// Thread Safety:
//
//	Values are not synchronized. Build a document on one goroutine, then
//	share it read-only.
package value

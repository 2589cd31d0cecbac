// Package generate builds deterministic test documents for the serializer
// harness: flat objects, deeply nested trees, long strings, mixed random
// documents, and documents containing reference cycles. Generators are
// seeded so the same arguments always produce the same document, which keeps
// fixture digests stable across runs.
package generate

// Package cmd implements the command-line interface for the cjson
// cooperative serializer. It provides a hierarchical command structure for
// serializing generated documents and for exercising the engine's
// scheduling guarantees.
//
// The package is organized into several subpackages:
//
//   - run: Serialize a generated document and report timing/scheduling stats
//   - gen: Write a reference fixture (serialized text + digest) to disk
//   - check: Re-serialize with the cooperative engine and verify the fixture
//   - perf: Benchmark scenarios with a responsiveness probe running alongside
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See cjson -help for a list of all commands.
package cmd

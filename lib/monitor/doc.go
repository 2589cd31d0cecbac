// Package monitor implements a responsiveness probe: an independent periodic
// task that samples how long the scheduler went between consecutive ticks.
// A tick arriving much later than the configured interval means some
// goroutine held the thread without yielding.
//
// The monitor is purely observational. It knows nothing about the
// serialization engine; tests and the perf harness run it alongside a
// serialize call to assert the engine did not starve the scheduler. Gap
// samples are additionally exported to a VictoriaMetrics histogram
// (monitor_gap_seconds) for long-running harness processes.
package monitor

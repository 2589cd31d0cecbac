package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

const (
	// DefaultInterval is the probe tick period.
	DefaultInterval = 10 * time.Millisecond
	// DefaultBlockThreshold is the gap above which a tick counts as a block.
	DefaultBlockThreshold = 20 * time.Millisecond
)

// Config holds the probe parameters.
type Config struct {
	// Interval is the tick period.
	Interval time.Duration
	// BlockThreshold is the gap duration above which a tick is counted as
	// a scheduler block.
	BlockThreshold time.Duration
}

// DefaultConfig returns the default probe configuration (10ms tick, 20ms
// block threshold).
func DefaultConfig() Config {
	return Config{
		Interval:       DefaultInterval,
		BlockThreshold: DefaultBlockThreshold,
	}
}

// --------------------------------------------------------------------------
// Report
// --------------------------------------------------------------------------

// Report summarizes one monitoring run.
type Report struct {
	// TickCount is the number of ticks observed.
	TickCount int
	// BlockCount is the number of gaps exceeding the block threshold.
	BlockCount int
	// MaxGap is the longest observed gap between consecutive ticks.
	MaxGap time.Duration
	// Gaps holds every observed gap in order.
	Gaps []time.Duration
}

// String returns a formatted one-line summary of the report.
func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ticks=%d blocks=%d max_gap=%v", r.TickCount, r.BlockCount, r.MaxGap))
	if r.TickCount > 0 {
		sb.WriteString(fmt.Sprintf(" mean_gap=%v", r.Stats().Mean))
	}
	return sb.String()
}

// --------------------------------------------------------------------------
// Monitor
// --------------------------------------------------------------------------

// gapHistogram exports every observed gap for long-running processes.
var gapHistogram = metrics.GetOrCreateHistogram("monitor_gap_seconds")

// Monitor samples scheduler latency on a fixed tick. Create with New, then
// Start; Stop returns the collected Report. A Monitor is single-use.
type Monitor struct {
	cfg  Config
	done chan struct{}
	quit chan struct{}

	// Written only by the probe goroutine; read by Stop after the
	// goroutine has exited.
	gaps []time.Duration
}

// New creates a Monitor with the given configuration. Zero fields fall back
// to the defaults.
func New(cfg Config) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.BlockThreshold <= 0 {
		cfg.BlockThreshold = DefaultBlockThreshold
	}
	return &Monitor{
		cfg:  cfg,
		done: make(chan struct{}),
		quit: make(chan struct{}),
	}
}

// Start launches the probe goroutine.
func (m *Monitor) Start() {
	go m.run()
}

// Stop terminates the probe and returns the collected report.
func (m *Monitor) Stop() Report {
	close(m.quit)
	<-m.done

	report := Report{
		TickCount: len(m.gaps),
		Gaps:      m.gaps,
	}
	for _, gap := range m.gaps {
		if gap > m.cfg.BlockThreshold {
			report.BlockCount++
		}
		if gap > report.MaxGap {
			report.MaxGap = gap
		}
	}
	return report
}

func (m *Monitor) run() {
	defer close(m.done)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
			now := time.Now()
			gap := now.Sub(last)
			last = now
			m.gaps = append(m.gaps, gap)
			gapHistogram.Update(gap.Seconds())
		}
	}
}

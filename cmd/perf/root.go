// Package perf implements the `cjson perf` command: a benchmark harness that
// runs the cooperative engine against a set of document scenarios while the
// responsiveness probe samples scheduler latency alongside. Results can be
// exported as CSV.
package perf

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/coopjson/cjson/cmd/util"
	"github.com/coopjson/cjson/lib/generate"
	"github.com/coopjson/cjson/lib/monitor"
	"github.com/coopjson/cjson/lib/serialize"
	"github.com/coopjson/cjson/lib/value"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Benchmark the cooperative serializer",
		Long:    "Run the cooperative engine against a set of document scenarios with a responsiveness probe sampling scheduler latency alongside.",
		RunE:    run,
		PreRunE: processPerfConfig,
	}
	perfSkip    = make([]string, 0)
	perfThreads = 4
	perfCSVPath = ""
)

// serializeCalls counts every engine invocation across scenarios.
var serializeCalls = metrics.GetOrCreateCounter("perf_serialize_calls_total")

func init() {
	util.SetupEngineFlags(PerfCmd)

	// add flags
	key := "skip"
	PerfCmd.PersistentFlags().String(key, "", util.WrapString("Scenarios to skip (comma separated - e.g. flat,long-string)"))
	key = "threads"
	PerfCmd.PersistentFlags().Int(key, 4, util.WrapString("Parallelism for the parallel scenario"))
	key = "csv"
	PerfCmd.PersistentFlags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfThreads = viper.GetInt("threads")
	perfCSVPath = viper.GetString("csv")
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}

	return nil
}

// scenarioResult collects everything measured for one scenario.
type scenarioResult struct {
	bench  testing.BenchmarkResult
	report monitor.Report
	p50    time.Duration
	p99    time.Duration
	errs   int
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Benchmark harness for the cooperative serializer")
	fmt.Println()
	fmt.Printf("Threads (parallel scenario): %d\n", perfThreads)
	fmt.Println()
	fmt.Println("starting scenarios...")

	opts := util.GetEngineOptions()
	ser := serialize.NewCooperativeSerializer(opts)

	scenarios := []struct {
		name string
		doc  func() value.Value
	}{
		{"flat", func() value.Value { return generate.Flat(5000) }},
		{"nested", func() value.Value { return generate.Nested(6, 4) }},
		{"long-string", func() value.Value { return generate.LongString(2_000_000) }},
		{"mixed", func() value.Value { return generate.Mixed(1, 20000) }},
	}

	// Concurrent scenarios write results from multiple goroutines.
	results := xsync.NewMapOf[string, scenarioResult]()

	for _, sc := range scenarios {
		if shouldSkip(sc.name) {
			continue
		}

		doc := sc.doc()
		hist := gometrics.NewHistogram(gometrics.NewUniformSample(100_000))

		probe := monitor.New(monitor.DefaultConfig())
		probe.Start()

		bench := testing.Benchmark(func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				start := time.Now()
				if _, err := ser.Serialize(doc); err != nil {
					log.Printf("(%s) - serialize error: %v\n", sc.name, err)
				}
				hist.Update(int64(time.Since(start)))
				serializeCalls.Inc()
			}
		})

		report := probe.Stop()
		result := scenarioResult{
			bench:  bench,
			report: report,
			p50:    time.Duration(int64(hist.Percentile(0.50))),
			p99:    time.Duration(int64(hist.Percentile(0.99))),
		}
		results.Store(sc.name, result)
		printResult(sc.name, result)
	}

	if !shouldSkip("parallel") {
		result := runParallel(ser)
		results.Store("parallel", result)
		printResult("parallel", result)
	}

	if perfCSVPath != "" {
		if err := writeCSV(perfCSVPath, results); err != nil {
			return err
		}
		fmt.Printf("\nresults written to %s\n", perfCSVPath)
	}

	return nil
}

// runParallel serializes the same document from perfThreads goroutines at
// once; errors are counted in a concurrent map since workers race on it.
func runParallel(ser serialize.ISerializer) scenarioResult {
	doc := generate.Mixed(7, 20000)
	hist := gometrics.NewHistogram(gometrics.NewUniformSample(100_000))
	errCounts := xsync.NewMapOf[string, int]()

	probe := monitor.New(monitor.DefaultConfig())
	probe.Start()

	bench := testing.Benchmark(func(b *testing.B) {
		b.SetParallelism(perfThreads)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				start := time.Now()
				if _, err := ser.Serialize(doc); err != nil {
					errCounts.Compute("parallel", func(old int, _ bool) (int, bool) {
						return old + 1, false
					})
				}
				hist.Update(int64(time.Since(start)))
				serializeCalls.Inc()
			}
		})
	})

	report := probe.Stop()
	errs, _ := errCounts.Load("parallel")
	return scenarioResult{
		bench:  bench,
		report: report,
		p50:    time.Duration(int64(hist.Percentile(0.50))),
		p99:    time.Duration(int64(hist.Percentile(0.99))),
		errs:   errs,
	}
}

func shouldSkip(name string) bool {
	for _, s := range perfSkip {
		if strings.TrimSpace(s) == name {
			return true
		}
	}
	return false
}

func printResult(name string, r scenarioResult) {
	fmt.Printf("  %-12s: %10d iter  %12v/op  p50 %10v  p99 %10v  probe[%s]",
		name, r.bench.N, time.Duration(r.bench.NsPerOp()), r.p50, r.p99, r.report)
	if r.errs > 0 {
		fmt.Printf("  errors=%d", r.errs)
	}
	fmt.Println()
}

func writeCSV(path string, results *xsync.MapOf[string, scenarioResult]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"scenario", "iterations", "ns_per_op", "p50_ns", "p99_ns",
		"probe_ticks", "probe_blocks", "probe_max_gap_ms", "errors",
	}); err != nil {
		return err
	}

	var writeErr error
	results.Range(func(name string, r scenarioResult) bool {
		writeErr = w.Write([]string{
			name,
			strconv.Itoa(r.bench.N),
			strconv.FormatInt(r.bench.NsPerOp(), 10),
			strconv.FormatInt(int64(r.p50), 10),
			strconv.FormatInt(int64(r.p99), 10),
			strconv.Itoa(r.report.TickCount),
			strconv.Itoa(r.report.BlockCount),
			strconv.FormatFloat(float64(r.report.MaxGap)/1e6, 'f', 3, 64),
			strconv.Itoa(r.errs),
		})
		return writeErr == nil
	})
	return writeErr
}

// Package run implements the `cjson run` command: build a test document,
// serialize it with the cooperative engine, and report the outcome together
// with timing and scheduling observations from the responsiveness probe.
package run

import (
	"fmt"
	"os"
	"time"

	"github.com/coopjson/cjson/cmd/util"
	"github.com/coopjson/cjson/lib/ctxlog"
	"github.com/coopjson/cjson/lib/monitor"
	"github.com/coopjson/cjson/lib/serialize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RunCmd = &cobra.Command{
	Use:     "run",
	Short:   "Serialize a generated document",
	Long:    "Build a test document, serialize it with the cooperative engine under the configured timeout and yield thresholds, and report timing and scheduling statistics.",
	PreRunE: bindFlags,
	RunE:    runE,
}

func init() {
	util.SetupEngineFlags(RunCmd)
	util.SetupDocFlags(RunCmd)

	key := "out"
	RunCmd.PersistentFlags().String(key, "", util.WrapString("Optional path to write the serialized output to (default: discard, print stats only)"))
	key = "probe-interval-ms"
	RunCmd.PersistentFlags().Int(key, 10, util.WrapString("Tick period of the responsiveness probe in milliseconds"))
}

func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func runE(cmd *cobra.Command, _ []string) error {
	logger := ctxlog.FromContext(cmd.Context())

	doc, err := util.GetDocument()
	if err != nil {
		return err
	}
	opts := util.GetEngineOptions()

	probe := monitor.New(monitor.Config{
		Interval: time.Duration(viper.GetInt("probe-interval-ms")) * time.Millisecond,
	})
	probe.Start()

	text, stats, serr := serialize.SerializeStats(doc, opts)
	report := probe.Stop()

	logger.Info("serialization finished",
		"elapsed", stats.Elapsed,
		"suspensions", stats.Suspensions,
		"ops", stats.Ops,
		"probe", report.String(),
	)

	if serr != nil {
		return serr
	}

	fmt.Printf("serialized %d bytes in %v (%d suspensions, %d checkpoints)\n",
		len(text), stats.Elapsed, stats.Suspensions, stats.Ops)
	fmt.Printf("probe: %s\n", report)

	if out := viper.GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Printf("output written to %s\n", out)
	}
	return nil
}

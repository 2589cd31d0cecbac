package cmd

import (
	"fmt"
	"os"

	"github.com/coopjson/cjson/cmd/check"
	"github.com/coopjson/cjson/cmd/gen"
	"github.com/coopjson/cjson/cmd/perf"
	"github.com/coopjson/cjson/cmd/run"
	"github.com/coopjson/cjson/cmd/util"
	"github.com/coopjson/cjson/lib/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "cjson",
		Short: "cooperative JSON serializer",
		Long: fmt.Sprintf(`cjson (v%s)

A cooperatively-yielding, cancellable, cycle-safe JSON serializer
with a responsiveness harness for verifying its scheduling behavior.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger, err := util.SetupLogger(viper.GetString("log-level"))
			if err != nil {
				return err
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cjson",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cjson v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(gen.GenCmd)
	RootCmd.AddCommand(check.CheckCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("Level at which logs will be output (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package check implements the `cjson check` command: rebuild the document a
// fixture was generated from, serialize it with the cooperative engine, and
// verify the output digest against the stored fixture. A match demonstrates
// the yielding engine is byte-equivalent to the reference serializer for
// that document.
package check

import (
	"fmt"

	"github.com/coopjson/cjson/cmd/util"
	"github.com/coopjson/cjson/lib/fixture"
	"github.com/coopjson/cjson/lib/serialize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CheckCmd = &cobra.Command{
	Use:     "check <fixture-path>",
	Short:   "Verify a fixture against the cooperative engine",
	Long:    "Rebuild the same document (same input flags as gen), serialize it with the cooperative engine, and compare the output digest against the stored fixture.",
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    runE,
}

func init() {
	util.SetupEngineFlags(CheckCmd)
	util.SetupDocFlags(CheckCmd)
}

func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func runE(_ *cobra.Command, args []string) error {
	doc, err := util.GetDocument()
	if err != nil {
		return err
	}

	text, err := serialize.Serialize(doc, util.GetEngineOptions())
	if err != nil {
		return err
	}

	ok, want, got, err := fixture.Check(args[0], text)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("digest mismatch for %s: fixture %s, engine %s", args[0], want, got)
	}

	fmt.Printf("ok: %s matches (%s)\n", args[0], got)
	return nil
}

// Package gen implements the `cjson gen` command: build a test document,
// serialize it with the reference serializer, and store the text plus its
// digest as a fixture for later verification with `cjson check`.
package gen

import (
	"fmt"

	"github.com/coopjson/cjson/cmd/util"
	"github.com/coopjson/cjson/lib/ctxlog"
	"github.com/coopjson/cjson/lib/fixture"
	"github.com/coopjson/cjson/lib/serialize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var GenCmd = &cobra.Command{
	Use:     "gen <fixture-path>",
	Short:   "Write a reference fixture",
	Long:    "Build a test document, serialize it with the non-yielding reference serializer, and write the text and its xxhash-64 digest to disk.",
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    runE,
}

func init() {
	util.SetupDocFlags(GenCmd)
}

func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func runE(cmd *cobra.Command, args []string) error {
	doc, err := util.GetDocument()
	if err != nil {
		return err
	}

	text, err := serialize.Reference(doc)
	if err != nil {
		return err
	}

	digest, err := fixture.Save(args[0], text)
	if err != nil {
		return err
	}

	ctxlog.FromContext(cmd.Context()).Debug("fixture written", "path", args[0], "bytes", len(text))
	fmt.Printf("wrote %d bytes to %s (xxh64 %s)\n", len(text), args[0], digest)
	return nil
}

// Package util provides shared helpers for the cjson command-line interface:
// help-text formatting, environment/flag configuration, logger setup, and
// document construction from command-line parameters.
package util

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/coopjson/cjson/lib/generate"
	"github.com/coopjson/cjson/lib/serialize"
	"github.com/coopjson/cjson/lib/value"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// InitConfig loads env files and initializes viper. Environment variables
// use the CJSON_ prefix (e.g. CJSON_TIMEOUT_MS=500).
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("cjson")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// SetupEngineFlags adds the engine tuning flags to a command
func SetupEngineFlags(cmd *cobra.Command) {
	key := "timeout-ms"
	cmd.PersistentFlags().Int(key, 0, WrapString("Wall-clock budget for one serialization in milliseconds (0 = no deadline)"))
	key = "yield-every-ms"
	cmd.PersistentFlags().Int(key, 5, WrapString("Time threshold in milliseconds after which the engine suspends cooperatively"))
	key = "yield-ops"
	cmd.PersistentFlags().Int(key, 100, WrapString("Operation-count threshold after which the engine suspends cooperatively"))
	key = "chunk-size"
	cmd.PersistentFlags().Int(key, serialize.DefaultChunkSize, WrapString("String length above which escaping is chunked"))
	key = "chunk-yield-every"
	cmd.PersistentFlags().Int(key, serialize.DefaultChunkYieldEvery, WrapString("Number of chunks between extra checkpoints inside long strings"))
}

// GetEngineOptions reads the engine tuning flags bound via viper.
func GetEngineOptions() serialize.Options {
	return serialize.Options{
		Timeout:         time.Duration(viper.GetInt("timeout-ms")) * time.Millisecond,
		YieldEvery:      time.Duration(viper.GetInt("yield-every-ms")) * time.Millisecond,
		YieldEveryOps:   viper.GetInt("yield-ops"),
		ChunkSize:       viper.GetInt("chunk-size"),
		ChunkYieldEvery: viper.GetInt("chunk-yield-every"),
	}
}

// SetupDocFlags adds the document construction flags to a command
func SetupDocFlags(cmd *cobra.Command) {
	key := "input"
	cmd.PersistentFlags().String(key, "mixed", WrapString("Document to build: flat, nested, chain, wide, long, mixed, cyclic"))
	key = "size"
	cmd.PersistentFlags().Int(key, 10000, WrapString("Node count (flat, chain, wide, mixed) or string length (long)"))
	key = "depth"
	cmd.PersistentFlags().Int(key, 6, WrapString("Tree depth for nested input"))
	key = "width"
	cmd.PersistentFlags().Int(key, 4, WrapString("Fan-out for nested input"))
	key = "seed"
	cmd.PersistentFlags().Int64(key, 1, WrapString("Seed for mixed input"))
}

// GetDocument builds the document described by the flags bound via viper.
func GetDocument() (value.Value, error) {
	return BuildDocument(
		viper.GetString("input"),
		viper.GetInt("size"),
		viper.GetInt("depth"),
		viper.GetInt("width"),
		viper.GetInt64("seed"),
	)
}

// BuildDocument constructs a test document by generator name.
func BuildDocument(input string, size, depth, width int, seed int64) (value.Value, error) {
	switch input {
	case "flat":
		return generate.Flat(size), nil
	case "nested":
		return generate.Nested(depth, width), nil
	case "chain":
		return generate.DeepChain(size), nil
	case "wide":
		return generate.WideObject(size), nil
	case "long":
		return generate.LongString(size), nil
	case "mixed":
		return generate.Mixed(seed, size), nil
	case "cyclic":
		return generate.Cyclic(), nil
	default:
		return nil, fmt.Errorf("unknown input %q (expected one of: flat, nested, chain, wide, long, mixed, cyclic)", input)
	}
}

// --------------------------------------------------------------------------
// Logging
// --------------------------------------------------------------------------

// SetupLogger builds a slog text logger at the given level and installs it
// as the process default. The returned logger is also carried through the
// command context via ctxlog.
func SetupLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger, nil
}

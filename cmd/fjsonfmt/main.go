// Command fjsonfmt reads a JSON file, builds an fjson.Value tree from it,
// and re-emits the tree through the fjson layout engine under the
// requested formatting flags.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kcenon/go_fjson/fjson"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagPretty         bool
	flagTab            bool
	flagSpaced         bool
	flagNoTrailingZero bool
	flagGzip           bool
	flagConfig         string
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fjsonfmt <file>",
		Short: "Reformat a JSON file through the fjson layout engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], logger)
		},
	}
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "pretty-print with newlines and indentation")
	cmd.Flags().BoolVar(&flagTab, "tab", false, "indent with tabs instead of two spaces (implies --pretty's indent unit)")
	cmd.Flags().BoolVar(&flagSpaced, "spaced", false, "insert spaces around punctuation")
	cmd.Flags().BoolVar(&flagNoTrailingZero, "no-trailing-zero", false, "trim trailing zeros in formatted doubles to one digit")
	cmd.Flags().BoolVar(&flagGzip, "gzip", false, "gzip-compress the output")
	cmd.Flags().StringVar(&flagConfig, "config", "", "TOML config file of default layout flags")
	return cmd
}

func run(path string, logger *zap.Logger) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("fjsonfmt: load config: %w", err)
	}

	flags := resolveFlags(cfg)
	logger.Debug("resolved layout flags", zap.Int("flags", int(flags)), zap.Bool("gzip", cfg.Gzip || flagGzip))

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fjsonfmt: read %q: %w", path, err)
	}

	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("fjsonfmt: decode %q: %w", path, err)
	}

	root := valueFromJSON(decoded)
	defer fjson.Release(root)

	out, err := root.ToStringFlags(flags)
	if err != nil {
		return fmt.Errorf("fjsonfmt: serialize: %w", err)
	}
	logger.Debug("serialized value tree", zap.Int("bytes", len(out)))

	return writeMaybeGzipped(os.Stdout, []byte(out), cfg.Gzip || flagGzip)
}

// resolveFlags combines the config file's defaults with the command-line
// flags: each layout flag is set if either source sets it. A command-line
// false does not clear a flag the config file sets.
func resolveFlags(cfg fileConfig) fjson.Flags {
	var flags fjson.Flags
	if flagPretty || cfg.Pretty {
		flags |= fjson.FlagPretty
	}
	if flagTab || cfg.Tab {
		flags |= fjson.FlagPrettyTab
	}
	if flagSpaced || cfg.Spaced {
		flags |= fjson.FlagSpaced
	}
	if flagNoTrailingZero || cfg.NoTrailingZero {
		flags |= fjson.FlagNoTrailingZero
	}
	return flags
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fjsonfmt: logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

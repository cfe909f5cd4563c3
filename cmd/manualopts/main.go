// manualopts compiles the option schema of a manual world from its data
// directory.
//
// Usage:
//
//	manualopts compile [--out schema.json]  - Print the compiled schema as JSON
//	manualopts groups                       - List presentation groups and members
//
// Settings come from flags, MANUALOPTS_* environment variables and defaults,
// in that order:
//
//	--data-dir <dir>     - Directory holding the data files (default: data)
//	--options <file>     - Options file, relative to the data directory
//	--resolve            - Resolve ${var}, {{ expr }} and @file:// references
//	--strict-entries     - Reject unknown keys in option entries
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-manual-options/loader"
	"github.com/goliatone/go-manual-options/logger"
	"github.com/goliatone/go-manual-options/options"
)

var flagVerbose bool

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manualopts",
	Short: "Compile the option schema of a manual world",
	Long: `manualopts reads the game, items, locations, categories and options
files of a manual world and compiles the player option schema.

Examples:
  manualopts compile --data-dir worlds/demo
  manualopts groups --options options.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.LoggerEnabled = flagVerbose
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log loader and compiler progress")
	loader.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(groupsCmd)
}

// compileSchema loads the data directory and compiles it.
func compileSchema(ctx context.Context, cmd *cobra.Command) (*options.Schema, error) {
	settings, err := loader.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}

	src, err := loader.New(settings, loader.WithLogger(logger.NewDefaultLogger("loader"))).Load(ctx)
	if err != nil {
		return nil, err
	}

	compiler := options.New(
		options.WithLogger(logger.NewDefaultLogger("options")),
		options.WithStrictEntries(settings.StrictEntries),
	)
	return compiler.Compile(src)
}

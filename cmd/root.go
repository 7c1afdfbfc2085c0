package cmd

import (
	"fmt"

	logger "github.com/PolarWolf314/sskeys/internal/logging"
	"github.com/PolarWolf314/sskeys/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// NewRootCmd returns the sskeys root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sskeys",
		Short: "sskeys - Generate obfuscated Go accessors for build-time secrets.",
		Long: `sskeys reads a YAML or TOML config of named secret values and generates
secret_keys.go: one accessor function per key, with the value stored as
XOR-obfuscated or AEAD-sealed bytes instead of a plain string literal.

This raises the bar against casual inspection of a compiled binary. It is
not a secrets vault; anyone with the binary can recover the values.

Usage:
  sskeys <command> [flags]

Run 'sskeys help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), figure.NewFigure("sskeys", "", true).String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run "+ui.Code.Sprint("sskeys --help")+" to see available commands.")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// Helper functions for testing

// ResetGlobalState resets all global variables and subcommand flags to their
// default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}

	for _, c := range []*cobra.Command{generateCmd, validateCmd, versionCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		// Cobra only hands the root context to subcommands without one.
		c.SetContext(nil) //nolint:staticcheck
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

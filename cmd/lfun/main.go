// SPDX-License-Identifier: MIT

// Command lfun computes analytic ranks and isolates zeros of L-functions
// from precomputed sample files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/config"
	"github.com/katalvlaran/lfun/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set by the root command before any subcommand runs.
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lfun",
	Short: "Rigorous rank and zero computation for L-functions",
	Long: `lfun reads sampled L-function data, determines the analytic rank at the
centre of the critical strip and isolates the zeros on the critical line.

Reported numbers are intervals. They are rigorous given the error bound of
the sample provider; when zeros are located by interpolating the stored
samples, the interpolator's configured error bound (upsample.error_bound)
is assumed, not proven.
Problems are reported as status flags; a fatal flag makes the command fail.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "lfun.yaml", "Configuration file (missing file means defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(showCmd)
}

// cmdContext returns the command's context, or Background when the command
// was invoked without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

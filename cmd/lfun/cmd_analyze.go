// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/analysis"
	"github.com/katalvlaran/lfun/dataset"
	"github.com/katalvlaran/lfun/store"
)

// errFatal makes analyze exit non-zero after printing every report.
var errFatal = errors.New("at least one analysis ended with a fatal status")

var noStore bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Compute rank and zeros for one or more dataset files",
	Long: `Loads each dataset, computes the analytic rank, isolates the zeros of
every side and prints a report per file. Files are processed in parallel
(run.parallelism). Results are saved to the store unless --no-store is given
or the store is disabled in the configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&noStore, "no-store", false, "Do not persist the reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load every dataset before doing any work.
	jobs := make([]analysis.Job, 0, len(args))
	for _, path := range args {
		rec, err := dataset.Load(path)
		if err != nil {
			return err
		}
		L, err := rec.Build(cfg.ContextOptions(logger.With(zap.String("dataset", rec.Name)))...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("dataset loaded",
			zap.String("path", path),
			zap.String("name", rec.Name),
			zap.Int("fft_nn", rec.FFTNN))
		jobs = append(jobs, analysis.Job{Name: rec.Name, L: L})
	}

	// 2. Analyse.
	a := analysis.New(
		analysis.WithLogger(logger),
		analysis.WithParallelism(cfg.Run.Parallelism),
		analysis.WithPlotPoints(cfg.Run.PlotPoints),
		analysis.WithFinderOptions(cfg.FinderOptions()...),
		analysis.WithUpsampleOptions(cfg.UpsampleOptions()...),
	)
	reports, err := a.RunBatch(ctx, jobs)
	if err != nil {
		return err
	}

	// 3. Report.
	out := cmd.OutOrStdout()
	fatal := false
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := rep.WriteText(out); err != nil {
			return err
		}
		fatal = fatal || rep.Fatal()
	}

	// 4. Persist.
	if cfg.Store.Enabled && !noStore {
		s, err := store.Open(cfg.Store.Path, store.WithLogger(logger))
		if err != nil {
			return err
		}
		defer s.Close()
		for _, rep := range reports {
			if err := s.Save(ctx, rep); err != nil {
				return err
			}
		}
		logger.Info("reports saved", zap.Int("count", len(reports)), zap.String("store", cfg.Store.Path))
	}

	if fatal {
		return errFatal
	}
	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/store"
)

var showLimit int

var showCmd = &cobra.Command{
	Use:   "show [RUN-ID]",
	Short: "List stored runs, or the zeros of one run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 20, "Maximum number of runs to list (0 = all)")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := store.Open(cfg.Store.Path, store.WithLogger(logger))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmdContext(cmd)
	if len(args) == 1 {
		return showRun(ctx, cmd, s, args[0])
	}

	runs, err := s.List(ctx, showLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs stored")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRANK\tZEROS\tSTATUS\tSTARTED")
	for _, r := range runs {
		n := 0
		for _, sd := range r.Sides {
			n += sd.ZeroCount
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Name, r.Rank, n, r.Status, r.Started.Format(time.RFC3339))
	}
	return tw.Flush()
}

func showRun(ctx context.Context, cmd *cobra.Command, s *store.Store, id string) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:          %s\n", r.ID)
	fmt.Fprintf(out, "name:         %s\n", r.Name)
	fmt.Fprintf(out, "rank:         %s (%s)\n", r.Rank, r.RankStatus)
	fmt.Fprintf(out, "leading term: %s\n", r.LeadingTerm)
	fmt.Fprintf(out, "elapsed:      %s\n", r.Elapsed)
	for _, sd := range r.Sides {
		zs, err := s.Zeros(ctx, id, sd.Side)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d zeros (%s)\n", sd.Side, len(zs), sd.Status)
		for i, z := range zs {
			fmt.Fprintf(out, "  %4d  %s\n", i+1, z)
		}
	}
	fmt.Fprintf(out, "status:       %s\n", r.Status)
	return lfunc.FprintStatus(out, r.Status)
}

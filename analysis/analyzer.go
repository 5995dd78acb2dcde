// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/rank"
	"github.com/katalvlaran/lfun/upsample"
	"github.com/katalvlaran/lfun/zeros"
)

// Job is one instance to analyse.
type Job struct {
	Name string
	L    *lfunc.Context
	// Provider evaluates Λ off the grid. Nil means a band-limited
	// interpolator over L's own samples.
	Provider lfunc.Provider
}

// Analyzer drives the engines. It holds no per-job state and is safe for
// concurrent use.
type Analyzer struct {
	log          *zap.Logger
	finderOpts   []zeros.Option
	upsampleOpts []upsample.Option
	plotPoints   int
	parallelism  int
}

// New returns an Analyzer with the package defaults overridden by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:         zap.NewNop(),
		plotPoints:  DefaultPlotPoints,
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run analyses one job.
//
// Implementation:
//   - Stage 1: rank.Engine.Compute. A fatal rank status (ConflictRank)
//     ends the run; the report then carries no sides.
//   - Stage 2: zeros.Finder over the primal side, then the dual side unless
//     the context is self-dual. A fatal side status skips the remaining side.
//   - Stage 3: optional plot extraction per analysed side.
//
// Numeric outcomes land in Report.Status; the error is reserved for
// unusable jobs.
func (a *Analyzer) Run(job Job) (*Report, error) {
	if job.L == nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, ErrNilContext)
	}
	L := job.L
	log := a.log.With(zap.String("job", job.Name))

	rep := &Report{
		ID:      uuid.NewString(),
		Name:    job.Name,
		Epsilon: L.Epsilon(),
		Started: time.Now(),
	}

	// Stage 1: rank.
	_, rst := rank.NewEngine(L).Compute()
	rep.Rank = L.Rank()
	rep.RankStatus = rst
	rep.LeadingTerm = L.LeadingTerm()
	rep.Status = rst
	if rst.Fatal() {
		log.Warn("rank stage failed, zeros skipped", zap.Stringer("status", rst))
		rep.Elapsed = time.Since(rep.Started)
		return rep, nil
	}

	p := job.Provider
	if p == nil {
		p = upsample.New(L, a.upsampleOpts...)
	}

	// Stage 2: zeros per side.
	for _, s := range lfunc.Sides {
		if s == lfunc.Dual && L.SelfDual() {
			continue
		}
		f, err := zeros.NewFinder(L, p, s, a.finderOpts...)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", job.Name, err)
		}
		st := f.Find()
		sr := SideReport{Side: s, Status: st, Zeros: L.Zeros(s).Zeros()}

		// Stage 3: plot.
		if a.plotPoints > 0 {
			sr.Plot = PlotPoints(L, p, s, a.plotPoints)
		}
		rep.Sides = append(rep.Sides, sr)
		rep.Status |= st
		log.Debug("side analysed",
			zap.Stringer("side", s),
			zap.Int("zeros", len(sr.Zeros)),
			zap.Stringer("status", st))
		if st.Fatal() {
			break
		}
	}

	rep.Elapsed = time.Since(rep.Started)
	log.Info("analysis finished",
		zap.Stringer("rank", rep.Rank),
		zap.Stringer("status", rep.Status),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// RunBatch analyses jobs concurrently, at most the configured parallelism at
// a time. Reports are returned in job order. Jobs not yet started when ctx is
// cancelled are skipped and left nil; the first error (including ctx.Err())
// is returned alongside the reports gathered so far.
func (a *Analyzer) RunBatch(ctx context.Context, jobs []Job) ([]*Report, error) {
	reports := make([]*Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := a.Run(job)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	for _, r := range reports {
		if r == nil {
			return reports, ctx.Err()
		}
	}
	return reports, nil
}

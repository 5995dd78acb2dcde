// SPDX-License-Identifier: MIT

package analysis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/upsample"
	"github.com/katalvlaran/lfun/zeros"
)

const (
	// DefaultParallelism bounds the jobs RunBatch runs at once.
	DefaultParallelism = 4

	// DefaultPlotPoints is the number of Λ samples attached to each side.
	DefaultPlotPoints = 256
)

const (
	panicNilLogger   = "analysis: WithLogger: nil logger"
	panicParallelism = "analysis: WithParallelism: must be > 0"
	panicPlotPoints  = "analysis: WithPlotPoints: must be >= 0"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the analyzer's logger. The engines keep logging through
// each context's own logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(a *Analyzer) { a.log = l }
}

// WithFinderOptions forwards options to every zeros.Finder.
func WithFinderOptions(opts ...zeros.Option) Option {
	return func(a *Analyzer) { a.finderOpts = append(a.finderOpts, opts...) }
}

// WithUpsampleOptions forwards options to the interpolator built for jobs
// without a provider.
func WithUpsampleOptions(opts ...upsample.Option) Option {
	return func(a *Analyzer) { a.upsampleOpts = append(a.upsampleOpts, opts...) }
}

// WithPlotPoints sets the plot resolution; 0 disables plot extraction.
func WithPlotPoints(n int) Option {
	if n < 0 {
		panic(panicPlotPoints)
	}
	return func(a *Analyzer) { a.plotPoints = n }
}

// WithParallelism bounds the number of concurrent jobs in RunBatch.
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(panicParallelism)
	}
	return func(a *Analyzer) { a.parallelism = n }
}

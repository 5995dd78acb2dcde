// SPDX-License-Identifier: MIT

// Package lfunc: functional configuration for Context construction.
//
// Design goals:
//   - Deterministic behavior: no global state, every default documented here.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); data-dependent validation happens in New.
package lfunc

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkingPrec is the ball working precision in bits.
	DefaultWorkingPrec = 300

	// DefaultTargetPrec is op_acc: zeros are isolated to ±2^-(op_acc+1).
	// It stays well above the error bound of the default float64
	// interpolator, so zeros found through it can be confirmed.
	DefaultTargetPrec = 32

	// DefaultMaxDerivative is MAX_L, the highest derivative order tried
	// when determining the rank.
	DefaultMaxDerivative = 10

	// DefaultMaxZeros is the capacity of each side's zero list.
	DefaultMaxZeros = 256

	// DefaultRankStride is the sample stride used by the rank sum.
	DefaultRankStride = 1

	// DefaultOutputRatio: zeros are isolated for n < FFTNN/OutputRatio.
	DefaultOutputRatio = 8

	// DefaultTuringRatio: the Turing zone spans a further FFTNN/TuringRatio samples.
	DefaultTuringRatio = 16
)

const (
	panicPrecInvalid  = "lfunc: precision must be > 0"
	panicCountInvalid = "lfunc: count must be > 0"
	panicRatioInvalid = "lfunc: ratio must be > 0"
	panicErrInvalid   = "lfunc: WithUpsamplingError: error must be finite, non-negative"
	panicNilLogger    = "lfunc: WithLogger: nil logger"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workingPrec     uint
	targetPrec      uint
	maxDerivative   int
	maxZeros        int
	rankTerms       int // 0 ⇒ sampleBound / rankStride
	rankStride      int
	outputRatio     int
	turingRatio     int
	sampleBound     int // 0 ⇒ FFTNN / 2
	declared        Rank
	selfDual        bool
	epsilon         complex128
	upsamplingError float64
	logger          *zap.Logger
}

func defaultOptions() Options {
	return Options{
		workingPrec:   DefaultWorkingPrec,
		targetPrec:    DefaultTargetPrec,
		maxDerivative: DefaultMaxDerivative,
		maxZeros:      DefaultMaxZeros,
		rankStride:    DefaultRankStride,
		outputRatio:   DefaultOutputRatio,
		turingRatio:   DefaultTuringRatio,
		declared:      UnknownRank(),
		epsilon:       1,
		logger:        zap.NewNop(),
	}
}

func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWorkingPrec sets the ball working precision (bits).
func WithWorkingPrec(bits uint) Option {
	if bits == 0 {
		panic(panicPrecInvalid)
	}
	return func(o *Options) { o.workingPrec = bits }
}

// WithTargetPrec sets op_acc, the output precision of isolated zeros (bits).
func WithTargetPrec(bits uint) Option {
	if bits == 0 {
		panic(panicPrecInvalid)
	}
	return func(o *Options) { o.targetPrec = bits }
}

// WithMaxDerivative sets MAX_L.
func WithMaxDerivative(k int) Option {
	if k <= 0 {
		panic(panicCountInvalid)
	}
	return func(o *Options) { o.maxDerivative = k }
}

// WithMaxZeros sets the per-side zero list capacity.
func WithMaxZeros(n int) Option {
	if n <= 0 {
		panic(panicCountInvalid)
	}
	return func(o *Options) { o.maxZeros = n }
}

// WithRankTerms sets the number of terms n = 1..N in the rank sum.
func WithRankTerms(n int) Option {
	if n <= 0 {
		panic(panicCountInvalid)
	}
	return func(o *Options) { o.rankTerms = n }
}

// WithRankStride sets the sample stride of the rank sum.
func WithRankStride(s int) Option {
	if s <= 0 {
		panic(panicCountInvalid)
	}
	return func(o *Options) { o.rankStride = s }
}

// WithRatios sets OUTPUT_RATIO and TURING_RATIO.
func WithRatios(output, turing int) Option {
	if output <= 0 || turing <= 0 {
		panic(panicRatioInvalid)
	}
	return func(o *Options) {
		o.outputRatio = output
		o.turingRatio = turing
	}
}

// WithSampleBound sets M, the sample arrays cover n in [-M, M].
func WithSampleBound(m int) Option {
	if m <= 0 {
		panic(panicCountInvalid)
	}
	return func(o *Options) { o.sampleBound = m }
}

// WithDeclaredRank records an externally known rank.
func WithDeclaredRank(r Rank) Option {
	return func(o *Options) { o.declared = r }
}

// WithSelfDual marks the L-function as self-dual; the dual side is then
// not analysed separately.
func WithSelfDual(selfDual bool) Option {
	return func(o *Options) { o.selfDual = selfDual }
}

// WithEpsilon records the root number supplied by the ingestion stage.
func WithEpsilon(eps complex128) Option {
	return func(o *Options) { o.epsilon = eps }
}

// WithUpsamplingError sets the rigorous truncation error folded into every
// rank-sum derivative.
func WithUpsamplingError(err float64) Option {
	if err < 0 || math.IsNaN(err) || math.IsInf(err, 0) {
		panic(panicErrInvalid)
	}
	return func(o *Options) { o.upsamplingError = err }
}

// WithLogger sets the logger used by the engines operating on the context.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

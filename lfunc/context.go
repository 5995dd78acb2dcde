// SPDX-License-Identifier: MIT

package lfunc

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/ball"
)

// Params is the functional-equation data that defines an instance.
type Params struct {
	Degree int       // number of local roots per Euler factor (d)
	Mus    []float64 // spectral shifts
	A      float64   // samples sit at n/A
	H      float64   // Gaussian width of the rank sum
	FFTNN  int       // size of the sample grid (fft_NN)
}

// side is the per-side state: read-only samples and the engine-owned zeros.
type side struct {
	samples *SampleArray
	zeros   *ZeroList
}

// Context is one L-function instance.
//
// Everything except the rank, the leading term and the zero lists is fixed
// by New. The engines write only those mutation points, and each side's
// zero list is touched only by the engine scanning that side.
type Context struct {
	params Params
	opts   Options

	pi, oneOverA, piA, piByH2 ball.Ball
	zeroPrec, upsamplingError ball.Ball
	rankTerms, sampleBound    int

	rank        Rank
	leadingTerm ball.Ball
	sides       [2]side
}

// New validates p, derives the ball constants at the working precision and
// allocates unresolved sample arrays and empty zero lists for both sides.
//
// Errors:
//   - ErrBadParams     — Degree, A, H or FFTNN not positive / not finite.
//   - ErrRankSumRange  — RankTerms·RankStride exceeds the sample bound.
func New(p Params, opts ...Option) (*Context, error) {
	// Stage 1: validate the defining data.
	if p.Degree <= 0 || p.FFTNN <= 0 || !positiveFinite(p.A) || !positiveFinite(p.H) {
		return nil, fmt.Errorf("degree=%d A=%g H=%g fft_NN=%d: %w", p.Degree, p.A, p.H, p.FFTNN, ErrBadParams)
	}
	o := gatherOptions(opts)

	bound := o.sampleBound
	if bound == 0 {
		bound = p.FFTNN / 2
	}
	terms := o.rankTerms
	if terms == 0 {
		terms = bound / o.rankStride
	}
	if terms*o.rankStride > bound {
		return nil, fmt.Errorf("%d terms × stride %d > bound %d: %w", terms, o.rankStride, bound, ErrRankSumRange)
	}

	// Stage 2: constants at the working precision.
	wp := o.workingPrec
	pi := ball.Pi(wp)
	a := ball.FromFloat64(p.A)
	h := ball.FromFloat64(p.H)

	L := &Context{
		params:          p,
		opts:            o,
		pi:              pi,
		oneOverA:        ball.Inv(a, wp),
		piA:             ball.Mul(pi, a, wp),
		piByH2:          ball.Neg(ball.Div(pi, ball.Sqr(h, wp), wp)),
		zeroPrec:        ball.Mul2Exp(ball.One(), -int(o.targetPrec)-1),
		upsamplingError: ball.FromFloat64(o.upsamplingError),
		rankTerms:       terms,
		sampleBound:     bound,
		rank:            o.declared,
	}
	L.params.Mus = append([]float64(nil), p.Mus...)

	// Stage 3: per-side storage.
	for i := range L.sides {
		L.sides[i] = side{samples: NewSampleArray(bound), zeros: NewZeroList(o.maxZeros)}
	}
	return L, nil
}

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x) }

// Degree returns d.
func (L *Context) Degree() int { return L.params.Degree }

// Mus returns a copy of the spectral shifts.
func (L *Context) Mus() []float64 { return append([]float64(nil), L.params.Mus...) }

// A returns the sample density.
func (L *Context) A() float64 { return L.params.A }

// H returns the Gaussian width of the rank sum.
func (L *Context) H() float64 { return L.params.H }

// FFTNN returns the sample grid size.
func (L *Context) FFTNN() int { return L.params.FFTNN }

// Pi returns π at the working precision.
func (L *Context) Pi() ball.Ball { return L.pi }

// OneOverA returns 1/A.
func (L *Context) OneOverA() ball.Ball { return L.oneOverA }

// PiA returns π·A.
func (L *Context) PiA() ball.Ball { return L.piA }

// PiByH2 returns −π/H².
func (L *Context) PiByH2() ball.Ball { return L.piByH2 }

// UpsamplingError returns the error folded into rank-sum derivatives.
func (L *Context) UpsamplingError() ball.Ball { return L.upsamplingError }

// WorkingPrec returns the working precision in bits.
func (L *Context) WorkingPrec() uint { return L.opts.workingPrec }

// TargetPrec returns op_acc in bits.
func (L *Context) TargetPrec() uint { return L.opts.targetPrec }

// ZeroPrec returns δ = 2^-(op_acc+1), the confirmation half-width.
func (L *Context) ZeroPrec() ball.Ball { return L.zeroPrec }

// MaxDerivative returns MAX_L.
func (L *Context) MaxDerivative() int { return L.opts.maxDerivative }

// MaxZeros returns the per-side zero list capacity.
func (L *Context) MaxZeros() int { return L.opts.maxZeros }

// RankTerms returns N, the number of terms of the rank sum.
func (L *Context) RankTerms() int { return L.rankTerms }

// RankStride returns the sample stride of the rank sum.
func (L *Context) RankStride() int { return L.opts.rankStride }

// SampleBound returns M.
func (L *Context) SampleBound() int { return L.sampleBound }

// OutputRatio returns OUTPUT_RATIO.
func (L *Context) OutputRatio() int { return L.opts.outputRatio }

// TuringRatio returns TURING_RATIO.
func (L *Context) TuringRatio() int { return L.opts.turingRatio }

// FineBound returns FFTNN/OutputRatio: zeros below it are isolated.
func (L *Context) FineBound() int { return L.params.FFTNN / L.opts.outputRatio }

// ScanBound returns the last index examined by the zero scan.
func (L *Context) ScanBound() int {
	return L.FineBound() + L.params.FFTNN/L.opts.turingRatio
}

// SelfDual reports whether the dual side equals the primal one.
func (L *Context) SelfDual() bool { return L.opts.selfDual }

// Epsilon returns the root number recorded at ingestion.
func (L *Context) Epsilon() complex128 { return L.opts.epsilon }

// Logger returns the logger engines should use for this instance.
func (L *Context) Logger() *zap.Logger { return L.opts.logger }

// DeclaredRank returns the rank supplied at construction.
func (L *Context) DeclaredRank() Rank { return L.opts.declared }

// Rank returns the current rank: the declared one until the rank engine
// records a computed value.
func (L *Context) Rank() Rank { return L.rank }

// SetRank records a computed rank.
func (L *Context) SetRank(r Rank) { L.rank = r }

// LeadingTerm returns Λ^(r)(1/2) as last stored by the rank engine.
func (L *Context) LeadingTerm() ball.Ball { return L.leadingTerm }

// SetLeadingTerm stores the leading Taylor coefficient.
func (L *Context) SetLeadingTerm(v ball.Ball) { L.leadingTerm = v }

// Samples returns the sample array of s. It panics on an invalid side.
func (L *Context) Samples(s Side) *SampleArray { return L.sides[mustSide(s)].samples }

// Zeros returns the zero list of s. It panics on an invalid side.
func (L *Context) Zeros(s Side) *ZeroList { return L.sides[mustSide(s)].zeros }

func mustSide(s Side) Side {
	if !s.Valid() {
		panic(ErrBadSide)
	}
	return s
}

// Ordinate returns n/A at the working precision.
func (L *Context) Ordinate(n int) ball.Ball {
	return ball.MulInt(L.oneOverA, int64(n), L.opts.workingPrec)
}

// ScaleFactor returns exp(π·d·|t|/4), the factor mapping stored samples to
// provider scale. It is even in t, so F(t) and F(−t) decay alike.
func (L *Context) ScaleFactor(t ball.Ball) ball.Ball {
	wp := L.opts.workingPrec
	x := ball.Mul(ball.MulInt(ball.Abs(t), int64(L.params.Degree), wp), L.pi, wp)
	return ball.Exp(ball.Mul2Exp(x, -2), wp)
}

// Rescaled returns the sample at n on side s, mapped to provider scale.
func (L *Context) Rescaled(s Side, n int) ball.Ball {
	return ball.Mul(L.Samples(s).At(n), L.ScaleFactor(L.Ordinate(n)), L.opts.workingPrec)
}

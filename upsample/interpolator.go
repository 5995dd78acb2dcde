// SPDX-License-Identifier: MIT

package upsample

import (
	"math"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// Interpolator is a Provider over the sample arrays of one context.
// Rescaled samples are memoised on first use, so an Interpolator must not
// be shared between goroutines.
type Interpolator struct {
	L         *lfunc.Context
	halfWidth int
	sigma     float64
	errBound  float64

	scaled [2][]ball.Ball
	cached [2][]bool
}

// New returns an Interpolator over L's samples.
func New(L *lfunc.Context, opts ...Option) *Interpolator {
	u := &Interpolator{
		L:         L,
		halfWidth: DefaultHalfWidth,
		sigma:     DefaultSigma,
		errBound:  DefaultErrorBound,
	}
	for _, opt := range opts {
		opt(u)
	}
	size := 2*L.SampleBound() + 1
	for i := range u.scaled {
		u.scaled[i] = make([]ball.Ball, size)
		u.cached[i] = make([]bool, size)
	}
	return u
}

var _ lfunc.Provider = (*Interpolator)(nil)

// Evaluate implements lfunc.Provider.
func (u *Interpolator) Evaluate(t ball.Ball, side lfunc.Side, prec uint) (ball.Ball, bool) {
	if !t.IsFinite() || !side.Valid() {
		return ball.Entire(), false
	}
	A := u.L.A()
	x := t.Float64() * A
	k0 := int(math.Round(x))
	samples := u.L.Samples(side)

	var (
		sum    = ball.Zero()
		absSum float64
		twoSS  = 2 * u.sigma * u.sigma
	)
	for k := k0 - u.halfWidth; k <= k0+u.halfWidth; k++ {
		if !samples.Resolved(k) {
			return ball.Entire(), false
		}
		v := u.rescaled(side, k)
		d := x - float64(k)
		w := sinc(d) * math.Exp(-d*d/twoSS)
		sum = ball.Add(sum, ball.Mul(v, ball.FromFloat64(w), prec), prec)
		absSum += math.Abs(v.Float64()) + v.RadFloat64()
	}

	// Slope of the kernel is below π + K/σ²; dx covers the uncertainty of
	// t and the rounding of x to float64.
	dx := t.RadFloat64()*A + math.Abs(x)*0x1p-52
	slope := math.Pi + float64(u.halfWidth)/(u.sigma*u.sigma)
	rad := u.errBound + absSum*(1e-15+dx*slope)

	return ball.AddError(sum, ball.FromFloat64(rad)), true
}

func (u *Interpolator) rescaled(side lfunc.Side, k int) ball.Ball {
	i := k + u.L.SampleBound()
	if !u.cached[side][i] {
		u.scaled[side][i] = u.L.Rescaled(side, k)
		u.cached[side][i] = true
	}
	return u.scaled[side][i]
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// SPDX-License-Identifier: MIT

package analysis

import (
	"math"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// PlotPoint is one (t, Λ(t)) pair. Value is NaN where the provider could
// not resolve Λ.
type PlotPoint struct {
	T     float64
	Value float64
}

// PlotPoints samples Λ on side s at n equally spaced ordinates covering
// [0, FineBound/A], the region where zeros are isolated. n < 1 yields nil;
// n = 1 yields the centre only.
func PlotPoints(L *lfunc.Context, p lfunc.Provider, s lfunc.Side, n int) []PlotPoint {
	if n < 1 {
		return nil
	}
	tMax := float64(L.FineBound()) / L.A()
	out := make([]PlotPoint, n)
	for i := range out {
		var t float64
		if n > 1 {
			t = tMax * float64(i) / float64(n-1)
		}
		out[i] = PlotPoint{T: t, Value: math.NaN()}
		if v, ok := p.Evaluate(ball.FromFloat64(t), s, L.WorkingPrec()); ok && v.IsFinite() {
			out[i].Value = v.Float64()
		}
	}
	return out
}

// SPDX-License-Identifier: MIT

package zeros

import (
	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// StationaryPoint splits a suspected close pair of zeros around sample m.
//
// The scan calls it when F turns back towards zero between samples m−1,
// m and m+1 without changing sign. Working on [t0, t1, t2] =
// [(m−1)/A, m/A, (m+1)/A] it repeatedly
//   - evaluates the left midpoint t01: a sign change splits the pair there;
//     otherwise, if the direction turns inside [t0, t1], it zooms into
//     [t0, t01, t1];
//   - evaluates the right midpoint t12 in the same way, zooming into
//     [t1, t12, t2] on a turn;
//   - otherwise keeps [t01, t1, t12].
//
// Once the pair is split each zero is isolated, snapped and confirmed when
// isolate is true; when it is false only the two brackets are returned.
//
// Status:
//   - DblZero    — a sign or direction became indeterminate before the
//     split: a double zero or a pair closer than the working precision.
//   - StatPoint  — an evaluation failed, or a snapped zero of the pair
//     failed confirmation.
//   - ZeroPrec   — a zero of the pair was only bracketed.
func StationaryPoint(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, m int, isolate bool) (z1, z2 ball.Ball, st lfunc.Status) {
	prec := L.WorkingPrec()
	t0, t1, t2 := L.Ordinate(m-1), L.Ordinate(m), L.Ordinate(m+1)
	f0, f1, f2 := L.Rescaled(side, m-1), L.Rescaled(side, m), L.Rescaled(side, m+1)
	s := SignOf(f0)
	if s == Unknown {
		return z1, z2, lfunc.DblZero
	}

	// Each pass at least halves the bracket; past the working precision
	// the bracket can no longer shrink.
	for iter := 0; iter < int(prec); iter++ {
		t01 := midpoint(t0, t1, prec)
		f01, ok := evaluate(L, p, side, t01)
		if !ok {
			return z1, z2, lfunc.StatPoint
		}
		s01 := SignOf(f01)
		if s01 == Unknown {
			return z1, z2, lfunc.DblZero
		}
		if s01 != s {
			return splitPair(L, p, side, t0, t01, t1, s, isolate)
		}
		left, right := DirectionOf(f0, f01, prec), DirectionOf(f01, f1, prec)
		if left == Indeterminate || right == Indeterminate {
			return z1, z2, lfunc.DblZero
		}
		if left != right {
			t2, f2 = t1, f1
			t1, f1 = t01, f01
			continue
		}

		t12 := midpoint(t1, t2, prec)
		f12, ok := evaluate(L, p, side, t12)
		if !ok {
			return z1, z2, lfunc.StatPoint
		}
		s12 := SignOf(f12)
		if s12 == Unknown {
			return z1, z2, lfunc.DblZero
		}
		if s12 != s {
			return splitPair(L, p, side, t1, t12, t2, s, isolate)
		}
		left, right = DirectionOf(f1, f12, prec), DirectionOf(f12, f2, prec)
		if left == Indeterminate || right == Indeterminate {
			return z1, z2, lfunc.DblZero
		}
		if left != right {
			t0, f0 = t1, f1
			t1, f1 = t12, f12
			continue
		}
		t0, f0 = t01, f01
		t2, f2 = t12, f12
	}
	return z1, z2, lfunc.DblZero
}

// splitPair handles a pair separated at tb: one zero in [ta, tb], where the
// sign leaves s, and one in [tb, tc], where it returns to s.
func splitPair(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, ta, tb, tc ball.Ball, s Sign, isolate bool) (z1, z2 ball.Ball, st lfunc.Status) {
	if !isolate {
		return ball.Union(ta, tb), ball.Union(tb, tc), lfunc.Success
	}
	opposite := Positive
	if s == Positive {
		opposite = Negative
	}

	z1, st1 := certify(L, p, side, ta, tb, s)
	st |= st1
	if st.Has(lfunc.StatPoint) {
		return z1, z2, st
	}
	z2, st2 := certify(L, p, side, tb, tc, opposite)
	return z1, z2, st | st2
}

// certify isolates, snaps and confirms the zero in [t0, t1]; s0 is the
// sign at t0. A zero that is only bracketed yields ZeroPrec, one that
// fails confirmation yields StatPoint.
func certify(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, t0, t1 ball.Ball, s0 Sign) (ball.Ball, lfunc.Status) {
	r, ok := Isolate(L, p, side, t0, t1, s0)
	if !ok {
		return r, lfunc.ZeroPrec
	}
	x := Snap(r, L.TargetPrec(), L.WorkingPrec())
	if !Confirm(L, p, side, x) {
		return x, lfunc.StatPoint
	}
	return ball.AddError2Exp(x, -int(L.TargetPrec())-1), lfunc.Success
}

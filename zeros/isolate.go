// SPDX-License-Identifier: MIT

package zeros

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// evaluate asks p for Λ(t) on side at the working precision of L.
// A failed evaluation reads as the whole real line.
func evaluate(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, t ball.Ball) (ball.Ball, bool) {
	v, ok := p.Evaluate(t, side, L.WorkingPrec())
	if !ok {
		return ball.Entire(), false
	}
	return v, true
}

// midpoint returns (a+b)/2.
func midpoint(a, b ball.Ball, prec uint) ball.Ball {
	return ball.Mul2Exp(ball.Add(a, b, prec), -1)
}

// Isolate narrows a sign-change bracket [t0, t1] by binary chop. s0 is the
// sign of Λ at t0.
//
// The chop stops once (t1 − t0)·2^(op_acc+2) − 1 is certainly negative,
// i.e. the bracket is narrower than 2^-(op_acc+2), and returns its
// midpoint. The comparison is done on the scaled ball rather than on a
// rounded difference so rounding can never end the chop early.
//
// When the provider cannot resolve the sign at a midpoint, Isolate returns
// the current bracket [t0, t1] and false: the result still encloses the
// zero but is not at target precision.
func Isolate(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, t0, t1 ball.Ball, s0 Sign) (ball.Ball, bool) {
	prec := L.WorkingPrec()
	shift := int(L.TargetPrec()) + 2
	log := L.Logger()

	for iter := 0; ; iter++ {
		mid := midpoint(t0, t1, prec)
		w := ball.Mul2Exp(ball.Sub(t1, t0, prec), shift)
		if ball.Sub(w, ball.One(), prec).IsNegative() {
			return mid, true
		}

		f, _ := evaluate(L, p, side, mid)
		s := SignOf(f)
		if s == Unknown {
			log.Debug("indeterminate sign in binary chop", zap.Int("iter", iter), zap.Stringer("t", mid))
			return ball.Union(t0, t1), false
		}
		if s != s0 {
			t1 = mid
		} else {
			t0 = mid
		}
	}
}

// Snap rounds ρ to the exact ball N·2^-opAcc, N the integer nearest to
// the midpoint of ρ·2^opAcc. A non-finite ρ is returned unchanged.
func Snap(rho ball.Ball, opAcc, prec uint) ball.Ball {
	if !rho.IsFinite() {
		return rho
	}
	scaled := ball.Mul2Exp(rho, int(opAcc))
	n := roundNearest(scaled.Mid(prec))
	return ball.Mul2Exp(ball.FromBigInt(n, prec+uint(n.BitLen())), -int(opAcc))
}

// roundNearest rounds x to the nearest integer, ties away from zero.
func roundNearest(x *big.Float) *big.Int {
	n, _ := x.Int(nil) // truncates toward zero
	frac := new(big.Float).SetPrec(x.Prec()).Sub(x, new(big.Float).SetInt(n))

	half := big.NewFloat(0.5)
	switch {
	case frac.Cmp(half) >= 0:
		n.Add(n, big.NewInt(1))
	case frac.Cmp(new(big.Float).Neg(half)) <= 0:
		n.Sub(n, big.NewInt(1))
	}
	return n
}

// Confirm certifies that a zero lies within δ = ZeroPrec of the exact
// point x: Λ(x − δ) and Λ(x + δ) must have strictly opposite signs.
//
// When x − δ falls left of the centre the left value is read from the
// other side at δ − x, reflecting through the functional equation.
// Any failed or indeterminate evaluation fails the confirmation.
func Confirm(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, x ball.Ball) bool {
	prec := L.WorkingPrec()
	delta := L.ZeroPrec()

	var (
		left ball.Ball
		ok   bool
	)
	if t := ball.Sub(x, delta, prec); t.IsNegative() {
		left, ok = evaluate(L, p, side.Other(), ball.Neg(t))
	} else {
		left, ok = evaluate(L, p, side, t)
	}
	if !ok {
		return false
	}
	right, ok := evaluate(L, p, side, ball.Add(x, delta, prec))
	if !ok {
		return false
	}
	if SignOf(left)&SignOf(right) == 0 {
		return true
	}
	L.Logger().Debug("confirmation failed",
		zap.Stringer("x", x),
		zap.Stringer("left", left),
		zap.Stringer("right", right))
	return false
}

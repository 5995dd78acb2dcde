// SPDX-License-Identifier: MIT

package zeros

import (
	"math/big"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// DefaultMaxNewtonIter bounds the Newton refinement of one zero.
const DefaultMaxNewtonIter = 32

// Newton refines a zero inside the bracket [t0, t1] starting from its
// midpoint, working on midpoints only: the result is a candidate that
// Snap and Confirm must still certify.
//
// The derivative is the central difference (Λ(t+h) − Λ(t−h))/(2h) with
// h = 2^-(op_acc/2+4). Newton has converged once a step is shorter than
// 2^-(op_acc+2). It fails when the provider cannot evaluate, when the
// derivative estimate vanishes, when an iterate leaves the bracket, or
// after maxIter steps.
func Newton(L *lfunc.Context, p lfunc.Provider, side lfunc.Side, t0, t1 ball.Ball, maxIter int) (ball.Ball, bool) {
	prec := L.WorkingPrec()
	opAcc := int(L.TargetPrec())
	hExp := opAcc/2 + 4
	h := ball.Mul2Exp(ball.One(), -hExp)
	tol := new(big.Float).SetMantExp(big.NewFloat(1), -(opAcc + 2))
	lo, hi := t0.Lo(), t1.Hi()

	t := midpoint(t0, t1, prec).Mid(prec)
	for i := 0; i < maxIter; i++ {
		x := ball.FromBig(t)
		f, ok := evaluate(L, p, side, x)
		if !ok || !f.IsFinite() {
			return ball.Ball{}, false
		}
		fl, okl := evaluate(L, p, side, ball.Sub(x, h, prec))
		fr, okr := evaluate(L, p, side, ball.Add(x, h, prec))
		if !okl || !okr {
			return ball.Ball{}, false
		}
		// (fr − fl)·2^hExp / 2
		df := ball.Mul2Exp(ball.Sub(fr, fl, prec), hExp-1).Mid(prec)
		if df.Sign() == 0 || df.IsInf() {
			return ball.Ball{}, false
		}

		step := new(big.Float).SetPrec(prec).Quo(f.Mid(prec), df)
		t = new(big.Float).SetPrec(prec).Sub(t, step)
		if t.Cmp(lo) < 0 || t.Cmp(hi) > 0 {
			return ball.Ball{}, false
		}
		if step.Abs(step).Cmp(tol) < 0 {
			return ball.FromBig(t), true
		}
	}
	return ball.Ball{}, false
}

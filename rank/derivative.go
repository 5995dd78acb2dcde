// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// ExpTerm returns exp(π·d·n/(4A) − π·n²/(A²H²)) at prec bits.
func ExpTerm(L *lfunc.Context, n int64, prec uint) ball.Ball {
	t := ball.MulInt(L.OneOverA(), n, prec)
	// −π n²/(A²H²)
	gauss := ball.Mul(ball.Sqr(t, prec), L.PiByH2(), prec)
	// π d n/(4A)
	lin := ball.Mul2Exp(ball.Mul(ball.MulInt(t, int64(L.Degree()), prec), L.Pi(), prec), -2)

	return ball.Exp(ball.Add(lin, gauss, prec), prec)
}

// CentralDerivative returns Λ^(k)(1/2), assuming Λ^(j)(1/2) = 0 for j < k.
//
// Implementation:
//   - k = 0 is the central sample itself.
//   - For k ≥ 1 the asymptotic sum of the package documentation runs over
//     n = 1..RankTerms, reading samples at ±n·RankStride.
//   - The inner alternating sum starts with + for odd n and − for even n.
//   - The context's upsampling error is added last.
//
// Errors:
//   - ErrDerivativeOrder — k > MAX_L.
func (e *Engine) CentralDerivative(k int, prec uint) (ball.Ball, error) {
	L := e.L
	if k < 0 || k > L.MaxDerivative() {
		return ball.Ball{}, fmt.Errorf("k=%d, max=%d: %w", k, L.MaxDerivative(), ErrDerivativeOrder)
	}
	samples := L.Samples(lfunc.Primal)
	if k == 0 {
		return samples.At(0), nil
	}
	e.cache.refresh(L, prec)

	var (
		res    = ball.Zero()
		stride = L.RankStride()
		nPow   = new(big.Int)
		bigN   = new(big.Int)
	)
	for n := 1; n <= L.RankTerms(); n++ {
		bigN.SetInt64(int64(n))
		term := ball.Zero()
		negate := n&1 == 0
		for D := k; D > 0; D -= 2 {
			nPow.Exp(bigN, big.NewInt(int64(D)), nil)
			w := ball.Div(e.cache.factOverPi[D], ball.FromBigInt(nPow, prec), prec) // D!/(πn)^D
			if negate {
				term = ball.Sub(term, w, prec)
			} else {
				term = ball.Add(term, w, prec)
			}
			negate = !negate
		}
		term = ball.Mul(term, e.cache.piAPow[k], prec)

		m := n * stride
		weight := ball.Mul(term, ExpTerm(L, int64(m), prec), prec)

		res = ball.Add(res, ball.Mul(samples.At(m), weight, prec), prec)
		mirror := ball.Mul(samples.At(-m), weight, prec)
		if k&1 == 1 {
			mirror = ball.Neg(mirror)
		}
		res = ball.Add(res, mirror, prec)
	}

	return ball.AddError(res, L.UpsamplingError()), nil
}

// SPDX-License-Identifier: MIT

package ball

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// guardBits is the extra working precision given to bigfloat before the
// result is widened outward by 2^-(prec+guardBits/2) relative.
const guardBits = 32

// Exp returns exp(a) at prec bits.
//
// exp is increasing, so the enclosure is [exp(lo)↓, exp(hi)↑]. bigfloat.Exp
// is accurate to a few ulps of its working precision but carries no rounding
// direction, so each endpoint is evaluated with guardBits of headroom and
// then pushed outward by a relative margin far larger than that error.
func Exp(a Ball, prec uint) Ball {
	if !a.IsFinite() {
		return Ball{lo: new(big.Float), hi: new(big.Float).SetInf(false)}
	}
	lo, hi := a.bounds()
	wp := prec + guardBits

	elo := bigfloat.Exp(new(big.Float).SetPrec(wp).Set(lo))
	ehi := elo
	if lo.Cmp(hi) != 0 {
		ehi = bigfloat.Exp(new(big.Float).SetPrec(wp).Set(hi))
	}

	shrink := new(big.Float).SetPrec(wp).SetMantExp(big.NewFloat(1), -int(prec+guardBits/2))
	oneMinus := down(wp).Sub(big.NewFloat(1), shrink)
	onePlus := up(wp).Add(big.NewFloat(1), shrink)

	return Ball{
		lo: down(prec).Mul(elo, oneMinus),
		hi: up(prec).Mul(ehi, onePlus),
	}
}

// Pi returns an enclosure of π at prec bits.
//
// Machin's formula π = 16·atan(1/5) − 4·atan(1/239) is summed with ball
// arithmetic; each arctangent series is alternating with decreasing terms,
// so its tail is bounded by the first omitted term.
func Pi(prec uint) Ball {
	wp := prec + 16
	a5 := atanInv(5, wp)
	a239 := atanInv(239, wp)
	pi := Sub(MulInt(a5, 16, wp), MulInt(a239, 4, wp), wp)

	lo, hi := pi.bounds()
	return Ball{lo: down(prec).Set(lo), hi: up(prec).Set(hi)}
}

// atanInv returns atan(1/k) for integer k ≥ 2 at prec bits.
func atanInv(k int64, prec uint) Ball {
	var (
		sum   = Zero()
		kk    = big.NewInt(k * k)
		pow   = big.NewInt(k) // k^(2j+1)
		limit = new(big.Int).Lsh(big.NewInt(1), prec+8)
		den   = new(big.Int)
		j     int64
	)
	for ; ; j++ {
		den.Mul(pow, big.NewInt(2*j+1))
		term := Inv(FromBigInt(den, prec), prec)
		if pow.Cmp(limit) > 0 {
			// first omitted term bounds the tail
			return AddError(sum, term)
		}
		if j&1 == 0 {
			sum = Add(sum, term, prec)
		} else {
			sum = Sub(sum, term, prec)
		}
		pow.Mul(pow, kk)
	}
}

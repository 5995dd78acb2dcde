// SPDX-License-Identifier: MIT

package ball

import "math/big"

// Add returns a + b at prec bits.
func Add(a, b Ball, prec uint) Ball {
	if !a.IsFinite() || !b.IsFinite() {
		return Entire()
	}
	alo, ahi := a.bounds()
	blo, bhi := b.bounds()
	return Ball{lo: down(prec).Add(alo, blo), hi: up(prec).Add(ahi, bhi)}
}

// Sub returns a − b at prec bits.
func Sub(a, b Ball, prec uint) Ball {
	if !a.IsFinite() || !b.IsFinite() {
		return Entire()
	}
	alo, ahi := a.bounds()
	blo, bhi := b.bounds()
	return Ball{lo: down(prec).Sub(alo, bhi), hi: up(prec).Sub(ahi, blo)}
}

// Neg returns −a exactly.
func Neg(a Ball) Ball {
	lo, hi := a.bounds()
	return Ball{lo: new(big.Float).Neg(hi), hi: new(big.Float).Neg(lo)}
}

// Abs returns |a|.
func Abs(a Ball) Ball {
	switch {
	case a.IsPositive():
		return a
	case a.IsNegative():
		return Neg(a)
	}
	lo, hi := a.bounds()
	m := new(big.Float).Abs(lo)
	if hi.Cmp(m) > 0 {
		m = new(big.Float).Copy(hi)
	}
	return Ball{lo: new(big.Float), hi: m}
}

// Mul returns a·b at prec bits.
//
// Implementation:
//   - Stage 1: non-finite operands short-circuit to Entire().
//   - Stage 2: the four endpoint products are formed twice, rounded down
//     and up; the minimum of the former and the maximum of the latter bound
//     the product interval.
func Mul(a, b Ball, prec uint) Ball {
	if !a.IsFinite() || !b.IsFinite() {
		return Entire()
	}
	alo, ahi := a.bounds()
	blo, bhi := b.bounds()
	pairs := [4][2]*big.Float{{alo, blo}, {alo, bhi}, {ahi, blo}, {ahi, bhi}}

	var lo, hi *big.Float
	for _, p := range pairs {
		l := down(prec).Mul(p[0], p[1])
		h := up(prec).Mul(p[0], p[1])
		if lo == nil || l.Cmp(lo) < 0 {
			lo = l
		}
		if hi == nil || h.Cmp(hi) > 0 {
			hi = h
		}
	}
	return Ball{lo: lo, hi: hi}
}

// Div returns a/b at prec bits. A divisor that contains zero yields Entire().
func Div(a, b Ball, prec uint) Ball {
	if !a.IsFinite() || !b.IsFinite() || b.ContainsZero() {
		return Entire()
	}
	alo, ahi := a.bounds()
	blo, bhi := b.bounds()
	pairs := [4][2]*big.Float{{alo, blo}, {alo, bhi}, {ahi, blo}, {ahi, bhi}}

	var lo, hi *big.Float
	for _, p := range pairs {
		l := down(prec).Quo(p[0], p[1])
		h := up(prec).Quo(p[0], p[1])
		if lo == nil || l.Cmp(lo) < 0 {
			lo = l
		}
		if hi == nil || h.Cmp(hi) > 0 {
			hi = h
		}
	}
	return Ball{lo: lo, hi: hi}
}

// Inv returns 1/a at prec bits.
func Inv(a Ball, prec uint) Ball { return Div(One(), a, prec) }

// MulInt returns a·n at prec bits.
func MulInt(a Ball, n int64, prec uint) Ball { return Mul(a, FromInt(n), prec) }

// DivInt returns a/n at prec bits.
func DivInt(a Ball, n int64, prec uint) Ball { return Div(a, FromInt(n), prec) }

// Mul2Exp returns a·2^k exactly.
func Mul2Exp(a Ball, k int) Ball {
	if !a.IsFinite() {
		return Entire()
	}
	lo, hi := a.bounds()
	return Ball{lo: new(big.Float).SetMantExp(lo, k), hi: new(big.Float).SetMantExp(hi, k)}
}

// Sqr returns a² at prec bits; unlike Mul(a, a) it never dips below zero.
func Sqr(a Ball, prec uint) Ball {
	return Mul(Abs(a), Abs(a), prec)
}

// PowUint returns a^e at prec bits by binary powering.
func PowUint(a Ball, e uint, prec uint) Ball {
	res := One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			res = Mul(res, base, prec)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base, prec)
		}
	}
	return res
}

// Union returns the smallest ball containing both a and b.
func Union(a, b Ball) Ball {
	alo, ahi := a.bounds()
	blo, bhi := b.bounds()
	lo, hi := alo, ahi
	if blo.Cmp(lo) < 0 {
		lo = blo
	}
	if bhi.Cmp(hi) > 0 {
		hi = bhi
	}
	return Ball{lo: new(big.Float).Copy(lo), hi: new(big.Float).Copy(hi)}
}

// AddError widens a by an upper bound of |e| on each side.
func AddError(a, e Ball) Ball {
	if !a.IsFinite() || !e.IsFinite() {
		return Entire()
	}
	_, r := Abs(e).bounds()
	lo, hi := a.bounds()
	prec := maxPrec(lo, hi, r)
	return Ball{lo: down(prec).Sub(lo, r), hi: up(prec).Add(hi, r)}
}

// AddError2Exp widens a by 2^k on each side.
func AddError2Exp(a Ball, k int) Ball {
	r := new(big.Float).SetMantExp(big.NewFloat(1), k)
	return AddError(a, FromBig(r))
}

func maxPrec(xs ...*big.Float) uint {
	p := uint(exactPrec)
	for _, x := range xs {
		if x.Prec() > p {
			p = x.Prec()
		}
	}
	return p
}

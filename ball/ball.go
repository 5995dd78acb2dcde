// SPDX-License-Identifier: MIT

package ball

import (
	"math"
	"math/big"
)

// exactPrec is wide enough to hold any float64 or int64 without rounding.
const exactPrec = 64

// Ball is a closed real interval [lo, hi].
//
// The zero value is the exact number 0. Balls are immutable: every
// operation returns a fresh value and never writes into its operands.
type Ball struct {
	lo, hi *big.Float
}

// down returns an empty big.Float that rounds toward −∞ at prec bits.
func down(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToNegativeInf)
}

// up returns an empty big.Float that rounds toward +∞ at prec bits.
func up(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf)
}

// bounds returns the endpoints, mapping the zero value to [0, 0].
func (b Ball) bounds() (lo, hi *big.Float) {
	lo, hi = b.lo, b.hi
	if lo == nil {
		lo = new(big.Float)
	}
	if hi == nil {
		hi = new(big.Float)
	}
	return lo, hi
}

// New builds the ball [lo, hi]. The endpoints are copied. New panics when
// lo > hi or either endpoint is nil (programmer error).
func New(lo, hi *big.Float) Ball {
	if lo == nil || hi == nil {
		panic("ball: New: nil endpoint")
	}
	if lo.Cmp(hi) > 0 {
		panic("ball: New: lo > hi")
	}
	return Ball{lo: new(big.Float).Copy(lo), hi: new(big.Float).Copy(hi)}
}

// Zero returns the exact ball 0.
func Zero() Ball { return FromInt(0) }

// One returns the exact ball 1.
func One() Ball { return FromInt(1) }

// Entire returns the whole real line, used as the "unresolved" marker.
func Entire() Ball {
	return Ball{lo: new(big.Float).SetInf(true), hi: new(big.Float).SetInf(false)}
}

// FromInt returns the exact ball n.
func FromInt(n int64) Ball {
	v := new(big.Float).SetPrec(exactPrec).SetInt64(n)
	return Ball{lo: v, hi: new(big.Float).Copy(v)}
}

// FromBigInt encloses n at prec bits, rounding outward.
func FromBigInt(n *big.Int, prec uint) Ball {
	return Ball{lo: down(prec).SetInt(n), hi: up(prec).SetInt(n)}
}

// FromFloat64 returns the exact ball x. NaN yields Entire().
func FromFloat64(x float64) Ball {
	if math.IsNaN(x) {
		return Entire()
	}
	v := new(big.Float).SetPrec(53).SetFloat64(x)
	return Ball{lo: v, hi: new(big.Float).Copy(v)}
}

// FromMidRad returns [mid − |rad|, mid + |rad|], rounded outward.
func FromMidRad(mid, rad float64) Ball {
	if math.IsNaN(mid) || math.IsNaN(rad) || math.IsInf(rad, 0) {
		return Entire()
	}
	m := new(big.Float).SetFloat64(mid)
	r := new(big.Float).SetFloat64(math.Abs(rad))
	return Ball{
		lo: down(2 * exactPrec).Sub(m, r),
		hi: up(2 * exactPrec).Add(m, r),
	}
}

// FromBig returns the exact ball x (copied).
func FromBig(x *big.Float) Ball {
	return Ball{lo: new(big.Float).Copy(x), hi: new(big.Float).Copy(x)}
}

// Lo returns a copy of the lower endpoint.
func (b Ball) Lo() *big.Float {
	lo, _ := b.bounds()
	return new(big.Float).Copy(lo)
}

// Hi returns a copy of the upper endpoint.
func (b Ball) Hi() *big.Float {
	_, hi := b.bounds()
	return new(big.Float).Copy(hi)
}

// IsFinite reports whether both endpoints are finite.
func (b Ball) IsFinite() bool {
	lo, hi := b.bounds()
	return !lo.IsInf() && !hi.IsInf()
}

// IsExact reports whether the ball is a single point.
func (b Ball) IsExact() bool {
	lo, hi := b.bounds()
	return lo.Cmp(hi) == 0
}

// ContainsZero reports whether 0 ∈ [lo, hi].
func (b Ball) ContainsZero() bool {
	lo, hi := b.bounds()
	return lo.Sign() <= 0 && hi.Sign() >= 0
}

// IsPositive reports whether every element of the ball is > 0.
func (b Ball) IsPositive() bool {
	lo, _ := b.bounds()
	return lo.Sign() > 0
}

// IsNegative reports whether every element of the ball is < 0.
func (b Ball) IsNegative() bool {
	_, hi := b.bounds()
	return hi.Sign() < 0
}

// Contains reports whether x ∈ [lo, hi].
func (b Ball) Contains(x *big.Float) bool {
	lo, hi := b.bounds()
	return lo.Cmp(x) <= 0 && hi.Cmp(x) >= 0
}

// ContainsBall reports whether o ⊆ b.
func (b Ball) ContainsBall(o Ball) bool {
	lo, hi := b.bounds()
	olo, ohi := o.bounds()
	return lo.Cmp(olo) <= 0 && hi.Cmp(ohi) >= 0
}

// Equal reports whether both endpoints coincide exactly.
func (b Ball) Equal(o Ball) bool {
	lo, hi := b.bounds()
	olo, ohi := o.bounds()
	return lo.Cmp(olo) == 0 && hi.Cmp(ohi) == 0
}

// Mid returns the midpoint rounded to nearest at prec bits. The midpoint of
// an unbounded ball is 0 when both ends are infinite, otherwise the finite end.
func (b Ball) Mid(prec uint) *big.Float {
	lo, hi := b.bounds()
	switch {
	case lo.IsInf() && hi.IsInf():
		return new(big.Float).SetPrec(prec)
	case lo.IsInf():
		return new(big.Float).SetPrec(prec).Set(hi)
	case hi.IsInf():
		return new(big.Float).SetPrec(prec).Set(lo)
	}
	m := new(big.Float).SetPrec(prec + 1).Add(lo, hi)
	m.SetMantExp(m, -1)

	return new(big.Float).SetPrec(prec).Set(m)
}

// Rad returns an upper bound for (hi − lo)/2 at prec bits.
func (b Ball) Rad(prec uint) *big.Float {
	w := b.Width(prec)
	return w.SetMantExp(w, -1)
}

// Width returns an upper bound for hi − lo at prec bits.
func (b Ball) Width(prec uint) *big.Float {
	lo, hi := b.bounds()
	if !b.IsFinite() {
		return new(big.Float).SetInf(false)
	}
	return up(prec).Sub(hi, lo)
}

// Float64 returns the midpoint as the nearest float64.
func (b Ball) Float64() float64 {
	f, _ := b.Mid(64).Float64()
	return f
}

// RadFloat64 returns an upper bound of the radius as a float64.
func (b Ball) RadFloat64() float64 {
	r := b.Rad(64)
	f, acc := r.Float64()
	if acc == big.Below {
		f = math.Nextafter(f, math.Inf(1))
	}
	return f
}

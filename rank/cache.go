// SPDX-License-Identifier: MIT

package rank

import (
	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// Cache memoises the derivative weights for one precision:
// piAPow[k] = (πA/s)^k and factOverPi[k] = k!/π^k for k = 0..MAX_L, where s
// is the rank stride; a stride of s samples at density A/s.
//
// Values computed at a lower precision are never reused at a higher one;
// a request above the cached precision rebuilds every entry.
type Cache struct {
	prec       uint
	piAPow     []ball.Ball
	factOverPi []ball.Ball
}

// Prec returns the precision the cache was last built at (0 when empty).
func (c *Cache) Prec() uint { return c.prec }

// refresh makes the cache valid for prec.
func (c *Cache) refresh(L *lfunc.Context, prec uint) {
	maxL := L.MaxDerivative()
	if prec <= c.prec && len(c.piAPow) == maxL+1 {
		return
	}
	c.prec = prec
	c.piAPow = make([]ball.Ball, maxL+1)
	c.factOverPi = make([]ball.Ball, maxL+1)

	piA := L.PiA()
	if s := L.RankStride(); s > 1 {
		piA = ball.Div(piA, ball.FromInt(int64(s)), prec)
	}
	c.piAPow[0] = ball.One()
	c.factOverPi[0] = ball.One()
	for i := 1; i <= maxL; i++ {
		c.piAPow[i] = ball.Mul(c.piAPow[i-1], piA, prec)
		c.factOverPi[i] = ball.Div(ball.MulInt(c.factOverPi[i-1], int64(i), prec), L.Pi(), prec)
	}
}

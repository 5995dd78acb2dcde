// SPDX-License-Identifier: MIT

package lfunc

import "github.com/katalvlaran/lfun/ball"

// Provider evaluates Λ at an arbitrary real ordinate on one side.
//
// Implementations must be deterministic for fixed inputs and must report
// failure (ok == false) or return a ball containing zero rather than a
// wrong answer when their resolution is insufficient.
type Provider interface {
	Evaluate(t ball.Ball, side Side, prec uint) (v ball.Ball, ok bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(t ball.Ball, side Side, prec uint) (ball.Ball, bool)

// Evaluate calls f.
func (f ProviderFunc) Evaluate(t ball.Ball, side Side, prec uint) (ball.Ball, bool) {
	return f(t, side, prec)
}

// SPDX-License-Identifier: MIT

// Package ball implements real interval ("ball") arithmetic on top of
// math/big.Float with directed rounding.
//
// A Ball is a closed interval [lo, hi] that is guaranteed to enclose the
// true value of every quantity computed from it. Lower bounds are always
// rounded toward −∞ and upper bounds toward +∞, so results stay rigorous at
// any working precision.
//
// ✨ Key properties:
//   - ternary sign semantics: ContainsZero, IsPositive and IsNegative are
//     never all false; a ball that touches zero is "unknown", never guessed.
//   - precision is a per-operation argument (bits), as in arb.
//   - Entire() (the whole real line) is the universal "unresolved" marker;
//     any arithmetic that touches it yields Entire() again.
//   - no package-level mutable state; every operation allocates its result.
//
// ⚙️ Usage:
//
//	x := ball.FromMidRad(1.5, 1e-20)
//	y := ball.Exp(x, 128)
//	if y.IsPositive() { ... }
//
// Transcendental support is limited to what the L-function engines need:
// Exp (via github.com/ALTree/bigfloat with explicit outward widening), Pi
// (Machin's formula with a rigorous alternating-series tail), integer powers
// and inverses.
package ball

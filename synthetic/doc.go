// SPDX-License-Identifier: MIT

// Package synthetic builds L-function contexts from closed-form functions.
//
// A Kind names a real function G(t) standing in for Λ on the critical line.
// Populate fills a context's sample arrays with F(n/A) = G(n/A)·exp(−π·d·|n|/(4A))
// and Provider evaluates G at arbitrary ordinates with an explicit error
// bound, so the rank and zero engines can be exercised end to end without an
// Euler-factor pipeline.
//
// Built-in kinds:
//
//	cos         G(t) = cos t; simple zeros at π/2 + kπ.
//	stationary  G(t) = cos t − 0.99; close pairs of zeros around 2kπ that the
//	            sample grid alone cannot separate at A = 1.
//
// Synthetic functions are not L-functions: only Λ(1/2) (rank 0) and the zero
// scan are meaningful on them, not the higher-derivative rank sum.
package synthetic

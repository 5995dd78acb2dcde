// SPDX-License-Identifier: MIT

// Package rank determines the order of vanishing of Λ at the central point.
//
// The engine walks k = 0, 1, 2, … and computes a ball enclosure of the
// k-th derivative Λ^(k)(1/2), assuming every lower derivative vanishes. The
// first k whose enclosure excludes zero is the analytic rank and the
// enclosure is the leading Taylor coefficient.
//
// Derivatives k ≥ 1 come from an asymptotic sum over the stored samples
// F(±n·s/A), n = 1..N, weighted by
//
//	(πA/s)^k · Σ_{D=k,k−2,…>0} ±D!/(πn)^D · ExpTerm(n·s)
//
// with the side at −n entering with sign (−1)^k, and the context's
// upsampling error added as an explicit radius. ExpTerm(m) is
// exp(π·d·m/(4A) − π·m²/(A²H²)).
//
// Powers (πA/s)^k and D!/π^D are memoised in a Cache owned by the Engine and
// rebuilt from scratch whenever a higher precision is requested.
package rank

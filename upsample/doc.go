// SPDX-License-Identifier: MIT

// Package upsample evaluates Λ between the stored samples.
//
// The Interpolator implements lfunc.Provider with Gaussian-regularised
// Shannon interpolation: for x = A·t,
//
//	Λ(t) ≈ Σ_{|k−x| ≤ K} Λ(k/A) · sinc(x−k) · exp(−(x−k)²/(2σ²))
//
// where Λ(k/A) is the stored sample mapped back to provider scale. The
// truncation error of the scheme depends on the band limit of Λ and is
// supplied by the caller through WithErrorBound; float64 rounding of the
// weights and the uncertainty of t are added on top. An evaluation that
// needs an unresolved sample fails instead of guessing.
package upsample

// SPDX-License-Identifier: MIT

package upsample

import "math"

const (
	// DefaultHalfWidth is K, the number of samples used on each side of t.
	DefaultHalfWidth = 32

	// DefaultSigma is the Gaussian window width, in samples.
	DefaultSigma = 4.0

	// DefaultErrorBound is the assumed truncation error of the scheme.
	DefaultErrorBound = 1e-12
)

const (
	panicHalfWidth = "upsample: WithHalfWidth: half width must be > 0"
	panicSigma     = "upsample: WithSigma: sigma must be finite and > 0"
	panicErrBound  = "upsample: WithErrorBound: bound must be finite and >= 0"
)

// Option configures an Interpolator.
type Option func(*Interpolator)

// WithHalfWidth sets K.
func WithHalfWidth(k int) Option {
	if k <= 0 {
		panic(panicHalfWidth)
	}
	return func(u *Interpolator) { u.halfWidth = k }
}

// WithSigma sets the Gaussian window width in samples.
func WithSigma(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic(panicSigma)
	}
	return func(u *Interpolator) { u.sigma = sigma }
}

// WithErrorBound sets the truncation error added to every value.
func WithErrorBound(e float64) Option {
	if e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		panic(panicErrBound)
	}
	return func(u *Interpolator) { u.errBound = e }
}

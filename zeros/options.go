// SPDX-License-Identifier: MIT

package zeros

import "go.uber.org/zap"

const (
	panicIterInvalid = "zeros: WithMaxNewtonIter: iterations must be > 0"
	panicNilLogger   = "zeros: WithLogger: nil logger"
)

// Option configures a Finder.
type Option func(*Finder)

// WithMaxNewtonIter bounds the Newton steps spent on one zero.
func WithMaxNewtonIter(n int) Option {
	if n <= 0 {
		panic(panicIterInvalid)
	}
	return func(f *Finder) { f.maxNewton = n }
}

// WithStationaryPoints enables or disables the stationary point search
// from the start of the scan. It is enabled by default.
func WithStationaryPoints(enabled bool) Option {
	return func(f *Finder) { f.statEnabled = enabled }
}

// WithLogger overrides the context's logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(f *Finder) { f.log = l }
}

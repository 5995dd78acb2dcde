// SPDX-License-Identifier: MIT

package lfunc

import "errors"

// Sentinel errors. Numeric outcomes are reported through Status, never
// through these; errors are reserved for invalid input and misuse.
var (
	// ErrBadParams is returned by New for non-positive degree, spacing,
	// Gaussian width or sample bound.
	ErrBadParams = errors.New("lfunc: invalid parameters")

	// ErrRankSumRange indicates the rank sum would read beyond the sample
	// array (RankTerms·RankStride > sample bound).
	ErrRankSumRange = errors.New("lfunc: rank sum exceeds sample bound")

	// ErrSampleIndex indicates an index outside [-M, M] was written.
	ErrSampleIndex = errors.New("lfunc: sample index out of range")

	// ErrZeroListFull is returned by ZeroList.Append at capacity.
	ErrZeroListFull = errors.New("lfunc: zero list full")

	// ErrBadSide indicates a side other than Primal or Dual.
	ErrBadSide = errors.New("lfunc: invalid side")
)

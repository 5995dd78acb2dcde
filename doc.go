// SPDX-License-Identifier: MIT

// Package lfun is a rigorous post-processor for sampled L-functions: it
// determines the analytic rank at the centre of the critical strip and
// isolates the zeros on the critical line. Every reported number is an
// interval that contains the true value, given the error bound of the
// sample provider; the default interpolator's bound is assumed.
//
// 🚀 What is lfun?
//
//	A small stack of packages that turns a grid of samples Λ(n/A), produced
//	upstream by an FFT-based evaluator, into certified answers:
//		• Ball arithmetic: directed-rounding intervals on math/big
//		• Rank: first non-vanishing Taylor coefficient at the centre
//		• Zeros: sign-change scan, Newton refinement, rigorous confirmation
//		• Stationary points: close pairs hidden between two samples
//		• Upsampling: band-limited interpolation between grid points
//		• Batch analysis, YAML datasets, a SQLite result store and a CLI
//
// ✨ Why lfun?
//
//   - Never rounds a sign – an undecidable sign is Unknown, not a guess
//   - Graceful degradation – soft failures become Status flags, hard ones
//     are marked Fatal
//   - Deterministic – rescanning unchanged data reproduces the same zeros
//   - Pure Go – no cgo, the SQLite driver included
//
// Packages:
//
//	ball/      — interval arithmetic, exp and π with outward rounding
//	lfunc/     — the Context: parameters, constants, samples, zero lists, Status
//	rank/      — analytic rank via the Gaussian-weighted asymptotic sum
//	zeros/     — zero scan, isolation, confirmation, stationary points
//	upsample/  — Gaussian-windowed sinc interpolation as a Provider
//	synthetic/ — closed-form stand-ins with known zeros, for tests and demos
//	dataset/   — YAML sample files
//	analysis/  — Report per instance, parallel batches
//	store/     — SQLite persistence of reports
//	config/    — YAML run configuration
//	logging/   — zap logger construction
//	cmd/lfun/  — analyze, synth and show commands
//
// Quick start:
//
//	lfun synth --kind cos --zeros 10 -o cos.yaml
//	lfun analyze cos.yaml
//	lfun show
package lfun

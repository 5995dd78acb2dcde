// SPDX-License-Identifier: MIT

// Package lfunc holds the L-function context shared by the rank and zero
// engines.
//
// 🚀 What lives here?
//
//	A Context is created once per L-function instance. It carries the
//	functional-equation data (degree, mus, sample spacing 1/A, Gaussian
//	width H), the ball constants derived from them at the working
//	precision, the precision targets, the declared rank, and two Sides
//	(the L-function and its dual), each with a read-only SampleArray and
//	an append-only ZeroList.
//
// ✨ Key types:
//   - Context      — immutable-after-setup data plus the few mutation points
//     the engines own (rank, leading term, zero lists).
//   - SampleArray  — values F(n/A) for n in [-M, M]; unresolved entries
//     read as ball.Entire(), so a gap is "unknown", never a crash.
//   - ZeroList     — fixed-capacity, monotone list of zero enclosures.
//   - Status       — bit set of outcome flags with a Fatal predicate.
//   - Rank         — declared rank as a tagged optional (no sentinel value).
//   - Provider     — evaluates Λ at an arbitrary ordinate on one side.
//
// Sample convention: the arrays store F(t) = Λ(t)·exp(−π·d·|t|/4), while a
// Provider returns Λ(t) itself. Rescaled maps a stored sample to provider
// scale; signs are the same on both scales.
//
// ⚙️ Usage:
//
//	L, err := lfunc.New(lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 2048},
//		lfunc.WithTargetPrec(40),
//		lfunc.WithDeclaredRank(lfunc.UnknownRank()),
//	)
//	// ... populate L.Samples(lfunc.Primal) ...
package lfunc

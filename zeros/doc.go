// SPDX-License-Identifier: MIT

// Package zeros locates the zeros of Λ on the critical line, one side at a time.
//
// 🚀 What is it?
//
//	A scanner that walks the stored samples F(n/A) outward from the centre,
//	tracking signs and directions, and turns every sign change (and every
//	suspicious turning point) into an interval that contains a zero, as far
//	as the provider's error bound holds.
//
// ✨ Key features
//
//   - Ternary primitives: SignOf and DirectionOf never guess; a ball that
//     straddles zero is Unknown and every decision above them is gated on it.
//   - Two regions: below FFTNN/OutputRatio zeros are isolated to
//     ±2^-(TargetPrec+1); the following FFTNN/TuringRatio samples form the
//     Turing zone, where only the bracket [(n−1)/A, n/A] is recorded.
//   - Isolation pipeline: Newton → Snap → Confirm, falling back to the
//     binary chop of Isolate. Confirm evaluates Λ at x ± δ and demands
//     opposite signs, which settles the table maker's dilemma.
//   - Stationary points: a negative maximum or positive minimum between two
//     samples may hide a close pair of zeros; StationaryPoint splits it by
//     nested bisection.
//   - Graceful degradation: unresolved samples end the scan with SomeData,
//     an unusable start yields NoData, flags accumulate in lfunc.Status.
//
// ⚙️ Usage
//
//	st := zeros.Find(L, provider, lfunc.Primal)
//	if st.Fatal() { … }
//	for _, z := range L.Zeros(lfunc.Primal).Zeros() { … }
//
// Sample convention: the arrays hold F(t) = Λ(t)·exp(−π·d·|t|/4) while a
// Provider returns Λ(t). Both have the same sign; StationaryPoint rescales
// the bracketing samples with lfunc.Context.Rescaled before comparing them
// with provider values.
//
// A Finder is single-threaded. Distinct contexts may be scanned in
// parallel; the two sides of one context may be scanned in parallel only by
// distinct Finders.
package zeros

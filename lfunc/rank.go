// SPDX-License-Identifier: MIT

package lfunc

import "strconv"

// Rank is an analytic rank that may be unknown. The zero value is unknown.
type Rank struct {
	value int
	known bool
}

// UnknownRank returns the "determine it" rank.
func UnknownRank() Rank { return Rank{} }

// KnownRank returns the rank r. It panics for negative r (programmer error).
func KnownRank(r int) Rank {
	if r < 0 {
		panic("lfunc: KnownRank: negative rank")
	}
	return Rank{value: r, known: true}
}

// Value returns the rank and whether it is known.
func (r Rank) Value() (int, bool) { return r.value, r.known }

// Known reports whether the rank is set.
func (r Rank) Known() bool { return r.known }

// Accepts reports whether a computed rank k is consistent with r.
func (r Rank) Accepts(k int) bool { return !r.known || r.value == k }

// String renders the rank or "unknown".
func (r Rank) String() string {
	if !r.known {
		return "unknown"
	}
	return strconv.Itoa(r.value)
}

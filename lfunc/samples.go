// SPDX-License-Identifier: MIT

package lfunc

import (
	"fmt"

	"github.com/katalvlaran/lfun/ball"
)

// SampleArray stores F(n/A) for every integer n in [-M, M]; index 0 is the
// central point. Entries that were never set, and every index outside the
// bound, read as ball.Entire() so their sign is unknown.
type SampleArray struct {
	bound  int
	values []ball.Ball
	set    []bool
}

// NewSampleArray allocates an unresolved array for n in [-bound, bound].
func NewSampleArray(bound int) *SampleArray {
	if bound < 0 {
		bound = 0
	}
	return &SampleArray{
		bound:  bound,
		values: make([]ball.Ball, 2*bound+1),
		set:    make([]bool, 2*bound+1),
	}
}

// Bound returns M.
func (a *SampleArray) Bound() int { return a.bound }

// Set stores v at index n.
func (a *SampleArray) Set(n int, v ball.Ball) error {
	if n < -a.bound || n > a.bound {
		return fmt.Errorf("index %d outside [-%d, %d]: %w", n, a.bound, a.bound, ErrSampleIndex)
	}
	a.values[n+a.bound] = v
	a.set[n+a.bound] = v.IsFinite()
	return nil
}

// At returns the value at n, or ball.Entire() when n is unresolved.
func (a *SampleArray) At(n int) ball.Ball {
	if !a.Resolved(n) {
		return ball.Entire()
	}
	return a.values[n+a.bound]
}

// Resolved reports whether n holds a finite value.
func (a *SampleArray) Resolved(n int) bool {
	if n < -a.bound || n > a.bound {
		return false
	}
	return a.set[n+a.bound]
}

// ResolvedUpTo returns the largest m ≥ 0 such that indices 0..m are all
// resolved, or -1 when the centre itself is not.
func (a *SampleArray) ResolvedUpTo() int {
	m := -1
	for n := 0; n <= a.bound && a.set[n+a.bound]; n++ {
		m = n
	}
	return m
}

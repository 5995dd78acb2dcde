// SPDX-License-Identifier: MIT

package lfunc

import "github.com/katalvlaran/lfun/ball"

// ZeroList is an append-only, fixed-capacity list of zero enclosures kept
// in increasing order of ordinate. An exact-width entry (plus its declared
// radius) was confirmed to target precision; a wide entry was only
// bracketed.
type ZeroList struct {
	zeros    []ball.Ball
	capacity int
}

// NewZeroList allocates an empty list holding at most capacity zeros.
func NewZeroList(capacity int) *ZeroList {
	return &ZeroList{zeros: make([]ball.Ball, 0, capacity), capacity: capacity}
}

// Append adds z at the end of the list.
func (l *ZeroList) Append(z ball.Ball) error {
	if len(l.zeros) >= l.capacity {
		return ErrZeroListFull
	}
	l.zeros = append(l.zeros, z)
	return nil
}

// Free returns the number of slots left.
func (l *ZeroList) Free() int { return l.capacity - len(l.zeros) }

// Len returns the number of zeros recorded.
func (l *ZeroList) Len() int { return len(l.zeros) }

// Cap returns the capacity.
func (l *ZeroList) Cap() int { return l.capacity }

// At returns the i-th zero.
func (l *ZeroList) At(i int) ball.Ball { return l.zeros[i] }

// Zeros returns a copy of the recorded zeros.
func (l *ZeroList) Zeros() []ball.Ball {
	out := make([]ball.Ball, len(l.zeros))
	copy(out, l.zeros)
	return out
}

// Reset empties the list, keeping its capacity.
func (l *ZeroList) Reset() { l.zeros = l.zeros[:0] }

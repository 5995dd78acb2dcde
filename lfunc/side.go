// SPDX-License-Identifier: MIT

package lfunc

// Side selects one of the two functional-equation branches.
type Side int

const (
	// Primal is the L-function itself.
	Primal Side = iota
	// Dual is the dual L-function.
	Dual
)

// Sides lists both sides in processing order.
var Sides = [...]Side{Primal, Dual}

// Other returns the opposite side.
func (s Side) Other() Side { return s ^ 1 }

// Valid reports whether s is Primal or Dual.
func (s Side) Valid() bool { return s == Primal || s == Dual }

func (s Side) String() string {
	switch s {
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	}
	return "invalid"
}

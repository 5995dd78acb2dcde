// SPDX-License-Identifier: MIT

package zeros

import "github.com/katalvlaran/lfun/ball"

// Sign classifies a ball. The codes are bit patterns: two signs are
// strictly opposite iff their AND is zero.
type Sign uint8

const (
	Positive Sign = 1
	Negative Sign = 2
	Unknown  Sign = 3
)

// SignOf returns Unknown iff x contains zero.
func SignOf(x ball.Ball) Sign {
	switch {
	case x.ContainsZero():
		return Unknown
	case x.IsPositive():
		return Positive
	default:
		return Negative
	}
}

func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "?"
	}
}

// Direction says which way a sampled sequence moves between two points.
// Up and Down AND to zero, so a reversal is d1&d2 == 0.
type Direction uint8

const (
	Up            Direction = 1
	Down          Direction = 2
	Indeterminate Direction = 3
)

// DirectionOf returns the sign of b − a as a direction: Up when b > a,
// Down when b < a and Indeterminate when the difference contains zero.
func DirectionOf(a, b ball.Ball, prec uint) Direction {
	d := ball.Sub(a, b, prec)
	switch {
	case d.ContainsZero():
		return Indeterminate
	case d.IsNegative():
		return Up
	default:
		return Down
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "indeterminate"
	}
}

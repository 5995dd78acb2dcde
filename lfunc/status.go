// SPDX-License-Identifier: MIT

package lfunc

import (
	"fmt"
	"io"
	"strings"
)

// Status is a set of outcome flags. Engines OR flags together as they go so
// several soft failures can coexist with an otherwise usable result.
type Status uint16

// Success is the empty set.
const Success Status = 0

const (
	// ConflictRank: the computed rank disagrees with the declared one.
	ConflictRank Status = 1 << iota
	// NoRank: no derivative up to the maximum order was shown non-zero.
	NoRank
	// NoData: the zero scan could not start (unknown initial sign/direction).
	NoData
	// SomeData: the zero scan stopped early; the zero list is partial.
	SomeData
	// ZeroPrec: a zero was bracketed but not isolated to target precision.
	ZeroPrec
	// DblZero: a stationary point could not be separated into two zeros.
	DblZero
	// StatPoint: evaluation failed while isolating a stationary point's pair.
	StatPoint
	// ZeroError: a snapped zero failed rigorous confirmation.
	ZeroError
)

// fatalMask collects the flags after which no output may be trusted.
const fatalMask = ConflictRank | NoData | ZeroError

// allFlags lists every flag in bit order.
var allFlags = [...]Status{ConflictRank, NoRank, NoData, SomeData, ZeroPrec, DblZero, StatPoint, ZeroError}

var flagNames = map[Status]string{
	ConflictRank: "CONFLICT_RANK",
	NoRank:       "NO_RANK",
	NoData:       "NO_DATA",
	SomeData:     "SOME_DATA",
	ZeroPrec:     "ZERO_PREC",
	DblZero:      "DBL_ZERO",
	StatPoint:    "STAT_POINT",
	ZeroError:    "ZERO_ERROR",
}

var flagText = map[Status]string{
	ConflictRank: "computed rank conflicts with the declared rank",
	NoRank:       "failed to resolve the analytic rank",
	NoData:       "no usable data for zero isolation",
	SomeData:     "zero list is incomplete: samples became unresolved",
	ZeroPrec:     "at least one zero was not isolated to target precision",
	DblZero:      "possible double zero or close pair not separated",
	StatPoint:    "failed to isolate the zeros around a stationary point",
	ZeroError:    "failed to confirm a zero to target precision",
}

// Has reports whether every flag of f is set in s.
func (s Status) Has(f Status) bool { return s&f == f && f != 0 }

// Fatal reports whether s contains a flag that invalidates the output.
func (s Status) Fatal() bool { return s&fatalMask != 0 }

// Flags returns the individual flags set in s, in bit order.
func (s Status) Flags() []Status {
	var out []Status
	for _, f := range allFlags {
		if s&f != 0 {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns one human-readable line per flag set in s.
func (s Status) Warnings() []string {
	var out []string
	for _, f := range s.Flags() {
		out = append(out, fmt.Sprintf("%s: %s", flagNames[f], flagText[f]))
	}
	return out
}

// String renders s as "SUCCESS" or names joined by "|".
func (s Status) String() string {
	if s == Success {
		return "SUCCESS"
	}
	flags := s.Flags()
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, flagNames[f])
	}
	return strings.Join(names, "|")
}

// FprintStatus writes every warning in s to w, one per line.
func FprintStatus(w io.Writer, s Status) error {
	for _, line := range s.Warnings() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT

package zeros

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// state is a node of the scan state machine.
type state uint8

const (
	stateScanning   state = iota // advance n and compare with n−1
	stateZeroFound               // sign change between n−1 and n
	stateStationary              // F turned back towards zero at n−1
	stateDone
)

// Finder scans one side of one context. It holds all scratch state of the
// scan, so a Finder must not be shared between goroutines.
type Finder struct {
	L    *lfunc.Context
	p    lfunc.Provider
	side lfunc.Side
	log  *zap.Logger

	maxNewton   int
	statEnabled bool

	samples  *lfunc.SampleArray
	zeros    *lfunc.ZeroList
	n        int
	lastSign Sign
	thisSign Sign
	lastDir  Direction
	thisDir  Direction
	statOn   bool
	status   lfunc.Status
}

// NewFinder returns a Finder for side s of L, evaluating Λ through p.
//
// Errors:
//   - ErrNilProvider — p is nil.
//   - ErrBadSide     — s is neither lfunc.Primal nor lfunc.Dual.
func NewFinder(L *lfunc.Context, p lfunc.Provider, s lfunc.Side, opts ...Option) (*Finder, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	if !s.Valid() {
		return nil, fmt.Errorf("side %d: %w", s, ErrBadSide)
	}
	f := &Finder{
		L:           L,
		p:           p,
		side:        s,
		log:         L.Logger(),
		maxNewton:   DefaultMaxNewtonIter,
		statEnabled: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.Named("zeros").With(zap.Stringer("side", s))
	return f, nil
}

// Find scans side s of L with a fresh Finder; see Finder.Find.
// It panics on a nil provider or an invalid side (programmer error).
func Find(L *lfunc.Context, p lfunc.Provider, s lfunc.Side) lfunc.Status {
	f, err := NewFinder(L, p, s)
	if err != nil {
		panic(err)
	}
	return f.Find()
}

// Find clears the side's zero list and refills it.
//
// Implementation:
//   - Stage 1: read the sign at the centre and the direction from 0 to 1.
//     An indeterminate direction, or indeterminate signs at both 0 and 1,
//     yields NoData.
//   - Stage 2: run the state machine from n = 1 (or 2 after a central
//     zero) until n passes FineBound + FFTNN/TuringRatio.
//
// Status: the OR of every flag raised on the way. The scan stops early on
// a fatal flag, on the first unresolved sample (SomeData) and when the
// zero list is full (SomeData). Find is deterministic: rescanning an
// unchanged context reproduces the same list and status.
func (f *Finder) Find() lfunc.Status {
	f.reset()

	st := f.start()
	for st != stateDone {
		switch st {
		case stateScanning:
			st = f.scan()
		case stateZeroFound:
			st = f.zeroFound()
		case stateStationary:
			st = f.stationary()
		}
	}
	f.log.Debug("scan finished",
		zap.Int("n", f.n),
		zap.Int("zeros", f.zeros.Len()),
		zap.Stringer("status", f.status))
	return f.status
}

func (f *Finder) reset() {
	f.samples = f.L.Samples(f.side)
	f.zeros = f.L.Zeros(f.side)
	f.zeros.Reset()
	f.n = 0
	f.statOn = f.statEnabled
	f.status = lfunc.Success
}

func (f *Finder) start() state {
	prec := f.L.WorkingPrec()
	f.lastSign = SignOf(f.samples.At(0))
	f.lastDir = DirectionOf(f.samples.At(0), f.samples.At(1), prec)
	if f.lastDir == Indeterminate {
		f.log.Warn("indeterminate direction at start of data")
		f.status |= lfunc.NoData
		return stateDone
	}
	if f.lastSign == Unknown {
		// Central zero: skip the centre.
		f.n++
		f.lastSign = SignOf(f.samples.At(f.n))
		if f.lastSign == Unknown {
			f.log.Warn("indeterminate sign next to a central zero")
			f.status |= lfunc.NoData
			return stateDone
		}
	}
	return stateScanning
}

func (f *Finder) scan() state {
	f.n++
	if f.n > f.L.ScanBound() {
		return stateDone
	}
	f.thisSign = SignOf(f.samples.At(f.n))
	if f.thisSign == Unknown {
		f.log.Debug("indeterminate sign, giving up", zap.Int("n", f.n))
		f.status |= lfunc.SomeData
		return stateDone
	}
	if f.thisSign != f.lastSign {
		return stateZeroFound
	}

	if !f.statOn {
		return stateScanning
	}
	f.thisDir = DirectionOf(f.samples.At(f.n-1), f.samples.At(f.n), f.L.WorkingPrec())
	if f.thisDir == Indeterminate {
		f.statOn = false
		return stateScanning
	}
	if f.thisDir&f.lastDir == 0 {
		if (f.lastDir == Up && f.thisSign == Negative) || (f.lastDir == Down && f.thisSign == Positive) {
			return stateStationary
		}
		// Overwritten again just below. The redundant write is kept
		// until its intent is settled.
		f.lastDir = f.thisDir
	}
	f.lastDir = f.thisDir
	return stateScanning
}

func (f *Finder) zeroFound() state {
	L := f.L
	prec := L.WorkingPrec()
	t0, t1 := L.Ordinate(f.n-1), L.Ordinate(f.n)
	f.log.Debug("zero found", zap.Stringer("t0", t0), zap.Stringer("t1", t1))

	if f.zeros.Free() < 1 {
		f.log.Warn("zero list full", zap.Int("capacity", f.zeros.Cap()))
		f.status |= lfunc.SomeData
		return stateDone
	}

	if f.n < L.FineBound() {
		if !f.isolate(t0, t1) {
			return stateDone
		}
	} else {
		// Turing zone: the bracket is enough.
		f.record(ball.Union(t0, t1))
	}

	f.lastSign = f.thisSign
	f.lastDir = DirectionOf(f.samples.At(f.n-1), f.samples.At(f.n), prec)
	if f.lastDir == Indeterminate {
		f.statOn = false
	}
	return stateScanning
}

// isolate pins down the zero in [t0, t1] and records it. It returns false
// when the scan must stop.
func (f *Finder) isolate(t0, t1 ball.Ball) bool {
	L := f.L
	opAcc, prec := L.TargetPrec(), L.WorkingPrec()

	if z, ok := Newton(L, f.p, f.side, t0, t1, f.maxNewton); ok {
		if x := Snap(z, opAcc, prec); Confirm(L, f.p, f.side, x) {
			f.record(ball.AddError2Exp(x, -int(opAcc)-1))
			return true
		}
	}

	f.log.Debug("resorting to binary chop", zap.Int("n", f.n))
	r, ok := Isolate(L, f.p, f.side, t0, t1, f.lastSign)
	if !ok {
		f.record(r)
		f.status |= lfunc.ZeroPrec
		return true
	}
	x := Snap(r, opAcc, prec)
	if !Confirm(L, f.p, f.side, x) {
		f.log.Warn("failed to confirm zero", zap.Stringer("near", x))
		f.status |= lfunc.ZeroError
		return false
	}
	f.record(ball.AddError2Exp(x, -int(opAcc)-1))
	return true
}

func (f *Finder) stationary() state {
	L := f.L
	m := f.n - 1
	f.log.Debug("stationary point detected", zap.Int("m", m))

	if f.zeros.Free() < 2 {
		f.log.Warn("zero list full", zap.Int("capacity", f.zeros.Cap()))
		f.status |= lfunc.SomeData
		return stateDone
	}

	z1, z2, st := StationaryPoint(L, f.p, f.side, m, f.n <= L.FineBound())
	f.status |= st
	if f.status.Fatal() {
		return stateDone
	}
	if st&(lfunc.DblZero|lfunc.StatPoint) != 0 {
		// Pair not separated: both slots get the bracket so the count of
		// zeros stays right.
		bracket := ball.Union(L.Ordinate(m-1), L.Ordinate(m+1))
		z1, z2 = bracket, bracket
		f.log.Warn("stationary point not resolved", zap.Int("m", m), zap.Stringer("status", st))
	}
	f.record(z1)
	f.record(z2)

	f.lastDir = f.thisDir
	return stateScanning
}

// record appends z; capacity has been checked by the caller.
func (f *Finder) record(z ball.Ball) {
	if err := f.zeros.Append(z); err != nil {
		f.status |= lfunc.SomeData
		return
	}
	f.log.Debug("zero recorded", zap.Int("index", f.zeros.Len()-1), zap.Stringer("zero", z))
}

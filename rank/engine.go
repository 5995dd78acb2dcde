// SPDX-License-Identifier: MIT

package rank

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// Derivatives supplies Λ^(k)(1/2) enclosures. *Engine implements it with
// the asymptotic sum; tests and callers with closed forms may substitute.
type Derivatives interface {
	CentralDerivative(k int, prec uint) (ball.Ball, error)
}

// Engine computes the rank of one context. It owns the derivative cache,
// so one Engine must not be shared between goroutines.
type Engine struct {
	L      *lfunc.Context
	cache  Cache
	source Derivatives
	log    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDerivatives replaces the asymptotic sum as the derivative source.
func WithDerivatives(d Derivatives) Option {
	return func(e *Engine) { e.source = d }
}

// NewEngine returns an engine bound to L.
func NewEngine(L *lfunc.Context, opts ...Option) *Engine {
	e := &Engine{L: L, log: L.Logger().Named("rank")}
	e.source = e
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cache exposes the derivative cache (read-only use).
func (e *Engine) Cache() *Cache { return &e.cache }

// Compute determines the analytic rank of L.
//
// Implementation:
//   - Stage 1: k = 0. If Λ(1/2) excludes zero the rank is 0.
//   - Stage 2: k = 1..MAX_L in increasing order; the first derivative that
//     excludes zero fixes the rank at k. Checking in order is what makes
//     the "lower derivatives vanish" assumption of the sum valid.
//   - The derivative is always stored as L's leading term.
//
// Returns the rank recorded in L afterwards and:
//   - Success       — rank found and consistent with the declared rank.
//   - ConflictRank  — a known declared rank disagrees; it is left as is.
//   - NoRank        — nothing excluded zero up to MAX_L; an unknown rank is
//     recorded as 0, a known one is kept.
func (e *Engine) Compute() (int, lfunc.Status) {
	L := e.L
	prec := L.WorkingPrec()

	for k := 0; k <= L.MaxDerivative(); k++ {
		d, err := e.source.CentralDerivative(k, prec)
		if err != nil {
			e.log.Warn("derivative unavailable", zap.Int("k", k), zap.Error(err))
			break
		}
		L.SetLeadingTerm(d)
		if d.ContainsZero() {
			e.log.Debug("derivative contains zero", zap.Int("k", k), zap.Stringer("value", d))
			continue
		}
		if !L.DeclaredRank().Accepts(k) {
			e.log.Warn("rank conflict",
				zap.Int("computed", k),
				zap.Stringer("declared", L.DeclaredRank()))
			r, _ := L.Rank().Value()
			return r, lfunc.ConflictRank
		}
		L.SetRank(lfunc.KnownRank(k))
		e.log.Debug("rank resolved", zap.Int("rank", k), zap.Stringer("leading", d))
		return k, lfunc.Success
	}

	if !L.Rank().Known() {
		L.SetRank(lfunc.KnownRank(0))
	}
	r, _ := L.Rank().Value()
	e.log.Warn("rank unresolved", zap.Int("max_derivative", L.MaxDerivative()), zap.Int("fallback", r))
	return r, lfunc.NoRank
}

// Compute runs a fresh Engine over L.
func Compute(L *lfunc.Context) (int, lfunc.Status) {
	return NewEngine(L).Compute()
}

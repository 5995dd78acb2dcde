// SPDX-License-Identifier: MIT

package synthetic

import (
	"math"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// DefaultRadius is the absolute error assumed for a float64 evaluation of G.
const DefaultRadius = 1e-14

// Provider evaluates a Kind in float64 and widens the result by Radius plus
// Lipschitz times the uncertainty of the ordinate, so the returned ball
// encloses G(t) for every t in the input ball.
type Provider struct {
	Kind   Kind
	Radius float64
}

// NewProvider returns a Provider for k with DefaultRadius.
func NewProvider(k Kind) Provider { return Provider{Kind: k, Radius: DefaultRadius} }

// Evaluate implements lfunc.Provider. Both sides see the same function.
func (p Provider) Evaluate(t ball.Ball, _ lfunc.Side, _ uint) (ball.Ball, bool) {
	if !t.IsFinite() {
		return ball.Entire(), false
	}
	x := t.Float64()
	v := p.Kind.G(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ball.Entire(), false
	}
	// Rounding x to float64 moves it by at most one ulp.
	dx := t.RadFloat64() + math.Abs(x)*0x1p-52
	return ball.FromMidRad(v, p.Radius+p.Kind.Lipschitz*dx), true
}

var _ lfunc.Provider = Provider{}

// Populate stores F(n/A) for n in [−upTo, upTo] on side s of L, using the
// Provider's error model for G. Indices beyond upTo are left unresolved.
func Populate(L *lfunc.Context, s lfunc.Side, p Provider, upTo int) error {
	samples := L.Samples(s)
	for n := -upTo; n <= upTo; n++ {
		t := L.Ordinate(n)
		g, ok := p.Evaluate(t, s, L.WorkingPrec())
		if !ok {
			continue
		}
		if err := samples.Set(n, ball.Div(g, L.ScaleFactor(t), L.WorkingPrec())); err != nil {
			return err
		}
	}
	return nil
}

// NewContext builds a context for kind k, fills both sides up to the sample
// bound and returns it with the matching provider. Synthetic kinds are
// self-dual.
func NewContext(k Kind, params lfunc.Params, opts ...lfunc.Option) (*lfunc.Context, Provider, error) {
	opts = append([]lfunc.Option{lfunc.WithSelfDual(true)}, opts...)
	L, err := lfunc.New(params, opts...)
	if err != nil {
		return nil, Provider{}, err
	}
	p := NewProvider(k)
	for _, s := range lfunc.Sides {
		if err := Populate(L, s, p, L.SampleBound()); err != nil {
			return nil, Provider{}, err
		}
	}
	return L, p, nil
}

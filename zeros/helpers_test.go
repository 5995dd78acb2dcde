package zeros_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
)

const (
	testWorkingPrec = 128
	testTargetPrec  = 20
)

// testOpts keeps float64-backed providers meaningful: op_acc must stay well
// above their ~1e-14 error.
func testOpts(extra ...lfunc.Option) []lfunc.Option {
	return append([]lfunc.Option{
		lfunc.WithWorkingPrec(testWorkingPrec),
		lfunc.WithTargetPrec(testTargetPrec),
	}, extra...)
}

// cosContext is degree 2, A = 4, FFTNN = 1024: fine region up to n = 128
// (t = 32), Turing zone up to n = 192 (t = 48).
func cosContext(t *testing.T, extra ...lfunc.Option) (*lfunc.Context, synthetic.Provider) {
	t.Helper()
	k, err := synthetic.Lookup("cos")
	require.NoError(t, err)
	L, p, err := synthetic.NewContext(k, lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 1024}, testOpts(extra...)...)
	require.NoError(t, err)
	return L, p
}

// sinProvider evaluates sin(t) with a small rigorous-enough radius.
func sinProvider() lfunc.Provider {
	return lfunc.ProviderFunc(func(t ball.Ball, _ lfunc.Side, _ uint) (ball.Ball, bool) {
		x := t.Float64()
		return ball.FromMidRad(math.Sin(x), 1e-14+t.RadFloat64()), true
	})
}

// bareContext has no samples; only its constants are used.
func bareContext(t *testing.T) *lfunc.Context {
	t.Helper()
	L, err := lfunc.New(lfunc.Params{Degree: 1, A: 1, H: 8, FFTNN: 64}, testOpts()...)
	require.NoError(t, err)
	return L
}

func width(b ball.Ball) float64 { return 2 * b.RadFloat64() }

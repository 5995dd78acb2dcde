package upsample_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
	"github.com/katalvlaran/lfun/upsample"
	"github.com/katalvlaran/lfun/zeros"
)

func cosContext(t *testing.T) *lfunc.Context {
	t.Helper()
	k, err := synthetic.Lookup("cos")
	require.NoError(t, err)
	L, _, err := synthetic.NewContext(k, lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 1024},
		lfunc.WithWorkingPrec(128), lfunc.WithTargetPrec(20))
	require.NoError(t, err)
	return L
}

// TestInterpolator_Encloses checks on- and off-grid values of cos.
func TestInterpolator_Encloses(t *testing.T) {
	L := cosContext(t)
	u := upsample.New(L)

	for _, x := range []float64{2, 1.3, 0.1, 10.7, 31.9, math.Pi / 2} {
		v, ok := u.Evaluate(ball.FromFloat64(x), lfunc.Primal, L.WorkingPrec())
		require.True(t, ok, "t=%v", x)
		assert.InDelta(t, math.Cos(x), v.Float64(), 1e-11, "t=%v", x)
		assert.True(t, v.Contains(big.NewFloat(math.Cos(x))), "t=%v: %s", x, v)
		assert.Less(t, v.RadFloat64(), 1e-9, "t=%v", x)
	}
}

// TestInterpolator_NeedsResolvedSamples: the kernel may not run off the
// sample array.
func TestInterpolator_NeedsResolvedSamples(t *testing.T) {
	L := cosContext(t)
	u := upsample.New(L, upsample.WithHalfWidth(16))

	edge := float64(L.SampleBound()-8) / L.A()
	_, ok := u.Evaluate(ball.FromFloat64(edge), lfunc.Primal, L.WorkingPrec())
	assert.False(t, ok)

	_, ok = u.Evaluate(ball.Entire(), lfunc.Primal, L.WorkingPrec())
	assert.False(t, ok)
}

// TestInterpolator_DrivesZeroScan: the scan over interpolated values finds
// the same zeros as the closed form.
func TestInterpolator_DrivesZeroScan(t *testing.T) {
	L := cosContext(t)
	st := zeros.Find(L, upsample.New(L), lfunc.Primal)
	require.Equal(t, lfunc.Success, st, st.String())

	k, _ := synthetic.Lookup("cos")
	want := k.Zeros(float64(L.FineBound()) / L.A())
	got := L.Zeros(lfunc.Primal).Zeros()
	require.GreaterOrEqual(t, len(got), len(want))
	for i, w := range want {
		assert.InDelta(t, w, got[i].Float64(), math.Ldexp(1, -20), "zero %d", i)
	}
}

// TestOptions_Panics covers programmer errors in option constructors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { upsample.WithHalfWidth(0) })
	assert.Panics(t, func() { upsample.WithSigma(math.NaN()) })
	assert.Panics(t, func() { upsample.WithErrorBound(-1) })
}

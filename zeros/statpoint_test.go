package zeros_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
	"github.com/katalvlaran/lfun/zeros"
)

// stationaryContext samples cos t − 0.99 at integers. Samples 5, 6 and 7 are
// all negative while the pair 2π ∓ acos(0.99) sits between 6 and 7.
func stationaryContext(t *testing.T) (*lfunc.Context, synthetic.Provider) {
	t.Helper()
	k, err := synthetic.Lookup("stationary")
	require.NoError(t, err)
	L, p, err := synthetic.NewContext(k, lfunc.Params{Degree: 1, A: 1, H: 8, FFTNN: 64}, testOpts()...)
	require.NoError(t, err)
	return L, p
}

func bounds(b ball.Ball) (lo, hi float64) {
	lo, _ = b.Lo().Float64()
	hi, _ = b.Hi().Float64()
	return lo, hi
}

func TestStationaryPoint(t *testing.T) {
	L, p := stationaryContext(t)
	a := math.Acos(0.99)

	t.Run("isolated pair", func(t *testing.T) {
		z1, z2, st := zeros.StationaryPoint(L, p, lfunc.Primal, 6, true)
		require.Equal(t, lfunc.Success, st, st.String())
		assert.InDelta(t, 2*math.Pi-a, z1.Float64(), math.Ldexp(1, -testTargetPrec))
		assert.InDelta(t, 2*math.Pi+a, z2.Float64(), math.Ldexp(1, -testTargetPrec))
		assert.LessOrEqual(t, width(z1), math.Ldexp(1, -testTargetPrec))
	})

	t.Run("brackets only", func(t *testing.T) {
		// The turn is found in [6, 7]; the sign change first shows at 6.25.
		z1, z2, st := zeros.StationaryPoint(L, p, lfunc.Primal, 6, false)
		require.Equal(t, lfunc.Success, st)
		lo, hi := bounds(z1)
		assert.Equal(t, 6.0, lo)
		assert.Equal(t, 6.25, hi)
		lo, hi = bounds(z2)
		assert.Equal(t, 6.25, lo)
		assert.Equal(t, 6.5, hi)
	})

	t.Run("failing provider", func(t *testing.T) {
		dead := lfunc.ProviderFunc(func(ball.Ball, lfunc.Side, uint) (ball.Ball, bool) {
			return ball.Entire(), false
		})
		_, _, st := zeros.StationaryPoint(L, dead, lfunc.Primal, 6, true)
		assert.Equal(t, lfunc.StatPoint, st)
	})

	t.Run("unresolved samples", func(t *testing.T) {
		_, _, st := zeros.StationaryPoint(bareContext(t), p, lfunc.Primal, 6, true)
		assert.Equal(t, lfunc.DblZero, st)
	})
}

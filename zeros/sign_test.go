package zeros_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/zeros"
)

// TestSignOf_Totality checks SignOf is Unknown exactly when the ball
// contains zero.
func TestSignOf_Totality(t *testing.T) {
	cases := []struct {
		in   ball.Ball
		want zeros.Sign
	}{
		{ball.FromMidRad(1, 0.5), zeros.Positive},
		{ball.FromMidRad(-1, 0.5), zeros.Negative},
		{ball.FromMidRad(1, 1), zeros.Unknown},
		{ball.FromMidRad(-1e-30, 1e-29), zeros.Unknown},
		{ball.Zero(), zeros.Unknown},
		{ball.Entire(), zeros.Unknown},
		{ball.FromFloat64(1e-300), zeros.Positive},
	}
	for _, tc := range cases {
		got := zeros.SignOf(tc.in)
		assert.Equal(t, tc.want, got, "%s", tc.in)
		assert.Equal(t, tc.in.ContainsZero(), got == zeros.Unknown)
	}
}

// TestDirectionOf_Totality checks DirectionOf against the sign of b − a.
func TestDirectionOf_Totality(t *testing.T) {
	cases := []struct {
		a, b ball.Ball
		want zeros.Direction
	}{
		{ball.FromFloat64(1), ball.FromFloat64(2), zeros.Up},
		{ball.FromFloat64(2), ball.FromFloat64(1), zeros.Down},
		{ball.FromFloat64(2), ball.FromFloat64(2), zeros.Indeterminate},
		{ball.FromMidRad(1, 0.6), ball.FromMidRad(2, 0.6), zeros.Indeterminate},
		{ball.FromMidRad(-1, 0.4), ball.FromMidRad(-2, 0.4), zeros.Down},
		{ball.Entire(), ball.FromFloat64(0), zeros.Indeterminate},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, zeros.DirectionOf(tc.a, tc.b, 64), "%s → %s", tc.a, tc.b)
	}
}

// TestCodes_AndSemantics checks the bit patterns the scan relies on.
func TestCodes_AndSemantics(t *testing.T) {
	assert.Zero(t, zeros.Positive&zeros.Negative)
	assert.NotZero(t, zeros.Positive&zeros.Unknown)
	assert.NotZero(t, zeros.Negative&zeros.Unknown)
	assert.Zero(t, zeros.Up&zeros.Down)
	assert.NotZero(t, zeros.Up&zeros.Up)
}

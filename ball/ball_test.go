package ball_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/ball"
)

const prec = 128

// TestBall_ZeroValue verifies the zero Ball behaves as the exact number 0.
func TestBall_ZeroValue(t *testing.T) {
	var z ball.Ball
	assert.True(t, z.ContainsZero())
	assert.True(t, z.IsExact())
	assert.False(t, z.IsPositive())
	assert.False(t, z.IsNegative())
	assert.True(t, z.Equal(ball.Zero()))
}

// TestBall_SignPredicatesAreTernary checks that exactly one of
// positive / negative / contains-zero holds for every ball.
func TestBall_SignPredicatesAreTernary(t *testing.T) {
	cases := []ball.Ball{
		ball.FromMidRad(1, 0.5),
		ball.FromMidRad(-1, 0.5),
		ball.FromMidRad(0.25, 0.25),
		ball.FromMidRad(0, 1e-30),
		ball.FromFloat64(3),
		ball.Zero(),
		ball.Entire(),
	}
	for _, b := range cases {
		n := 0
		for _, p := range []bool{b.IsPositive(), b.IsNegative(), b.ContainsZero()} {
			if p {
				n++
			}
		}
		assert.Equal(t, 1, n, "ball %s", b)
	}
}

// TestBall_ArithmeticEncloses checks a handful of identities hold inside
// the computed enclosures.
func TestBall_ArithmeticEncloses(t *testing.T) {
	a := ball.FromMidRad(1.5, 1e-10)
	b := ball.FromMidRad(-0.25, 1e-12)

	sum := ball.Add(a, b, prec)
	assert.True(t, sum.Contains(big.NewFloat(1.25)))

	diff := ball.Sub(a, b, prec)
	assert.True(t, diff.Contains(big.NewFloat(1.75)))

	prod := ball.Mul(a, b, prec)
	assert.True(t, prod.Contains(big.NewFloat(-0.375)))
	assert.True(t, prod.IsNegative())

	quo := ball.Div(a, b, prec)
	assert.True(t, quo.Contains(big.NewFloat(-6)))

	assert.True(t, ball.Div(a, ball.FromMidRad(0, 1), prec).Equal(ball.Entire()),
		"division by a ball containing zero is unresolved")
}

// TestBall_SubSelfContainsZero verifies x − x always contains zero even
// though interval subtraction is not exact cancellation.
func TestBall_SubSelfContainsZero(t *testing.T) {
	x := ball.FromMidRad(math.Pi, 1e-6)
	d := ball.Sub(x, x, prec)
	assert.True(t, d.ContainsZero())
	assert.False(t, d.IsExact())
}

// TestBall_Mul2ExpIsExact checks scaling by powers of two never widens.
func TestBall_Mul2ExpIsExact(t *testing.T) {
	x := ball.FromFloat64(3)
	y := ball.Mul2Exp(x, -5)
	assert.True(t, y.IsExact())
	assert.Equal(t, 3.0/32, y.Float64())
}

// TestBall_PowUint checks small integer powers.
func TestBall_PowUint(t *testing.T) {
	p := ball.PowUint(ball.FromInt(3), 5, prec)
	assert.True(t, p.IsExact())
	assert.Equal(t, 243.0, p.Float64())
	assert.True(t, ball.PowUint(ball.FromMidRad(2, 0), 0, prec).Equal(ball.One()))
}

// TestBall_Exp checks exp at a few points against float64.
func TestBall_Exp(t *testing.T) {
	for _, x := range []float64{-20, -1, 0, 0.5, 3, 40} {
		e := ball.Exp(ball.FromFloat64(x), prec)
		require.True(t, e.IsPositive(), "exp(%v) must be positive", x)
		assert.InEpsilon(t, math.Exp(x), e.Float64(), 1e-14, "exp(%v)", x)
		assert.Less(t, e.RadFloat64(), math.Exp(x)*1e-30, "exp(%v) radius", x)
	}
	assert.True(t, ball.Exp(ball.Entire(), prec).ContainsZero())
}

// TestBall_Pi checks the Machin enclosure of π is tight and correct.
func TestBall_Pi(t *testing.T) {
	pi := ball.Pi(256)
	ref, _, err := big.ParseFloat("3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196", 10, 600, big.ToNearestEven)
	require.NoError(t, err)
	assert.True(t, pi.Contains(ref))
	w, _ := pi.Width(64).Float64()
	assert.Less(t, w, math.Ldexp(1, -240))
}

// TestBall_Union checks the hull of two disjoint balls.
func TestBall_Union(t *testing.T) {
	u := ball.Union(ball.FromFloat64(1), ball.FromFloat64(3))
	assert.Equal(t, 2.0, u.Float64())
	assert.Equal(t, 1.0, u.RadFloat64())
	assert.True(t, u.ContainsBall(ball.FromMidRad(2, 0.5)))
}

// TestBall_AddError checks radius growth.
func TestBall_AddError(t *testing.T) {
	x := ball.AddError2Exp(ball.FromFloat64(1), -10)
	assert.InDelta(t, math.Ldexp(1, -10), x.RadFloat64(), 1e-18)
	assert.True(t, ball.AddError(ball.Zero(), ball.FromFloat64(-2)).Contains(big.NewFloat(2)))
}

// TestBall_Parse covers every accepted literal form and the error paths.
func TestBall_Parse(t *testing.T) {
	cases := []struct {
		in      string
		mid     float64
		rad     float64
		unknown bool
	}{
		{in: "1.25", mid: 1.25},
		{in: "1.25 +/- 0.5", mid: 1.25, rad: 0.5},
		{in: "[1.25 +/- 0.5]", mid: 1.25, rad: 0.5},
		{in: "[-0.5, 0.75]", mid: 0.125, rad: 0.625},
		{in: "unknown", unknown: true},
		{in: "?", unknown: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			b, err := ball.Parse(tc.in, prec)
			require.NoError(t, err)
			if tc.unknown {
				assert.False(t, b.IsFinite())
				return
			}
			assert.InDelta(t, tc.mid, b.Float64(), 1e-15)
			assert.InDelta(t, tc.rad, b.RadFloat64(), 1e-15)
		})
	}

	_, err := ball.Parse("abc", prec)
	assert.ErrorIs(t, err, ball.ErrSyntax)
	_, err = ball.Parse("[1, 0]", prec)
	assert.ErrorIs(t, err, ball.ErrSyntax)
	_, err = ball.Parse("1 +/- -2", prec)
	assert.ErrorIs(t, err, ball.ErrNegativeRadius)
}

// TestBall_Parse_DecimalIsEnclosed checks that a non-dyadic decimal is
// enclosed rather than rounded to one side.
func TestBall_Parse_DecimalIsEnclosed(t *testing.T) {
	b, err := ball.Parse("0.1", 64)
	require.NoError(t, err)
	assert.False(t, b.IsExact())
	ref, _, _ := big.ParseFloat("0.1", 10, 512, big.ToNearestEven)
	assert.True(t, b.Contains(ref))
}

// TestBall_TextRoundTrip checks MarshalText/UnmarshalText is lossless.
func TestBall_TextRoundTrip(t *testing.T) {
	for _, b := range []ball.Ball{
		ball.Div(ball.One(), ball.FromInt(3), 200),
		ball.FromMidRad(-7.5, 1e-40),
		ball.FromInt(42),
		ball.Entire(),
	} {
		txt, err := b.MarshalText()
		require.NoError(t, err)
		var back ball.Ball
		require.NoError(t, back.UnmarshalText(txt))
		assert.True(t, b.Equal(back), "%s -> %s", b, txt)
	}
}

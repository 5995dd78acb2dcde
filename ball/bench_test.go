package ball_test

import (
	"testing"

	"github.com/katalvlaran/lfun/ball"
)

// BenchmarkExp measures exp at the default working precision.
func BenchmarkExp(b *testing.B) {
	x := ball.FromMidRad(12.375, 1e-20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ball.Exp(x, 300)
	}
}

// BenchmarkPi measures the Machin series at 300 bits.
func BenchmarkPi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ball.Pi(300)
	}
}

// BenchmarkMul measures a single multiplication with radius propagation.
func BenchmarkMul(b *testing.B) {
	x := ball.FromMidRad(1.25, 1e-30)
	y := ball.FromMidRad(-3.5, 1e-30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ball.Mul(x, y, 300)
	}
}

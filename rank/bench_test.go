package rank_test

import (
	"testing"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/rank"
	"github.com/katalvlaran/lfun/synthetic"
)

// BenchmarkCentralDerivative measures the rank sum for k = 3 at 300 bits
// over 512 terms, the derivative cache already warm.
func BenchmarkCentralDerivative(b *testing.B) {
	k, _ := synthetic.Lookup("cos")
	L, _, err := synthetic.NewContext(k, lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 1024})
	if err != nil {
		b.Fatal(err)
	}
	e := rank.NewEngine(L)
	if _, err := e.CentralDerivative(3, L.WorkingPrec()); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.CentralDerivative(3, L.WorkingPrec()); err != nil {
			b.Fatal(err)
		}
	}
}

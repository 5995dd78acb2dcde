package zeros_test

import (
	"fmt"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
	"github.com/katalvlaran/lfun/zeros"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFind
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Λ(t) = cos t sampled at t = n/4 on a 1024-point grid. Zeros below
//	t = 32 are isolated to ±2^-21; the Turing zone up to t = 48 is only
//	bracketed between consecutive samples.
//
// Complexity: O(FFTNN/OutputRatio · Newton steps) provider evaluations.
func ExampleFind() {
	k, _ := synthetic.Lookup("cos")
	L, p, err := synthetic.NewContext(k,
		lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 1024},
		lfunc.WithWorkingPrec(128), lfunc.WithTargetPrec(20))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	st := zeros.Find(L, p, lfunc.Primal)
	zs := L.Zeros(lfunc.Primal)
	fmt.Println("status:", st)
	fmt.Println("zeros:", zs.Len())
	for i := 0; i < 3; i++ {
		fmt.Printf("%.4f\n", zs.At(i).Float64())
	}
	// Output:
	// status: SUCCESS
	// zeros: 15
	// 1.5708
	// 4.7124
	// 7.8540
}

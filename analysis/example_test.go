package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/lfun/analysis"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
)

// ExampleAnalyzer_Run analyses a self-dual instance from its stored samples
// alone: no provider is given, so Λ is interpolated between grid points.
func ExampleAnalyzer_Run() {
	k, _ := synthetic.Lookup("cos")
	L, _, err := synthetic.NewContext(k,
		lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 1024},
		lfunc.WithWorkingPrec(128), lfunc.WithTargetPrec(20))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep, err := analysis.New(analysis.WithPlotPoints(0)).Run(analysis.Job{Name: "cos", L: L})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("rank:", rep.Rank, rep.RankStatus)
	for _, sr := range rep.Sides {
		fmt.Println(sr.Side, len(sr.Zeros), sr.Status)
	}
	// Output:
	// rank: 0 SUCCESS
	// primal 15 SUCCESS
}

package rank_test

import (
	"fmt"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/rank"
	"github.com/katalvlaran/lfun/synthetic"
)

// ExampleCompute: cos does not vanish at the centre, so the rank is 0.
// Declaring rank 1 for the same data is reported as a conflict and the
// declared value is kept.
func ExampleCompute() {
	k, _ := synthetic.Lookup("cos")
	params := lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 256}

	L, _, _ := synthetic.NewContext(k, params, lfunc.WithWorkingPrec(128))
	r, st := rank.Compute(L)
	fmt.Println(r, st)

	L, _, _ = synthetic.NewContext(k, params, lfunc.WithWorkingPrec(128),
		lfunc.WithDeclaredRank(lfunc.KnownRank(1)))
	r, st = rank.Compute(L)
	fmt.Println(r, st, st.Fatal())
	// Output:
	// 0 SUCCESS
	// 1 CONFLICT_RANK true
}

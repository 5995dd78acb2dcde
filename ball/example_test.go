package ball_test

import (
	"fmt"

	"github.com/katalvlaran/lfun/ball"
)

// ExampleParse reads the literal forms used by dataset files.
func ExampleParse() {
	for _, s := range []string{"1.25", "[1.25 +/- 0.5]", "[-0.5, 0.75]", "unknown"} {
		b, err := ball.Parse(s, 64)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-16q finite=%-5v mid=%v rad=%v\n", s, b.IsFinite(), b.Float64(), b.RadFloat64())
	}
	// Output:
	// "1.25"           finite=true  mid=1.25 rad=0
	// "[1.25 +/- 0.5]" finite=true  mid=1.25 rad=0.5
	// "[-0.5, 0.75]"   finite=true  mid=0.125 rad=0.625
	// "unknown"        finite=false mid=0 rad=+Inf
}

// ExampleAdd: arithmetic on exact balls stays exact.
func ExampleAdd() {
	x := ball.Add(ball.FromFloat64(1.5), ball.FromFloat64(2.25), 64)
	fmt.Println(x, x.IsExact())
	// Output:
	// 3.75 true
}

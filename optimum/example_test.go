package optimum_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/optipoly/optimum"
)

// ExampleSumOfFITs walks the cube-sequence scenario from the problem
// statement: the constant, linear and quadratic fits of n³ first go
// wrong at 1, 15 and 58, summing to 74.
func ExampleSumOfFITs() {
	u := func(n int64) int64 { return n * n * n }
	opts := optimum.DefaultOptions()
	opts.Order = 3

	sum, err := optimum.SumOfFITs(context.Background(), u, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// 74
}

// ExampleFits shows the per-order detail behind the same sum.
func ExampleFits() {
	u := func(n int64) int64 { return n * n * n }
	opts := optimum.DefaultOptions()
	opts.Order = 3

	fits, err := optimum.Fits(context.Background(), u, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, f := range fits {
		fmt.Printf("OP(%d,%d) = %d\n", f.Order, f.Term, f.Value)
	}
	// Output:
	// OP(1,2) = 1
	// OP(2,3) = 15
	// OP(3,4) = 58
}

// ExampleAlternatingPower evaluates the degree-10 reference sequence at
// its documented fixed points.
func ExampleAlternatingPower() {
	u := optimum.AlternatingPower(10)
	fmt.Println(u(0), u(1), u(5), u(10))
	// Output:
	// 1 1 8138021 9090909091
}

package loopnest_test

import (
	"fmt"

	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/poly"
)

// ExampleAffineLoopNest_Triangular extracts the triangular form of
//
//	for i in 0:I-1
//	  for j in 0:i
func ExampleAffineLoopNest_Triangular() {
	I := poly.Var(0)
	a := loopnest.NewAffine(2)
	_ = a.AddConstraint([]int64{-1, 0}, poly.MPoly{})  // i >= 0
	_ = a.AddConstraint([]int64{1, 0}, I.AddConst(-1)) // i <= I-1
	_ = a.AddConstraint([]int64{0, -1}, poly.MPoly{})  // j >= 0
	_ = a.AddConstraint([]int64{-1, 1}, poly.MPoly{})  // j <= i

	tri, err := a.Triangular()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tri.UpperBound(0), tri.UpperBound(1), tri.Coupling())
	fmt.Println(tri.EffectiveUpperBounds())
	// Output:
	// L 1 [0 -1; -1 0]
	// [L L + 1]
}

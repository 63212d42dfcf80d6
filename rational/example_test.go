package rational_test

import (
	"fmt"

	"github.com/katalvlaran/polyloop/rational"
)

// ExampleRational_Add shows that every result is kept in lowest terms.
func ExampleRational_Add() {
	a := rational.New(1, 6)
	b := rational.New(1, 3)
	fmt.Println(a.Add(b), a.Mul(b), a.Div(b))
	// Output:
	// 1/2 1/18 1/2
}

package tuple_test

import (
	"fmt"

	"github.com/quaterlab/affine/tuple"
)

// ExamplePoint2_Sub demonstrates that subtracting points yields the
// displacement vector between them.
func ExamplePoint2_Sub() {
	p := tuple.Point2{X: 1, Y: 1}
	q := tuple.Point2{X: 4, Y: 5}

	d := q.Sub(p)
	fmt.Println(d, d.Length())

	// Output:
	// <3, 4> 5
}

// ExampleVector3_Cross demonstrates the right-hand rule: x × y = z.
func ExampleVector3_Cross() {
	x := tuple.Vector3{X: 1}
	y := tuple.Vector3{Y: 1}

	fmt.Println(x.Cross(y))

	// Output:
	// <0, 0, 1>
}

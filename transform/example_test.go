package transform_test

import (
	"fmt"

	"github.com/quaterlab/affine/transform"
	"github.com/quaterlab/affine/tuple"
)

// ExampleMatrix4 demonstrates left-to-right composition: the chain reads in
// the order the operations are applied.
func ExampleMatrix4() {
	m := transform.New().Translate(1, 0, 0).Scale(2, 2, 2)

	x, y, z := m.Transform(0, 0, 0)
	fmt.Println(x, y, z)

	// Output:
	// 2 0 0
}

// ExampleMatrix4_TransformValue shows that a transformed tuple keeps its
// concrete kind.
func ExampleMatrix4_TransformValue() {
	m := transform.NewTranslation(1, 2, 0)

	out, _ := m.TransformValue(tuple.Point2{X: 1, Y: 1})
	fmt.Printf("%T %v\n", out, out)

	// Output:
	// tuple.Point2 (2, 3)
}

// ExampleMatrix4_Invert demonstrates in-place inversion with chaining.
func ExampleMatrix4_Invert() {
	m := transform.NewTranslation(4, -1, 2)
	if _, err := m.Invert(); err != nil {
		fmt.Println("not invertible:", err)
		return
	}

	x, y, z := m.Transform(4, -1, 2)
	fmt.Println(x, y, z)

	// Output:
	// 0 0 0
}

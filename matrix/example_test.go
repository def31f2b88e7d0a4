package matrix_test

import (
	"fmt"

	"github.com/quaterlab/affine/matrix"
)

// ExampleMul demonstrates a plain matrix product over Dense storage.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b, _ := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})

	p, _ := matrix.Mul(a, b)
	fmt.Print(p)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleVecMat demonstrates the row-vector product used for homogeneous
// coordinates: the vector multiplies the matrix on its left.
func ExampleVecMat() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})

	y, _ := matrix.VecMat([]float64{1, 2}, m)
	fmt.Println(y)

	// Output:
	// [9 12 15]
}

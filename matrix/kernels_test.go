// Package matrix_test contains unit tests for the linear-algebra kernels:
// Mul, Transpose, VecMat and Inverse.
package matrix_test

import (
	"testing"

	"github.com/quaterlab/affine/matrix"
	"github.com/stretchr/testify/require"
)

// kernelEps is the element-wise tolerance for inexact float comparisons.
const kernelEps = 1e-12

// mustFrom builds a Dense from row-major data and fails the test on error.
func mustFrom(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, data) // construct from literal data
	require.NoError(t, err)                         // construction must succeed

	return m
}

// requireElem asserts a single element value within kernelEps.
func requireElem(t *testing.T, m matrix.Matrix, i, j int, want float64) {
	t.Helper()
	v, err := m.At(i, j)                    // bounds-checked read
	require.NoError(t, err)                 // read must succeed
	require.InDelta(t, want, v, kernelEps)  // compare within tolerance
}

// TestMulKnownProduct verifies Mul against a hand-computed 2x3 · 3x2 product.
func TestMulKnownProduct(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})      // left operand
	b := mustFrom(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})   // right operand

	p, err := matrix.Mul(a, b) // compute a × b
	require.NoError(t, err)    // multiplication must succeed

	require.Equal(t, 2, p.Rows()) // result shape: rows from a
	require.Equal(t, 2, p.Cols()) // result shape: cols from b
	requireElem(t, p, 0, 0, 58)   // 1·7 + 2·9 + 3·11
	requireElem(t, p, 0, 1, 64)   // 1·8 + 2·10 + 3·12
	requireElem(t, p, 1, 0, 139)  // 4·7 + 5·9 + 6·11
	requireElem(t, p, 1, 1, 154)  // 4·8 + 5·10 + 6·12
}

// TestMulValidation ensures Mul rejects nil operands and inner-dimension mismatches.
func TestMulValidation(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // 2x3 operand

	_, err := matrix.Mul(nil, a)                  // nil left operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix)  // expect ErrNilMatrix

	_, err = matrix.Mul(a, a)                            // 2x3 · 2x3: inner mismatch (3 vs 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestMulDoesNotMutateOperands ensures Mul allocates its result instead of
// writing into either operand.
func TestMulDoesNotMutateOperands(t *testing.T) {
	a := mustFrom(t, 2, 2, []float64{1, 2, 3, 4}) // left operand
	b := mustFrom(t, 2, 2, []float64{5, 6, 7, 8}) // right operand

	_, err := matrix.Mul(a, b) // compute the product and discard it
	require.NoError(t, err)    // multiplication must succeed

	requireElem(t, a, 0, 0, 1) // a unchanged
	requireElem(t, a, 1, 1, 4) // a unchanged
	requireElem(t, b, 0, 0, 5) // b unchanged
	requireElem(t, b, 1, 1, 8) // b unchanged
}

// TestTransposeKnown verifies Transpose on a rectangular matrix.
func TestTransposeKnown(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // 2x3 input

	tr, err := matrix.Transpose(a) // compute aᵀ
	require.NoError(t, err)        // transpose must succeed

	require.Equal(t, 3, tr.Rows()) // shape flipped: 3 rows
	require.Equal(t, 2, tr.Cols()) // shape flipped: 2 cols
	requireElem(t, tr, 0, 1, 4)    // tr[0,1] == a[1,0]
	requireElem(t, tr, 2, 0, 3)    // tr[2,0] == a[0,2]
}

// TestTransposeInvolution verifies (aᵀ)ᵀ == a element-wise.
func TestTransposeInvolution(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // 2x3 input

	tr, err := matrix.Transpose(a) // first transpose
	require.NoError(t, err)        // must succeed
	rt, err := matrix.Transpose(tr) // transpose back
	require.NoError(t, err)         // must succeed

	var i, j int
	for i = 0; i < a.Rows(); i++ { // compare every element
		for j = 0; j < a.Cols(); j++ {
			want, errA := a.At(i, j)  // original element
			require.NoError(t, errA)  // read must succeed
			requireElem(t, rt, i, j, want)
		}
	}
}

// TestVecMatKnown verifies the row-vector product against hand-computed values.
func TestVecMatKnown(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // 2x3 matrix

	y, err := matrix.VecMat([]float64{1, 2}, a) // (1,2)·a
	require.NoError(t, err)                     // product must succeed

	require.Len(t, y, 3)                       // result length equals Cols
	require.InDelta(t, 9, y[0], kernelEps)     // 1·1 + 2·4
	require.InDelta(t, 12, y[1], kernelEps)    // 1·2 + 2·5
	require.InDelta(t, 15, y[2], kernelEps)    // 1·3 + 2·6
}

// TestVecMatValidation ensures VecMat rejects nil matrices and length mismatches.
func TestVecMatValidation(t *testing.T) {
	a := mustFrom(t, 2, 2, []float64{1, 0, 0, 1}) // 2x2 identity

	_, err := matrix.VecMat([]float64{1, 2}, nil) // nil matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix)  // expect ErrNilMatrix

	_, err = matrix.VecMat([]float64{1, 2, 3}, a)        // length 3 vs 2 rows
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestInverseKnown verifies Inverse against a hand-computed 2x2 inverse.
func TestInverseKnown(t *testing.T) {
	a := mustFrom(t, 2, 2, []float64{4, 7, 2, 6}) // det = 10

	inv, err := matrix.Inverse(a) // compute a⁻¹
	require.NoError(t, err)       // inversion must succeed

	requireElem(t, inv, 0, 0, 0.6)  // 6/10
	requireElem(t, inv, 0, 1, -0.7) // -7/10
	requireElem(t, inv, 1, 0, -0.2) // -2/10
	requireElem(t, inv, 1, 1, 0.4)  // 4/10
}

// TestInverseZeroLeadingPivot ensures partial pivoting inverts matrices whose
// leading entry is zero — a plain rotation by 90 degrees is the canonical case.
func TestInverseZeroLeadingPivot(t *testing.T) {
	r := mustFrom(t, 2, 2, []float64{0, 1, -1, 0}) // 90° rotation block, a[0,0] == 0

	inv, err := matrix.Inverse(r) // a no-pivot scheme would misreport ErrSingular here
	require.NoError(t, err)       // pivoting must handle the zero leading entry

	requireElem(t, inv, 0, 0, 0)  // inverse is the -90° rotation block
	requireElem(t, inv, 0, 1, -1)
	requireElem(t, inv, 1, 0, 1)
	requireElem(t, inv, 1, 1, 0)
}

// TestInverseTimesOriginalIsIdentity verifies the inverse law a · a⁻¹ == I.
func TestInverseTimesOriginalIsIdentity(t *testing.T) {
	a := mustFrom(t, 3, 3, []float64{
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	}) // invertible 3x3

	inv, err := matrix.Inverse(a) // compute a⁻¹
	require.NoError(t, err)       // inversion must succeed

	p, err := matrix.Mul(a, inv) // a · a⁻¹
	require.NoError(t, err)      // multiplication must succeed

	var i, j int
	for i = 0; i < 3; i++ { // compare against the identity element-wise
		for j = 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			requireElem(t, p, i, j, want)
		}
	}
}

// TestInverseSingular ensures a rank-deficient matrix yields ErrSingular.
func TestInverseSingular(t *testing.T) {
	a := mustFrom(t, 2, 2, []float64{1, 2, 2, 4}) // second row is 2× the first

	_, err := matrix.Inverse(a)                  // attempt inversion
	require.ErrorIs(t, err, matrix.ErrSingular)  // expect ErrSingular
}

// TestInverseValidation ensures Inverse rejects nil and non-square inputs.
func TestInverseValidation(t *testing.T) {
	_, err := matrix.Inverse(nil)                // nil input
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	rect := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}) // non-square input
	_, err = matrix.Inverse(rect)                          // attempt inversion
	require.ErrorIs(t, err, matrix.ErrNonSquare)           // expect ErrNonSquare
}

// TestInverseDoesNotMutateInput ensures the input matrix survives inversion untouched.
func TestInverseDoesNotMutateInput(t *testing.T) {
	a := mustFrom(t, 2, 2, []float64{4, 7, 2, 6}) // invertible input

	_, err := matrix.Inverse(a) // compute and discard the inverse
	require.NoError(t, err)     // inversion must succeed

	requireElem(t, a, 0, 0, 4) // input unchanged
	requireElem(t, a, 0, 1, 7) // input unchanged
	requireElem(t, a, 1, 0, 2) // input unchanged
	requireElem(t, a, 1, 1, 6) // input unchanged
}

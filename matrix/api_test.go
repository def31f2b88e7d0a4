// Package matrix_test contains unit tests for the facade constructors in api.go.
package matrix_test

import (
	"testing"

	"github.com/quaterlab/affine/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewIdentity verifies the identity constructor: ones on the diagonal,
// zeros elsewhere.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(4) // build I_4
	require.NoError(t, err)         // construction must succeed

	var i, j int
	for i = 0; i < 4; i++ { // inspect every element
		for j = 0; j < 4; j++ {
			v, errAt := I.At(i, j) // bounds-checked read
			require.NoError(t, errAt)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal is one
			} else {
				require.Equal(t, 0.0, v) // off-diagonal is zero
			}
		}
	}
}

// TestNewIdentityInvalid ensures non-positive dimensions are rejected.
func TestNewIdentityInvalid(t *testing.T) {
	_, err := matrix.NewIdentity(0)                      // zero dimension
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestZerosLike verifies shape copying without value copying.
func TestZerosLike(t *testing.T) {
	src, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6}) // non-zero source
	require.NoError(t, err)                                            // construction must succeed

	z, err := matrix.ZerosLike(src) // same shape, zeroed values
	require.NoError(t, err)         // construction must succeed

	require.Equal(t, 2, z.Rows()) // shape matches source rows
	require.Equal(t, 3, z.Cols()) // shape matches source cols
	v, err := z.At(0, 0)          // sample an element
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // values are zero, not copied
}

// TestIdentityLike ensures the square requirement is enforced.
func TestIdentityLike(t *testing.T) {
	sq, err := matrix.NewDense(3, 3) // square source
	require.NoError(t, err)

	I, err := matrix.IdentityLike(sq) // identity of matching dimension
	require.NoError(t, err)
	require.Equal(t, 3, I.Rows()) // dimension carried over

	rect, err := matrix.NewDense(2, 3) // rectangular source
	require.NoError(t, err)

	_, err = matrix.IdentityLike(rect)           // must be rejected
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare
}

// TestCloneMatrix verifies the facade delegates to a deep clone.
func TestCloneMatrix(t *testing.T) {
	src, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}) // source values
	require.NoError(t, err)

	c := matrix.CloneMatrix(src) // clone via the facade
	_ = c.Set(0, 0, 99)          // mutate the clone only

	v, err := src.At(0, 0) // source element
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // source unaffected by clone mutation
}

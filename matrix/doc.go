// Package matrix offers the dense numeric backend for homogeneous transforms.
//
// The matrix package provides:
//
//   - The Matrix interface: a uniform abstraction over two-dimensional
//     mutable arrays of float64 values with bounds-checked access and
//     deep cloning.
//   - Dense: a row-major, flat-slice implementation of Matrix.
//   - Linear-algebra kernels over the interface: Mul, Transpose, Inverse
//     (Gauss–Jordan with partial pivoting) and VecMat (row-vector times
//     matrix, the application primitive for homogeneous coordinates).
//   - Facade constructors: NewZeros, NewIdentity, NewDenseFrom, ZerosLike,
//     IdentityLike.
//
// All kernels validate fail-fast through central validators and return
// package sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) matched via errors.Is. Kernels never mutate their
// inputs; every result is freshly allocated.
//
// Dimensions are general, but the package is tuned for the small fixed
// sizes (4x4, 1x4) used by transform.Matrix4.
//
// See the examples in this package and transform for usage patterns.
package matrix

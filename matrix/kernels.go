// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, inversion, and the row-vector product.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and return plain sentinels or wrap
//     them once via matrixErrorf at the kernel boundary.
//   - Kernels never mutate their inputs; every result is freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulation loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an unusable pivot during inversion.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opVecMat    = "VecMat"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a × b without mutating either operand.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast path for two *Dense operands (flat i→k→j loops over the
//     backing slices); generic i→j→k At/Set fallback otherwise.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero a[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the cache-friendly flat-slice path.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// VecMat returns the row-vector product y = x·m, where x is treated as a
// 1×r row vector and m is an r×c matrix: y[j] = Σ_i x[i]*m[i,j].
// This is the application primitive for homogeneous coordinates, where a
// point is a row vector multiplied by the accumulated transform on its right.
//
// Implementation:
//   - Stage 1: ValidateVecCompatible(x, m); allocate y of length c.
//   - Stage 2: Fast path for *Dense (i→j flat loops, skipping zero x[i]);
//     generic At fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Rows).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	// Validate shape contract via canonical validator
	if err := ValidateVecCompatible(x, m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)
	var (
		i, j int     // loop iterators
		xv   float64 // current vector element
	)
	// Fast-path for Dense
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 {
				continue // skip zero for performance
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * dm.data[base+j]
			}
		}
		return y, nil
	}

	// Fallback: generic interface loop
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		xv = x[i]
		if xv == 0 {
			continue // skip zero for performance
		}
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opVecMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += xv * v
		}
	}

	return y, nil
}

// Inverse computes m⁻¹ for a square matrix via Gauss–Jordan elimination with
// partial pivoting. The input is read-only; the result is freshly allocated.
//
// Partial pivoting matters here: the accumulated transforms this backend
// serves are dominated by rotations, whose leading entries are legitimately
// zero (cos 90° = 0). A no-pivot scheme would misreport such matrices as
// singular; row swaps by the column's largest absolute value keep every
// invertible input invertible.
//
// Implementation:
//   - Stage 1: Validate (not nil, square); copy m into a working buffer and
//     seed the result with I_n.
//   - Stage 2: For each column: select the pivot row by max |value| at or
//     below the diagonal, swap it up, normalize the pivot row, and eliminate
//     the column from every other row — mirroring the operations into the
//     result buffer.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the best available pivot is exactly zero (the matrix
//     has zero determinant).
//
// Determinism:
//   - Fixed traversal; pivot choice depends only on input values.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need m⁻¹·b for a few b, a triangular solve is cheaper than
//     forming the full inverse; this kernel favors the small fixed sizes
//     (n=4) where the difference is irrelevant.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Copy input into working buffer a; seed inv with the identity
	n := m.Rows()
	a := make([]float64, n*n)
	var (
		i, j, col int     // loop iterators
		v         float64 // scratch element
		err       error
	)
	if dm, ok := m.(*Dense); ok {
		copy(a, dm.data) // flat copy fast-path
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				a[i*n+j] = v
			}
		}
	}
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		pivotRow         int     // row index of the selected pivot
		pivotAbs, pivot  float64 // pivot magnitude and value
		factor           float64 // elimination multiplier
		basePivot, baseR int     // row offsets into flat buffers
	)
	for col = 0; col < n; col++ {
		// Select pivot: largest |a[row,col]| for row ≥ col
		pivotRow, pivotAbs = col, math.Abs(a[col*n+col])
		for i = col + 1; i < n; i++ {
			if abs := math.Abs(a[i*n+col]); abs > pivotAbs {
				pivotRow, pivotAbs = i, abs
			}
		}
		if pivotAbs == ZeroPivot {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		// Swap the pivot row up (both buffers)
		if pivotRow != col {
			basePivot, baseR = pivotRow*n, col*n
			for j = 0; j < n; j++ {
				a[basePivot+j], a[baseR+j] = a[baseR+j], a[basePivot+j]
				inv.data[basePivot+j], inv.data[baseR+j] = inv.data[baseR+j], inv.data[basePivot+j]
			}
		}
		// Normalize the pivot row
		basePivot = col * n
		pivot = a[basePivot+col]
		for j = 0; j < n; j++ {
			a[basePivot+j] /= pivot
			inv.data[basePivot+j] /= pivot
		}
		// Eliminate the column from every other row
		for i = 0; i < n; i++ {
			if i == col {
				continue
			}
			baseR = i * n
			factor = a[baseR+col]
			if factor == 0 {
				continue // row already eliminated
			}
			for j = 0; j < n; j++ {
				a[baseR+j] -= factor * a[basePivot+j]
				inv.data[baseR+j] -= factor * inv.data[basePivot+j]
			}
		}
	}

	return inv, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: central validators shared by all kernels.
// Kernels MUST validate through these helpers so the same condition always
// yields the same sentinel, regardless of entry point.

package matrix

// ValidateNotNil ensures m is a usable (non-nil) Matrix.
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	// A typed-nil *Dense also has no storage to operate on.
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m is non-nil and has Rows == Cols.
// Returns ErrNilMatrix or ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecCompatible ensures m is non-nil and len(x) == m.Rows,
// the shape contract for the row-vector product x·m.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecCompatible(x []float64, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(x) != m.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

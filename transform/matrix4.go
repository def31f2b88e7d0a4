// Package transform: the Matrix4 type, its constructors, operators and
// mutators. Point/vector application lives in value.go.
package transform

import (
	"fmt"
	"math"
	"strings"

	"github.com/quaterlab/affine/matrix"
)

// dim is the fixed dimension of every homogeneous transform matrix.
const dim = 4

// degToRad converts an angle in degrees to radians.
const degToRad = math.Pi / 180.0

// Matrix4 is a mutable 4x4 homogeneous transformation matrix.
//
// The zero Matrix4 is not usable; construct instances via New,
// NewTranslation, NewRotation, NewRotationZ or NewScale. Each instance owns
// its storage exclusively: Copy, Inverse and Transpose allocate independent
// storage, and composition never aliases operand buffers.
type Matrix4 struct {
	mat matrix.Matrix // 4x4 backing storage, row-major
}

// mustStorage converts an impossible backend failure into a panic.
// Every call site operates on validated 4x4 shapes, so an error here is a
// programmer error, not a user condition.
func mustStorage(m matrix.Matrix, err error) matrix.Matrix {
	if err != nil {
		panic(fmt.Sprintf("transform: backend failure on fixed 4x4 shape: %v", err))
	}

	return m
}

// identityStorage returns a fresh 4x4 identity.
func identityStorage() matrix.Matrix {
	ident, err := matrix.NewIdentity(dim)

	return mustStorage(ident, err)
}

// translationStorage returns the matrix translating by (x, y, z):
// identity with the offsets in the bottom row (row-vector convention).
func translationStorage(x, y, z float64) matrix.Matrix {
	d, err := matrix.NewDenseFrom(dim, dim, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	})

	return mustStorage(d, err)
}

// rotationStorage returns the axis-angle rotation matrix for angle degrees
// about the axis (x, y, z). The axis components are used exactly as given —
// no normalization — so a non-unit axis scales as it rotates.
func rotationStorage(angle, x, y, z float64) matrix.Matrix {
	rad := angle * degToRad
	c := math.Cos(rad)
	s := math.Sin(rad)
	f := 1 - c

	d, err := matrix.NewDenseFrom(dim, dim, []float64{
		x*x*f + c, x*y*f + z*s, x*z*f - y*s, 0,
		x*y*f - z*s, y*y*f + c, y*z*f + x*s, 0,
		x*z*f + y*s, y*z*f - x*s, z*z*f + c, 0,
		0, 0, 0, 1,
	})

	return mustStorage(d, err)
}

// scaleStorage returns the diagonal scale matrix diag(x, y, z, 1).
func scaleStorage(x, y, z float64) matrix.Matrix {
	d, err := matrix.NewDenseFrom(dim, dim, []float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})

	return mustStorage(d, err)
}

// New returns the identity transform.
func New() *Matrix4 {
	return &Matrix4{mat: identityStorage()}
}

// NewTranslation returns the transform translating by (x, y, z).
func NewTranslation(x, y, z float64) *Matrix4 {
	return &Matrix4{mat: translationStorage(x, y, z)}
}

// NewRotation returns the transform rotating by angle degrees about the axis
// (x, y, z), counterclockwise when viewed from the positive axis toward the
// origin. The axis is not normalized; pass a unit axis for a pure rotation.
func NewRotation(angle, x, y, z float64) *Matrix4 {
	return &Matrix4{mat: rotationStorage(angle, x, y, z)}
}

// NewRotationZ returns the transform rotating by angle degrees about the
// z-axis, the default axis: a standard 2D rotation in the xy-plane.
func NewRotationZ(angle float64) *Matrix4 {
	return NewRotation(angle, 0, 0, 1)
}

// NewScale returns the transform scaling by (x, y, z) along the axes.
func NewScale(x, y, z float64) *Matrix4 {
	return &Matrix4{mat: scaleStorage(x, y, z)}
}

// Mul returns the composition "apply m, then o" as a new transform, leaving
// both operands untouched. Per the right-multiplication convention, the
// result's storage is m.storage · o.storage.
//
// A nil operand is a programmer error and panics.
func (m *Matrix4) Mul(o *Matrix4) *Matrix4 {
	return &Matrix4{mat: mustStorage(matrix.Mul(m.mat, o.mat))}
}

// MulAssign composes o onto m in place ("apply m, then o") and returns m for
// chaining. The product is computed into fresh storage before the swap, so
// the receiver's buffer is never read and written simultaneously.
func (m *Matrix4) MulAssign(o *Matrix4) *Matrix4 {
	m.mat = mustStorage(matrix.Mul(m.mat, o.mat))

	return m
}

// rightMultiply appends op to the accumulated transform in place.
func (m *Matrix4) rightMultiply(op matrix.Matrix) *Matrix4 {
	m.mat = mustStorage(matrix.Mul(m.mat, op))

	return m
}

// Translate appends a translation by (x, y, z) to m in place and returns m.
func (m *Matrix4) Translate(x, y, z float64) *Matrix4 {
	return m.rightMultiply(translationStorage(x, y, z))
}

// Rotate appends a rotation of angle degrees about the axis (x, y, z) to m
// in place and returns m. The axis is not normalized.
func (m *Matrix4) Rotate(angle, x, y, z float64) *Matrix4 {
	return m.rightMultiply(rotationStorage(angle, x, y, z))
}

// Scale appends a scale by (x, y, z) to m in place and returns m.
func (m *Matrix4) Scale(x, y, z float64) *Matrix4 {
	return m.rightMultiply(scaleStorage(x, y, z))
}

// Copy returns an independent deep copy of m.
func (m *Matrix4) Copy() *Matrix4 {
	return &Matrix4{mat: m.mat.Clone()}
}

// Inverse returns the inverse of m as a new transform, leaving m untouched.
// Returns matrix.ErrSingular (wrapped) when m is not invertible.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	inv, err := matrix.Inverse(m.mat)
	if err != nil {
		return nil, err // surface the backend failure untranslated
	}

	return &Matrix4{mat: inv}, nil
}

// Invert replaces m with its inverse in place and returns m for chaining.
// The inverse is computed into fresh storage first: when m is singular the
// error is returned and the receiver is left fully intact.
func (m *Matrix4) Invert() (*Matrix4, error) {
	inv, err := matrix.Inverse(m.mat)
	if err != nil {
		return nil, err
	}
	m.mat = inv

	return m, nil
}

// Transpose returns the transpose of m as a new transform, leaving m
// untouched.
func (m *Matrix4) Transpose() *Matrix4 {
	return &Matrix4{mat: mustStorage(matrix.Transpose(m.mat))}
}

// At retrieves the storage element at (row, col).
// Returns matrix.ErrOutOfRange (wrapped) on invalid indices.
func (m *Matrix4) At(row, col int) (float64, error) {
	return m.mat.At(row, col)
}

// at reads a storage element whose indices are known to be in range.
func (m *Matrix4) at(row, col int) float64 {
	v, err := m.mat.At(row, col)
	if err != nil {
		panic(fmt.Sprintf("transform: At(%d,%d) on fixed 4x4 shape: %v", row, col, err))
	}

	return v
}

// EqualApprox reports whether m and o are element-wise equal within eps.
// A nil operand is never equal.
func (m *Matrix4) EqualApprox(o *Matrix4, eps float64) bool {
	if o == nil {
		return false
	}
	var i, j int
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			if math.Abs(m.at(i, j)-o.at(i, j)) > eps {
				return false
			}
		}
	}

	return true
}

// Transform applies m to the homogeneous point (x, y, z, 1) and returns the
// first three output components. The fourth component is discarded, NOT
// divided through: Matrix4 models affine transforms, not projective ones.
func (m *Matrix4) Transform(x, y, z float64) (float64, float64, float64) {
	out, err := matrix.VecMat([]float64{x, y, z, 1}, m.mat)
	if err != nil {
		panic(fmt.Sprintf("transform: VecMat on fixed 4x4 shape: %v", err))
	}

	return out[0], out[1], out[2]
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Matrix4) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < dim; i++ {
		b.WriteByte('[')
		for j = 0; j < dim; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.at(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// GoString implements fmt.GoStringer: a single-line unambiguous form listing
// all sixteen elements in row-major order.
func (m *Matrix4) GoString() string {
	var b strings.Builder
	b.WriteString("transform.Matrix4{")
	var i, j int
	for i = 0; i < dim; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('{')
		for j = 0; j < dim; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.at(i, j))
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')

	return b.String()
}

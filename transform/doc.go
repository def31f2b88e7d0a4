// Package transform implements Matrix4, a mutable 4x4 homogeneous-coordinate
// transformation matrix supporting translation, rotation, scaling,
// composition, inversion, and point/vector application.
//
// Conventions
//
// Transforms compose in left-to-right application order: appending an
// operation multiplies its matrix on the RIGHT of the accumulated storage
// product (right-multiplication convention). Reading a chain left to right
// therefore reads in the order the operations are applied:
//
//	m := transform.New().Translate(1, 0, 0).Scale(2, 2, 2)
//	x, y, z := m.Transform(0, 0, 0) // translate first, then scale → (2, 0, 0)
//
// Internally a point is a homogeneous row vector (x, y, z, 1) multiplied by
// the storage on its right; translation components live in the bottom row.
// Transform discards the fourth output component rather than dividing by it:
// Matrix4 models affine transforms, not general projective ones.
//
// Angles are in degrees. Rotation about an axis follows the axis-angle
// formula with counterclockwise orientation when viewed from the positive
// axis toward the origin. The axis is used exactly as given — it is NOT
// normalized internally; pass a unit axis for a pure rotation.
//
// Mutability
//
// Matrix4 is a plain mutable value type. Translate, Rotate, Scale, Invert
// and MulAssign mutate the receiver in place and return it for chaining;
// Copy, Inverse, Transpose and Mul never touch the receiver. In-place
// operations compute into scratch storage first, so a failure (a singular
// Invert) leaves the receiver fully intact. Instances are not safe for
// concurrent mutation; each one needs external synchronization if shared.
//
// Failure modes are deliberately few: Inverse and Invert surface
// matrix.ErrSingular from the numeric backend untranslated, and
// TransformValue rejects anything that is not one of the four tuple kinds
// with ErrUnsupportedValue.
package transform

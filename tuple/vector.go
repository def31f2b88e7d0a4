// Package tuple: Vector2 and Vector3 displacement types.
package tuple

import (
	"fmt"
	"math"
)

// degPerRad converts radians to degrees (the library's angle unit).
const degPerRad = 180.0 / math.Pi

// Vector2 is a displacement in the plane.
type Vector2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v − o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by k.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product v·o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar z-component of the 3D cross product of v and o
// embedded in the plane (positive when o lies counterclockwise of v).
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns |v|², avoiding the square root.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length |v|.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector has no direction and is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// Angle returns the angle between v and o in degrees, in [0, 180].
// Both vectors must be non-zero; a zero operand yields NaN (the caller is
// responsible for valid inputs, as everywhere in this library).
func (v Vector2) Angle(o Vector2) float64 {
	// Clamp the cosine into [-1,1] to guard against rounding drift.
	cos := v.Dot(o) / (v.Length() * o.Length())
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * degPerRad
}

// Interpolate returns (1−alpha)·v + alpha·o.
// alpha=0 yields v, alpha=1 yields o; values outside [0,1] extrapolate.
func (v Vector2) Interpolate(o Vector2, alpha float64) Vector2 {
	return v.Scale(1 - alpha).Add(o.Scale(alpha))
}

// IsZero reports whether every component is within eps of zero.
func (v Vector2) IsZero(eps float64) bool {
	return math.Abs(v.X) <= eps && math.Abs(v.Y) <= eps
}

// String implements fmt.Stringer.
func (v Vector2) String() string {
	return fmt.Sprintf("<%g, %g>", v.X, v.Y)
}

// Vector3 is a displacement in space.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v − o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by k.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Dot returns the dot product v·o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o (right-hand rule).
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|², avoiding the square root.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length |v|.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector has no direction and is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// Angle returns the angle between v and o in degrees, in [0, 180].
// Both vectors must be non-zero; a zero operand yields NaN.
func (v Vector3) Angle(o Vector3) float64 {
	cos := v.Dot(o) / (v.Length() * o.Length())
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * degPerRad
}

// Interpolate returns (1−alpha)·v + alpha·o.
func (v Vector3) Interpolate(o Vector3, alpha float64) Vector3 {
	return v.Scale(1 - alpha).Add(o.Scale(alpha))
}

// IsZero reports whether every component is within eps of zero.
func (v Vector3) IsZero(eps float64) bool {
	return math.Abs(v.X) <= eps && math.Abs(v.Y) <= eps && math.Abs(v.Z) <= eps
}

// String implements fmt.Stringer.
func (v Vector3) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}

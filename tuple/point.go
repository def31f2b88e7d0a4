// Package tuple: Point2 and Point3 position types.
package tuple

import "fmt"

// Point2 is a position in the plane.
type Point2 struct {
	X, Y float64
}

// Add returns the point offset by the displacement v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from o to p (p − o).
func (p Point2) Sub(o Point2) Vector2 {
	return Vector2{X: p.X - o.X, Y: p.Y - o.Y}
}

// Vector returns the position vector from the origin to p.
func (p Point2) Vector() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// DistanceSquaredTo returns the squared Euclidean distance between p and o.
func (p Point2) DistanceSquaredTo(o Point2) float64 {
	return p.Sub(o).LengthSquared()
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point2) DistanceTo(o Point2) float64 {
	return p.Sub(o).Length()
}

// Midpoint returns the point halfway between p and o.
func (p Point2) Midpoint(o Point2) Point2 {
	return p.Interpolate(o, 0.5)
}

// Interpolate returns (1−alpha)·p + alpha·o.
// alpha=0 yields p, alpha=1 yields o; values outside [0,1] extrapolate.
func (p Point2) Interpolate(o Point2, alpha float64) Point2 {
	return Point2{
		X: (1-alpha)*p.X + alpha*o.X,
		Y: (1-alpha)*p.Y + alpha*o.Y,
	}
}

// String implements fmt.Stringer.
func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Point3 is a position in space.
type Point3 struct {
	X, Y, Z float64
}

// Add returns the point offset by the displacement v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from o to p (p − o).
func (p Point3) Sub(o Point3) Vector3 {
	return Vector3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Vector returns the position vector from the origin to p.
func (p Point3) Vector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// DistanceSquaredTo returns the squared Euclidean distance between p and o.
func (p Point3) DistanceSquaredTo(o Point3) float64 {
	return p.Sub(o).LengthSquared()
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point3) DistanceTo(o Point3) float64 {
	return p.Sub(o).Length()
}

// Midpoint returns the point halfway between p and o.
func (p Point3) Midpoint(o Point3) Point3 {
	return p.Interpolate(o, 0.5)
}

// Interpolate returns (1−alpha)·p + alpha·o.
func (p Point3) Interpolate(o Point3, alpha float64) Point3 {
	return Point3{
		X: (1-alpha)*p.X + alpha*o.X,
		Y: (1-alpha)*p.Y + alpha*o.Y,
		Z: (1-alpha)*p.Z + alpha*o.Z,
	}
}

// String implements fmt.Stringer.
func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Package transform: applying a Matrix4 to the closed set of tuple kinds.
package transform

import (
	"fmt"

	"github.com/quaterlab/affine/tuple"
)

// TransformValue applies m to a point or vector and returns a new value of
// the same concrete kind. The dispatch is a closed type switch over the four
// tuple variants:
//
//   - tuple.Point2, tuple.Vector2 — embedded as (x, y, 0, 1); the result
//     keeps the first two output components.
//   - tuple.Point3, tuple.Vector3 — embedded as (x, y, z, 1); the result
//     keeps the first three output components.
//
// Any other value yields ErrUnsupportedValue; the condition is signaled
// explicitly, never silently ignored.
func (m *Matrix4) TransformValue(value any) (any, error) {
	switch v := value.(type) {
	case tuple.Point2:
		return m.TransformPoint2(v), nil
	case tuple.Vector2:
		return m.TransformVector2(v), nil
	case tuple.Point3:
		return m.TransformPoint3(v), nil
	case tuple.Vector3:
		return m.TransformVector3(v), nil
	default:
		return nil, fmt.Errorf("TransformValue(%T): %w", value, ErrUnsupportedValue)
	}
}

// TransformPoint2 applies m to p embedded in the z=0 plane.
func (m *Matrix4) TransformPoint2(p tuple.Point2) tuple.Point2 {
	x, y, _ := m.Transform(p.X, p.Y, 0)

	return tuple.Point2{X: x, Y: y}
}

// TransformVector2 applies m to v embedded in the z=0 plane.
func (m *Matrix4) TransformVector2(v tuple.Vector2) tuple.Vector2 {
	x, y, _ := m.Transform(v.X, v.Y, 0)

	return tuple.Vector2{X: x, Y: y}
}

// TransformPoint3 applies m to p.
func (m *Matrix4) TransformPoint3(p tuple.Point3) tuple.Point3 {
	x, y, z := m.Transform(p.X, p.Y, p.Z)

	return tuple.Point3{X: x, Y: y, Z: z}
}

// TransformVector3 applies m to v.
func (m *Matrix4) TransformVector3(v tuple.Vector3) tuple.Vector3 {
	x, y, z := m.Transform(v.X, v.Y, v.Z)

	return tuple.Vector3{X: x, Y: y, Z: z}
}

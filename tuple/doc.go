// Package tuple provides the 2- and 3-component point and vector value types
// consumed by transform.Matrix4.
//
// The package defines a small closed set of variants:
//
//   - Point2, Point3  — positions; support point−point difference,
//     point+vector offset, distance, midpoint and interpolation.
//   - Vector2, Vector3 — displacements; support the usual vector algebra
//     (add, sub, scale, dot, cross, length, normalize, angle, interpolate).
//
// All four are plain value types: every operation returns a new value and
// never mutates its operands, so copies are always deep and instances never
// share state. Angles are expressed in degrees throughout the library.
//
// Points and vectors are deliberately distinct types even when their fields
// coincide: a transform treats a point homogeneously with w=1 and hands back
// the same concrete kind it was given.
package tuple

// Package affine is a small, self-contained library for homogeneous-coordinate
// geometry: 4x4 affine transformation matrices plus the 2D/3D points and
// vectors they act on.
//
// 🚀 What is affine?
//
//	A pure-Go, dependency-light library that brings together:
//		• transform.Matrix4 — translation, rotation, scale, composition,
//		  inversion and transposition of homogeneous 4x4 transforms
//		• tuple — Point2/Point3/Vector2/Vector3 value types with the usual
//		  vector algebra (add, sub, dot, cross, normalize, interpolate)
//		• matrix — the dense numeric backend (allocate, multiply, invert,
//		  transpose) behind Matrix4, usable on its own
//
// ✨ Why choose affine?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no hidden numeric policy
//   - Pure Go – no cgo, no hidden deps
//   - Chainable – every in-place mutator returns its receiver
//
// Everything is organized under three subpackages:
//
//	matrix/    — Matrix interface, row-major Dense storage, linear-algebra kernels
//	transform/ — Matrix4 homogeneous transforms (the heart of the library)
//	tuple/     — Point2, Point3, Vector2, Vector3 value types
//
// Quick example (left-to-right composition: translate first, then scale):
//
//	m := transform.New().Translate(1, 0, 0).Scale(2, 2, 2)
//	x, y, z := m.Transform(0, 0, 0) // (2, 0, 0)
//
// Dive into the per-package docs for the full surface and the composition
// conventions (right-multiplication, row-vector application).
//
//	go get github.com/quaterlab/affine/transform
package affine

// Package transform_test provides benchmarks for Matrix4 composition and
// application.
package transform_test

import (
	"testing"

	"github.com/quaterlab/affine/transform"
)

// sinks to defeat dead-code elimination
var (
	sinkM *transform.Matrix4
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	m := transform.NewRotation(30, 0, 0, 1).Translate(1, 2, 3)
	o := transform.NewScale(2, 2, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = m.Mul(o)
	}
}

func BenchmarkMulAssign(b *testing.B) {
	b.ReportAllocs()
	m := transform.New()
	o := transform.NewRotation(1, 0, 0, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = m.MulAssign(o)
	}
}

func BenchmarkTransform(b *testing.B) {
	b.ReportAllocs()
	m := transform.NewRotation(30, 0, 0, 1).Translate(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _, _ := m.Transform(1, 2, 3)
		sinkF = x
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	m := transform.NewRotation(30, 0, 0, 1).Translate(1, 2, 3).Scale(2, 2, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := m.Inverse()
		if err != nil {
			b.Fatal(err)
		}
		sinkM = inv
	}
}

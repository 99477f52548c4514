package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a position or direction in 3-space. It is a type alias for
// gonum's r3.Vec so Add/Sub/Scale and the X/Y/Z accessors come from
// gonum directly; the compensated cross product and the rest of the
// numeric primitives this package needs are layered on top below.
type Vec3 = r3.Vec

// NewVec3 builds a Vec3 from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// diffProd computes a*b - c*d using one fused multiply-add to cancel
// the rounding error of the plain subtraction. Taken from pbrt, via
// original_source/math.hpp's diff_prod.
func diffProd(a, b, c, d float64) float64 {
	cd := c * d
	res := math.FMA(a, b, -cd)
	errTerm := math.FMA(c, d, -cd)
	return res + errTerm
}

// Cross returns the compensated cross product u x v. Using diffProd
// for each component avoids catastrophic cancellation when u and v
// are nearly parallel, which is exactly the near-degenerate-triangle
// case the quadric accumulator needs to detect reliably.
func Cross(u, v Vec3) Vec3 {
	return Vec3{
		diffProd(u.Y(), v.Z(), u.Z(), v.Y()),
		diffProd(u.Z(), v.X(), u.X(), v.Z()),
		diffProd(u.X(), v.Y(), u.Y(), v.X()),
	}
}

// Dot returns the dot product of u and v.
func Dot(u, v Vec3) float64 {
	return u.X()*v.X() + u.Y()*v.Y() + u.Z()*v.Z()
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Length(a.Sub(b))
}

// Normalized returns v scaled to unit length. If v is (numerically)
// the zero vector, it is returned unchanged.
func Normalized(v Vec3) Vec3 {
	l := Length(v)
	if l < 1e-12 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return a.Add(b).Scale(0.5)
}

// isFiniteNormal reports whether x is a finite, non-zero, non-subnormal
// real number — the Go analogue of C's std::isnormal, used to detect the
// degenerate (zero-area or NaN-producing) triangle case in the quadric
// accumulator.
func isFiniteNormal(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return math.Abs(x) >= 0x1p-1022 // smallest normal float64
}

package main

// Quadric is a symmetric 4x4 error-metric matrix, stored as its 10
// upper-triangular entries in row-major order over (q11,q12,q13,q14,
// q22,q23,q24,q33,q34,q44). It represents a sum of squared signed
// distances to a set of planes; Eval gives the error at a homogeneous
// point (x,y,z,1).
type Quadric struct {
	q11, q12, q13, q14 float64
	q22, q23, q24      float64
	q33, q34           float64
	q44                float64
}

// planeQuadric builds the rank-1 quadric Kp = [a b c d]^T [a b c d]
// for the plane a*x + b*y + c*z + d = 0.
func planeQuadric(a, b, c, d float64) Quadric {
	return Quadric{
		q11: a * a, q12: a * b, q13: a * c, q14: a * d,
		q22: b * b, q23: b * c, q24: b * d,
		q33: c * c, q34: c * d,
		q44: d * d,
	}
}

// Add returns the componentwise sum of q and other.
func (q Quadric) Add(other Quadric) Quadric {
	return Quadric{
		q11: q.q11 + other.q11, q12: q.q12 + other.q12, q13: q.q13 + other.q13, q14: q.q14 + other.q14,
		q22: q.q22 + other.q22, q23: q.q23 + other.q23, q24: q.q24 + other.q24,
		q33: q.q33 + other.q33, q34: q.q34 + other.q34,
		q44: q.q44 + other.q44,
	}
}

// Eval returns the quadric error at point v = (x,y,z,1).
func (q Quadric) Eval(v Vec3) float64 {
	x, y, z := v.X(), v.Y(), v.Z()
	return q.q11*x*x + 2*q.q12*x*y + 2*q.q13*x*z + 2*q.q14*x +
		q.q22*y*y + 2*q.q23*y*z + 2*q.q24*y +
		q.q33*z*z + 2*q.q34*z +
		q.q44
}

// AsMatrix4 builds the 4x4 symmetric matrix this quadric represents,
// with the last row fixed to (0,0,0,1) as spec'd for the solver.
func (q Quadric) AsMatrix4() Matrix4 {
	return Matrix4{rows: [4][4]float64{
		{q.q11, q.q12, q.q13, q.q14},
		{q.q12, q.q22, q.q23, q.q24},
		{q.q13, q.q23, q.q33, q.q34},
		{0, 0, 0, 1},
	}}
}

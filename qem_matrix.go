package main

import "math"

// Matrix4 is a 4x4 matrix stored in row-major order. It exists to
// carry a quadric through Gauss-Jordan inversion for the optimal
// contraction-target solve (§4.D); it is not a general transform
// matrix.
type Matrix4 struct {
	rows [4][4]float64
}

// Invert returns the inverse of m and true, or an undefined matrix and
// false if m is singular or numerically singular (a zero pivot is
// found during elimination). This is pbrt's full-pivot Gauss-Jordan
// algorithm, ported from original_source/math.cpp's inverse(), the
// variant spec §4.A names explicitly ("a pbrt-style full-pivot
// Gauss-Jordan is acceptable").
func (m Matrix4) Invert() (Matrix4, bool) {
	minv := m.rows

	var indxc, indxr, ipiv [4]int

	for i := 0; i < 4; i++ {
		irow, icol := 0, 0
		big := 0.0
		for j := 0; j < 4; j++ {
			if ipiv[j] != 1 {
				for k := 0; k < 4; k++ {
					if ipiv[k] == 0 {
						if math.Abs(minv[j][k]) >= big {
							big = math.Abs(minv[j][k])
							irow, icol = j, k
						}
					} else if ipiv[k] > 1 {
						return Matrix4{}, false // singular
					}
				}
			}
		}
		ipiv[icol]++

		if irow != icol {
			for k := 0; k < 4; k++ {
				minv[irow][k], minv[icol][k] = minv[icol][k], minv[irow][k]
			}
		}
		indxr[i] = irow
		indxc[i] = icol

		if minv[icol][icol] == 0 {
			return Matrix4{}, false // singular
		}

		pivinv := 1.0 / minv[icol][icol]
		minv[icol][icol] = 1.0
		for j := 0; j < 4; j++ {
			minv[icol][j] *= pivinv
		}

		for j := 0; j < 4; j++ {
			if j != icol {
				save := minv[j][icol]
				minv[j][icol] = 0
				for k := 0; k < 4; k++ {
					minv[j][k] = math.FMA(-minv[icol][k], save, minv[j][k])
				}
			}
		}
	}

	for j := 3; j >= 0; j-- {
		if indxr[j] != indxc[j] {
			for k := 0; k < 4; k++ {
				minv[k][indxr[j]], minv[k][indxc[j]] = minv[k][indxc[j]], minv[k][indxr[j]]
			}
		}
	}

	return Matrix4{rows: minv}, true
}

// Col3 returns the first three entries of column j — used to pull the
// translation column out of the inverted quadric matrix.
func (m Matrix4) Col3(j int) Vec3 {
	return NewVec3(m.rows[0][j], m.rows[1][j], m.rows[2][j])
}

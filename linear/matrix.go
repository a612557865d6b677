// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// IdentM3 returns the identity matrix.
func IdentM3() M3 { return M3{{1}, {0, 1}, {0, 0, 1}} }

// MulM3 returns l ⋅ r.
func MulM3(l, r M3) (m M3) {
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulM3V3 returns m ⋅ v.
func MulM3V3(m M3, v V3) V3 {
	u := ScaleV3(v[0], m[0])
	u = AddV3(u, ScaleV3(v[1], m[1]))
	return AddV3(u, ScaleV3(v[2], m[2]))
}

// TransposeM3 returns the transpose of m.
func TransposeM3(m M3) (n M3) {
	for i := range m {
		for j := range m {
			n[i][j] = m[j][i]
		}
	}
	return
}

// RotM3 returns the rotation matrix of q.
// q must be a unit quaternion.
func RotM3(q Q) M3 {
	w, x, y, z := q.R, q.V[0], q.V[1], q.V[2]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return M3{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

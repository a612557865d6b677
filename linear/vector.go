// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements single-precision rotation math:
// 3-component vectors, quaternions and 3x3 rotation matrices.
//
// Every function takes its operands by value and returns
// a new value. Nothing is modified in place.
package linear

import (
	"github.com/chewxy/math32"
)

// Epsilon is the per-component tolerance used by ApproxV3
// and ApproxQ callers that have no better bound.
const Epsilon = 1e-6

// V3 is a 3-component vector of float32.
// Its elements are x, y and z, in this order.
type V3 [3]float32

// AddV3 returns v + w.
func AddV3(v, w V3) V3 {
	return V3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// SubV3 returns v - w.
func SubV3(v, w V3) V3 {
	return V3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v V3) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// NormV3 returns v normalized.
// The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	n := LenV3(v)
	if n == 0 {
		return V3{}
	}
	return V3{v[0] / n, v[1] / n, v[2] / n}
}

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// RotateV3 returns v rotated by q, computed as q ⋅ p ⋅ q⁻¹
// where p is the pure quaternion (0, v).
// q need not be a unit quaternion, but it must not be zero:
// RotateV3 panics with ErrZeroNorm if LenQ(q) is 0.
func RotateV3(v V3, q Q) V3 {
	p := MakeQV(0, v)
	p = MulQ(MulQ(q, p), InvQ(q))
	return p.V
}

// ApproxV3 reports whether every component of v and w
// differs by less than e.
func ApproxV3(v, w V3, e float32) bool {
	for i := range v {
		if !(math32.Abs(v[i]-w[i]) < e) {
			return false
		}
	}
	return true
}

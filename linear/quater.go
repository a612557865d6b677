// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrZeroNorm is the error of inverting a quaternion
// whose norm is zero.
var ErrZeroNorm = errors.New("linear: quaternion has zero norm")

// Q is a quaternion of float32.
// V is the vector part (x, y, z) and R is the scalar part (w).
// A Q represents a rotation when its norm is 1, but
// this is not enforced.
type Q struct {
	V V3
	R float32
}

// MakeQ returns the quaternion w + xi + yj + zk.
func MakeQ(w, x, y, z float32) Q {
	return Q{V: V3{x, y, z}, R: w}
}

// MakeQV returns the quaternion whose scalar part is s
// and whose vector part is v.
func MakeQV(s float32, v V3) Q {
	return MakeQ(s, v[0], v[1], v[2])
}

// IdentQ returns the identity quaternion (1, 0, 0, 0).
func IdentQ() Q { return Q{R: 1} }

// AxisAngleQ returns the rotation of deg degrees
// around axis.
// axis is normalized with NormV3, so a zero axis produces
// a quaternion with zero vector part whose scalar part is
// the cosine of the half angle.
func AxisAngleQ(axis V3, deg float32) Q {
	rad := deg * math32.Pi / 180
	half := rad / 2
	sin := math32.Sin(half)
	n := NormV3(axis)
	return MakeQ(math32.Cos(half), sin*n[0], sin*n[1], sin*n[2])
}

// LenQ returns the norm of q.
func LenQ(q Q) float32 {
	return math32.Sqrt(q.R*q.R + q.V[0]*q.V[0] + q.V[1]*q.V[1] + q.V[2]*q.V[2])
}

// NormQ returns q normalized.
// If q has zero norm the result has NaN components.
func NormQ(q Q) Q {
	n := LenQ(q)
	return MakeQ(q.R/n, q.V[0]/n, q.V[1]/n, q.V[2]/n)
}

// ConjQ returns the conjugate of q.
func ConjQ(q Q) Q {
	return MakeQ(q.R, -q.V[0], -q.V[1], -q.V[2])
}

// InvQ returns the inverse of q.
// It panics with ErrZeroNorm if LenQ(q) is 0.
func InvQ(q Q) Q {
	p, err := CheckInvQ(q)
	if err != nil {
		panic(err)
	}
	return p
}

// CheckInvQ is like InvQ but returns ErrZeroNorm
// instead of panicking.
func CheckInvQ(q Q) (Q, error) {
	n := LenQ(q)
	if n == 0 {
		return Q{}, ErrZeroNorm
	}
	return ScaleQ(1/(n*n), ConjQ(q)), nil
}

// AddQ returns q + p.
func AddQ(q, p Q) Q {
	return MakeQ(q.R+p.R, q.V[0]+p.V[0], q.V[1]+p.V[1], q.V[2]+p.V[2])
}

// SubQ returns q - p.
func SubQ(q, p Q) Q {
	return MakeQ(q.R-p.R, q.V[0]-p.V[0], q.V[1]-p.V[1], q.V[2]-p.V[2])
}

// ScaleQ returns s ⋅ q.
func ScaleQ(s float32, q Q) Q {
	return MakeQ(q.R*s, q.V[0]*s, q.V[1]*s, q.V[2]*s)
}

// MulQ returns the Hamilton product l ⋅ r.
// It is not commutative.
func MulQ(l, r Q) Q {
	w, x, y, z := l.R, l.V[0], l.V[1], l.V[2]
	w1, x1, y1, z1 := r.R, r.V[0], r.V[1], r.V[2]
	return MakeQ(
		w*w1-x*x1-y*y1-z*z1,
		w*x1+w1*x+y*z1-z*y1,
		w*y1+w1*y+z*x1-x*z1,
		w*z1+w1*z+x*y1-y*x1,
	)
}

// MulQV3 returns q ⋅ v, that is, v rotated by q.
// It is equivalent to RotateV3(v, q).
func MulQV3(q Q, v V3) V3 { return RotateV3(v, q) }

// DotQ returns q ⋅ p, treating both as 4-component vectors.
func DotQ(q, p Q) float32 {
	return q.R*p.R + q.V[0]*p.V[0] + q.V[1]*p.V[1] + q.V[2]*p.V[2]
}

// ApproxQ reports whether every component of q and p
// differs by less than e.
func ApproxQ(q, p Q, e float32) bool {
	return math32.Abs(q.R-p.R) < e && ApproxV3(q.V, p.V, e)
}

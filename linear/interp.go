// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// LerpQ interpolates linearly between from and to and
// normalizes the result.
// If t is greater than 1 it returns to, and if t is less
// than 0 it returns from. Neither endpoint is normalized
// in these two cases.
func LerpQ(from, to Q, t float32) Q {
	switch {
	case t > 1:
		return to
	case t < 0:
		return from
	}
	return NormQ(AddQ(from, ScaleQ(t, SubQ(to, from))))
}

// SlerpQ interpolates spherically between from and to.
// t is clamped to [0, 1].
// When from and to are identical or opposite, it falls
// back to LerpQ.
// The path is not corrected to the shortest arc: callers
// that want it must negate to when DotQ(from, to) < 0.
func SlerpQ(from, to Q, t float32) Q {
	switch {
	case t > 1:
		t = 1
	case t < 0:
		t = 0
	}
	// Unit inputs can round past ±1.
	d := DotQ(from, to)
	switch {
	case d > 1:
		d = 1
	case d < -1:
		d = -1
	}
	theta := math32.Acos(d)
	sin := math32.Sin(theta)
	if sin == 0 {
		return LerpQ(from, to, t)
	}
	bf := math32.Sin((1-t)*theta) / sin
	bt := math32.Sin(t*theta) / sin
	return NormQ(AddQ(ScaleQ(bf, from), ScaleQ(bt, to)))
}

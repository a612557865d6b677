// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package sample

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/sp4ghet/quaternion/linear"
)

// Report holds the results of a sample run.
type Report struct {
	Q0, Q1 linear.Q

	// ConjOfProduct is (q0 ⋅ q1)* and ProductOfConj is
	// q1* ⋅ q0*. They should match.
	ConjOfProduct linear.Q
	ProductOfConj linear.Q

	// Identity is q1 ⋅ q1⁻¹.
	Identity linear.Q

	Slerp     linear.Q
	Lerp      linear.Q
	AxisAngle linear.Q

	// Rotated is the config vector rotated by AxisAngle.
	Rotated linear.V3
}

// Compute runs the sample operations on c.
// It fails if q1 or the axis-angle rotation cannot
// be inverted.
func Compute(c Config) (Report, error) {
	r := Report{Q0: c.q0(), Q1: c.q1()}
	r.ConjOfProduct = linear.ConjQ(linear.MulQ(r.Q0, r.Q1))
	r.ProductOfConj = linear.MulQ(linear.ConjQ(r.Q1), linear.ConjQ(r.Q0))

	inv, err := linear.CheckInvQ(r.Q1)
	if err != nil {
		return Report{}, fmt.Errorf("sample: q1: %w", err)
	}
	r.Identity = linear.MulQ(r.Q1, inv)

	r.Slerp = linear.SlerpQ(r.Q0, r.Q1, c.T)
	r.Lerp = linear.LerpQ(r.Q0, r.Q1, c.T)

	r.AxisAngle = linear.AxisAngleQ(c.Axis, c.Angle)
	if _, err := linear.CheckInvQ(r.AxisAngle); err != nil {
		return Report{}, fmt.Errorf("sample: axis-angle: %w", err)
	}
	r.Rotated = linear.MulQV3(r.AxisAngle, c.Vector)
	return r, nil
}

// Consistent reports whether the conjugate reversal and
// the inverse identity hold within linear.Epsilon.
func (r *Report) Consistent() bool {
	return linear.ApproxQ(r.ConjOfProduct, r.ProductOfConj, linear.Epsilon) &&
		linear.ApproxQ(r.Identity, linear.IdentQ(), linear.Epsilon)
}

func formatQ(q linear.Q) string {
	return fmt.Sprintf("w=%v x=%v y=%v z=%v", q.R, q.V[0], q.V[1], q.V[2])
}

func formatV3(v linear.V3) string {
	return fmt.Sprintf("x=%v y=%v z=%v", v[0], v[1], v[2])
}

// Render writes a human-readable form of r to w.
func Render(w io.Writer, r Report, c Config) error {
	var b strings.Builder
	line := func(name, val string) { fmt.Fprintf(&b, "%s:\n%s\n\n", name, val) }
	line("q0", formatQ(r.Q0))
	line("q1", formatQ(r.Q1))
	line("(q0*q1).conjugate()", formatQ(r.ConjOfProduct))
	line("q1.conjugate() * q0.conjugate()", formatQ(r.ProductOfConj))
	line("q1*q1.inverse()", formatQ(r.Identity))
	line(fmt.Sprintf("slerp(q0, q1, %v)", c.T), formatQ(r.Slerp))
	line(fmt.Sprintf("lerp(q0, q1, %v)", c.T), formatQ(r.Lerp))
	line(fmt.Sprintf("axis-angle(%v, %v°)", formatV3(c.Axis), c.Angle), formatQ(r.AxisAngle))
	line(fmt.Sprintf("rotate(%v)", formatV3(c.Vector)), formatV3(r.Rotated))
	_, err := io.WriteString(w, b.String())
	return err
}

func qField(key string, q linear.Q) zap.Field {
	return zap.Float32s(key, []float32{q.R, q.V[0], q.V[1], q.V[2]})
}

// Run computes the report for c, logs it and renders
// it to w.
func Run(c Config, log *zap.Logger, w io.Writer) error {
	log.Debug("sample config",
		qField("q0", c.q0()),
		qField("q1", c.q1()),
		zap.Float32("t", c.T),
		zap.Float32s("axis", c.Axis[:]),
		zap.Float32("angle", c.Angle),
	)
	r, err := Compute(c)
	if err != nil {
		log.Error("sample failed", zap.Error(err))
		return err
	}
	log.Debug("sample computed",
		qField("slerp", r.Slerp),
		qField("lerp", r.Lerp),
		qField("identity", r.Identity),
		zap.Float32s("rotated", r.Rotated[:]),
	)
	if !r.Consistent() {
		log.Warn("sample results not consistent",
			qField("conj_of_product", r.ConjOfProduct),
			qField("product_of_conj", r.ProductOfConj),
			qField("identity", r.Identity),
		)
	}
	if err := Render(w, r, c); err != nil {
		return fmt.Errorf("sample: render: %w", err)
	}
	log.Info("sample done", zap.Bool("consistent", r.Consistent()))
	return nil
}

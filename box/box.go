package box

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/triangle"
)

// Evaluate computes the box D₀ under cfg. p1²…p4² are the squared
// momenta of the cyclically ordered external legs, p12 = (p1+p2)² and
// p23 = (p2+p3)² the Mandelstam invariants; mᵢ² are the internal squared
// masses with non-positive imaginary parts. Leg pᵢ² connects lines
// (i, i+1) cyclically.
func Evaluate(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4 complex128, cfg core.Config) (core.Result, error) {
	if !(cfg.MuSquared() > 0) {
		return core.Result{}, fmt.Errorf("box: %w", core.ErrBadScale)
	}
	if !kinematics.CausalMasses(m1, m2, m3, m4) {
		return core.Result{}, fmt.Errorf("box: Im m² > 0: %w", core.ErrDomain)
	}

	pt := kinematics.FourPoint{
		P1: p1, P2: p2, P3: p3, P4: p4, P12: p12, P23: p23,
		M1: m1, M2: m2, M3: m3, M4: m4,
	}

	switch cls := kinematics.ClassifyFourPoint(pt, cfg.Threshold()); cls {
	case kinematics.IRSingular:
		if pt.Scale() == 0 {
			return core.Result{}, fmt.Errorf("box: scaleless point: %w", core.ErrSingular)
		}

		return core.Result{}, fmt.Errorf("box: infrared-divergent point: %w", core.ErrUnsupported)

	case kinematics.FullyDegenerate:
		// All momenta soft: the Cayley matrix degenerates and the
		// divided-difference closed form applies.
		return softMomenta(pt, cfg), nil

	case kinematics.PairwiseDegenerate:
		res, err := reduce(pt, cfg, false)
		if err == nil {
			cfg.Warn("box: vanishing momentum gram determinant, dimension-shift remainder dropped")
		}

		return res, err
	}

	return reduce(pt, cfg, true)
}

// reduce runs the dimension-shift reduction
//
//	D₀ = −Σᵢ cᵢ C₀⁽ⁱ⁾ − c₀·I₄^{6−2ε}|_{ε⁰}
//
// over the four pinched triangles. All poles of D₀ enter through the
// triangles; the shifted box contributes only at ε⁰ and is skipped when
// remainder is false.
func reduce(pt kinematics.FourPoint, cfg core.Config, remainder bool) (core.Result, error) {
	s := kinematics.CayleyFour(pt)
	c, c0, err := kinematics.ReduceWeights(s)
	if err != nil {
		return core.Result{}, fmt.Errorf("box: singular cayley matrix: %w", core.ErrUnsupported)
	}

	raw := cfg.Raw()
	var res core.Result
	for i := 0; i < 4; i++ {
		s1, s2, s3, ma, mb, mc := pinchOne(pt, i)
		tri, err := triangle.Evaluate(s1, s2, s3, ma, mb, mc, raw)
		if errors.Is(err, core.ErrSingular) {
			// Scaleless pinched triangles vanish in dimensional
			// regularization.
			continue
		}
		if err != nil {
			return core.Result{}, err
		}
		res = res.AddScaled(tri, -c[i])
	}

	if remainder {
		rem, err := sixDimBox(s)
		if err != nil {
			// The cut crosses the simplex: integrate on the deformed
			// contour instead of the real axis.
			rem = deformedSixDimBox(s)
		}
		res = res.ShiftEpsilon0(-c0 * rem)
	}

	return res.Scaled(cfg.Normalization()), nil
}

// pinchOne is the triangle obtained by removing line i of the box, in
// the three-point leg ordering.
func pinchOne(pt kinematics.FourPoint, i int) (s1, s2, s3, m1, m2, m3 complex128) {
	switch i {
	case 0:
		return pt.P2, pt.P3, pt.P23, pt.M2, pt.M3, pt.M4
	case 1:
		return pt.P12, pt.P3, pt.P4, pt.M1, pt.M3, pt.M4
	case 2:
		return pt.P1, pt.P23, pt.P4, pt.M1, pt.M2, pt.M4
	default:
		return pt.P1, pt.P2, pt.P12, pt.M1, pt.M2, pt.M3
	}
}

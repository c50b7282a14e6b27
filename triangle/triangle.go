package triangle

import (
	"fmt"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
)

// Evaluate computes the triangle C₀(p1², p2², p3²; m1², m2², m3²) under
// cfg. p1² and p2² are the squared momenta of the first two external
// legs, p3² = (p1+p2)² the third; mᵢ² are the internal squared masses
// with non-positive imaginary parts. Leg p1² connects lines (1,2), p2²
// connects (2,3), p3² connects (1,3).
func Evaluate(p1, p2, p3, m1, m2, m3 complex128, cfg core.Config) (core.Result, error) {
	if !(cfg.MuSquared() > 0) {
		return core.Result{}, fmt.Errorf("triangle: %w", core.ErrBadScale)
	}
	if !kinematics.CausalMasses(m1, m2, m3) {
		return core.Result{}, fmt.Errorf("triangle: Im m² > 0: %w", core.ErrDomain)
	}

	pt := kinematics.ThreePoint{P1: p1, P2: p2, P3: p3, M1: m1, M2: m2, M3: m3}
	res, err := dispatch(pt, cfg)
	if err != nil {
		return core.Result{}, err
	}

	return res.Scaled(cfg.Normalization()), nil
}

// dispatch selects the evaluation branch from the classification and
// returns the raw-normalization Laurent coefficients.
func dispatch(pt kinematics.ThreePoint, cfg core.Config) (core.Result, error) {
	scale := pt.Scale()
	tol := cfg.Threshold() * scale

	switch cls := kinematics.ClassifyThreePoint(pt, cfg.Threshold()); cls {
	case kinematics.IRSingular:
		if scale == 0 {
			return core.Result{}, fmt.Errorf("triangle: scaleless point: %w", core.ErrSingular)
		}
		if soft(pt.M1, tol) && soft(pt.M2, tol) && soft(pt.M3, tol) {
			return masslessIR(pt, cfg)
		}

		return core.Result{}, fmt.Errorf("triangle: infrared-divergent point with massive lines: %w", core.ErrUnsupported)

	case kinematics.FullyDegenerate:
		if soft(pt.P1, tol) && soft(pt.P2, tol) && soft(pt.P3, tol) {
			return softLegsMass(pt, cfg), nil
		}
		// Equal masses with hard momenta stay on the generic split.

	case kinematics.PairwiseDegenerate:
		gram := cfg.Threshold() * scale * scale
		if abs2(kinematics.Kallen(pt.P1, pt.P2, pt.P3)) <= gram*gram {
			return cayleyReduced(pt, cfg)
		}
		// A mass coincidence alone is harmless for the generic split.

	case kinematics.Generic, kinematics.LightLike:
	}

	eps0, err := hooftVeltman(pt, cfg)
	if err != nil {
		return core.Result{}, fmt.Errorf("triangle: %w", err)
	}

	return core.NewResult(eps0, 0, 0), nil
}

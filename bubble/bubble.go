package bubble

import (
	"fmt"
	"math"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// Evaluate computes the bubble B₀(p, m1², m2²) under cfg.
//
// p is the external invariant; m1², m2² the internal squared masses
// (non-positive imaginary parts). The single pole coefficient is always 1
// (pure UV divergence); ε⁻² vanishes identically.
func Evaluate(p, m1, m2 complex128, cfg core.Config) (core.Result, error) {
	if !(cfg.MuSquared() > 0) {
		return core.Result{}, fmt.Errorf("bubble: %w", core.ErrBadScale)
	}
	if !kinematics.CausalMasses(m1, m2) {
		return core.Result{}, fmt.Errorf("bubble: Im m² > 0: %w", core.ErrDomain)
	}
	// Canonical mass order makes the m1 ↔ m2 symmetry exact.
	if lessC(m1, m2) {
		m1, m2 = m2, m1
	}

	pt := kinematics.TwoPoint{P: p, M1: m1, M2: m2}
	eps0, err := finitePart(pt, cfg)
	if err != nil {
		return core.Result{}, err
	}

	return core.NewResult(eps0, 1, 0).Scaled(cfg.Normalization()), nil
}

// finitePart dispatches on the classification and returns the ε⁰
// coefficient (raw normalization).
func finitePart(pt kinematics.TwoPoint, cfg core.Config) (complex128, error) {
	lmu := complex(math.Log(cfg.MuSquared()), 0)
	tol := cfg.Threshold() * pt.Scale()

	switch cls := kinematics.ClassifyTwoPoint(pt, cfg.Threshold()); cls {
	case kinematics.IRSingular:
		return 0, fmt.Errorf("bubble: p = m1² = m2² = 0 is scaleless: %w", core.ErrSingular)

	case kinematics.FullyDegenerate:
		// p → 0, m1² → m2²: B₀ = 1/ε − Log(m²/μ²).
		if pt.P != 0 || pt.M1 != pt.M2 {
			cfg.Warn("bubble: near-degenerate point routed through the p=0 equal-mass limit",
				"class", cls.String())
		}
		m := (pt.M1 + pt.M2) / 2

		return lmu - specfn.Log(m), nil

	case kinematics.LightLike:
		// p → 0, distinct masses:
		// B₀ = 1/ε + 1 − [a·Log(a/μ²) − b·Log(b/μ²)]/(a−b).
		if pt.P != 0 {
			cfg.Warn("bubble: soft invariant routed through the p=0 limit", "class", cls.String())
		}

		return 1 + lmu - (xlog(pt.M1)-xlog(pt.M2))/(pt.M1-pt.M2), nil

	case kinematics.PairwiseDegenerate, kinematics.Generic:
		// Equal masses with generic p stay on the root representation:
		// the roots (1±β)/2 carry no cancellation there.
		return genericFinite(pt, tol, lmu), nil
	}

	return 0, fmt.Errorf("bubble: unclassified point: %w", core.ErrUnsupported)
}

// genericFinite evaluates the root representation
//
//	ε⁰ = Log μ² − Log p − Σᵢ [(1−xᵢ)Log(1−xᵢ) + xᵢ·Log(−xᵢ) − 1] − 2πi·n
//
// over the roots x₁, x₂ of the propagator quadratic, with n restoring the
// continuous determination of Log Q on [0,1].
func genericFinite(pt kinematics.TwoPoint, tol float64, lmu complex128) complex128 {
	if softC(pt.M1, tol) && softC(pt.M2, tol) {
		// Massless bubble: B₀ = 1/ε + 2 − Log(−p/μ²).
		return 2 + lmu - specfn.LogS(-pt.P, -1)
	}

	r1, r2 := kinematics.QuadraticRoots(pt.P, pt.M1-pt.M2-pt.P, pt.M2)
	sum := specfn.LogS(pt.P, -1) + rootTerm(r1) + rootTerm(r2)
	sum += branchCorrection(pt, r1, r2)

	return lmu - sum
}

// rootTerm integrates one factored logarithm:
// ∫₀¹ Log(x−x₀) dx = (1−x₀)Log(1−x₀) + x₀·Log(−x₀) − 1,
// with the root's cut side flipped onto the factor's arguments and the
// x·Log(x) → 0 limits taken at roots pinned to 0 or 1.
func rootTerm(r kinematics.Root) complex128 {
	t := complex(-1, 0)
	if r.Z != 1 {
		t += (1 - r.Z) * specfn.LogS(1-r.Z, -r.Side)
	}
	if r.Z != 0 {
		t += r.Z * specfn.LogS(-r.Z, -r.Side)
	}

	return t
}

// branchCorrection returns the 2πi·n offset between the factored sum of
// logarithms and the continuous −i0 determination of Log Q. The offset is
// constant along [0,1], so it is fixed at whichever endpoint carries the
// larger |Q| (Q(0) = m2², Q(1) = m1²).
func branchCorrection(pt kinematics.TwoPoint, r1, r2 kinematics.Root) complex128 {
	ref, at := pt.M1, complex128(1)
	if abs2(pt.M2) > abs2(pt.M1) {
		ref, at = pt.M2, 0
	}
	if ref == 0 {
		return 0
	}
	sum := specfn.LogS(pt.P, -1) +
		specfn.LogS(at-r1.Z, -r1.Side) +
		specfn.LogS(at-r2.Z, -r2.Side)
	n := math.Round(imag(specfn.LogS(ref, -1)-sum) / (2 * math.Pi))

	return complex(0, 2*math.Pi*n)
}

// xlog returns z·Log(z) with the z→0 limit taken exactly.
func xlog(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	return z * specfn.Log(z)
}

// softC reports |z| ≤ tol.
func softC(z complex128, tol float64) bool {
	return math.Hypot(real(z), imag(z)) <= tol
}

// abs2 returns |z|².
func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// lessC is a deterministic total order on complex values
// (real part, then imaginary part).
func lessC(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}

	return imag(a) < imag(b)
}

package triangle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/oneloop/bubble"
	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// cayleyReduced handles a vanishing momentum Gram determinant: the
// dimension-shift identity
//
//	C₀ = −Σᵢ cᵢ B₀⁽ⁱ⁾ − (2−2ε)·c₀·I₃^{6−2ε}
//
// with S·c = 1 over the modified Cayley matrix. c₀ is proportional to
// the Gram determinant, so the shifted-integral remainder is dropped; its
// pole cancels the −c₀/ε of the bubble sum exactly, and its finite part
// is an O(threshold) error reported through the warning channel.
func cayleyReduced(p kinematics.ThreePoint, cfg core.Config) (core.Result, error) {
	c, c0, err := kinematics.ReduceWeights(kinematics.CayleyThree(p))
	if err != nil {
		return core.Result{}, fmt.Errorf("triangle: degenerate momenta with singular cayley matrix: %w", core.ErrUnsupported)
	}

	raw := cfg.Raw()
	var eps0 complex128
	for i := 0; i < 3; i++ {
		leg, ma, mb := pinchOne(p, i)
		b, err := bubble.Evaluate(leg, ma, mb, raw)
		if errors.Is(err, core.ErrSingular) {
			// A scaleless pinched bubble vanishes in dimensional
			// regularization.
			continue
		}
		if err != nil {
			return core.Result{}, err
		}
		eps0 -= c[i] * b.Epsilon0()
	}

	cfg.Warn("triangle: vanishing momentum gram determinant, dimension-shift remainder dropped",
		"c0", c0)

	return core.NewResult(eps0, 0, 0), nil
}

// softLegsMass is the all-soft-momenta closed form
//
//	C₀(0,0,0; a,b,c) = −[ a·Log a/((a−b)(a−c)) + cyclic ]
//
// with the coincident-mass limits substituted inside the on-shell
// threshold. The renormalization scale drops out identically.
func softLegsMass(p kinematics.ThreePoint, cfg core.Config) core.Result {
	tol := cfg.Threshold() * p.Scale()
	a, b, c := p.M1, p.M2, p.M3

	// Route a coincident pair into the (b,c) slots.
	switch {
	case kinematics.Near(a, b, tol) && kinematics.Near(b, c, tol):
		m := (a + b + c) / 3

		return core.NewResult(-1/(2*m), 0, 0)
	case kinematics.Near(a, b, tol):
		a, b, c = c, (a+b)/2, (a+b)/2
	case kinematics.Near(a, c, tol):
		a, b, c = b, (a+c)/2, (a+c)/2
	case kinematics.Near(b, c, tol):
		b, c = (b+c)/2, (b+c)/2
	}

	if b == c {
		// Pair limit: C₀ = −[a·Log a − b·Log b + (Log b + 1)(b−a)]/(a−b)².
		num := xlog(a) - xlog(b) + (specfn.Log(b)+1)*(b-a)

		return core.NewResult(-num/((a-b)*(a-b)), 0, 0)
	}

	eps0 := -(xlog(a)/((a-b)*(a-c)) +
		xlog(b)/((b-a)*(b-c)) +
		xlog(c)/((c-a)*(c-b)))

	return core.NewResult(eps0, 0, 0)
}

// masslessIR returns the Laurent expansion of the infrared-divergent
// triangles with fully massless internal lines: the one-off-shell and
// two-off-shell configurations. These are the only branches of C₀ where
// the renormalization scale appears.
func masslessIR(p kinematics.ThreePoint, cfg core.Config) (core.Result, error) {
	tol := cfg.Threshold() * p.Scale()
	lmu := logMu(cfg)

	var hard []complex128
	for _, leg := range []complex128{p.P1, p.P2, p.P3} {
		if !soft(leg, tol) {
			hard = append(hard, leg)
		}
	}

	switch len(hard) {
	case 1:
		s := hard[0]
		l := specfn.LogS(-s, -1) - lmu

		return core.NewResult(l*l/(2*s), -l/s, 1/s), nil
	case 2:
		s1, s2 := hard[0], hard[1]
		l1 := specfn.LogS(-s1, -1) - lmu
		l2 := specfn.LogS(-s2, -1) - lmu
		if kinematics.Near(s1, s2, tol) {
			s := (s1 + s2) / 2
			l := (l1 + l2) / 2

			return core.NewResult(l/s, -1/s, 0), nil
		}
		d := s1 - s2

		return core.NewResult((l1*l1-l2*l2)/(2*d), -(l1-l2)/d, 0), nil
	}

	return core.Result{}, fmt.Errorf("triangle: infrared point outside the massless one- and two-scale families: %w", core.ErrUnsupported)
}

// xlog returns z·Log(z) with the z→0 limit taken exactly.
func xlog(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	return z * specfn.Log(z)
}

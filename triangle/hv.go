package triangle

import (
	"math"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// triPerms lists the six symmetries of the triangle as index maps on the
// leg slots (P1,P2,P3) and line slots (M1,M2,M3). Leg P1 connects lines
// (1,2), P2 connects (2,3), P3 connects (1,3); permuting legs drags each
// mass along as the intersection of its two legs.
var triPerms = [6]struct{ legs, masses [3]int }{
	{legs: [3]int{0, 1, 2}, masses: [3]int{0, 1, 2}},
	{legs: [3]int{1, 0, 2}, masses: [3]int{2, 1, 0}},
	{legs: [3]int{2, 1, 0}, masses: [3]int{0, 2, 1}},
	{legs: [3]int{0, 2, 1}, masses: [3]int{1, 0, 2}},
	{legs: [3]int{1, 2, 0}, masses: [3]int{1, 2, 0}},
	{legs: [3]int{2, 0, 1}, masses: [3]int{2, 0, 1}},
}

// permute applies one symmetry to the point.
func permute(p kinematics.ThreePoint, i int) kinematics.ThreePoint {
	legs := [3]complex128{p.P1, p.P2, p.P3}
	masses := [3]complex128{p.M1, p.M2, p.M3}
	pm := triPerms[i]

	return kinematics.ThreePoint{
		P1: legs[pm.legs[0]], P2: legs[pm.legs[1]], P3: legs[pm.legs[2]],
		M1: masses[pm.masses[0]], M2: masses[pm.masses[1]], M3: masses[pm.masses[2]],
	}
}

// hooftVeltman evaluates the finite C₀ of a generic or light-like point.
// The point is permuted so that soft legs land where the construction
// tolerates them: a single soft leg goes to the P3 slot (linear shear),
// two soft legs route to the bilinear form with the hard leg at P2.
func hooftVeltman(p kinematics.ThreePoint, cfg core.Config) (complex128, error) {
	tol := cfg.Threshold() * p.Scale()
	nSoft := 0
	for _, leg := range []complex128{p.P1, p.P2, p.P3} {
		if soft(leg, tol) {
			nSoft++
		}
	}

	switch nSoft {
	case 2:
		best, hard := 0, 0.0
		for i := range triPerms {
			if m := abs2(permute(p, i).P2); m > hard {
				best, hard = i, m
			}
		}

		return bilinear(permute(p, best), cfg)
	case 1:
		for i := range triPerms {
			if q := permute(p, i); soft(q.P3, tol) {
				return hvSplit(q, tol)
			}
		}
	default:
		best, hard := 0, 0.0
		for i := range triPerms {
			if m := abs2(permute(p, i).P3); m > hard {
				best, hard = i, m
			}
		}

		return hvSplit(permute(p, best), tol)
	}

	return 0, core.ErrUnsupported
}

// hvSplit runs the 't Hooft–Veltman construction on a point whose P1 and
// P2 legs are hard. With the simplex denominator
//
//	Δ(x,y) = a·x² + b·y² + c·xy + d·x + e·y + f
//
// the shear y → αx + z, with α a root of bα² + cα + a = 0, makes Δ
// linear in x along lines of constant z. Each boundary edge then
// contributes one S₃ integral, and all three share the subtraction
// constant Log Δ at the pinch line z = t₀:
//
//	C₀ = [S₃(t₀;Q₁) − S₃(x_C;Q₂) + S₃(x_B;Q₃)] / P.
func hvSplit(p kinematics.ThreePoint, tol float64) (complex128, error) {
	a, b := p.P1, p.P3
	c := p.P1 + p.P3 - p.P2
	d := p.M2 - p.M1 - p.P1
	e := p.M3 - p.M1 - p.P3
	f := p.M1

	var alpha, bigP complex128
	if soft(b, tol) {
		// Soft P3: the shear equation degenerates to c·α + a = 0.
		alpha = -a / c
		bigP = c
	} else {
		r1, _ := kinematics.QuadraticRoots(b, c, a)
		alpha = r1.Z
		bigP = 2*b*alpha + c
	}

	t0 := -(d + e*alpha) / bigP
	xB := (1 - t0) / (1 + alpha)
	xC := -t0 / alpha

	e1 := newEdge(b, e, f, tol)              // x = 0 edge: B₀(P3; m1², m3²)
	e2 := newEdge(a, d, f, tol)              // y = 0 edge: B₀(P1; m1², m2²)
	e3 := newEdge(p.P2, c+d-e-2*b, b+e+f, tol) // x+y = 1 edge: B₀(P2; m2², m3²)

	k := e1.logAt(t0)
	sum := e1.s3(t0, -1, k) - e2.s3(xC, -1, k) + e3.s3(xB, -1, k)

	// When the three boundary poles wind around the pinch, the construction
	// is exact only for k equal to the principal −i0 log of Δ at the pinch;
	// any 2πi offset of the shared k leaves a constant to restore.
	w := math.Round(imag(poleLog(t0, -1)-poleLog(xC, -1)+poleLog(xB, -1)) / (2 * math.Pi))
	if w != 0 {
		pin := b*t0*t0 + e*t0 + f
		if math.Abs(imag(pin)) <= 1e-12*math.Abs(real(pin)) {
			// Rounding noise must not decide the cut side of the pinch log.
			pin = complex(real(pin), 0)
		}
		if n := math.Round(imag(k-specfn.LogS(pin, -1)) / (2 * math.Pi)); n != 0 {
			sum -= complex(4*math.Pi*math.Pi*w*n, 0)
		}
	}

	return sum / bigP, nil
}

// bilinear handles two soft legs: with P1 = P3 = 0 the denominator is
// bilinear and the inner Feynman integration is elementary, leaving
//
//	C₀ = −[S₃(x*;N) − S₃(x*;M)] / c
//
// with N the x+y = 1 edge quadratic, M the linear y = 0 edge, and the
// shared pole x* = −e/c where N and M coincide.
func bilinear(p kinematics.ThreePoint, cfg core.Config) (complex128, error) {
	if p.P1 != 0 || p.P3 != 0 {
		cfg.Warn("triangle: soft legs rounded to the bilinear form",
			"p1", p.P1, "p3", p.P3)
	}
	tol := cfg.Threshold() * p.Scale()
	c := -p.P2
	d := p.M2 - p.M1
	e := p.M3 - p.M1
	f := p.M1

	x := -e / c
	n := newEdge(-c, c+d-e, e+f, tol)
	m := newEdge(0, d, f, tol)
	k := n.logAt(x)

	return -(n.s3(x, -1, k) - m.s3(x, -1, k)) / c, nil
}

// pinchOne is the bubble obtained by removing line i of the triangle.
func pinchOne(p kinematics.ThreePoint, i int) (leg, m1, m2 complex128) {
	switch i {
	case 0:
		return p.P2, p.M2, p.M3
	case 1:
		return p.P3, p.M1, p.M3
	default:
		return p.P1, p.M1, p.M2
	}
}

// logMu returns Log μ² as a complex value.
func logMu(cfg core.Config) complex128 {
	return specfn.Log(complex(cfg.MuSquared(), 0))
}

// SPDX-License-Identifier: MIT

package kinematics

import "math"

// OnePoint is the tadpole kinematic point: a single squared mass.
type OnePoint struct {
	M complex128
}

// TwoPoint is the bubble kinematic point: one external invariant and two
// internal squared masses.
type TwoPoint struct {
	P      complex128
	M1, M2 complex128
}

// ThreePoint is the triangle kinematic point: three external invariants
// and three internal squared masses. Pᵢ is the invariant of the leg
// opposite the internal line with mass Mᵢ₊₁ (cyclic), matching the
// propagator ordering (ℓ, ℓ+q₁, ℓ+q₁+q₂):
//
//	P1 = q₁², P2 = q₂², P3 = (q₁+q₂)².
type ThreePoint struct {
	P1, P2, P3 complex128
	M1, M2, M3 complex128
}

// FourPoint is the box kinematic point: four leg invariants, the two
// Mandelstam invariants P12 = (q₁+q₂)² and P23 = (q₂+q₃)², and four
// internal squared masses.
type FourPoint struct {
	P1, P2, P3, P4 complex128
	P12, P23       complex128
	M1, M2, M3, M4 complex128
}

// cabs returns |z| via the stable hypot form.
func cabs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// maxAbs returns the largest modulus among vs.
func maxAbs(vs ...complex128) float64 {
	m := 0.0
	for _, v := range vs {
		if a := cabs(v); a > m {
			m = a
		}
	}

	return m
}

// Scale returns a representative kinematic magnitude of the point, used
// to turn the relative on-shell threshold into an absolute tolerance.
func (p OnePoint) Scale() float64 { return cabs(p.M) }

// Scale returns the largest modulus among the bubble's invariants.
func (p TwoPoint) Scale() float64 { return maxAbs(p.P, p.M1, p.M2) }

// Scale returns the largest modulus among the triangle's invariants.
func (p ThreePoint) Scale() float64 {
	return maxAbs(p.P1, p.P2, p.P3, p.M1, p.M2, p.M3)
}

// Scale returns the largest modulus among the box's invariants.
func (p FourPoint) Scale() float64 {
	return maxAbs(p.P1, p.P2, p.P3, p.P4, p.P12, p.P23, p.M1, p.M2, p.M3, p.M4)
}

// CausalMasses reports whether every squared mass has a non-positive
// imaginary part, as the Feynman prescription requires.
func CausalMasses(ms ...complex128) bool {
	for _, m := range ms {
		if imag(m) > 0 {
			return false
		}
	}

	return true
}

// Near reports whether a and b coincide within the absolute tolerance tol.
func Near(a, b complex128, tol float64) bool {
	return cabs(a-b) <= tol
}

// Soft reports whether z vanishes within the absolute tolerance tol.
func Soft(z complex128, tol float64) bool {
	return cabs(z) <= tol
}

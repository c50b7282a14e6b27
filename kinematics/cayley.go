// SPDX-License-Identifier: MIT

// Modified Cayley matrices and the complex linear-algebra kernel behind
// the reduction weights. The LU solver mirrors the deterministic
// substitution kernels of a real-valued predecessor, extended to
// complex128 and partial pivoting by modulus. The zero-pivot guard
// converts true singularity into a sentinel instead of letting Inf/NaN
// propagate into the Laurent coefficients.

package kinematics

import "errors"

// ErrSingularCayley is returned when the modified Cayley matrix has no
// inverse: the reduction weights are undefined and the caller must pick a
// different branch.
var ErrSingularCayley = errors.New("kinematics: modified cayley matrix is singular")

// CayleyThree builds the 3×3 modified Cayley matrix of a triangle point:
// S_ij = mᵢ² + mⱼ² − (kᵢ−kⱼ)² over the propagator offsets kᵢ.
func CayleyThree(p ThreePoint) [][]complex128 {
	return [][]complex128{
		{2 * p.M1, p.M1 + p.M2 - p.P1, p.M1 + p.M3 - p.P3},
		{p.M1 + p.M2 - p.P1, 2 * p.M2, p.M2 + p.M3 - p.P2},
		{p.M1 + p.M3 - p.P3, p.M2 + p.M3 - p.P2, 2 * p.M3},
	}
}

// CayleyFour builds the 4×4 modified Cayley matrix of a box point.
func CayleyFour(p FourPoint) [][]complex128 {
	return [][]complex128{
		{2 * p.M1, p.M1 + p.M2 - p.P1, p.M1 + p.M3 - p.P12, p.M1 + p.M4 - p.P4},
		{p.M1 + p.M2 - p.P1, 2 * p.M2, p.M2 + p.M3 - p.P2, p.M2 + p.M4 - p.P23},
		{p.M1 + p.M3 - p.P12, p.M2 + p.M3 - p.P2, 2 * p.M3, p.M3 + p.M4 - p.P3},
		{p.M1 + p.M4 - p.P4, p.M2 + p.M4 - p.P23, p.M3 + p.M4 - p.P3, 2 * p.M4},
	}
}

// ReduceWeights solves S·c = 1 for the reduction weights cᵢ = Σⱼ(S⁻¹)ᵢⱼ
// and returns them together with c₀ = Σᵢcᵢ. A singular S yields
// ErrSingularCayley.
//
// Implementation: Doolittle LU with partial pivoting by modulus, then
// forward/backward substitution against the all-ones right-hand side.
// Pivot order is deterministic (first maximal modulus wins), so identical
// inputs produce identical weights.
func ReduceWeights(s [][]complex128) ([]complex128, complex128, error) {
	n := len(s)
	// Work on a copy: callers may reuse the matrix.
	a := make([][]complex128, n)
	for i := range s {
		a[i] = append([]complex128(nil), s[i]...)
	}
	rhs := make([]complex128, n)
	for i := range rhs {
		rhs[i] = 1
	}

	// Elimination with row pivoting, folding the right-hand side in.
	for col := 0; col < n; col++ {
		pivRow, pivAbs := col, cabs(a[col][col])
		for r := col + 1; r < n; r++ {
			if ab := cabs(a[r][col]); ab > pivAbs {
				pivRow, pivAbs = r, ab
			}
		}
		if pivAbs == 0 {
			return nil, 0, ErrSingularCayley
		}
		if pivRow != col {
			a[col], a[pivRow] = a[pivRow], a[col]
			rhs[col], rhs[pivRow] = rhs[pivRow], rhs[col]
		}
		inv := 1 / a[col][col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] * inv
			if f == 0 {
				continue
			}
			for k := col + 1; k < n; k++ {
				a[r][k] -= f * a[col][k]
			}
			rhs[r] -= f * rhs[col]
		}
	}

	// Backward substitution.
	c := make([]complex128, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for k := i + 1; k < n; k++ {
			sum -= a[i][k] * c[k]
		}
		c[i] = sum / a[i][i]
	}

	var c0 complex128
	for _, ci := range c {
		c0 += ci
	}

	return c, c0, nil
}

// Kallen returns the Källén triangle function
// λ(a,b,c) = a² + b² + c² − 2ab − 2bc − 2ca.
// Its vanishing marks the degenerate momentum configurations of the
// triangle reduction.
func Kallen(a, b, c complex128) complex128 {
	return a*a + b*b + c*c - 2*(a*b+b*c+c*a)
}

// GramDet3 returns the determinant of the 3×3 Gram matrix of the box's
// independent external momenta (q₁, q₂, q₃), assembled from invariants:
//
//	q₁·q₂ = (p12 − p1 − p2)/2
//	q₂·q₃ = (p23 − p2 − p3)/2
//	q₁·q₃ = (p4 + p2 − p12 − p23)/2
func GramDet3(p FourPoint) complex128 {
	g11, g22, g33 := p.P1, p.P2, p.P3
	g12 := (p.P12 - p.P1 - p.P2) / 2
	g23 := (p.P23 - p.P2 - p.P3) / 2
	g13 := (p.P4 + p.P2 - p.P12 - p.P23) / 2

	return g11*(g22*g33-g23*g23) - g12*(g12*g33-g23*g13) + g13*(g12*g23-g22*g13)
}

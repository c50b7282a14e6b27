// SPDX-License-Identifier: MIT

package kinematics

import "math/cmplx"

// Root is one root of a propagator quadratic together with the side of
// the real axis it is displaced to by the Feynman −i0 prescription.
//
// Side is the sign of the root's infinitesimal imaginary displacement:
// +1 (upper), −1 (lower), or 0 when the root carries a genuine imaginary
// part (or sits at a double zero) and no displacement bookkeeping is
// needed.
type Root struct {
	Z    complex128
	Side float64
}

// QuadraticRoots returns the two roots of a·z² + b·z + c − i0 with cut
// sides attached. The formula pairs the numerically stable root
// q/a with its cofactor c/q, avoiding cancellation between −b and the
// discriminant square root. a must be nonzero; callers route |a| ≈ 0
// through LinearRoot.
func QuadraticRoots(a, b, c complex128) (Root, Root) {
	disc := b*b - 4*a*c
	sq := cmplx.Sqrt(disc)
	// Align the square root with −b to keep |q| maximal.
	if real(b)*real(sq)+imag(b)*imag(sq) > 0 {
		sq = -sq
	}
	q := -0.5 * (b - sq)

	var z1, z2 complex128
	if q == 0 {
		// Double root.
		z1 = -b / (2 * a)
		z2 = z1

		return Root{Z: z1}, Root{Z: z2}
	}
	z1 = q / a
	z2 = c / q

	return Root{Z: z1, Side: rootSide(a, z1, z2)},
		Root{Z: z2, Side: rootSide(a, z2, z1)}
}

// LinearRoot returns the root of b·z + c − i0 with its cut side
// (displacement i0/b).
func LinearRoot(b, c complex128) Root {
	z := -c / b
	if imag(z) != 0 {
		return Root{Z: z}
	}

	return Root{Z: z, Side: signRe(1 / b)}
}

// rootSide derives the −i0 displacement sign of a real root z1 of
// a(z−z1)(z−z2): the shifted zero of Q − i0 sits at z1 + i0/Q'(z1) with
// Q'(z1) = a(z1−z2).
func rootSide(a, z1, z2 complex128) float64 {
	if imag(z1) != 0 {
		return 0
	}
	d := a * (z1 - z2)
	if d == 0 {
		return 0
	}

	return signRe(1 / d)
}

// signRe returns the sign of the real part of z (0 for exactly zero).
func signRe(z complex128) float64 {
	switch {
	case real(z) > 0:
		return 1
	case real(z) < 0:
		return -1
	}

	return 0
}

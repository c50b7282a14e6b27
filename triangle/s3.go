package triangle

import (
	"math"
	"sort"

	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// edge is one boundary quadratic Q(z) = A·z² + B·z + C of the sheared
// simplex integrand, factored over its roots. The winding number restores
// the continuous −i0 determination of Log Q on [0,1]:
//
//	Log Q(z) = lead + Σⱼ Log(z−zⱼ) + 2πi·wind
//
// where lead is the log of the leading coefficient (of B for a linear
// edge, of C for a constant one).
type edge struct {
	roots []kinematics.Root
	lead  complex128
	wind  float64
}

// newEdge factors the quadratic and fixes its winding number. tol decides
// when a leading coefficient is treated as absent.
func newEdge(a, b, c complex128, tol float64) edge {
	var e edge
	switch {
	case !soft(a, tol):
		r1, r2 := kinematics.QuadraticRoots(a, b, c)
		e.roots = pinEndpoints(a, b, c, r1, r2)
		e.lead = specfn.LogS(a, -1)
	case !soft(b, tol):
		r := kinematics.LinearRoot(b, c)
		eps := 1e-12 * (cAbs(b) + cAbs(c))
		switch {
		case cAbs(c) <= eps:
			r = kinematics.Root{Z: 0, Side: signRe(1 / b)}
		case cAbs(b+c) <= eps:
			r = kinematics.Root{Z: 1, Side: signRe(1 / b)}
		}
		e.roots = []kinematics.Root{r}
		e.lead = specfn.LogS(b, -1)
	default:
		e.lead = specfn.LogS(c, -1)

		return e
	}

	// Fix the winding at whichever reference point keeps Q largest; the
	// mismatch between the factored sum and the −i0 log is constant on
	// the segment.
	zRef, qBest := complex128(0), c
	if q := a + b + c; abs2(q) > abs2(qBest) {
		zRef, qBest = 1, q
	}
	if q := a/4 + b/2 + c; abs2(q) > abs2(qBest) {
		zRef, qBest = 0.5, q
	}
	if qBest == 0 {
		return e
	}
	sum := e.lead
	for _, r := range e.roots {
		sum += specfn.LogS(zRef-r.Z, -r.Side)
	}
	e.wind = math.Round(imag(specfn.LogS(qBest, -1)-sum) / (2 * math.Pi))

	return e
}

// pinEndpoints snaps a root onto an endpoint the coefficients place it at
// exactly. Rounding noise in the quadratic solve would otherwise leave a
// spurious imaginary part there, and the discrete cut bookkeeping is not
// forgiving about which side of the contour a root sits on.
func pinEndpoints(a, b, c complex128, r1, r2 kinematics.Root) []kinematics.Root {
	z1, z2 := r1.Z, r2.Z
	eps := 1e-12 * (cAbs(a) + cAbs(b) + cAbs(c))
	if cAbs(c) <= eps {
		if abs2(z1) <= abs2(z2) {
			z1 = 0
		} else {
			z2 = 0
		}
	}
	if cAbs(a+b+c) <= eps {
		if abs2(z1-1) <= abs2(z2-1) {
			z1 = 1
		} else {
			z2 = 1
		}
	}

	return []kinematics.Root{
		{Z: z1, Side: pairSide(a, z1, z2)},
		{Z: z2, Side: pairSide(a, z2, z1)},
	}
}

// pairSide recomputes the −i0 displacement of z1 inside the factorization
// Q = a(z−z1)(z−z2), mirroring the quadratic solver's convention.
func pairSide(a, z1, z2 complex128) float64 {
	if imag(z1) != 0 {
		return 0
	}
	d := a * (z1 - z2)
	if d == 0 {
		return 0
	}

	return signRe(1 / d)
}

// logAt returns the continuous −i0 determination of Log Q at y.
func (e edge) logAt(y complex128) complex128 {
	sum := e.lead + complex(0, 2*math.Pi*e.wind)
	for _, r := range e.roots {
		sum += specfn.LogS(y-r.Z, -r.Side)
	}

	return sum
}

// s3 evaluates ∫₀¹ [Log Q(z) − k] / (z − y0) dz with the edge's own cut
// determination. k is the shared subtraction constant of the construction
// and must equal a log determination of Q(y0); any 2πi mismatch between
// the edge's determination and k is restored through the pole term.
// ySide is the −i0 displacement sign of a real y0.
func (e edge) s3(y0 complex128, ySide float64, k complex128) complex128 {
	var sum complex128
	for _, r := range e.roots {
		sum += pairDilog(y0, ySide, r)
	}
	if n := math.Round(imag(e.logAt(y0)-k) / (2 * math.Pi)); n != 0 {
		sum += complex(0, 2*math.Pi*n) * poleLog(y0, ySide)
	}

	return sum
}

// pairDilog is the per-root building block
//
//	∫₀¹ [Log(z−z₀) − Log(y₀−z₀)] / (z−y₀) dz
//	  = Li₂(y₀/(y₀−z₀)) − Li₂((y₀−1)/(y₀−z₀)).
//
// For a real pole and a real root the −i0 displacement of the root fixes
// the cut side of both dilogarithm arguments. A complex pole takes the
// principal dilogarithms plus the determination corrections of
// complexPairDilog.
func pairDilog(y0 complex128, ySide float64, r kinematics.Root) complex128 {
	den := y0 - r.Z
	u1 := y0 / den
	u2 := (y0 - 1) / den
	if imag(y0) != 0 {
		return complexPairDilog(y0, r, den, u1, u2)
	}

	s1, s2 := -1.0, -1.0
	switch {
	case imag(r.Z) != 0:
		// Complex arguments carry their own sides.
	case r.Side != 0:
		s1 = r.Side * signRe(y0)
		s2 = r.Side * signRe(y0-1)
	default:
		// Undisplaced real root: the pole's own displacement decides.
		s1 = -ySide * signRe(r.Z)
		s2 = ySide * signRe(1-r.Z)
	}

	return specfn.DilogS(u1, s1) - specfn.DilogS(u2, s2)
}

// complexPairDilog evaluates the per-root integral for a pole off the real
// axis. The principal dilogarithm pair is correct only while the edge
// determination of Log(z−z₀) agrees with Log(y₀−z₀) + Log(1−u(z)) along
// the segment; where they disagree by 2πi the difference integrates to an
// explicit pole log over the affected stretch. The mismatch can jump at a
// real root inside (0,1) and at the point where u(z) = (y₀−z)/(y₀−z₀)
// crosses the dilogarithm cut [1,∞), which also picks up the residue of
// the crossed sheet.
func complexPairDilog(y0 complex128, r kinematics.Root, den, u1, u2 complex128) complex128 {
	sum := specfn.DilogS(u1, -1) - specfn.DilogS(u2, -1)

	var splits []float64
	if imag(r.Z) == 0 {
		if z := real(r.Z); z > 0 && z < 1 {
			splits = append(splits, z)
		}
	}
	if d := imag(den); d != 0 {
		zx := (real(y0)*d - imag(y0)*real(den)) / d
		if u := real((y0 - complex(zx, 0)) / den); zx > 0 && zx < 1 && u > 1 {
			eps := 1.0
			if d < 0 {
				eps = -1
			}
			sum += complex(0, eps*2*math.Pi) * complex(math.Log(u), 0)
			splits = append(splits, zx)
		}
	}
	sort.Float64s(splits)

	lo := 0.0
	for i := 0; i <= len(splits); i++ {
		hi := 1.0
		if i < len(splits) {
			hi = splits[i]
		}
		if hi <= lo {
			continue
		}
		if n := mismatch(r, den, (lo+hi)/2); n != 0 {
			sum += complex(0, 2*math.Pi*n) * (specfn.Log(complex(hi, 0)-y0) - specfn.Log(complex(lo, 0)-y0))
		}
		lo = hi
	}

	return sum
}

// mismatch counts the 2πi offset between the edge determination of
// Log(z−z₀) and the principal split Log(y₀−z₀) + Log((z−z₀)/(y₀−z₀)) at a
// real probe z. It is constant between the jump points the caller splits at.
func mismatch(r kinematics.Root, den complex128, z float64) float64 {
	zz := complex(z, 0) - r.Z
	diff := specfn.LogS(zz, -r.Side) - specfn.Log(den) - specfn.Log(zz/den)

	return math.Round(imag(diff) / (2 * math.Pi))
}

// poleLog is ∫₀¹ dz/(z−y₀) = Log(1−y₀) − Log(−y₀) for a pole displaced
// to the ySide half-plane.
func poleLog(y0 complex128, ySide float64) complex128 {
	if imag(y0) != 0 {
		return specfn.Log(1-y0) - specfn.Log(-y0)
	}

	return specfn.LogS(1-y0, -ySide) - specfn.LogS(-y0, -ySide)
}

// soft reports |z| ≤ tol.
func soft(z complex128, tol float64) bool {
	return cAbs(z) <= tol
}

// cAbs returns |z|.
func cAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// abs2 returns |z|².
func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
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

package specfn

import (
	"math"
	"math/cmplx"
)

// Log returns the principal complex logarithm with the Feynman
// prescription on the cut: an argument lying exactly on the negative real
// axis is treated as approached from below, so Im Log = −π there.
//
// Everywhere off the real axis Log agrees with cmplx.Log.
func Log(z complex128) complex128 {
	return LogS(z, -1)
}

// LogS returns the principal complex logarithm with the cut side forced
// to side when the argument lies exactly on the negative real axis:
// side > 0 selects the upper edge (+iπ), side ≤ 0 the lower edge (−iπ).
//
// The side argument is ignored off the cut.
func LogS(z complex128, side float64) complex128 {
	if imag(z) == 0 {
		x := real(z)
		switch {
		case x > 0:
			return complex(math.Log(x), 0)
		case x < 0:
			if side > 0 {
				return complex(math.Log(-x), math.Pi)
			}

			return complex(math.Log(-x), -math.Pi)
		default:
			// Log(0): engines classify zero arguments away before
			// reaching here; keep the IEEE limit for safety.
			return complex(math.Inf(-1), 0)
		}
	}

	return cmplx.Log(z)
}

// LogRat returns Log(a/b) computed as LogS(a,sa) − LogS(b,sb).
// Callers supply the cut sides tracked for each operand; the result is the
// continuous determination of the ratio's logarithm in the physical
// regime, where both operands carry consistent infinitesimal parts.
func LogRat(a complex128, sa float64, b complex128, sb float64) complex128 {
	return LogS(a, sa) - LogS(b, sb)
}

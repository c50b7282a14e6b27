package specfn

import (
	"math"
)

// Pi2Over6 is ζ(2) = π²/6 = Li₂(1), the dilogarithm's value at the branch
// point.
const Pi2Over6 = math.Pi * math.Pi / 6

// Bernoulli-series coefficients for Li₂(z) = Σₖ Bₖ uᵏ⁺¹/(k+1)!,
// u = −Log(1−z). Odd Bernoulli numbers beyond B₁ vanish; B₁ contributes
// the −u²/4 term. Truncated after B₂₀: with the argument reduced to
// |z| ≤ 1, Re z ≤ ½ the series parameter satisfies |u| ≤ π/3 and the
// first dropped term is below 3e-17.
var dilogCoeff = [...]float64{
	1.0,                           // B₀ /1!  · u
	-1.0 / 4.0,                    // B₁ /2!  · u²
	1.0 / 36.0,                    // B₂ /3!  · u³
	-1.0 / 3600.0,                 // B₄ /5!  · u⁵
	1.0 / 211680.0,                // B₆ /7!  · u⁷
	-1.0 / 10886400.0,             // B₈ /9!  · u⁹
	1.0 / 526901760.0,             // B₁₀/11! · u¹¹
	-691.0 / 16999766784000.0,     // B₁₂/13! · u¹³
	7.0 / 7846046208000.0,         // B₁₄/15! · u¹⁵
	-3617.0 / 181400588328960000., // B₁₆/17! · u¹⁷
	43867.0 / 97072790126247936000.0,    // B₁₈/19! · u¹⁹
	-174611.0 / 16860010916664115200000., // B₂₀/21! · u²¹
}

// Dilog returns the dilogarithm Li₂(z) = −∫₀ᶻ Log(1−t)/t dt on the
// principal branch, with the cut (real z > 1) resolved on the physical
// lower side (Im Li₂ = −π·ln z there), matching the Feynman prescription.
func Dilog(z complex128) complex128 {
	return DilogS(z, -1)
}

// DilogS returns Li₂(z) with the cut side forced to side when z lies
// exactly on the cut (real z > 1): side > 0 selects the upper edge
// (+iπ·ln z), side ≤ 0 the lower edge. The side is ignored off the cut.
func DilogS(z complex128, side float64) complex128 {
	if imag(z) != 0 {
		return dilogComplex(z)
	}
	x := real(z)
	if x <= 1 {
		return complex(dilogReal(x), 0)
	}

	// On the cut: exact inversion identity,
	// Li₂(x ± i0) = π²/3 − ½ln²x − Li₂(1/x) ± iπ·ln x, x > 1.
	lx := math.Log(x)
	re := 2*Pi2Over6 - 0.5*lx*lx - dilogReal(1/x)
	im := math.Pi * lx
	if side <= 0 {
		im = -im
	}

	return complex(re, im)
}

// dilogReal evaluates Li₂ for real x ≤ 1, where the result is real.
func dilogReal(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return Pi2Over6
	case x < -1:
		// Inversion: Li₂(x) = −Li₂(1/x) − π²/6 − ½ln²(−x), x < −1.
		lx := math.Log(-x)

		return -dilogReal(1/x) - Pi2Over6 - 0.5*lx*lx
	case x > 0.5:
		// Reflection: Li₂(x) = π²/6 − ln x·ln(1−x) − Li₂(1−x).
		return Pi2Over6 - math.Log(x)*math.Log(1-x) - dilogReal(1-x)
	default:
		u := -math.Log1p(-x)
		u2 := u * u
		sum := dilogCoeff[len(dilogCoeff)-1]
		for k := len(dilogCoeff) - 2; k >= 2; k-- {
			sum = sum*u2 + dilogCoeff[k]
		}
		// Reattach the u and u² terms outside the odd-power Horner loop.
		return u*(dilogCoeff[0]+sum*u2) + u2*dilogCoeff[1]
	}
}

// dilogComplex evaluates Li₂ for arguments off the real axis.
func dilogComplex(z complex128) complex128 {
	if abs2(z) > 1 {
		// Inversion into the unit disc.
		l := Log(-z)

		return -dilogComplex2(1/z) - complex(Pi2Over6, 0) - 0.5*l*l
	}

	return dilogComplex2(z)
}

// dilogComplex2 assumes |z| ≤ 1 and applies the reflection when Re z > ½
// before summing the Bernoulli series.
func dilogComplex2(z complex128) complex128 {
	if real(z) > 0.5 {
		return complex(Pi2Over6, 0) - Log(z)*Log(1-z) - dilogSeries(1-z)
	}

	return dilogSeries(z)
}

// dilogSeries sums the Bernoulli series in u = −Log(1−z).
// Requires |z| ≤ 1 with Re z ≤ ½ (|u| ≤ π/3) for full accuracy.
func dilogSeries(z complex128) complex128 {
	u := -Log(1 - z)
	u2 := u * u
	sum := complex(dilogCoeff[len(dilogCoeff)-1], 0)
	for k := len(dilogCoeff) - 2; k >= 2; k-- {
		sum = sum*u2 + complex(dilogCoeff[k], 0)
	}

	return u*(complex(dilogCoeff[0], 0)+sum*u2) + u2*complex(dilogCoeff[1], 0)
}

// abs2 returns |z|² without the square root.
func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

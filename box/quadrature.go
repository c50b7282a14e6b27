package box

import (
	"errors"
	"math"
	"math/cmplx"
)

// errDenominatorCut reports a Feynman denominator touching the real cut
// inside the integration simplex: the quadrature representation of the
// six-dimensional box is invalid there.
var errDenominatorCut = errors.New("box: denominator reaches the cut inside the simplex")

// d6Nodes is the per-axis order of the tensor Gauss–Legendre rule. The
// integrand is analytic on the certified domain, so the rule converges
// geometrically; 24 nodes per axis hold the remainder well below the
// engine's accuracy target.
const d6Nodes = 24

var glNodes, glWeights = gaussLegendre(d6Nodes)

// gaussLegendre returns the n-point Gauss–Legendre nodes and weights on
// (0,1), by Newton iteration on the Legendre recurrence. The
// construction is deterministic: identical calls produce identical
// rules.
func gaussLegendre(n int) ([]float64, []float64) {
	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		// Chebyshev-based starting guess for the i-th root.
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var deriv float64
		for it := 0; it < 64; it++ {
			prev, cur := 0.0, 1.0
			for k := 0; k < n; k++ {
				prev, cur = cur, ((2*float64(k)+1)*x*cur-float64(k)*prev)/float64(k+1)
			}
			deriv = float64(n) * (x*cur - prev) / (x*x - 1)
			dx := cur / deriv
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		nodes[i] = (1 - x) / 2
		nodes[n-1-i] = (1 + x) / 2
		w := 1 / ((1 - x*x) * deriv * deriv)
		weights[i] = w
		weights[n-1-i] = w
	}

	return nodes, weights
}

// cutMargin is the proximity of a Feynman denominator to the real cut,
// relative to the largest Cayley entry, at which the real-axis rule is
// abandoned for the deformed contour. The node spacing of the rule sets
// the floor: a pole closer than a node spacing is invisible to the
// real-axis sum.
const cutMargin = 0.1

// sixDimBox integrates 1/Δ over the Feynman simplex, the ε⁰ value of the
// infrared-finite six-dimensional box. Δ(z) = ½·z·S·z over the modified
// Cayley matrix with z₄ eliminated by the simplex constraint. The
// simplex is mapped to the unit cube by the Duffy substitution
//
//	z₁ = u,  z₂ = v(1−u),  z₃ = w(1−u)(1−v),  J = (1−u)²(1−v).
//
// A denominator that comes within cutMargin of the real cut at any node
// aborts with errDenominatorCut.
func sixDimBox(s [][]complex128) (complex128, error) {
	margin := cutMargin * maxEntry(s)
	var sum complex128
	for i, u := range glNodes {
		for j, v := range glNodes {
			jac := (1 - u) * (1 - u) * (1 - v) * glWeights[i] * glWeights[j]
			for k, w := range glNodes {
				z1 := u
				z2 := v * (1 - u)
				z3 := w * (1 - u) * (1 - v)
				d := denominator(s, z1, z2, z3)
				if real(d) <= margin && imag(d) > -margin {
					return 0, errDenominatorCut
				}
				sum += complex(jac*glWeights[k], 0) / d
			}
		}
	}

	return sum, nil
}

// maxEntry returns the largest modulus among the Cayley entries.
func maxEntry(s [][]complex128) float64 {
	m := 0.0
	for _, row := range s {
		for _, v := range row {
			if a := cmplx.Abs(v); a > m {
				m = a
			}
		}
	}

	return m
}

// deformedLambda scales the contour deformation amplitude relative to
// the largest Cayley entry. Well below the bound set by the quadratic
// truncation of Δ along the deformation, and large enough that the 24
// node rule resolves the damped integrand.
const deformedLambda = 0.8

// deformedSixDimBox integrates 1/Δ over the simplex with the Feynman
// contour deformation
//
//	t̃ₖ = tₖ − iλ·tₖ(1−tₖ)·∂Δ/∂tₖ
//
// applied in the Duffy cube coordinates. The deformation direction
// follows the gradient of the real part of Δ, so Im Δ(t̃) < 0 pointwise
// to first order in λ and the −i0 prescription is built into the
// contour. Used when the real-axis rule hits the cut.
func deformedSixDimBox(s [][]complex128) complex128 {
	lam := deformedLambda / maxEntry(s)

	var sum complex128
	for i, u := range glNodes {
		for j, v := range glNodes {
			wUV := glWeights[i] * glWeights[j]
			for k, w := range glNodes {
				sum += complex(wUV*glWeights[k], 0) * deformedPoint(s, lam, u, v, w)
			}
		}
	}

	return sum
}

// deformedPoint evaluates the deformed integrand Jdet·(1−t̃₁)²(1−t̃₂)/Δ(t̃)
// at one cube node. The Jacobian of the deformation is the 3×3
// determinant of I − iλ·∂h/∂t with h the deformation field; both the
// gradient and the Hessian of Δ∘z are assembled analytically from the
// Duffy map derivatives.
func deformedPoint(s [][]complex128, lam, u, v, w float64) complex128 {
	t := [3]float64{u, v, w}
	z := [4]float64{u, v * (1 - u), w * (1 - u) * (1 - v), 0}
	z[3] = 1 - z[0] - z[1] - z[2]

	// dz[i][k] = ∂zᵢ/∂tₖ and the nonzero second derivatives of the map.
	dz := [4][3]float64{
		{1, 0, 0},
		{-v, 1 - u, 0},
		{-w * (1 - v), -w * (1 - u), (1 - u) * (1 - v)},
	}
	var d2 [4][3][3]float64
	d2[1][0][1], d2[1][1][0] = -1, -1
	d2[2][0][1], d2[2][1][0] = w, w
	d2[2][0][2], d2[2][2][0] = -(1 - v), -(1 - v)
	d2[2][1][2], d2[2][2][1] = -(1 - u), -(1 - u)
	for k := 0; k < 3; k++ {
		dz[3][k] = -(dz[0][k] + dz[1][k] + dz[2][k])
		for l := 0; l < 3; l++ {
			d2[3][k][l] = -(d2[0][k][l] + d2[1][k][l] + d2[2][k][l])
		}
	}

	// Gradient and Hessian of Re Δ in cube coordinates.
	var sz [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sz[i] += real(s[i][j]) * z[j]
		}
	}
	var g [3]float64
	var hess [3][3]float64
	for k := 0; k < 3; k++ {
		for i := 0; i < 4; i++ {
			g[k] += sz[i] * dz[i][k]
		}
		for l := 0; l < 3; l++ {
			acc := 0.0
			for i := 0; i < 4; i++ {
				acc += sz[i] * d2[i][k][l]
				for j := 0; j < 4; j++ {
					acc += dz[i][k] * real(s[i][j]) * dz[j][l]
				}
			}
			hess[k][l] = acc
		}
	}

	// Deformation Jacobian det(I − iλ·∂h/∂t).
	var m [3][3]complex128
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			d := lam * t[k] * (1 - t[k]) * hess[k][l]
			if k == l {
				d += lam * (1 - 2*t[k]) * g[k]
			}
			m[k][l] = complex(0, -d)
			if k == l {
				m[k][l] += 1
			}
		}
	}
	jdet := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	// Deformed node, mapped back to simplex coordinates.
	var td [3]complex128
	for k := 0; k < 3; k++ {
		td[k] = complex(t[k], -lam*t[k]*(1-t[k])*g[k])
	}
	var zc [4]complex128
	zc[0] = td[0]
	zc[1] = td[1] * (1 - td[0])
	zc[2] = td[2] * (1 - td[0]) * (1 - td[1])
	zc[3] = 1 - zc[0] - zc[1] - zc[2]

	var d complex128
	for i := 0; i < 4; i++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			acc += s[i][j] * zc[j]
		}
		d += zc[i] * acc
	}
	d /= 2
	duffy := (1 - td[0]) * (1 - td[0]) * (1 - td[1])

	return jdet * duffy / d
}

// denominator evaluates Δ = ½·z·S·z at (z₁,z₂,z₃,1−z₁−z₂−z₃).
func denominator(s [][]complex128, z1, z2, z3 float64) complex128 {
	z := [4]complex128{
		complex(z1, 0),
		complex(z2, 0),
		complex(z3, 0),
		complex(1-z1-z2-z3, 0),
	}
	var d complex128
	for i := 0; i < 4; i++ {
		row := s[i]
		var acc complex128
		for j := 0; j < 4; j++ {
			acc += row[j] * z[j]
		}
		d += z[i] * acc
	}

	return d / 2
}

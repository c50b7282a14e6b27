// Package box evaluates the regularized scalar four-point integral
// D₀(p1², p2², p3², p4², p12, p23; m1², m2², m3², m4²).
//
// 🚀 Method
//
// The box is reduced through the dimension-shift identity
//
//	D₀ = −Σᵢ cᵢ C₀⁽ⁱ⁾ − (1−2ε)·c₀·I₄^{6−2ε}
//
// where the weights solve S·c = 1 over the 4×4 modified Cayley matrix
// and C₀⁽ⁱ⁾ are the four pinched triangles. The six-dimensional box is
// infrared finite; its ε⁰ value is the simplex integral of 1/Δ,
// evaluated by a deterministic tensor-product Gauss–Legendre rule on the
// Duffy-mapped cube. All Laurent poles of D₀ flow in through the pinched
// triangles.
//
// ✨ Domain
//
// Below-threshold real kinematics and complex-mass points integrate on
// the undeformed cube. When the Feynman denominator approaches its cut
// the rule switches to a deformed contour: the Duffy coordinates pick up
// an imaginary shift along the gradient of Re Δ, with the −i0
// prescription fixing the orientation and the Jacobian carried exactly.
// Above-threshold real points are evaluated on that contour. A
// vanishing Gram determinant sends c₀ to zero: the shifted-box remainder
// is dropped there with a warning. Fully soft momenta take a
// divided-difference closed form instead of the reduction.
// Infrared-divergent boxes with massless internal lines are outside the
// certified region and are refused.
package box

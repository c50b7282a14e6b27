// Package triangle evaluates the regularized scalar three-point integral
// C₀(p1², p2², p3²; m1², m2², m3²).
//
// 🚀 Method
//
// The generic branch is the 't Hooft–Veltman construction: a projective
// shear makes the Feynman denominator linear along a family of lines,
// reducing the simplex integral to three one-dimensional log integrals
// S₃ over the simplex edges. Each S₃ is evaluated in closed form as a
// pair of dilogarithms per denominator root, with per-root cut sides
// tracking the −i0 prescription and a shared subtraction constant tying
// the three edges to one determination.
//
// ✨ Branches
//
//   - Generic and light-like points go through the 't Hooft–Veltman
//     split, after a deterministic leg permutation that keeps the shear
//     parameter away from its parasitic values 0 and −1.
//   - Points with two soft legs use the bilinear form of the denominator
//     directly: the inner Feynman integration is elementary there.
//   - A vanishing momentum Gram determinant switches to the Cayley
//     reduction onto pinched bubbles, dropping an O(threshold)
//     dimension-shift remainder and emitting a precision warning.
//   - All-soft momenta collapse to the mass-only closed form, with
//     analytic limits for coincident masses.
//   - Infrared-divergent points with fully massless internal lines
//     return their known Laurent expansions; massive-line infrared
//     configurations are refused with core.ErrUnsupported.
//
// C₀ is finite for all supported non-infrared points: the ε⁻² and ε⁻¹
// coefficients vanish there, and the renormalization scale enters only
// the infrared branches.
package triangle

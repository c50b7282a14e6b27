// Package oneloop evaluates the regularized scalar one-loop integrals —
// tadpole, bubble, triangle and box — as Laurent expansions in the
// dimensional regulator ε.
//
// 🚀 What is oneloop?
//
//	A numerical engine for the four scalar one-loop topologies:
//		• A₀(m²) — one-point tadpole, closed form
//		• B₀(p², m1², m2²) — two-point bubble, closed form with limit branches
//		• C₀(p1², p2², p3²; m1²…m3²) — three-point triangle, 't Hooft–Veltman
//		  construction plus Cayley reduction at degenerate kinematics
//		• D₀(p1²…p4², p12, p23; m1²…m4²) — four-point box, dimension-shift
//		  reduction onto pinched triangles
//	Every result carries the ε⁻², ε⁻¹ and ε⁰ coefficients as complex values,
//	with Feynman −i0 branch structure and complex-mass (unstable width)
//	support throughout.
//
// ✨ Why choose oneloop?
//
//   - Deterministic – identical inputs and configuration give identical
//     coefficients, bit for bit
//   - Branch-aware – degenerate and light-like kinematics route through
//     dedicated limiting formulas instead of amplifying roundoff
//   - Concurrency-safe – engines are pure functions of (point, Config);
//     the Session facade serializes configuration changes behind a lock
//   - Pure Go numerics – complex logarithm and dilogarithm with exact cut
//     sides live in specfn, no external math kernels
//
// Everything is organized under focused subpackages:
//
//	core/       — Config, Result, conventions & sentinel errors
//	specfn/     — complex Log and Li₂ with cut-side control
//	kinematics/ — points, classification tags, Cayley machinery
//	tadpole/    — A₀
//	bubble/     — B₀
//	triangle/   — C₀
//	box/        — D₀
//
// The root package itself is the call surface: a Session holds the
// configuration, hands each evaluation a snapshot, and package-level
// helpers delegate to a process-default Session.
//
//	res, err := oneloop.OnePoint(0.5)
//	// res.Epsilon0(), res.EpsilonMinus1(), res.EpsilonMinus2()
//
// Dive into DESIGN.md for the formula inventory and the accuracy notes.
//
//	go get github.com/katalvlaran/oneloop
package oneloop

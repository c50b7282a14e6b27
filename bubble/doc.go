// Package bubble evaluates the 2-point (bubble) one-loop scalar integral
// B₀ in closed form.
//
// Representation:
//
//	B₀(p, m1², m2²) = 1/ε − ∫₀¹ dx Log(Q(x)/μ²),  Q(x) = p·x² + (m1²−m2²−p)·x + m2² − i0
//
// The generic branch factorizes Q over its two roots and integrates each
// logarithm in closed form, tracking per-root cut sides so the physical
// −i0 side is kept across thresholds. Degenerate branches (soft p, equal
// masses, massless lines) replace 0/0 forms by their analytic limits,
// selected by the kinematics classifier. The fully scaleless bubble has
// no regularized value and surfaces core.ErrSingular.
//
// B₀ is exactly symmetric under m1² ↔ m2²: arguments are canonically
// ordered before any arithmetic.
package bubble

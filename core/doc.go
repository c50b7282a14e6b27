// Package core defines the central value types shared by every one-loop
// engine: the Laurent-expansion Result, the immutable evaluation Config,
// normalization constants, and the sentinel error set.
//
// A Result holds the three coefficients of the dimensional-regularization
// expansion around ε = (4−d)/2:
//
//	ε⁻² — double pole (soft/collinear divergences)
//	ε⁻¹ — single pole (UV or infrared divergence)
//	ε⁰  — finite term
//
// A Config is a plain value: it is snapshotted once at the entry of every
// engine call, so concurrent evaluations can never observe a half-updated
// configuration. There is no package-level mutable state anywhere below
// the root facade.
//
// Errors (sentinel):
//
//	– ErrBadScale      if a renormalization scale μ² ≤ 0 or non-finite is configured.
//	– ErrBadThreshold  if a negative or non-finite on-shell threshold is configured.
//	– ErrBadConvention if an unknown unit convention is selected.
//	– ErrDomain        if an input lies outside the supported analytic-continuation region.
//	– ErrSingular      if the kinematic point has no regularized value at all.
//	– ErrUnsupported   if a classified configuration has no implemented branch.
package core

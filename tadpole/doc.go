// Package tadpole evaluates the 1-point (tadpole) one-loop scalar
// integral A₀ in closed form.
//
// Laurent expansion in ε = (4−d)/2, raw normalization:
//
//	ε⁻² : 0
//	ε⁻¹ : m²
//	ε⁰  : m²·(1 − Log(m²/μ²))
//
// A vanishing squared mass gives the zero result identically: the
// massless tadpole is scaleless and vanishes in dimensional
// regularization without needing a singular branch.
//
// Errors (sentinel, from core):
//
//	– core.ErrBadScale if the configuration carries a non-positive μ².
//	– core.ErrDomain   if Im m² > 0 (violating the causal prescription).
package tadpole

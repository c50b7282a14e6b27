package core

import "fmt"

// Result holds the Laurent coefficients of a one-loop scalar integral,
// truncated at order ε⁰. A Result is immutable once constructed: all
// combinators return fresh values.
type Result struct {
	values [3]complex128 // [ε⁰, ε⁻¹, ε⁻²]
}

// NewResult builds a Result from the finite part and the two pole
// coefficients.
func NewResult(eps0, epsMinus1, epsMinus2 complex128) Result {
	return Result{values: [3]complex128{eps0, epsMinus1, epsMinus2}}
}

// Epsilon0 returns the finite (ε⁰) coefficient.
func (r Result) Epsilon0() complex128 { return r.values[0] }

// EpsilonMinus1 returns the single-pole (ε⁻¹) coefficient.
// It vanishes for IR- and UV-finite integrals.
func (r Result) EpsilonMinus1() complex128 { return r.values[1] }

// EpsilonMinus2 returns the double-pole (ε⁻²) coefficient.
// It vanishes unless the integral is soft/collinear divergent.
func (r Result) EpsilonMinus2() complex128 { return r.values[2] }

// Scaled returns a copy with every coefficient multiplied by k.
// Used by engines to apply the configured unit convention.
func (r Result) Scaled(k complex128) Result {
	return Result{values: [3]complex128{
		r.values[0] * k,
		r.values[1] * k,
		r.values[2] * k,
	}}
}

// AddScaled returns r + w·o coefficient-wise. Reduction engines use it to
// accumulate weighted sub-topology contributions.
func (r Result) AddScaled(o Result, w complex128) Result {
	return Result{values: [3]complex128{
		r.values[0] + w*o.values[0],
		r.values[1] + w*o.values[1],
		r.values[2] + w*o.values[2],
	}}
}

// ShiftEpsilon0 returns a copy with d added to the finite coefficient.
func (r Result) ShiftEpsilon0(d complex128) Result {
	return Result{values: [3]complex128{r.values[0] + d, r.values[1], r.values[2]}}
}

// String renders the three coefficients in pole-descending order.
func (r Result) String() string {
	return fmt.Sprintf("ε⁻²: %v, ε⁻¹: %v, ε⁰: %v", r.values[2], r.values[1], r.values[0])
}

// SPDX-License-Identifier: MIT

package kinematics

// Class tags the degeneracy structure of a kinematic point. It is produced
// fresh on every classification and never persisted; each engine dispatches
// on it with an exhaustive switch.
type Class int

const (
	// Generic marks a point with no detected degeneracy: the closed-form
	// generic branch is numerically safe.
	Generic Class = iota

	// PairwiseDegenerate marks a coincidence between two invariants or a
	// vanishing Gram/Källén determinant: the generic branch would divide
	// by a near-zero quantity and a reduction or limiting branch applies.
	PairwiseDegenerate

	// FullyDegenerate marks a maximally coincident point (all momenta
	// soft, or all masses equal): a dedicated closed form applies.
	FullyDegenerate

	// LightLike marks one or more soft external legs on a point whose
	// internal lines keep it regular.
	LightLike

	// IRSingular marks an infrared-divergent point: a massless internal
	// line with on-shell adjacent legs, a soft leg joining two massless
	// lines, or a fully scaleless point (which is not regularizable at
	// all).
	IRSingular
)

// String renders the tag for diagnostics.
func (c Class) String() string {
	switch c {
	case Generic:
		return "generic"
	case PairwiseDegenerate:
		return "pairwise-degenerate"
	case FullyDegenerate:
		return "fully-degenerate"
	case LightLike:
		return "light-like"
	case IRSingular:
		return "ir-singular"
	}

	return "unknown"
}

// ClassifyTwoPoint tags a bubble point under the relative threshold thr.
func ClassifyTwoPoint(p TwoPoint, thr float64) Class {
	scale := p.Scale()
	if scale == 0 {
		return IRSingular
	}
	tol := thr * scale
	softP := Soft(p.P, tol)
	equalM := Near(p.M1, p.M2, tol)
	switch {
	case softP && equalM:
		return FullyDegenerate
	case softP:
		return LightLike
	case equalM:
		return PairwiseDegenerate
	}

	return Generic
}

// ClassifyThreePoint tags a triangle point under the relative threshold
// thr. Precedence, most specific first: scaleless and IR-pinched points,
// then fully degenerate momenta or masses, then Gram/pairwise
// degeneracies, then soft legs.
func ClassifyThreePoint(p ThreePoint, thr float64) Class {
	scale := p.Scale()
	if scale == 0 {
		return IRSingular
	}
	tol := thr * scale
	if triangleIRPinched(p, tol) {
		return IRSingular
	}
	switch {
	case Soft(p.P1, tol) && Soft(p.P2, tol) && Soft(p.P3, tol):
		return FullyDegenerate
	case Near(p.M1, p.M2, tol) && Near(p.M2, p.M3, tol):
		return FullyDegenerate
	case cabs(Kallen(p.P1, p.P2, p.P3)) <= thr*scale*scale:
		return PairwiseDegenerate
	case Near(p.M1, p.M2, tol) || Near(p.M2, p.M3, tol) || Near(p.M1, p.M3, tol):
		return PairwiseDegenerate
	case Soft(p.P1, tol) || Soft(p.P2, tol) || Soft(p.P3, tol):
		return LightLike
	}

	return Generic
}

// triangleIRPinched reports whether the point is infrared divergent: a
// massless internal line with both adjacent legs on shell (soft
// singularity), or a soft leg joining two massless lines (collinear
// singularity). Leg P1 connects lines (1,2), P2 connects (2,3), P3
// connects (1,3).
func triangleIRPinched(p ThreePoint, tol float64) bool {
	if Soft(p.M1, tol) && Near(p.P1, p.M2, tol) && Near(p.P3, p.M3, tol) {
		return true
	}
	if Soft(p.M2, tol) && Near(p.P1, p.M1, tol) && Near(p.P2, p.M3, tol) {
		return true
	}
	if Soft(p.M3, tol) && Near(p.P2, p.M2, tol) && Near(p.P3, p.M1, tol) {
		return true
	}
	if Soft(p.P1, tol) && Soft(p.M1, tol) && Soft(p.M2, tol) {
		return true
	}
	if Soft(p.P2, tol) && Soft(p.M2, tol) && Soft(p.M3, tol) {
		return true
	}
	if Soft(p.P3, tol) && Soft(p.M1, tol) && Soft(p.M3, tol) {
		return true
	}

	return false
}

// ClassifyFourPoint tags a box point under the relative threshold thr.
// Soft legs (LightLike) take precedence over mass coincidences: they
// steer the reduction path, while equal masses only simplify the pinched
// sub-triangles and stay on the generic path.
func ClassifyFourPoint(p FourPoint, thr float64) Class {
	scale := p.Scale()
	if scale == 0 {
		return IRSingular
	}
	tol := thr * scale
	if boxIRPinched(p, tol) {
		return IRSingular
	}
	allSoftMomenta := Soft(p.P1, tol) && Soft(p.P2, tol) && Soft(p.P3, tol) &&
		Soft(p.P4, tol) && Soft(p.P12, tol) && Soft(p.P23, tol)
	switch {
	case allSoftMomenta:
		return FullyDegenerate
	case cabs(GramDet3(p)) <= thr*scale*scale*scale:
		return PairwiseDegenerate
	case Soft(p.P1, tol) || Soft(p.P2, tol) || Soft(p.P3, tol) ||
		Soft(p.P4, tol) || Soft(p.P12, tol) || Soft(p.P23, tol):
		return LightLike
	}

	return Generic
}

// boxIRPinched applies the triangle criteria to the box: the soft test on
// each internal line with its two cyclically adjacent legs, and the
// collinear test on each leg with the two lines it joins.
func boxIRPinched(p FourPoint, tol float64) bool {
	if Soft(p.M1, tol) && Near(p.P1, p.M2, tol) && Near(p.P4, p.M4, tol) {
		return true
	}
	if Soft(p.M2, tol) && Near(p.P1, p.M1, tol) && Near(p.P2, p.M3, tol) {
		return true
	}
	if Soft(p.M3, tol) && Near(p.P2, p.M2, tol) && Near(p.P3, p.M4, tol) {
		return true
	}
	if Soft(p.M4, tol) && Near(p.P3, p.M3, tol) && Near(p.P4, p.M1, tol) {
		return true
	}
	if Soft(p.P1, tol) && Soft(p.M1, tol) && Soft(p.M2, tol) {
		return true
	}
	if Soft(p.P2, tol) && Soft(p.M2, tol) && Soft(p.M3, tol) {
		return true
	}
	if Soft(p.P3, tol) && Soft(p.M3, tol) && Soft(p.M4, tol) {
		return true
	}
	if Soft(p.P4, tol) && Soft(p.M4, tol) && Soft(p.M1, tol) {
		return true
	}
	if Soft(p.P12, tol) && Soft(p.M1, tol) && Soft(p.M3, tol) {
		return true
	}
	if Soft(p.P23, tol) && Soft(p.M2, tol) && Soft(p.M4, tol) {
		return true
	}

	return false
}

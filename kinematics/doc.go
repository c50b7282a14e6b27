// SPDX-License-Identifier: MIT

// Package kinematics provides the shared kinematic machinery of the
// one-loop engines: per-topology point types, the degeneracy classifier,
// the modified Cayley matrix with its complex linear-algebra kernel, and
// the stable quadratic-root solver that materializes the Feynman −i0
// prescription as per-root cut sides.
//
// Classification rationale: the closed-form one-loop formulas contain
// subtractions that become 0/0 at exactly coincident masses or momenta
// and lose all significance nearby. The classifier compares pairwise
// differences against a relative tolerance derived from the point's own
// scale and emits the most specific tag, so each engine dispatches to a
// limiting formula instead of cancelling large nearly-equal terms.
//
// All functions are pure; nothing in this package holds state.
package kinematics

// Package specfn provides the complex special functions underlying the
// one-loop engines: the principal logarithm and the dilogarithm (Spence
// function), both with explicit control over the branch-cut side.
//
// 🚀 Why a dedicated package?
//
//	One-loop formulas are built almost entirely from Log and Li₂ of
//	kinematic ratios. Their correctness hinges on where arguments that
//	land exactly on a branch cut are placed: the Feynman −i0 prescription
//	demands that real negative logarithm arguments (and real dilogarithm
//	arguments above 1) be resolved as if approached from the lower half
//	plane, unless the calling formula has tracked an explicit side.
//
// ✨ Key features:
//   - Log/LogS: principal branch; exact cut points resolved on the
//     physical (lower) side by default, or on an explicit side.
//   - Dilog/DilogS: accurate for all complex arguments via inversion and
//     reflection into the unit region followed by a Bernoulli series in
//     −Log(1−z); the cut (real z > 1) is resolved through the exact
//     inversion identity, never by perturbing the input.
//   - Functional identities (reflection, inversion) hold to machine
//     precision and serve as the package's test oracles.
//
// Accuracy: relative error ≤ a few ulp away from cuts and branch points;
// absolute error ≤ ~1e-15 uniformly on the cut itself.
package specfn

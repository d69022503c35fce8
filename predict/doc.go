// Package predict is the quantum-alchemy prediction engine: it turns the
// two tabular datasets (exact quantum-chemistry energies and fitted QATS
// expansions) into derived quantities — ionization energies, electron
// affinities, multiplicity gaps and equilibrium bond energies — either
// directly or by extrapolation from reference systems.
//
// What:
//
//	Atom operations (AtomChargeQC/QA, AtomGapQC/QA) compare two
//	electronic states of one element; dimer operations (DimerChargeQC/QA,
//	DimerCurves, DimerEquilibria) replace each scalar lookup with a
//	bonding-curve construction and equilibrium search, since a dimer's
//	energy is a function of bond length. Alchemical (QA) variants resolve
//	every reference system holding data for both endpoints, compute the
//	nuclear-charge perturbation relating it to the target, and report one
//	Prediction per reference.
//
// Conventions:
//
//   - Expected absence is a value, not an error: scalar operations return
//     (NaN, false, nil), map operations an empty map or NaN entries.
//     Batch predictions over many labels routinely hit missing rows.
//   - Invariant violations are fatal: inconsistent lambdas between a
//     reference's endpoint rows (ErrLambdaMismatch), mismatched reference
//     sets (ErrReferenceMismatch), duplicate identity rows
//     (ErrAmbiguousRows), a dimer perturbation without a distribution
//     policy (ErrLambdaPolicy). Continuing would silently produce wrong
//     physics.
//   - Electron attachment (negative charge change) must flip signs
//     (WithChangeSigns) so affinities report on the ionization-energy
//     convention; omitting the flip is ErrSignConvention.
//   - References whose lambda falls outside the WithLambdas allow-list
//     are skipped silently — a filtering knob, not an error.
//
// State selection, lambda calculation and curve fitting are injectable
// (WithQCSelector, WithQATSSelector, WithLambdaFunc, WithFitFunc); the
// defaults are the in-repo state, perturb and polyfit implementations.
//
// All operations are pure and deterministic over immutable tables; maps
// are keyed by reference label and iteration order is the caller's
// concern.
package predict

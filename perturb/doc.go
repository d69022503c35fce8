// Package perturb computes the signed integer nuclear-charge perturbation
// (lambda) relating a reference system to a target system.
//
// What:
//
//	Alchemical predictions treat a target as a reference whose nuclear
//	charges were shifted by integer amounts. For atoms the shift is the
//	single difference target−reference. For dimers the same total shift
//	can be distributed in different ways, so callers must pick a policy:
//
//	  - SpecificAtom: the entire change lands on one atom; every other
//	    atom must already match the target (e.g. OH → FH with the change
//	    on the heavy atom).
//	  - Counter: the two atoms change by equal and opposite amounts
//	    (e.g. N₂ → CO). The reported lambda is the change on the
//	    increasing atom — the second atom when the reference charges are
//	    equal, otherwise the atom with the larger reference charge.
//
// Errors:
//
//   - ErrIncompatible — sequences differ in length, are empty, or the
//     reference cannot reach the target under the chosen policy.
//   - ErrAtomIndex    — SpecificAtom is outside the sequence.
//   - ErrAmbiguous    — a dimer perturbation with no distribution policy.
//
// Determinism:
//
//	Pure integer arithmetic; no state.
package perturb

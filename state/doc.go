// Package state selects electronic states by energy ordering.
//
// What:
//
//	A system at one charge and basis often appears with several spin
//	multiplicities (singlet, triplet, …). Ranking the distinct
//	multiplicities by ascending energy gives the ground state (level 0),
//	the first excited state (level 1), and so on. The selectors return
//	either the representative row of the requested level or just its
//	multiplicity.
//
// Why:
//
//	Predictions must agree on which electronic state a reference system
//	contributes; picking rows by energy ordering instead of hard-coded
//	multiplicities keeps the logic element-independent.
//
// Determinism:
//
//	Multiplicities are ranked by the lowest energy among their rows;
//	ties keep first-appearance order (stable sort). QATS rows rank by
//	their lambda=0 coefficient.
//
// Errors:
//
//   - ErrNoRows     — the input holds no rows at all.
//   - ErrExcitation — fewer distinct states than requested and the
//     ignoreOneRow escape hatch is off. With ignoreOneRow on, the
//     highest available state is returned instead.
package state

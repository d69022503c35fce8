// SPDX-License-Identifier: MIT
//
// Package dataset defines the two tabular inputs every prediction consumes:
// exact quantum-chemistry rows (QCRow) and fitted alchemical Taylor rows
// (QATSRow), together with order-preserving filters and invariant checks.
//
// The tables T_qc and T_qats support a small, composable query surface:
//
//   - Chainable filters: BySystem, OtherSystems, ByCharge, ByMultiplicity,
//     ByNElectrons, ByBasis, ByLambda, ByBondLength, Where
//   - Deterministic accessors: Systems(), Multiplicities() return sorted
//     unique values; SortByBondLength() returns a stably sorted copy
//   - Row helpers: IsDimer(), ElectronCount(), QATSRow.Energy()
//
// Why dataset.QCTable / dataset.QATSTable?
//
//   - Immutable discipline — every filter allocates a fresh view; the input
//     slice is never reordered or mutated, so one loaded table can feed any
//     number of concurrent predictions.
//   - Deterministic iteration — filters preserve input order, accessors sort,
//     so identical inputs always produce identical outputs.
//   - Electron-count indexing — references are matched by n_electrons rather
//     than charge, because an alchemical reference generally carries a
//     different charge than the target it predicts.
//
// Invariants (enforced by Validate and CheckAnchors):
//
//   - Within one basis set, (system, charge, multiplicity, lambda_value
//     [, bond_length]) uniquely identifies a QC row.
//   - n_electrons = sum(atomic_numbers) - charge.
//   - poly_coeffs[0] equals the lambda=0 electronic energy of the matching
//     QC row (the Taylor series is anchored at the unperturbed point).
//   - QATS rows carry no lambda of their own; lambda enters at evaluation.
//
// Errors:
//
//	ErrBadRow        - a row fails basic shape checks (empty label, bad Z, …).
//	ErrElectronCount - n_electrons disagrees with atomic numbers and charge.
//	ErrDuplicateRow  - two rows share one identity within a basis set.
//	ErrEmptyCoeffs   - a QATS row carries no coefficients at all.
//	ErrAnchor        - poly_coeffs[0] drifts from the lambda=0 energy.
package dataset

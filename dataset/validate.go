// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Invariant enforcement for loaded tables: row shape, electron-count
//       identity, per-basis uniqueness, and Taylor anchoring against the
//       lambda=0 quantum-chemistry energies.
package dataset

import (
	"fmt"
	"math"
)

// identity is the per-basis uniqueness key of a QC row. QATS rows reuse it
// with LambdaValue fixed to zero.
type identity struct {
	BasisSet     string
	System       string
	Charge       int
	Multiplicity int
	LambdaValue  int
	BondLength   float64
}

// Validate checks every row's shape, the electron-count identity, and
// per-basis uniqueness. The first violation is returned, wrapped around the
// matching sentinel; a nil error means the table satisfies all invariants.
func (t QCTable) Validate() error {
	seen := make(map[identity]struct{}, len(t))
	for i, r := range t {
		if err := checkShape(r.System, r.AtomicNumbers, r.Multiplicity, r.BasisSet); err != nil {
			return fmt.Errorf("%w: qc row %d", err, i)
		}
		if r.NElectrons != r.ElectronCount() {
			return fmt.Errorf("%w: qc row %d (system %q, charge %d)", ErrElectronCount, i, r.System, r.Charge)
		}
		key := identity{r.BasisSet, r.System, r.Charge, r.Multiplicity, r.LambdaValue, r.BondLength}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: qc row %d (system %q, lambda %d)", ErrDuplicateRow, i, r.System, r.LambdaValue)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Validate checks every row's shape, the electron-count identity, coefficient
// presence, and per-basis uniqueness of the expanded states.
func (t QATSTable) Validate() error {
	seen := make(map[identity]struct{}, len(t))
	for i, r := range t {
		if err := checkShape(r.System, r.AtomicNumbers, r.Multiplicity, r.BasisSet); err != nil {
			return fmt.Errorf("%w: qats row %d", err, i)
		}
		if len(r.PolyCoeffs) == 0 {
			return fmt.Errorf("%w: qats row %d (system %q)", ErrEmptyCoeffs, i, r.System)
		}
		if r.NElectrons != r.ElectronCount() {
			return fmt.Errorf("%w: qats row %d (system %q, charge %d)", ErrElectronCount, i, r.System, r.Charge)
		}
		key := identity{r.BasisSet, r.System, r.Charge, r.Multiplicity, 0, r.BondLength}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: qats row %d (system %q)", ErrDuplicateRow, i, r.System)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// CheckAnchors verifies that each QATS row's zeroth-order coefficient equals
// the lambda=0 electronic energy of the matching QC row, within tol.
// QATS rows without a matching lambda=0 QC row are skipped: the expansion
// table may cover states whose exact calculations were not loaded.
func CheckAnchors(qc QCTable, qats QATSTable, tol float64) error {
	anchors := make(map[identity]float64, len(qc))
	for _, r := range qc.ByLambda(0) {
		anchors[identity{r.BasisSet, r.System, r.Charge, r.Multiplicity, 0, r.BondLength}] = r.ElectronicEnergy
	}
	for i, r := range qats {
		if len(r.PolyCoeffs) == 0 {
			return fmt.Errorf("%w: qats row %d (system %q)", ErrEmptyCoeffs, i, r.System)
		}
		e, ok := anchors[identity{r.BasisSet, r.System, r.Charge, r.Multiplicity, 0, r.BondLength}]
		if !ok {
			continue
		}
		if math.Abs(r.PolyCoeffs[0]-e) > tol {
			return fmt.Errorf("%w: qats row %d (system %q): |%g - %g| > %g",
				ErrAnchor, i, r.System, r.PolyCoeffs[0], e, tol)
		}
	}

	return nil
}

// checkShape validates the fields shared by both row kinds.
func checkShape(system string, atomicNumbers []int, multiplicity int, basis string) error {
	if system == "" {
		return fmt.Errorf("%w: empty system label", ErrBadRow)
	}
	if n := len(atomicNumbers); n < 1 || n > 2 {
		return fmt.Errorf("%w: system %q has %d atoms, want 1 or 2", ErrBadRow, system, n)
	}
	for _, z := range atomicNumbers {
		if z <= 0 {
			return fmt.Errorf("%w: system %q has non-positive atomic number %d", ErrBadRow, system, z)
		}
	}
	if multiplicity < 1 {
		return fmt.Errorf("%w: system %q has multiplicity %d", ErrBadRow, system, multiplicity)
	}
	if basis == "" {
		return fmt.Errorf("%w: system %q has empty basis set", ErrBadRow, system)
	}

	return nil
}

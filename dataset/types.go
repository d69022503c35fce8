// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Row and table types shared by every prediction package, plus the
//       sentinel errors raised by validation.
//
// Determinism:
//   - Rows are plain values; tables are slices that filters never reorder.
package dataset

import (
	"errors"
	"math"
)

// Sentinel errors for dataset validation.
var (
	// ErrBadRow indicates a row that fails basic shape checks.
	ErrBadRow = errors.New("dataset: malformed row")

	// ErrElectronCount indicates n_electrons != sum(atomic_numbers) - charge.
	ErrElectronCount = errors.New("dataset: n_electrons does not match atomic numbers minus charge")

	// ErrDuplicateRow indicates two rows sharing one identity within a basis set.
	ErrDuplicateRow = errors.New("dataset: duplicate row identity within basis set")

	// ErrEmptyCoeffs indicates a QATS row without a zeroth-order coefficient.
	ErrEmptyCoeffs = errors.New("dataset: poly_coeffs must contain at least the lambda=0 term")

	// ErrAnchor indicates poly_coeffs[0] drifting from the lambda=0 energy.
	ErrAnchor = errors.New("dataset: poly_coeffs[0] does not match the lambda=0 electronic energy")
)

// QCRow is one exact quantum-chemistry calculation: a system at a fixed
// charge and spin state, possibly perturbed by an integer nuclear-charge
// lambda, with its computed electronic energy.
//
// BondLength is meaningful for dimers only; atoms leave it zero.
// Energies are expected in one consistent unit across a dataset (Hartree).
type QCRow struct {
	// System is the label identifying the unperturbed system, e.g. "c" or "f.h".
	System string `json:"system"`

	// AtomicNumbers holds the nuclear charges in atom order:
	// length 1 for atoms, 2 for dimers.
	AtomicNumbers []int `json:"atomic_numbers"`

	// Charge is the total charge of the system.
	Charge int `json:"charge"`

	// Multiplicity is the spin multiplicity 2S+1 of the electronic state.
	Multiplicity int `json:"multiplicity"`

	// NElectrons is sum(AtomicNumbers) - Charge; stored explicitly because
	// reference matching is indexed by electron count.
	NElectrons int `json:"n_electrons"`

	// BasisSet names the basis the energy was computed in, e.g. "aug-cc-pV5Z".
	BasisSet string `json:"basis_set"`

	// LambdaValue is the integer nuclear-charge perturbation; 0 is the
	// true, unperturbed system.
	LambdaValue int `json:"lambda_value"`

	// BondLength is the internuclear distance for dimer rows; 0 for atoms.
	BondLength float64 `json:"bond_length,omitempty"`

	// ElectronicEnergy is the computed total electronic energy.
	ElectronicEnergy float64 `json:"electronic_energy"`
}

// QATSRow is one fitted alchemical Taylor expansion: the identifying fields
// of a lambda=0 system plus the polynomial coefficients of its energy as a
// function of lambda, ascending degree.
type QATSRow struct {
	// System is the label identifying the expanded system.
	System string `json:"system"`

	// AtomicNumbers holds the nuclear charges in atom order.
	AtomicNumbers []int `json:"atomic_numbers"`

	// Charge is the total charge of the expanded state.
	Charge int `json:"charge"`

	// Multiplicity is the spin multiplicity 2S+1 of the expanded state.
	Multiplicity int `json:"multiplicity"`

	// NElectrons is sum(AtomicNumbers) - Charge.
	NElectrons int `json:"n_electrons"`

	// BasisSet names the basis the expansion was fitted in.
	BasisSet string `json:"basis_set"`

	// BondLength is the internuclear distance for dimer rows; 0 for atoms.
	BondLength float64 `json:"bond_length,omitempty"`

	// PolyCoeffs are the Taylor coefficients in ascending degree;
	// PolyCoeffs[0] is the lambda=0 electronic energy.
	PolyCoeffs []float64 `json:"poly_coeffs"`
}

// QCTable is an ordered collection of quantum-chemistry rows.
// Filters return fresh views and never mutate the receiver.
type QCTable []QCRow

// QATSTable is an ordered collection of fitted Taylor rows.
// Filters return fresh views and never mutate the receiver.
type QATSTable []QATSRow

// IsDimer reports whether the row describes a two-atom system.
func (r QCRow) IsDimer() bool { return len(r.AtomicNumbers) == 2 }

// ElectronCount derives the electron count from atomic numbers and charge.
// It is the reference value NElectrons must equal.
func (r QCRow) ElectronCount() int { return sumInts(r.AtomicNumbers) - r.Charge }

// IsDimer reports whether the row describes a two-atom system.
func (r QATSRow) IsDimer() bool { return len(r.AtomicNumbers) == 2 }

// ElectronCount derives the electron count from atomic numbers and charge.
func (r QATSRow) ElectronCount() int { return sumInts(r.AtomicNumbers) - r.Charge }

// Energy returns the lambda=0 electronic energy of the expansion,
// i.e. PolyCoeffs[0]. Rows without coefficients yield NaN.
func (r QATSRow) Energy() float64 {
	if len(r.PolyCoeffs) == 0 {
		return math.NaN()
	}

	return r.PolyCoeffs[0]
}

// MaxOrder returns the highest available truncation order, len(PolyCoeffs)-1.
// Rows without coefficients yield -1.
func (r QATSRow) MaxOrder() int { return len(r.PolyCoeffs) - 1 }

// sumInts returns the sum of xs.
func sumInts(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}

	return s
}

// Package predict_test shares the synthetic atom and dimer datasets used
// across *_test.go files in this package. The numbers are chosen for exact
// hand-checkable arithmetic, not physical realism.
package predict_test

import (
	"github.com/katalvlaran/qats/dataset"
)

const (
	atomBasis  = "aug-cc-pV5Z"
	dimerBasis = "cc-pV5Z"
)

// Atom fixture energies. Carbon is the target; nitrogen and boron are the
// viable references (lambda -1 and +1); doubly charged oxygen covers only
// the initial electron count and must be dropped by intersection.
const (
	eCarbon        = -37.8 // c, charge 0, triplet
	eCarbonSinglet = -37.7 // c, charge 0, singlet
	eCarbonCation  = -37.4 // c, charge +1, doublet
)

// atomRow abbreviates a single-atom QC row.
func atomRow(system string, z, charge, mult int, lambda int, energy float64) dataset.QCRow {
	return dataset.QCRow{
		System:           system,
		AtomicNumbers:    []int{z},
		Charge:           charge,
		Multiplicity:     mult,
		NElectrons:       z - charge,
		BasisSet:         atomBasis,
		LambdaValue:      lambda,
		ElectronicEnergy: energy,
	}
}

// atomQATS abbreviates a single-atom expansion row.
func atomQATS(system string, z, charge, mult int, coeffs ...float64) dataset.QATSRow {
	return dataset.QATSRow{
		System:        system,
		AtomicNumbers: []int{z},
		Charge:        charge,
		Multiplicity:  mult,
		NElectrons:    z - charge,
		BasisSet:      atomBasis,
		PolyCoeffs:    coeffs,
	}
}

// atomQC builds the quantum-chemistry table of the atom fixture.
func atomQC() dataset.QCTable {
	return dataset.QCTable{
		// Target: carbon at both charges, plus a singlet excited state.
		atomRow("c", 6, 0, 3, 0, eCarbon),
		atomRow("c", 6, 0, 1, 0, eCarbonSinglet),
		atomRow("c", 6, 1, 2, 0, eCarbonCation),

		// Nitrogen's directly computed alchemical points at lambda -1:
		// the "true" values the Taylor predictions approximate.
		atomRow("n", 7, 1, 3, -1, -37.79),
		atomRow("n", 7, 2, 2, -1, -37.37),

		// Unperturbed nitrogen rows (anchor energies).
		atomRow("n", 7, 1, 3, 0, -53.9),
		atomRow("n", 7, 2, 2, 0, -53.0),
	}
}

// Nitrogen expansion coefficients: chosen so per-order differences are
// exact decimals. At lambda -1 the order-wise endpoint differences are
// 0.9, 0.4 and 0.65.
var (
	nInitialCoeffs = []float64{-53.9, -16.0, 0.35}
	nFinalCoeffs   = []float64{-53.0, -15.5, 0.60}

	bInitialCoeffs = []float64{-24.6, -13.0, 0.20}
	bFinalCoeffs   = []float64{-24.3, -12.8, 0.30}
)

// atomQATSTable builds the expansion table of the atom fixture.
func atomQATSTable() dataset.QATSTable {
	return dataset.QATSTable{
		// Nitrogen: both electron counts, lambda -1 from carbon.
		atomQATS("n", 7, 1, 3, nInitialCoeffs...),
		atomQATS("n", 7, 2, 2, nFinalCoeffs...),

		// Boron: both electron counts, lambda +1 from carbon.
		atomQATS("b", 5, -1, 3, bInitialCoeffs...),
		atomQATS("b", 5, 0, 2, bFinalCoeffs...),

		// Oxygen: initial electron count only; intersection must drop it.
		atomQATS("o", 8, 2, 3, -71.1, -20.0, 0.5),
	}
}

// orderDiff evaluates the truncated endpoint difference of two coefficient
// sequences at an integer lambda, the way Taylor-mode predictions do.
func orderDiff(initial, final []float64, order, lambda int) float64 {
	var eInit, eFin float64
	l := float64(lambda)
	pow := 1.0
	for i := 0; i <= order; i++ {
		eInit += initial[i] * pow
		eFin += final[i] * pow
		pow *= l
	}

	return eFin - eInit
}

// Dimer fixture. Hydrogen fluoride is the target; hydroxide (o.h) is the
// reference at lambda +1 on the first atom. Bonding curves are exact
// parabolas over the shared grid.
var dimerGrid = []float64{0.6, 0.8, 1.0, 1.2, 1.4}

// dimerRow abbreviates a dimer QC row.
func dimerRow(system string, z [2]int, charge, mult, lambda int, bl, energy float64) dataset.QCRow {
	return dataset.QCRow{
		System:           system,
		AtomicNumbers:    []int{z[0], z[1]},
		Charge:           charge,
		Multiplicity:     mult,
		NElectrons:       z[0] + z[1] - charge,
		BasisSet:         dimerBasis,
		LambdaValue:      lambda,
		BondLength:       bl,
		ElectronicEnergy: energy,
	}
}

// parabola is the test energy model E(b) = (b-center)^2 + depth.
func parabola(center, depth, b float64) float64 {
	return (b-center)*(b-center) + depth
}

// dimerQC builds the quantum-chemistry table of the dimer fixture:
// hydrogen fluoride at charges 0 and +1, sampled on the shared grid.
func dimerQC() dataset.QCTable {
	var t dataset.QCTable
	for _, b := range dimerGrid {
		t = append(t,
			dimerRow("f.h", [2]int{9, 1}, 0, 1, 0, b, parabola(1.0, -100, b)),
			dimerRow("f.h", [2]int{9, 1}, 1, 2, 0, b, parabola(0.9, -99.5, b)),
		)
	}

	return t
}

// dimerQATSTable builds the expansion table of the dimer fixture. The
// hydroxide coefficients are rigged per bond length so that order 0
// reproduces one parabola and order 1, evaluated at lambda +1, another:
// c0(b) = E0(b), c1(b) = E1(b) - E0(b).
func dimerQATSTable() dataset.QATSTable {
	var t dataset.QATSTable
	for _, b := range dimerGrid {
		initE0 := parabola(1.2, -90, b)
		initE1 := parabola(1.0, -100, b)
		finE0 := parabola(1.1, -89.6, b)
		finE1 := parabola(0.9, -99.5, b)
		t = append(t,
			// n_electrons 10: o.h anion, pairs with neutral f.h.
			dataset.QATSRow{
				System:        "o.h",
				AtomicNumbers: []int{8, 1},
				Charge:        -1,
				Multiplicity:  1,
				NElectrons:    10,
				BasisSet:      dimerBasis,
				BondLength:    b,
				PolyCoeffs:    []float64{initE0, initE1 - initE0},
			},
			// n_electrons 9: neutral o.h, pairs with the f.h cation.
			dataset.QATSRow{
				System:        "o.h",
				AtomicNumbers: []int{8, 1},
				Charge:        0,
				Multiplicity:  2,
				NElectrons:    9,
				BasisSet:      dimerBasis,
				BondLength:    b,
				PolyCoeffs:    []float64{finE0, finE1 - finE0},
			},
		)
	}

	return t
}

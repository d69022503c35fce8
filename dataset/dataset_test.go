package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qats/dataset"
)

// fixtureQC builds a small mixed table: three neutral atoms at lambda 0,
// one perturbed carbon row, and two hydrogen-fluoride dimer samples.
func fixtureQC() dataset.QCTable {
	return dataset.QCTable{
		{System: "c", AtomicNumbers: []int{6}, Charge: 0, Multiplicity: 3, NElectrons: 6, BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -37.8},
		{System: "n", AtomicNumbers: []int{7}, Charge: 0, Multiplicity: 4, NElectrons: 7, BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -54.6},
		{System: "o", AtomicNumbers: []int{8}, Charge: 0, Multiplicity: 3, NElectrons: 8, BasisSet: "aug-cc-pV5Z", LambdaValue: 0, ElectronicEnergy: -75.1},
		{System: "c", AtomicNumbers: []int{6}, Charge: 0, Multiplicity: 3, NElectrons: 6, BasisSet: "aug-cc-pV5Z", LambdaValue: 1, ElectronicEnergy: -54.9},
		{System: "f.h", AtomicNumbers: []int{9, 1}, Charge: 0, Multiplicity: 1, NElectrons: 10, BasisSet: "cc-pV5Z", LambdaValue: 0, BondLength: 1.1, ElectronicEnergy: -100.43},
		{System: "f.h", AtomicNumbers: []int{9, 1}, Charge: 0, Multiplicity: 1, NElectrons: 10, BasisSet: "cc-pV5Z", LambdaValue: 0, BondLength: 0.9, ElectronicEnergy: -100.45},
	}
}

// TestQCTable_FiltersPreserveOrder verifies that chained filters keep input
// order and never mutate the receiver.
func TestQCTable_FiltersPreserveOrder(t *testing.T) {
	qc := fixtureQC()

	atoms := qc.ByBasis("aug-cc-pV5Z").ByLambda(0)
	require.Len(t, atoms, 3, "three unperturbed atoms expected")
	require.Equal(t, "c", atoms[0].System, "input order must be preserved")
	require.Equal(t, "n", atoms[1].System)
	require.Equal(t, "o", atoms[2].System)

	// The receiver stays intact after filtering.
	require.Len(t, qc, 6, "filters must not mutate the source table")
}

// TestQCTable_OtherSystems verifies self-exclusion used by reference lookup.
func TestQCTable_OtherSystems(t *testing.T) {
	refs := fixtureQC().ByLambda(0).OtherSystems("c")
	for _, r := range refs {
		require.NotEqual(t, "c", r.System, "target system must be excluded")
	}
	// n, o, and both f.h bond-length samples survive.
	require.Len(t, refs, 4)
	require.Equal(t, []string{"f.h", "n", "o"}, refs.Systems())
}

// TestQCTable_SortedAccessors verifies Systems and Multiplicities are sorted
// unique views.
func TestQCTable_SortedAccessors(t *testing.T) {
	qc := fixtureQC()

	require.Equal(t, []string{"c", "f.h", "n", "o"}, qc.Systems())
	require.Equal(t, []int{1, 3, 4}, qc.Multiplicities())
}

// TestQCTable_SortByBondLength verifies the stable ascending sort on a copy.
func TestQCTable_SortByBondLength(t *testing.T) {
	dimer := fixtureQC().BySystem("f.h")
	sorted := dimer.SortByBondLength()

	require.Equal(t, []float64{0.9, 1.1}, sorted.BondLengths())
	require.Equal(t, []float64{-100.45, -100.43}, sorted.Energies())
	// Source order is untouched.
	require.Equal(t, []float64{1.1, 0.9}, dimer.BondLengths())
}

// TestQCRow_Helpers verifies dimer detection and the electron-count identity.
func TestQCRow_Helpers(t *testing.T) {
	qc := fixtureQC()

	require.False(t, qc[0].IsDimer(), "single atom is not a dimer")
	require.True(t, qc[4].IsDimer(), "two atomic numbers make a dimer")
	require.Equal(t, 6, qc[0].ElectronCount(), "neutral carbon has six electrons")

	cation := qc[0]
	cation.Charge = 1
	require.Equal(t, 5, cation.ElectronCount(), "charge removes electrons")
}

// TestQATSRow_EnergyAndOrder verifies the lambda=0 accessor and MaxOrder.
func TestQATSRow_EnergyAndOrder(t *testing.T) {
	row := dataset.QATSRow{
		System: "c", AtomicNumbers: []int{6}, Multiplicity: 3, NElectrons: 6,
		BasisSet: "aug-cc-pV5Z", PolyCoeffs: []float64{-37.8, -14.7, -0.9},
	}

	require.Equal(t, -37.8, row.Energy(), "Energy() is the zeroth coefficient")
	require.Equal(t, 2, row.MaxOrder())

	empty := dataset.QATSRow{System: "c"}
	require.True(t, math.IsNaN(empty.Energy()), "no coefficients yields NaN")
	require.Equal(t, -1, empty.MaxOrder())
}

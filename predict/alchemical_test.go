package predict_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qats/predict"
)

// TestAlchemicalEnergies_AtomLookups verifies index-aligned lookups with
// NaN for lambdas absent from the dataset.
func TestAlchemicalEnergies_AtomLookups(t *testing.T) {
	got, err := predict.AlchemicalEnergies(atomQC(), "n", 1, []int{-1, 0, 1})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.InDelta(t, -37.79, got[0], 1e-12)
	require.InDelta(t, -53.9, got[1], 1e-12)
	require.True(t, math.IsNaN(got[2]), "no lambda +1 rows for the nitrogen cation")
}

// TestAlchemicalEnergies_DimerNeedsBondLength verifies that dimer lookups
// without a pinned bond length are rejected.
func TestAlchemicalEnergies_DimerNeedsBondLength(t *testing.T) {
	_, err := predict.AlchemicalEnergies(dimerQC(), "f.h", 0, []int{0}, predict.WithBasis(dimerBasis))
	require.ErrorIs(t, err, predict.ErrOptionViolation)
}

// TestAlchemicalEnergies_DimerPinned verifies a dimer lookup pinned to one
// grid point.
func TestAlchemicalEnergies_DimerPinned(t *testing.T) {
	got, err := predict.AlchemicalEnergies(dimerQC(), "f.h", 0, []int{0},
		predict.WithBasis(dimerBasis), predict.WithBondLength(1.0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, -100.0, got[0], 1e-12)
}

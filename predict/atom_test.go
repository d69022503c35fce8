package predict_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qats/dataset"
	"github.com/katalvlaran/qats/predict"
)

// TestAtomChargeQC_Ionization verifies the direct first ionization energy
// of the carbon fixture: cation energy minus neutral ground-state energy.
func TestAtomChargeQC_Ionization(t *testing.T) {
	got, ok, err := predict.AtomChargeQC(atomQC(), "c", 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, eCarbonCation-eCarbon, got, 1e-12)
}

// TestAtomChargeQC_SignFlipIdempotence verifies that WithChangeSigns
// negates the same prediction and nothing else.
func TestAtomChargeQC_SignFlipIdempotence(t *testing.T) {
	plain, ok, err := predict.AtomChargeQC(atomQC(), "c", 1)
	require.NoError(t, err)
	require.True(t, ok)

	flipped, ok, err := predict.AtomChargeQC(atomQC(), "c", 1, predict.WithChangeSigns())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, -plain, flipped)
}

// TestAtomChargeQC_MissingData verifies the expected-absence contract:
// an absent system yields the NaN sentinel with ok false and no error.
func TestAtomChargeQC_MissingData(t *testing.T) {
	got, ok, err := predict.AtomChargeQC(atomQC(), "si", 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, math.IsNaN(got))
}

// TestAtomChargeQC_SignConvention verifies that electron attachment
// without the sign flip is rejected.
func TestAtomChargeQC_SignConvention(t *testing.T) {
	_, _, err := predict.AtomChargeQC(atomQC(), "c", -1)
	require.ErrorIs(t, err, predict.ErrSignConvention)

	_, _, err = predict.AtomChargeQC(atomQC(), "c", 0)
	require.ErrorIs(t, err, predict.ErrOptionViolation)
}

// TestAtomChargeQA_TaylorPredictions verifies per-order Taylor predictions
// from both viable references and that the one-sided oxygen reference is
// dropped by intersection.
func TestAtomChargeQA_TaylorPredictions(t *testing.T) {
	preds, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1)
	require.NoError(t, err)
	require.Len(t, preds, 2)
	require.NotContains(t, preds, "o", "one-sided reference must be dropped")

	n := preds["n"]
	require.Equal(t, -1, n.Lambda)
	require.Len(t, n.Energies, 3)
	for order := range n.Energies {
		require.InDelta(t, orderDiff(nInitialCoeffs, nFinalCoeffs, order, -1), n.Energies[order], 1e-12)
	}

	b := preds["b"]
	require.Equal(t, 1, b.Lambda)
	for order := range b.Energies {
		require.InDelta(t, orderDiff(bInitialCoeffs, bFinalCoeffs, order, 1), b.Energies[order], 1e-12)
	}
}

// TestAtomChargeQA_LambdaAllowList verifies that references outside the
// allow-list are skipped silently.
func TestAtomChargeQA_LambdaAllowList(t *testing.T) {
	preds, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1, predict.WithLambdas(-1))
	require.NoError(t, err)
	require.Len(t, preds, 1)
	require.Contains(t, preds, "n")
}

// TestAtomChargeQA_AlchemicalLookup verifies the direct-lookup mode: the
// actually computed energies at the reference's lambda, one value per
// reference, NaN where the alchemical rows are absent.
func TestAtomChargeQA_AlchemicalLookup(t *testing.T) {
	preds, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1, predict.WithAlchemicalLookup())
	require.NoError(t, err)

	n := preds["n"]
	require.Len(t, n.Energies, 1)
	require.InDelta(t, -37.37-(-37.79), n.Energies[0], 1e-12)

	// Boron has no lambda +1 quantum-chemistry rows in the fixture.
	b := preds["b"]
	require.Len(t, b.Energies, 1)
	require.True(t, math.IsNaN(b.Energies[0]))
}

// TestAtomChargeQA_TaylorVsAlchemical verifies the truncation-error mode:
// per-order Taylor prediction minus the direct lookup.
func TestAtomChargeQA_TaylorVsAlchemical(t *testing.T) {
	preds, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1, predict.WithTaylorVsAlchemical())
	require.NoError(t, err)

	n := preds["n"]
	lookup := -37.37 - (-37.79)
	require.Len(t, n.Energies, 3)
	for order := range n.Energies {
		want := orderDiff(nInitialCoeffs, nFinalCoeffs, order, -1) - lookup
		require.InDelta(t, want, n.Energies[order], 1e-12)
	}
}

// TestAtomChargeQA_MissingTarget verifies that a target absent from the
// dataset yields an empty map, not an error.
func TestAtomChargeQA_MissingTarget(t *testing.T) {
	preds, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "si", 1)
	require.NoError(t, err)
	require.Empty(t, preds)
}

// TestAtomChargeQA_LambdaMismatch verifies that a reference whose
// endpoint rows disagree on lambda fails fatally instead of being skipped
// or averaged.
func TestAtomChargeQA_LambdaMismatch(t *testing.T) {
	// One system label, two incompatible nuclei: lambda -1 vs +1.
	qats := dataset.QATSTable{
		atomQATS("x", 7, 1, 3, -53.9, -16.0),
		atomQATS("x", 5, 0, 2, -24.3, -12.8),
	}

	_, err := predict.AtomChargeQA(atomQC(), qats, "c", 1)
	require.ErrorIs(t, err, predict.ErrLambdaMismatch)
}

// TestAtomChargeQA_ChangeSignsAppliesPerOrder verifies the sign flip in
// Taylor mode for an attachment-style call.
func TestAtomChargeQA_ChangeSignsAppliesPerOrder(t *testing.T) {
	plain, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1)
	require.NoError(t, err)
	flipped, err := predict.AtomChargeQA(atomQC(), atomQATSTable(), "c", 1, predict.WithChangeSigns())
	require.NoError(t, err)

	for label, p := range plain {
		f, present := flipped[label]
		require.True(t, present)
		for i := range p.Energies {
			require.InDelta(t, -p.Energies[i], f.Energies[i], 1e-12)
		}
	}
}

package perturb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qats/perturb"
)

// TestValue_Atoms verifies the plain difference for single atoms, with and
// without an irrelevant policy set.
func TestValue_Atoms(t *testing.T) {
	l, err := perturb.Value([]int{6}, []int{7}, perturb.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, l, "carbon to nitrogen is +1")

	l, err = perturb.Value([]int{9}, []int{7}, perturb.Options{SpecificAtom: 0})
	require.NoError(t, err)
	require.Equal(t, -2, l, "fluorine to nitrogen is -2; policy fields are ignored for atoms")
}

// TestValue_Incompatible verifies length checks.
func TestValue_Incompatible(t *testing.T) {
	_, err := perturb.Value([]int{6}, []int{6, 1}, perturb.DefaultOptions())
	require.ErrorIs(t, err, perturb.ErrIncompatible)

	_, err = perturb.Value(nil, nil, perturb.DefaultOptions())
	require.ErrorIs(t, err, perturb.ErrIncompatible, "empty sequences are incompatible")
}

// TestValue_SpecificAtom verifies the one-atom distribution policy.
func TestValue_SpecificAtom(t *testing.T) {
	// OH -> FH: whole change on atom 0.
	l, err := perturb.Value([]int{8, 1}, []int{9, 1}, perturb.Options{SpecificAtom: 0})
	require.NoError(t, err)
	require.Equal(t, 1, l)

	// HF -> HCl style change on atom 1 is fine too.
	l, err = perturb.Value([]int{1, 9}, []int{1, 8}, perturb.Options{SpecificAtom: 1})
	require.NoError(t, err)
	require.Equal(t, -1, l)

	// The untouched atom must already match the target.
	_, err = perturb.Value([]int{8, 1}, []int{9, 2}, perturb.Options{SpecificAtom: 0})
	require.ErrorIs(t, err, perturb.ErrIncompatible)

	_, err = perturb.Value([]int{8, 1}, []int{9, 1}, perturb.Options{SpecificAtom: 2})
	require.ErrorIs(t, err, perturb.ErrAtomIndex)
}

// TestValue_Counter verifies the equal-and-opposite policy and the
// increasing-atom convention.
func TestValue_Counter(t *testing.T) {
	counter := perturb.Options{SpecificAtom: perturb.NoAtom, Direction: perturb.Counter}

	// N2 -> CO: equal reference charges, second atom increases.
	l, err := perturb.Value([]int{7, 7}, []int{6, 8}, counter)
	require.NoError(t, err)
	require.Equal(t, 1, l)

	// CO -> BF: oxygen carries the larger reference charge and increases.
	l, err = perturb.Value([]int{6, 8}, []int{5, 9}, counter)
	require.NoError(t, err)
	require.Equal(t, 1, l)

	// CO -> NF reverses the heavy atom's change.
	l, err = perturb.Value([]int{6, 8}, []int{7, 7}, counter)
	require.NoError(t, err)
	require.Equal(t, -1, l)

	// Identity perturbation is a valid lambda of zero.
	l, err = perturb.Value([]int{7, 7}, []int{7, 7}, counter)
	require.NoError(t, err)
	require.Equal(t, 0, l)

	// Unbalanced changes cannot be counter-directed.
	_, err = perturb.Value([]int{7, 7}, []int{6, 9}, counter)
	require.ErrorIs(t, err, perturb.ErrIncompatible)
}

// TestValue_DimerNeedsPolicy verifies the ambiguity sentinel.
func TestValue_DimerNeedsPolicy(t *testing.T) {
	_, err := perturb.Value([]int{7, 7}, []int{6, 8}, perturb.DefaultOptions())
	require.ErrorIs(t, err, perturb.ErrAmbiguous)
}

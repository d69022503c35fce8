package state

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qats/dataset"
)

// Sentinel errors for state selection.
var (
	// ErrNoRows indicates selection over an empty row set.
	ErrNoRows = errors.New("state: no rows to select a state from")

	// ErrExcitation indicates fewer distinct electronic states than the
	// requested excitation level allows.
	ErrExcitation = errors.New("state: excitation level exceeds available states")
)

// SelectQC returns the quantum-chemistry row representing the level-th
// energy-ordered electronic state (0 = ground). Each distinct multiplicity
// is represented by its lowest-energy row; representatives are ranked by
// ascending energy.
//
// When fewer distinct states exist than level+1: with ignoreOneRow false
// the call fails with ErrExcitation; with ignoreOneRow true the highest
// available state is returned instead.
func SelectQC(rows dataset.QCTable, level int, ignoreOneRow bool) (dataset.QCRow, error) {
	if len(rows) == 0 {
		return dataset.QCRow{}, ErrNoRows
	}

	reps := representatives(len(rows),
		func(i int) int { return rows[i].Multiplicity },
		func(i int) float64 { return rows[i].ElectronicEnergy })

	idx, err := levelIndex(len(reps), level, ignoreOneRow)
	if err != nil {
		return dataset.QCRow{}, err
	}

	return rows[reps[idx]], nil
}

// SelectQATS is SelectQC over fitted Taylor rows; state energies are the
// lambda=0 coefficients.
func SelectQATS(rows dataset.QATSTable, level int, ignoreOneRow bool) (dataset.QATSRow, error) {
	if len(rows) == 0 {
		return dataset.QATSRow{}, ErrNoRows
	}

	reps := representatives(len(rows),
		func(i int) int { return rows[i].Multiplicity },
		func(i int) float64 { return rows[i].Energy() })

	idx, err := levelIndex(len(reps), level, ignoreOneRow)
	if err != nil {
		return dataset.QATSRow{}, err
	}

	return rows[reps[idx]], nil
}

// MultiplicityQC returns the spin multiplicity of the level-th state.
// Dimers use this to pick a state across every bond-length row at once.
func MultiplicityQC(rows dataset.QCTable, level int, ignoreOneRow bool) (int, error) {
	r, err := SelectQC(rows, level, ignoreOneRow)
	if err != nil {
		return 0, err
	}

	return r.Multiplicity, nil
}

// MultiplicityQATS returns the spin multiplicity of the level-th state of a
// fitted-expansion table.
func MultiplicityQATS(rows dataset.QATSTable, level int, ignoreOneRow bool) (int, error) {
	r, err := SelectQATS(rows, level, ignoreOneRow)
	if err != nil {
		return 0, err
	}

	return r.Multiplicity, nil
}

// representatives returns row indices, one per distinct multiplicity, each
// pointing at the lowest-energy row of its multiplicity, ranked by ascending
// representative energy. NaN energies rank last; ties keep first-appearance
// order.
func representatives(n int, mult func(int) int, energy func(int) float64) []int {
	best := make(map[int]int, n) // multiplicity -> row index of its lowest energy
	order := make([]int, 0, n)   // representative indices in first appearance order
	for i := 0; i < n; i++ {
		m := mult(i)
		j, seen := best[m]
		if !seen {
			best[m] = i
			order = append(order, i)

			continue
		}
		if less(energy(i), energy(j)) {
			best[m] = i
			// Keep the representative slot of this multiplicity up to date.
			for k, idx := range order {
				if mult(idx) == m {
					order[k] = i

					break
				}
			}
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return less(energy(order[a]), energy(order[b])) })

	return order
}

// less orders energies ascending with NaN ranked last.
func less(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return a < b
}

// levelIndex maps an excitation level onto the ranked states, clamping to
// the highest available state when ignoreOneRow allows it.
func levelIndex(states, level int, ignoreOneRow bool) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("%w: negative level %d", ErrExcitation, level)
	}
	if level < states {
		return level, nil
	}
	if !ignoreOneRow {
		return 0, fmt.Errorf("%w: level %d with %d state(s)", ErrExcitation, level, states)
	}

	return states - 1, nil
}

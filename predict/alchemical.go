package predict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qats/dataset"
)

// AlchemicalEnergies returns one system's directly computed electronic
// energies at the given lambda values — the raw alchemical curve a
// Taylor expansion approximates.
//
// The rows are narrowed to the label, charge and basis; dimer rows must be
// pinned to one internuclear distance with WithBondLength
// (ErrOptionViolation otherwise). When several multiplicities remain, the
// WithExcitation state is selected across the lambda set. The result is
// index-aligned with lambdas; an absent lambda yields NaN, several rows at
// one lambda is ErrAmbiguousRows.
func AlchemicalEnergies(qc dataset.QCTable, label string, charge int, lambdas []int, opts ...Option) ([]float64, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return nil, err
	}

	rows := qc.BySystem(label).ByCharge(charge).ByBasis(o.BasisSet)
	if len(rows) > 0 && rows[0].IsDimer() {
		if !o.HasBondLength {
			return nil, fmt.Errorf("%w: dimer energies need WithBondLength", ErrOptionViolation)
		}
		rows = rows.ByBondLength(o.BondLength)
	}

	inSet := rows.Where(func(r dataset.QCRow) bool {
		for _, l := range lambdas {
			if r.LambdaValue == l {
				return true
			}
		}

		return false
	})

	if len(inSet.Multiplicities()) > 1 {
		selected, err := o.SelectQC(inSet, o.ExcitationLevel, o.IgnoreOneRow)
		if err != nil {
			return nil, err
		}
		inSet = inSet.ByMultiplicity(selected.Multiplicity)
	}

	out := make([]float64, len(lambdas))
	for i, l := range lambdas {
		matches := inSet.ByLambda(l)
		switch len(matches) {
		case 0:
			out[i] = math.NaN()
		case 1:
			out[i] = matches[0].ElectronicEnergy
		default:
			return nil, fmt.Errorf("%w: %d rows for %q at lambda %d", ErrAmbiguousRows, len(matches), label, l)
		}
	}

	return out, nil
}

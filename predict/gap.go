package predict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qats/dataset"
)

// gapLevel maps the excitation option onto gap semantics: a gap is always
// measured against the ground state, so level 0 means "first excited".
func (o Options) gapLevel() int {
	if o.ExcitationLevel == 0 {
		return 1
	}

	return o.ExcitationLevel
}

// AtomGapQC computes the multiplicity gap of an atom — the energy of an
// excited electronic state above the ground state at fixed charge — from
// direct (lambda=0) quantum chemistry.
//
// WithExcitation selects the upper state (default: first excited). Fewer
// than two states in the dataset is expected absence: (NaN, false, nil).
func AtomGapQC(qc dataset.QCTable, target string, opts ...Option) (float64, bool, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return math.NaN(), false, err
	}

	rows := qc.BySystem(target).ByCharge(o.TargetCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(rows.Multiplicities()) < 2 {
		return math.NaN(), false, nil
	}
	if err = atomsOnlyQC(rows); err != nil {
		return math.NaN(), false, err
	}

	ground, err := o.SelectQC(rows, 0, o.IgnoreOneRow)
	if err != nil {
		return math.NaN(), false, err
	}
	excited, err := o.SelectQC(rows, o.gapLevel(), o.IgnoreOneRow)
	if err != nil {
		return math.NaN(), false, err
	}

	return excited.ElectronicEnergy - ground.ElectronicEnergy, true, nil
}

// AtomGapQA predicts the multiplicity gap alchemically: per reference, the
// gap between the reference's ground- and excited-state expansions
// evaluated at the reference's lambda.
//
// The target's rows only establish electron count and atomic numbers;
// fewer than two target states, or fewer than two reference rows, is
// expected absence and yields an empty map. Lambda consistency between the
// two reference states is enforced (ErrLambdaMismatch); modes and the
// allow-list behave as in AtomChargeQA. The gap carries no sign
// convention, so WithChangeSigns does not apply.
func AtomGapQA(qc dataset.QCTable, qats dataset.QATSTable, target string, opts ...Option) (map[string]Prediction, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return nil, err
	}
	o.ChangeSigns = false

	targetRows := qc.BySystem(target).ByCharge(o.TargetCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(targetRows.Multiplicities()) < 2 {
		return map[string]Prediction{}, nil
	}
	if err = atomsOnlyQC(targetRows); err != nil {
		return nil, err
	}
	ground, err := o.SelectQC(targetRows, 0, o.IgnoreOneRow)
	if err != nil {
		return nil, err
	}

	refs := qats.OtherSystems(target).ByNElectrons(ground.NElectrons).ByBasis(o.BasisSet)
	if len(refs) < 2 {
		return map[string]Prediction{}, nil
	}

	predictions := make(map[string]Prediction)
	for _, label := range refs.Systems() {
		sysRows := refs.BySystem(label)
		refGround, err := o.SelectQATS(sysRows, 0, o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		refExcited, err := o.SelectQATS(sysRows, o.gapLevel(), o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}

		lambdaGround, err := o.Lambda(refGround.AtomicNumbers, ground.AtomicNumbers, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		lambdaExcited, err := o.Lambda(refExcited.AtomicNumbers, ground.AtomicNumbers, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		if lambdaGround != lambdaExcited {
			return nil, fmt.Errorf("%w: reference %q (%d vs %d)",
				ErrLambdaMismatch, label, lambdaGround, lambdaExcited)
		}
		if !o.allowsLambda(lambdaGround) {
			continue
		}

		pred := Prediction{Reference: label, Lambda: lambdaGround}

		if o.UseTaylor {
			pred.Energies, err = o.taylorDiffs(refGround, refExcited, lambdaGround)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", label, err)
			}
		}
		if o.Lookup {
			gap, err := o.lookupDiff(qc, refPair{label: label, initial: refGround, final: refExcited}, lambdaGround)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", label, err)
			}
			if o.Diff {
				for i := range pred.Energies {
					pred.Energies[i] -= gap
				}
			} else {
				pred.Energies = []float64{gap}
			}
		}

		predictions[label] = pred
	}

	return predictions, nil
}

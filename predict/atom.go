package predict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qats/dataset"
	"github.com/katalvlaran/qats/taylor"
)

// AtomChargeQC computes the energy difference of changing an atom's charge
// by deltaCharge, from direct (lambda=0) quantum chemistry.
//
// The initial endpoint is the target's ground state at the initial charge
// (WithTargetCharge, default 0); the final endpoint is identified by
// electron count rather than charge, since references at the final charge
// are not assumed. The comma-ok result reifies the expected-absence
// contract: a missing endpoint yields (NaN, false, nil), never an error.
//
// A positive deltaCharge removes electrons (ionization); a negative one
// attaches them and must pair with WithChangeSigns (ErrSignConvention) so
// affinities report on the ionization sign convention.
func AtomChargeQC(qc dataset.QCTable, target string, deltaCharge int, opts ...Option) (float64, bool, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return math.NaN(), false, err
	}
	if err = o.checkDelta(deltaCharge); err != nil {
		return math.NaN(), false, err
	}

	initialRows := qc.BySystem(target).ByCharge(o.TargetCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(initialRows) == 0 {
		return math.NaN(), false, nil
	}
	if err = atomsOnlyQC(initialRows); err != nil {
		return math.NaN(), false, err
	}
	initial, err := o.SelectQC(initialRows, 0, o.IgnoreOneRow)
	if err != nil {
		return math.NaN(), false, err
	}

	finalN := initial.NElectrons - deltaCharge
	finalRows := qc.BySystem(target).ByLambda(0).ByNElectrons(finalN).ByBasis(o.BasisSet)
	if len(finalRows) == 0 {
		return math.NaN(), false, nil
	}
	final, err := o.SelectQC(finalRows, 0, o.IgnoreOneRow)
	if err != nil {
		return math.NaN(), false, err
	}

	return o.sign() * (final.ElectronicEnergy - initial.ElectronicEnergy), true, nil
}

// AtomChargeQA predicts the same charge-change energy alchemically, from
// every reference system holding data for both electron counts.
//
// Per reference the perturbation is computed against the target's atomic
// numbers; the initial- and final-endpoint rows must agree on it
// (ErrLambdaMismatch — a disagreement means the reference rows describe
// different systems, not a skippable gap). References outside the
// WithLambdas allow-list are skipped silently.
//
// Modes: by default each reference contributes one Taylor prediction per
// available order; WithAlchemicalLookup substitutes the directly computed
// energy at the reference's lambda; WithTaylorVsAlchemical reports the
// per-order difference of the two. A reference without the exact
// alchemical rows yields NaN entries in the lookup modes. Missing target
// data yields an empty map, nil error.
func AtomChargeQA(qc dataset.QCTable, qats dataset.QATSTable, target string, deltaCharge int, opts ...Option) (map[string]Prediction, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return nil, err
	}
	if err = o.checkDelta(deltaCharge); err != nil {
		return nil, err
	}

	targetRows := qc.BySystem(target).ByCharge(o.TargetCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(targetRows) == 0 {
		return map[string]Prediction{}, nil
	}
	if err = atomsOnlyQC(targetRows); err != nil {
		return nil, err
	}
	targetInitial, err := o.SelectQC(targetRows, 0, o.IgnoreOneRow)
	if err != nil {
		return nil, err
	}

	initialN := targetInitial.NElectrons
	finalN := initialN - deltaCharge
	pairs, err := o.resolveAtomPairs(qats, target, initialN, finalN)
	if err != nil {
		return nil, err
	}

	predictions := make(map[string]Prediction, len(pairs))
	for _, pair := range pairs {
		lambdaInitial, err := o.Lambda(pair.initial.AtomicNumbers, targetInitial.AtomicNumbers, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", pair.label, err)
		}
		lambdaFinal, err := o.Lambda(pair.final.AtomicNumbers, targetInitial.AtomicNumbers, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", pair.label, err)
		}
		if lambdaInitial != lambdaFinal {
			return nil, fmt.Errorf("%w: reference %q (%d vs %d)",
				ErrLambdaMismatch, pair.label, lambdaInitial, lambdaFinal)
		}
		if !o.allowsLambda(lambdaInitial) {
			continue
		}

		pred := Prediction{Reference: pair.label, Lambda: lambdaInitial}

		if o.UseTaylor {
			pred.Energies, err = o.taylorDiffs(pair.initial, pair.final, lambdaInitial)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", pair.label, err)
			}
		}
		if o.Lookup {
			eDiff, err := o.lookupDiff(qc, pair, lambdaInitial)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", pair.label, err)
			}
			if o.Diff {
				for i := range pred.Energies {
					pred.Energies[i] -= eDiff
				}
			} else {
				pred.Energies = []float64{eDiff}
			}
		}

		predictions[pair.label] = pred
	}

	return predictions, nil
}

// taylorDiffs evaluates the signed endpoint difference at every truncation
// order both expansions support.
func (o Options) taylorDiffs(initial, final dataset.QATSRow, lambda int) ([]float64, error) {
	maxOrder := initial.MaxOrder()
	if final.MaxOrder() < maxOrder {
		maxOrder = final.MaxOrder()
	}

	out := make([]float64, 0, maxOrder+1)
	for order := 0; order <= maxOrder; order++ {
		eInitial, err := taylor.EvalAt(initial.PolyCoeffs, order, float64(lambda))
		if err != nil {
			return nil, err
		}
		eFinal, err := taylor.EvalAt(final.PolyCoeffs, order, float64(lambda))
		if err != nil {
			return nil, err
		}
		out = append(out, o.sign()*(eFinal-eInitial))
	}

	return out, nil
}

// lookupDiff computes the signed endpoint difference from the directly
// computed rows at the reference's lambda. NaN marks an absent alchemical
// point; several matching rows violate row identity.
func (o Options) lookupDiff(qc dataset.QCTable, pair refPair, lambda int) (float64, error) {
	eInitial, err := o.uniqueEnergy(qc, pair.initial, lambda)
	if err != nil {
		return 0, err
	}
	eFinal, err := o.uniqueEnergy(qc, pair.final, lambda)
	if err != nil {
		return 0, err
	}

	return o.sign() * (eFinal - eInitial), nil
}

// uniqueEnergy looks up the single quantum-chemistry energy matching a
// reference row's state at the given lambda. Zero rows is expected absence
// (NaN); more than one is ErrAmbiguousRows.
func (o Options) uniqueEnergy(qc dataset.QCTable, ref dataset.QATSRow, lambda int) (float64, error) {
	rows := qc.BySystem(ref.System).ByLambda(lambda).
		ByCharge(ref.Charge).ByMultiplicity(ref.Multiplicity).ByBasis(o.BasisSet)
	switch len(rows) {
	case 0:
		return math.NaN(), nil
	case 1:
		return rows[0].ElectronicEnergy, nil
	default:
		return 0, fmt.Errorf("%w: %d rows for %q at lambda %d", ErrAmbiguousRows, len(rows), ref.System, lambda)
	}
}

// atomsOnlyQC rejects dimer rows in atom operations.
func atomsOnlyQC(rows dataset.QCTable) error {
	for _, r := range rows {
		if r.IsDimer() {
			return fmt.Errorf("%w: system %q is a dimer", ErrSystemKind, r.System)
		}
	}

	return nil
}

package predict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qats/bondcurve"
	"github.com/katalvlaran/qats/dataset"
)

// DimerChargeQC computes the energy difference of changing a dimer's
// charge by deltaCharge from direct (lambda=0) quantum chemistry.
//
// Unlike atoms, each endpoint is not a single row: its ground-state
// bonding curve is built and minimized (WithCurve controls the
// equilibrium search) and the difference of equilibrium energies is
// reported. Sign conventions and the comma-ok missing-data contract match
// AtomChargeQC.
func DimerChargeQC(qc dataset.QCTable, target string, deltaCharge int, opts ...Option) (float64, bool, error) {
	o, err := applyOptions(DefaultDimerBasis, opts)
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
	if err = dimersOnlyQC(initialRows); err != nil {
		return math.NaN(), false, err
	}

	initialEnergy, ok, err := o.groundEquilibriumEnergy(initialRows)
	if err != nil || !ok {
		return math.NaN(), false, err
	}

	finalN := initialRows[0].NElectrons - deltaCharge
	finalRows := qc.BySystem(target).ByLambda(0).ByNElectrons(finalN).ByBasis(o.BasisSet)
	if len(finalRows) == 0 {
		return math.NaN(), false, nil
	}

	finalEnergy, ok, err := o.groundEquilibriumEnergy(finalRows)
	if err != nil || !ok {
		return math.NaN(), false, err
	}

	return o.sign() * (finalEnergy - initialEnergy), true, nil
}

// DimerChargeQA predicts the same charge-change energy alchemically.
//
// It mirrors AtomChargeQA with every single-energy lookup replaced by a
// bonding-curve construction plus equilibrium extraction; in Taylor mode
// each endpoint's curve is rebuilt and re-minimized independently per
// truncation order, since the fitted energies vary by order even though
// the bond-length grid is shared. A distribution policy is mandatory
// (ErrLambdaPolicy). Both endpoint lookups in WithAlchemicalLookup mode
// use the initial lambda; the equality of initial and final lambdas is
// enforced first (ErrLambdaMismatch), so the choice is consistent by
// construction.
func DimerChargeQA(qc dataset.QCTable, qats dataset.QATSTable, target string, deltaCharge int, opts ...Option) (map[string]Prediction, error) {
	o, err := applyOptions(DefaultDimerBasis, opts)
	if err != nil {
		return nil, err
	}
	if err = o.checkDelta(deltaCharge); err != nil {
		return nil, err
	}
	if !o.hasLambdaPolicy() {
		return nil, ErrLambdaPolicy
	}

	// Target initial ground state.
	initialRows := qc.BySystem(target).ByCharge(o.TargetCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(initialRows) == 0 {
		return map[string]Prediction{}, nil
	}
	if err = dimersOnlyQC(initialRows); err != nil {
		return nil, err
	}
	initialMult, err := o.multiplicityAt(initialRows, 0)
	if err != nil {
		return nil, err
	}
	initialRows = initialRows.ByMultiplicity(initialMult)
	if len(initialRows) < 2 {
		return nil, fmt.Errorf("%w: target %q initial state has %d sample(s)", ErrCurveData, target, len(initialRows))
	}
	initialN := initialRows[0].NElectrons
	targetZ := initialRows[0].AtomicNumbers
	finalN := initialN - deltaCharge

	// Target final ground state fixes the multiplicity gating the final
	// reference rows.
	finalRows := qc.BySystem(target).ByCharge(o.TargetCharge+deltaCharge).ByLambda(0).ByBasis(o.BasisSet)
	if len(finalRows) == 0 {
		return map[string]Prediction{}, nil
	}
	finalMult, err := o.multiplicityAt(finalRows, 0)
	if err != nil {
		return nil, err
	}

	pairs, err := o.resolveDimerPairs(qats, target, initialN, finalN, initialMult, finalMult)
	if err != nil {
		return nil, err
	}

	predictions := make(map[string]Prediction, len(pairs))
	for _, pair := range pairs {
		lambdaInitial, err := o.Lambda(pair.initial[0].AtomicNumbers, targetZ, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", pair.label, err)
		}
		lambdaFinal, err := o.Lambda(pair.final[0].AtomicNumbers, targetZ, o.perturbOptions())
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
			pred.Energies, err = o.taylorEquilibriumDiffs(pair, lambdaInitial)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", pair.label, err)
			}
		}
		if o.Lookup {
			eDiff, err := o.lookupEquilibriumDiff(qc, pair, lambdaInitial)
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

// taylorEquilibriumDiffs rebuilds and re-minimizes both endpoint curves at
// every truncation order both expansions support, returning the signed
// equilibrium-energy differences.
func (o Options) taylorEquilibriumDiffs(pair dimerRefPair, lambda int) ([]float64, error) {
	maxOrder := pair.initial[0].MaxOrder()
	if m := pair.final[0].MaxOrder(); m < maxOrder {
		maxOrder = m
	}

	out := make([]float64, 0, maxOrder+1)
	for order := 0; order <= maxOrder; order++ {
		initialCurve, err := bondcurve.FromQATS(pair.initial, order, lambda)
		if err != nil {
			return nil, fmt.Errorf("order %d (initial): %w", order, err)
		}
		_, eInitial, err := bondcurve.Minimum(initialCurve, o.Curve)
		if err != nil {
			return nil, fmt.Errorf("order %d (initial): %w", order, err)
		}

		finalCurve, err := bondcurve.FromQATS(pair.final, order, lambda)
		if err != nil {
			return nil, fmt.Errorf("order %d (final): %w", order, err)
		}
		_, eFinal, err := bondcurve.Minimum(finalCurve, o.Curve)
		if err != nil {
			return nil, fmt.Errorf("order %d (final): %w", order, err)
		}

		out = append(out, o.sign()*(eFinal-eInitial))
	}

	return out, nil
}

// lookupEquilibriumDiff builds both endpoint curves from directly computed
// rows at the initial lambda and returns the signed equilibrium-energy
// difference. An endpoint without alchemical rows is expected absence: NaN.
func (o Options) lookupEquilibriumDiff(qc dataset.QCTable, pair dimerRefPair, lambda int) (float64, error) {
	eInitial, ok, err := o.stateEquilibriumEnergy(qc, pair.initial[0], lambda)
	if err != nil || !ok {
		return math.NaN(), err
	}
	eFinal, ok, err := o.stateEquilibriumEnergy(qc, pair.final[0], lambda)
	if err != nil || !ok {
		return math.NaN(), err
	}

	return o.sign() * (eFinal - eInitial), nil
}

// stateEquilibriumEnergy minimizes the directly computed curve of one
// reference state at the given lambda.
func (o Options) stateEquilibriumEnergy(qc dataset.QCTable, ref dataset.QATSRow, lambda int) (float64, bool, error) {
	rows := qc.BySystem(ref.System).ByLambda(lambda).
		ByCharge(ref.Charge).ByMultiplicity(ref.Multiplicity).ByBasis(o.BasisSet)
	if len(rows) == 0 {
		return math.NaN(), false, nil
	}

	curve, err := bondcurve.FromQC(rows, lambda)
	if err != nil {
		return math.NaN(), false, err
	}
	_, energy, err := bondcurve.Minimum(curve, o.Curve)
	if err != nil {
		return math.NaN(), false, err
	}

	return energy, true, nil
}

// groundEquilibriumEnergy narrows rows to their ground multiplicity,
// builds the lambda=0 curve and minimizes it. Empty ground-state data is
// expected absence.
func (o Options) groundEquilibriumEnergy(rows dataset.QCTable) (float64, bool, error) {
	mult, err := o.multiplicityAt(rows, 0)
	if err != nil {
		return math.NaN(), false, err
	}
	ground := rows.ByMultiplicity(mult)
	if len(ground) == 0 {
		return math.NaN(), false, nil
	}

	curve, err := bondcurve.FromQC(ground, 0)
	if err != nil {
		return math.NaN(), false, err
	}
	_, energy, err := bondcurve.Minimum(curve, o.Curve)
	if err != nil {
		return math.NaN(), false, err
	}

	return energy, true, nil
}

// dimersOnlyQC rejects atom rows in dimer operations.
func dimersOnlyQC(rows dataset.QCTable) error {
	for _, r := range rows {
		if !r.IsDimer() {
			return fmt.Errorf("%w: system %q is an atom", ErrSystemKind, r.System)
		}
	}

	return nil
}

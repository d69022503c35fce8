package predict

import (
	"fmt"

	"github.com/katalvlaran/qats/bondcurve"
	"github.com/katalvlaran/qats/dataset"
)

// DimerCurves builds the bonding curves of a dimer target at the given
// charge.
//
// In the default (Taylor) mode every viable reference system contributes
// one family with a curve per available truncation order, each curve
// evaluated at the reference's lambda. WithAlchemicalLookup substitutes
// each reference's directly computed rows at its lambda (one curve per
// family). WithoutTaylor bypasses references entirely and returns the
// target's own lambda=0 curve, keyed by the target label.
//
// Alchemical modes require a perturbation distribution policy
// (ErrLambdaPolicy); WithExcitation selects the target's electronic state;
// references outside the WithLambdas allow-list are skipped. Missing
// target data yields an empty map, nil error.
func DimerCurves(qc dataset.QCTable, qats dataset.QATSTable, target string, charge int, opts ...Option) (map[string]CurveFamily, error) {
	o, err := applyOptions(DefaultDimerBasis, opts)
	if err != nil {
		return nil, err
	}

	sysRows := qc.BySystem(target).ByCharge(charge).ByBasis(o.BasisSet)
	if len(sysRows) == 0 {
		return map[string]CurveFamily{}, nil
	}
	if !sysRows[0].IsDimer() {
		return nil, fmt.Errorf("%w: system %q is not a dimer", ErrSystemKind, target)
	}

	mult, err := o.multiplicityAt(sysRows.ByLambda(0), o.ExcitationLevel)
	if err != nil {
		return nil, err
	}
	sysRows = sysRows.ByMultiplicity(mult)
	if len(sysRows) == 0 {
		return map[string]CurveFamily{}, nil
	}

	if o.SelfCurve {
		curve, err := bondcurve.FromQC(sysRows.ByLambda(0), 0)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", target, err)
		}

		return map[string]CurveFamily{
			target: {Reference: target, Lambda: 0, Curves: []bondcurve.Curve{curve}},
		}, nil
	}

	if !o.hasLambdaPolicy() {
		return nil, ErrLambdaPolicy
	}
	targetZ := sysRows[0].AtomicNumbers
	nElectrons := sysRows[0].NElectrons

	if o.UseTaylor {
		return o.taylorFamilies(qats, target, nElectrons, targetZ)
	}

	return o.lookupFamilies(qc, target, nElectrons, targetZ)
}

// DimerEquilibria minimizes every curve DimerCurves produces, returning
// the equilibrium bond length and energy per reference and, in Taylor
// mode, per truncation order. Curve options (window, order, outlier
// removal) come from WithCurve.
func DimerEquilibria(qc dataset.QCTable, qats dataset.QATSTable, target string, charge int, opts ...Option) (map[string]Equilibrium, error) {
	o, err := applyOptions(DefaultDimerBasis, opts)
	if err != nil {
		return nil, err
	}

	families, err := DimerCurves(qc, qats, target, charge, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Equilibrium, len(families))
	for label, family := range families {
		eq := Equilibrium{
			Reference:   family.Reference,
			Lambda:      family.Lambda,
			BondLengths: make([]float64, len(family.Curves)),
			Energies:    make([]float64, len(family.Curves)),
		}
		for i, curve := range family.Curves {
			bl, energy, err := bondcurve.Minimum(curve, o.Curve)
			if err != nil {
				return nil, fmt.Errorf("reference %q, curve %d: %w", label, i, err)
			}
			eq.BondLengths[i] = bl
			eq.Energies[i] = energy
		}
		out[label] = eq
	}

	return out, nil
}

// taylorFamilies builds one per-order curve family per reference from the
// fitted expansions.
func (o Options) taylorFamilies(qats dataset.QATSTable, target string, nElectrons int, targetZ []int) (map[string]CurveFamily, error) {
	refs, err := o.referencesQATS(qats, target, nElectrons)
	if err != nil {
		return nil, err
	}

	out := make(map[string]CurveFamily)
	for _, label := range refs.Systems() {
		refRows := refs.BySystem(label)
		lambda, err := o.Lambda(refRows[0].AtomicNumbers, targetZ, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		if !o.allowsLambda(lambda) {
			continue
		}

		family := CurveFamily{Reference: label, Lambda: lambda}
		for order := 0; order <= refRows[0].MaxOrder(); order++ {
			curve, err := bondcurve.FromQATS(refRows, order, lambda)
			if err != nil {
				return nil, fmt.Errorf("reference %q, order %d: %w", label, order, err)
			}
			family.Curves = append(family.Curves, curve)
		}
		out[label] = family
	}

	return out, nil
}

// lookupFamilies builds one directly computed curve per reference at the
// reference's lambda.
func (o Options) lookupFamilies(qc dataset.QCTable, target string, nElectrons int, targetZ []int) (map[string]CurveFamily, error) {
	refs, err := o.referencesQC(qc, target, nElectrons)
	if err != nil {
		return nil, err
	}

	out := make(map[string]CurveFamily)
	for _, label := range refs.Systems() {
		refRows := refs.BySystem(label)
		lambda, err := o.Lambda(refRows[0].AtomicNumbers, targetZ, o.perturbOptions())
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		if !o.allowsLambda(lambda) {
			continue
		}

		curve, err := bondcurve.FromQC(refRows, lambda)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		out[label] = CurveFamily{Reference: label, Lambda: lambda, Curves: []bondcurve.Curve{curve}}
	}

	return out, nil
}

// multiplicityAt returns the level-th state's multiplicity of the given
// rows through the injectable selector.
func (o Options) multiplicityAt(rows dataset.QCTable, level int) (int, error) {
	selected, err := o.SelectQC(rows, level, o.IgnoreOneRow)
	if err != nil {
		return 0, err
	}

	return selected.Multiplicity, nil
}

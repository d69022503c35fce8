package predict

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qats/dataset"
)

// ReferencesQATS resolves the fitted-expansion reference rows for a target:
// systems other than the target whose electron count equals nElectrons,
// within the basis, each reduced to the rows of its excitation-level state.
//
// Atoms keep one row per system; dimers keep every bond-length row of the
// selected multiplicity. Systems whose state selection fails under
// WithStrictStates surface the selection error.
func ReferencesQATS(qats dataset.QATSTable, target string, nElectrons int, opts ...Option) (dataset.QATSTable, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return nil, err
	}

	return o.referencesQATS(qats, target, nElectrons)
}

// ReferencesQC is ReferencesQATS over the quantum-chemistry table. Rows at
// every lambda survive: direct alchemical lookups filter by lambda later.
func ReferencesQC(qc dataset.QCTable, target string, nElectrons int, opts ...Option) (dataset.QCTable, error) {
	o, err := applyOptions(DefaultAtomBasis, opts)
	if err != nil {
		return nil, err
	}

	return o.referencesQC(qc, target, nElectrons)
}

func (o Options) referencesQATS(qats dataset.QATSTable, target string, nElectrons int) (dataset.QATSTable, error) {
	candidates := qats.OtherSystems(target).ByNElectrons(nElectrons).ByBasis(o.BasisSet)

	var out dataset.QATSTable
	for _, label := range candidates.Systems() {
		rows := candidates.BySystem(label)
		selected, err := o.SelectQATS(rows, o.ExcitationLevel, o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		out = append(out, rows.ByMultiplicity(selected.Multiplicity)...)
	}

	return out, nil
}

func (o Options) referencesQC(qc dataset.QCTable, target string, nElectrons int) (dataset.QCTable, error) {
	candidates := qc.OtherSystems(target).ByNElectrons(nElectrons).ByBasis(o.BasisSet)

	var out dataset.QCTable
	for _, label := range candidates.Systems() {
		rows := candidates.BySystem(label)
		selected, err := o.SelectQC(rows, o.ExcitationLevel, o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", label, err)
		}
		out = append(out, rows.ByMultiplicity(selected.Multiplicity)...)
	}

	return out, nil
}

// refPair is one reference system usable for both endpoints of an atomic
// charge change: its state-selected expansion at the initial and final
// electron counts.
type refPair struct {
	label   string
	initial dataset.QATSRow
	final   dataset.QATSRow
}

// resolveAtomPairs intersects the initial- and final-electron-count
// reference sets and reduces each survivor to one state-selected row per
// side. References lacking either endpoint are dropped, not defaulted; a
// row-count disagreement after intersection is the fatal
// ErrReferenceMismatch. Pairs come back sorted by label.
func (o Options) resolveAtomPairs(qats dataset.QATSTable, target string, initialN, finalN int) ([]refPair, error) {
	availFinal := make(map[string]struct{})
	for _, label := range qats.OtherSystems(target).ByNElectrons(finalN).ByBasis(o.BasisSet).Systems() {
		availFinal[label] = struct{}{}
	}

	initialRows := qats.OtherSystems(target).ByNElectrons(initialN).ByBasis(o.BasisSet).
		Where(func(r dataset.QATSRow) bool {
			_, ok := availFinal[r.System]

			return ok
		})

	initialSel := make(map[string]dataset.QATSRow)
	for _, label := range initialRows.Systems() {
		row, err := o.SelectQATS(initialRows.BySystem(label), 0, o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q (initial): %w", label, err)
		}
		initialSel[label] = row
	}

	finalRows := qats.OtherSystems(target).ByNElectrons(finalN).ByBasis(o.BasisSet).
		Where(func(r dataset.QATSRow) bool {
			_, ok := initialSel[r.System]

			return ok
		})

	finalSel := make(map[string]dataset.QATSRow)
	for _, label := range finalRows.Systems() {
		row, err := o.SelectQATS(finalRows.BySystem(label), 0, o.IgnoreOneRow)
		if err != nil {
			return nil, fmt.Errorf("reference %q (final): %w", label, err)
		}
		finalSel[label] = row
	}

	if len(initialSel) != len(finalSel) {
		return nil, fmt.Errorf("%w: %d initial vs %d final reference(s)",
			ErrReferenceMismatch, len(initialSel), len(finalSel))
	}

	labels := make([]string, 0, len(initialSel))
	for label := range initialSel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	pairs := make([]refPair, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, refPair{label: label, initial: initialSel[label], final: finalSel[label]})
	}

	return pairs, nil
}

// dimerRefPair is one reference system usable for both endpoints of a
// dimer charge change: every bond-length expansion row at each endpoint's
// ground multiplicity.
type dimerRefPair struct {
	label   string
	initial dataset.QATSTable
	final   dataset.QATSTable
}

// resolveDimerPairs intersects dimer reference sets the same way as
// resolveAtomPairs, but keeps whole bond-length families. The endpoint
// multiplicities are the target's own ground multiplicities, which gate
// the reference rows directly. Total row counts must agree across
// endpoints (ErrReferenceMismatch otherwise).
func (o Options) resolveDimerPairs(
	qats dataset.QATSTable, target string,
	initialN, finalN, initialMult, finalMult int,
) ([]dimerRefPair, error) {
	availFinal := make(map[string]struct{})
	for _, label := range qats.OtherSystems(target).ByNElectrons(finalN).ByBasis(o.BasisSet).Systems() {
		availFinal[label] = struct{}{}
	}

	initialRows := qats.OtherSystems(target).ByNElectrons(initialN).ByBasis(o.BasisSet).
		ByMultiplicity(initialMult).
		Where(func(r dataset.QATSRow) bool {
			_, ok := availFinal[r.System]

			return ok
		})

	initialSys := make(map[string]struct{})
	for _, label := range initialRows.Systems() {
		initialSys[label] = struct{}{}
	}

	finalRows := qats.OtherSystems(target).ByNElectrons(finalN).ByBasis(o.BasisSet).
		ByMultiplicity(finalMult).
		Where(func(r dataset.QATSRow) bool {
			_, ok := initialSys[r.System]

			return ok
		})

	if len(initialRows) != len(finalRows) {
		return nil, fmt.Errorf("%w: %d initial vs %d final row(s)",
			ErrReferenceMismatch, len(initialRows), len(finalRows))
	}

	var pairs []dimerRefPair
	for _, label := range finalRows.Systems() {
		pairs = append(pairs, dimerRefPair{
			label:   label,
			initial: initialRows.BySystem(label),
			final:   finalRows.BySystem(label),
		})
	}

	return pairs, nil
}

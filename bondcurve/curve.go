package bondcurve

import (
	"fmt"

	"github.com/katalvlaran/qats/dataset"
	"github.com/katalvlaran/qats/taylor"
)

// FromQC builds the curve of one electronic state from direct
// quantum-chemistry rows at the given lambda.
//
// The input rows must already be narrowed to a single system, charge and
// multiplicity (ErrMixedRows otherwise) and must describe a dimer
// (ErrNotDimer). Rows at other lambdas are filtered out here; an empty
// result is ErrEmptyCurve.
func FromQC(rows dataset.QCTable, lambda int) (Curve, error) {
	if len(rows) == 0 {
		return Curve{}, ErrEmptyCurve
	}
	if err := oneStateQC(rows); err != nil {
		return Curve{}, err
	}

	sorted := rows.ByLambda(lambda).SortByBondLength()
	if len(sorted) == 0 {
		return Curve{}, fmt.Errorf("%w: no samples at lambda %d", ErrEmptyCurve, lambda)
	}

	return Curve{BondLengths: sorted.BondLengths(), Energies: sorted.Energies()}, nil
}

// FromQATS builds the curve of one electronic state by evaluating each
// bond length's fitted expansion at the given truncation order and lambda.
//
// The same single-state and dimer requirements apply; a row whose
// expansion does not reach the requested order surfaces the wrapped
// taylor.ErrOrderRange.
func FromQATS(rows dataset.QATSTable, order, lambda int) (Curve, error) {
	if len(rows) == 0 {
		return Curve{}, ErrEmptyCurve
	}
	if err := oneStateQATS(rows); err != nil {
		return Curve{}, err
	}

	sorted := rows.SortByBondLength()
	bls := make([]float64, len(sorted))
	energies := make([]float64, len(sorted))
	for i, r := range sorted {
		e, err := taylor.EvalAt(r.PolyCoeffs, order, float64(lambda))
		if err != nil {
			return Curve{}, fmt.Errorf("bond length %g: %w", r.BondLength, err)
		}
		bls[i] = r.BondLength
		energies[i] = e
	}

	return Curve{BondLengths: bls, Energies: energies}, nil
}

// oneStateQC checks that rows describe exactly one dimer electronic state.
func oneStateQC(rows dataset.QCTable) error {
	first := rows[0]
	if !first.IsDimer() {
		return fmt.Errorf("%w: system %q has %d atom(s)", ErrNotDimer, first.System, len(first.AtomicNumbers))
	}
	for _, r := range rows[1:] {
		if r.System != first.System || r.Charge != first.Charge || r.Multiplicity != first.Multiplicity {
			return fmt.Errorf("%w: %q/%d/%d vs %q/%d/%d", ErrMixedRows,
				first.System, first.Charge, first.Multiplicity, r.System, r.Charge, r.Multiplicity)
		}
		if !r.IsDimer() {
			return fmt.Errorf("%w: system %q has %d atom(s)", ErrNotDimer, r.System, len(r.AtomicNumbers))
		}
	}

	return nil
}

// oneStateQATS checks that rows describe exactly one dimer electronic state.
func oneStateQATS(rows dataset.QATSTable) error {
	first := rows[0]
	if !first.IsDimer() {
		return fmt.Errorf("%w: system %q has %d atom(s)", ErrNotDimer, first.System, len(first.AtomicNumbers))
	}
	for _, r := range rows[1:] {
		if r.System != first.System || r.Charge != first.Charge || r.Multiplicity != first.Multiplicity {
			return fmt.Errorf("%w: %q/%d/%d vs %q/%d/%d", ErrMixedRows,
				first.System, first.Charge, first.Multiplicity, r.System, r.Charge, r.Multiplicity)
		}
		if !r.IsDimer() {
			return fmt.Errorf("%w: system %q has %d atom(s)", ErrNotDimer, r.System, len(r.AtomicNumbers))
		}
	}

	return nil
}

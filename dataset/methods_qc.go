// SPDX-License-Identifier: MIT
//
// File: methods_qc.go
// Role: Query surface of QCTable: chainable filters and sorted accessors.
//
// Determinism:
//   - Filters preserve input order; Systems()/Multiplicities()/Lambdas()
//     return sorted unique values; SortByBondLength() sorts a copy, stably.
package dataset

import "sort"

// Where returns the rows for which keep reports true, in input order.
func (t QCTable) Where(keep func(QCRow) bool) QCTable {
	out := make(QCTable, 0, len(t))
	for _, r := range t {
		if keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// BySystem returns the rows whose system label equals label.
func (t QCTable) BySystem(label string) QCTable {
	return t.Where(func(r QCRow) bool { return r.System == label })
}

// OtherSystems returns the rows whose system label differs from label.
// Reference resolution starts here: a system never references itself.
func (t QCTable) OtherSystems(label string) QCTable {
	return t.Where(func(r QCRow) bool { return r.System != label })
}

// ByCharge returns the rows at the given total charge.
func (t QCTable) ByCharge(charge int) QCTable {
	return t.Where(func(r QCRow) bool { return r.Charge == charge })
}

// ByMultiplicity returns the rows at the given spin multiplicity.
func (t QCTable) ByMultiplicity(mult int) QCTable {
	return t.Where(func(r QCRow) bool { return r.Multiplicity == mult })
}

// ByNElectrons returns the rows at the given electron count.
func (t QCTable) ByNElectrons(n int) QCTable {
	return t.Where(func(r QCRow) bool { return r.NElectrons == n })
}

// ByBasis returns the rows computed in the given basis set.
func (t QCTable) ByBasis(basis string) QCTable {
	return t.Where(func(r QCRow) bool { return r.BasisSet == basis })
}

// ByLambda returns the rows at the given perturbation strength.
// ByLambda(0) selects the true, unperturbed calculations.
func (t QCTable) ByLambda(lambda int) QCTable {
	return t.Where(func(r QCRow) bool { return r.LambdaValue == lambda })
}

// ByBondLength returns the dimer rows at exactly the given bond length.
// Bond-length grids are shared across a dataset, so exact comparison is
// the intended lookup; no tolerance is applied.
func (t QCTable) ByBondLength(bl float64) QCTable {
	return t.Where(func(r QCRow) bool { return r.BondLength == bl })
}

// Systems returns the distinct system labels, sorted ascending.
func (t QCTable) Systems() []string {
	seen := make(map[string]struct{}, len(t))
	out := make([]string, 0, len(t))
	for _, r := range t {
		if _, ok := seen[r.System]; ok {
			continue
		}
		seen[r.System] = struct{}{}
		out = append(out, r.System)
	}
	sort.Strings(out)

	return out
}

// Multiplicities returns the distinct spin multiplicities, sorted ascending.
func (t QCTable) Multiplicities() []int {
	seen := make(map[int]struct{}, len(t))
	out := make([]int, 0, len(t))
	for _, r := range t {
		if _, ok := seen[r.Multiplicity]; ok {
			continue
		}
		seen[r.Multiplicity] = struct{}{}
		out = append(out, r.Multiplicity)
	}
	sort.Ints(out)

	return out
}

// SortByBondLength returns a copy of the table sorted by ascending bond
// length. The sort is stable so equal bond lengths keep their input order.
func (t QCTable) SortByBondLength() QCTable {
	out := make(QCTable, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool { return out[i].BondLength < out[j].BondLength })

	return out
}

// Energies returns the electronic energies in table order.
func (t QCTable) Energies() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.ElectronicEnergy
	}

	return out
}

// BondLengths returns the bond lengths in table order.
func (t QCTable) BondLengths() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.BondLength
	}

	return out
}

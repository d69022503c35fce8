// SPDX-License-Identifier: MIT
//
// File: methods_qats.go
// Role: Query surface of QATSTable, mirroring the QCTable filters minus the
//       lambda dimension (QATS rows carry no lambda of their own).
//
// Determinism:
//   - Same guarantees as methods_qc.go: order-preserving filters, sorted
//     unique accessors, stable bond-length sort on a copy.
package dataset

import "sort"

// Where returns the rows for which keep reports true, in input order.
func (t QATSTable) Where(keep func(QATSRow) bool) QATSTable {
	out := make(QATSTable, 0, len(t))
	for _, r := range t {
		if keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// BySystem returns the rows whose system label equals label.
func (t QATSTable) BySystem(label string) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.System == label })
}

// OtherSystems returns the rows whose system label differs from label.
func (t QATSTable) OtherSystems(label string) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.System != label })
}

// ByCharge returns the rows at the given total charge.
func (t QATSTable) ByCharge(charge int) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.Charge == charge })
}

// ByMultiplicity returns the rows at the given spin multiplicity.
func (t QATSTable) ByMultiplicity(mult int) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.Multiplicity == mult })
}

// ByNElectrons returns the rows at the given electron count.
func (t QATSTable) ByNElectrons(n int) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.NElectrons == n })
}

// ByBasis returns the rows fitted in the given basis set.
func (t QATSTable) ByBasis(basis string) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.BasisSet == basis })
}

// ByBondLength returns the dimer rows at exactly the given bond length.
func (t QATSTable) ByBondLength(bl float64) QATSTable {
	return t.Where(func(r QATSRow) bool { return r.BondLength == bl })
}

// Systems returns the distinct system labels, sorted ascending.
func (t QATSTable) Systems() []string {
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
func (t QATSTable) Multiplicities() []int {
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
func (t QATSTable) SortByBondLength() QATSTable {
	out := make(QATSTable, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool { return out[i].BondLength < out[j].BondLength })

	return out
}

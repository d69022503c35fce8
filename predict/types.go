package predict

import "github.com/katalvlaran/qats/bondcurve"

// Default basis sets, matching the conventions of the underlying datasets:
// augmented quintuple-zeta for atoms, plain quintuple-zeta for dimers.
const (
	// DefaultAtomBasis is the basis assumed by atom operations.
	DefaultAtomBasis = "aug-cc-pV5Z"

	// DefaultDimerBasis is the basis assumed by dimer operations.
	DefaultDimerBasis = "cc-pV5Z"
)

// Prediction is one reference system's contribution to an alchemical
// prediction: which reference it came from, the perturbation relating it to
// the target, and the predicted energies.
//
// In Taylor mode Energies is indexed by truncation order (order 0 first);
// in direct-lookup mode it holds a single value; in Taylor-vs-alchemical
// mode it holds the per-order truncation error against the directly
// computed alchemical point. A NaN entry marks a reference whose exact
// alchemical calculation is absent from the dataset.
type Prediction struct {
	// Reference is the system label of the reference.
	Reference string

	// Lambda is the nuclear-charge perturbation from reference to target.
	Lambda int

	// Energies holds the predicted values, ordered as described above.
	Energies []float64
}

// CurveFamily is the set of bonding curves one reference system produces
// for a dimer target: one curve per Taylor order in Taylor mode, a single
// curve otherwise.
type CurveFamily struct {
	// Reference is the system label the curves were built from.
	Reference string

	// Lambda is the perturbation from reference to target; 0 when the
	// family is the target's own direct curve.
	Lambda int

	// Curves holds the bonding curves, index-aligned with Taylor order in
	// Taylor mode.
	Curves []bondcurve.Curve
}

// Equilibrium is the minimized form of a CurveFamily: the equilibrium bond
// length and energy of each curve, index-aligned with the family's curves.
type Equilibrium struct {
	// Reference is the system label the equilibria were derived from.
	Reference string

	// Lambda is the perturbation from reference to target.
	Lambda int

	// BondLengths holds the equilibrium bond length of each curve.
	BondLengths []float64

	// Energies holds the equilibrium energy of each curve.
	Energies []float64
}

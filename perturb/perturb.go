package perturb

import (
	"errors"
	"fmt"
)

// Sentinel errors for lambda calculation.
var (
	// ErrIncompatible indicates atomic-number sequences that no integer
	// perturbation relates under the chosen policy.
	ErrIncompatible = errors.New("perturb: reference and target atomic numbers are incompatible")

	// ErrAtomIndex indicates a SpecificAtom index outside the sequence.
	ErrAtomIndex = errors.New("perturb: specific atom index out of range")

	// ErrAmbiguous indicates a multi-atom perturbation requested without a
	// distribution policy.
	ErrAmbiguous = errors.New("perturb: dimer perturbation requires SpecificAtom or Direction")
)

// Direction selects how a perturbation is split across a dimer's atoms.
type Direction int

const (
	// DirectionNone leaves the distribution policy unset.
	DirectionNone Direction = iota

	// Counter changes the two nuclear charges by equal and opposite
	// amounts; the reported lambda is the change on the increasing atom.
	Counter
)

// NoAtom marks Options.SpecificAtom as unset. Index 0 is a valid atom, so
// the zero value cannot double as the sentinel.
const NoAtom = -1

// Options selects the distribution policy for dimer perturbations.
// Atoms ignore both fields. When SpecificAtom is set it takes precedence
// over Direction.
type Options struct {
	// SpecificAtom receives the entire nuclear-charge change; NoAtom
	// disables the policy.
	SpecificAtom int

	// Direction distributes the change across both atoms.
	Direction Direction
}

// DefaultOptions returns Options with no distribution policy selected.
func DefaultOptions() Options {
	return Options{SpecificAtom: NoAtom, Direction: DirectionNone}
}

// Value returns the signed integer lambda taking the reference nuclear
// charges to the target's under the policy in opts.
//
// A nil-policy call is valid for single atoms only; dimers fail with
// ErrAmbiguous. A successful return guarantees that applying the reported
// perturbation to the reference reproduces the target exactly.
func Value(ref, target []int, opts Options) (int, error) {
	if len(ref) == 0 || len(ref) != len(target) {
		return 0, fmt.Errorf("%w: %d reference vs %d target atoms", ErrIncompatible, len(ref), len(target))
	}

	// Single atom: the perturbation is the plain difference.
	if len(ref) == 1 {
		return target[0] - ref[0], nil
	}

	if opts.SpecificAtom != NoAtom {
		return specificAtomLambda(ref, target, opts.SpecificAtom)
	}
	if opts.Direction == Counter {
		return counterLambda(ref, target)
	}

	return 0, ErrAmbiguous
}

// specificAtomLambda applies the entire change to atom i; all other atoms
// must already match the target.
func specificAtomLambda(ref, target []int, i int) (int, error) {
	if i < 0 || i >= len(ref) {
		return 0, fmt.Errorf("%w: atom %d of %d", ErrAtomIndex, i, len(ref))
	}
	for j := range ref {
		if j != i && ref[j] != target[j] {
			return 0, fmt.Errorf("%w: atom %d differs (%d vs %d) but the change is pinned to atom %d",
				ErrIncompatible, j, ref[j], target[j], i)
		}
	}

	return target[i] - ref[i], nil
}

// counterLambda distributes the change with opposing signs across the two
// atoms and reports the change on the increasing atom.
func counterLambda(ref, target []int) (int, error) {
	d0 := target[0] - ref[0]
	d1 := target[1] - ref[1]
	if d0 != -d1 {
		return 0, fmt.Errorf("%w: counter-directed changes must be equal and opposite, got %+d and %+d",
			ErrIncompatible, d0, d1)
	}

	// Equal reference charges: the second atom is the increasing one.
	// Otherwise the atom with the larger reference charge increases.
	if ref[0] > ref[1] {
		return d0, nil
	}

	return d1, nil
}

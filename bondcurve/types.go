// Package bondcurve types: the sampled curve, minimization options and
// sentinel errors.
package bondcurve

import (
	"errors"

	"github.com/katalvlaran/qats/polyfit"
)

// Sentinel errors for curve construction and minimization.
var (
	// ErrEmptyCurve indicates no samples survived construction or filtering.
	ErrEmptyCurve = errors.New("bondcurve: curve has no samples")

	// ErrMixedRows indicates rows spanning several systems, charges or
	// multiplicities.
	ErrMixedRows = errors.New("bondcurve: rows must share one system, charge and multiplicity")

	// ErrNotDimer indicates rows that do not describe two-atom systems.
	ErrNotDimer = errors.New("bondcurve: rows must describe a two-atom system")

	// ErrBadOptions indicates a malformed Options value.
	ErrBadOptions = errors.New("bondcurve: invalid minimization options")
)

// FitFunc is the least-squares primitive used by Minimum. It receives the
// window samples and the maximum order and returns ascending-degree
// coefficients. polyfit.Fit is the default.
type FitFunc func(xs, ys []float64, order int) ([]float64, error)

// Curve is a bond-length-vs-energy sampling of one electronic state,
// sorted by ascending bond length.
type Curve struct {
	// BondLengths holds the sampled internuclear distances, ascending.
	BondLengths []float64

	// Energies holds the energy at each bond length, index-aligned.
	Energies []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.BondLengths) }

// Options configures Minimum.
//
// Fields:
//   - NPoints        — samples kept on each side of the minimum-energy
//     anchor (window size ≤ 2·NPoints+1).
//   - PolyOrder      — maximum degree of the fitted polynomial.
//   - RemoveOutliers — drop samples by energy z-score before anchoring.
//   - ZScoreCutoff   — population z-score at which a sample is dropped.
//   - Fit            — least-squares primitive; nil means polyfit.Fit.
type Options struct {
	NPoints        int
	PolyOrder      int
	RemoveOutliers bool
	ZScoreCutoff   float64
	Fit            FitFunc
}

// DefaultOptions mirrors the upstream equilibrium search: a five-point
// window, an order-4 fit, and outlier removal off with cutoff 3.0.
func DefaultOptions() Options {
	return Options{
		NPoints:        2,
		PolyOrder:      4,
		RemoveOutliers: false,
		ZScoreCutoff:   3.0,
		Fit:            polyfit.Fit,
	}
}

// validate reports the first malformed option value.
func (o Options) validate() error {
	if o.NPoints < 0 {
		return ErrBadOptions
	}
	if o.PolyOrder < 1 {
		return ErrBadOptions
	}
	if o.RemoveOutliers && o.ZScoreCutoff <= 0 {
		return ErrBadOptions
	}

	return nil
}

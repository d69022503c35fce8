package bondcurve

import (
	"fmt"

	"github.com/katalvlaran/qats/polyfit"
)

// Minimum locates the equilibrium bond length and energy of a sampled curve.
//
// The search follows the package doc: optional z-score outlier removal,
// anchoring at the minimum-energy sample, a clipped symmetric window of
// NPoints per side, a least-squares fit of order PolyOrder, and the fitted
// polynomial's stationary minimum inside the window's bond-length range.
//
// An under-determined window (fewer than PolyOrder+1 samples) surfaces
// polyfit.ErrUnderdetermined: widen the sampling or lower the order.
func Minimum(c Curve, opts Options) (bl, energy float64, err error) {
	if err = opts.validate(); err != nil {
		return 0, 0, err
	}
	if c.Len() == 0 || len(c.BondLengths) != len(c.Energies) {
		return 0, 0, ErrEmptyCurve
	}

	bls, energies := c.BondLengths, c.Energies
	if opts.RemoveOutliers {
		bls, energies = dropOutliers(bls, energies, opts.ZScoreCutoff)
		if len(bls) == 0 {
			return 0, 0, fmt.Errorf("%w: every sample flagged as outlier", ErrEmptyCurve)
		}
	}

	// Anchor at the first minimum-energy sample.
	anchor := 0
	for i, e := range energies {
		if e < energies[anchor] {
			anchor = i
		}
	}

	lo := anchor - opts.NPoints
	if lo < 0 {
		lo = 0
	}
	hi := anchor + opts.NPoints + 1
	if hi > len(bls) {
		hi = len(bls)
	}
	windowX, windowY := bls[lo:hi], energies[lo:hi]

	fit := opts.Fit
	if fit == nil {
		fit = polyfit.Fit
	}
	coeffs, err := fit(windowX, windowY, opts.PolyOrder)
	if err != nil {
		return 0, 0, err
	}

	return polyfit.Minimum(coeffs, windowX[0], windowX[len(windowX)-1])
}

// dropOutliers removes the samples polyfit.Outliers flags, preserving order.
func dropOutliers(bls, energies []float64, cutoff float64) ([]float64, []float64) {
	flagged := polyfit.Outliers(energies, cutoff)
	if len(flagged) == 0 {
		return bls, energies
	}

	drop := make(map[int]struct{}, len(flagged))
	for _, i := range flagged {
		drop[i] = struct{}{}
	}
	outX := make([]float64, 0, len(bls)-len(flagged))
	outY := make([]float64, 0, len(energies)-len(flagged))
	for i := range bls {
		if _, skip := drop[i]; skip {
			continue
		}
		outX = append(outX, bls[i])
		outY = append(outY, energies[i])
	}

	return outX, outY
}

// SPDX-License-Identifier: MIT

// Package polyfit provides the numeric primitives behind equilibrium
// finding: least-squares polynomial fitting, stationary-point search, and
// z-score outlier detection.
//
// Purpose:
//   - Fit(xs, ys, order): least-squares coefficients (ascending degree) via a
//     QR solve of the Vandermonde system (gonum.org/v1/gonum/mat).
//   - Minimum(coeffs, lo, hi): the stationary point with least polynomial
//     value inside [lo, hi], found through companion-matrix eigenvalues of
//     the derivative.
//   - Eval(coeffs, x): Horner evaluation.
//   - Outliers(values, cutoff): indices whose population z-score
//     (gonum.org/v1/gonum/stat) reaches the cutoff.
//
// All kernels fail fast with wrapped sentinel errors; an ill-conditioned but
// solvable least-squares system is accepted (mat.Condition is informational
// here, not fatal).
//
// Errors:
//
//	ErrShape           - input lengths disagree or are empty.
//	ErrUnderdetermined - fewer samples than coefficients to fit.
//	ErrSingular        - the linear solve or eigendecomposition failed.
//	ErrDegree          - the polynomial cannot have a stationary point.
//	ErrNoMinimum       - no real stationary point lies inside [lo, hi].
package polyfit

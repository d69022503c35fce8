// SPDX-License-Identifier: MIT
//
// File: polyfit.go
// Role: Least-squares fitting, stationary-point search, Horner evaluation,
//       and z-score outlier detection on top of gonum.
//
// Notes:
//   - Kernels validate eagerly and wrap failures via fitErrorf so callers
//     see a stable "Op: underlying" error shape while errors.Is keeps
//     matching the sentinels.
package polyfit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// imagTol bounds the imaginary part below which an eigenvalue is treated as
// a real root of the derivative.
const imagTol = 1e-9

// Operation name constants for unified error wrapping.
const (
	opFit      = "Fit"
	opMinimum  = "Minimum"
	opOutliers = "Outliers"
)

// fitErrorf wraps err with an operation tag, preserving the original error
// via %w. Call only with non-nil err.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Fit computes the least-squares polynomial of the given order through the
// samples (xs[i], ys[i]) and returns its coefficients in ascending degree.
//
// Implementation:
//   - Stage 1 (Validate): equal non-zero lengths; at least order+1 samples.
//   - Stage 2 (Assemble): build the len(xs) x (order+1) Vandermonde matrix.
//   - Stage 3 (Solve): minimum-norm least-squares solve via gonum; an
//     ill-conditioned system (mat.Condition) still yields the solution and
//     is accepted.
//
// Inputs:
//   - xs, ys: paired samples; len(xs) == len(ys) > 0.
//   - order: maximum polynomial degree, order >= 0.
//
// Returns:
//   - []float64: order+1 coefficients, ascending degree.
//   - error: nil on success.
//
// Errors:
//   - ErrShape: mismatched/empty inputs or negative order.
//   - ErrUnderdetermined: len(xs) < order+1.
//   - ErrSingular: the solve failed outright.
//
// Determinism:
//   - Deterministic for identical inputs (dense QR, no randomness).
//
// Complexity:
//   - Time O(n·k²) for n samples and k = order+1 coefficients.
func Fit(xs, ys []float64, order int) ([]float64, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, fitErrorf(opFit, fmt.Errorf("%w: %d xs vs %d ys", ErrShape, len(xs), len(ys)))
	}
	if order < 0 {
		return nil, fitErrorf(opFit, fmt.Errorf("%w: negative order %d", ErrShape, order))
	}
	if len(xs) < order+1 {
		return nil, fitErrorf(opFit, fmt.Errorf("%w: %d sample(s) for order %d", ErrUnderdetermined, len(xs), order))
	}

	// Stage 2 (Assemble): Vandermonde rows [1, x, x², …, x^order].
	a := mat.NewDense(len(xs), order+1, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	// Stage 3 (Solve): least squares; tolerate mat.Condition.
	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fitErrorf(opFit, fmt.Errorf("%w: %v", ErrSingular, err))
		}
	}

	out := make([]float64, order+1)
	for j := range out {
		out[j] = c.AtVec(j)
	}

	return out, nil
}

// Minimum locates the stationary point of the polynomial with the least
// value inside [lo, hi] and returns its position and value.
//
// Implementation:
//   - Stage 1 (Differentiate): d[i] = coeffs[i+1]·(i+1); trim exact-zero
//     leading terms so the companion matrix is well formed.
//   - Stage 2 (Roots): eigenvalues of the derivative's companion matrix
//     (mat.Eigen); eigenvalues with |imag| ≤ 1e-9 count as real roots.
//   - Stage 3 (Select): evaluate the polynomial at every real root inside
//     [lo, hi] and return the position of least value.
//
// Inputs:
//   - coeffs: polynomial coefficients, ascending degree, len >= 2.
//   - lo, hi: closed search interval, lo <= hi.
//
// Returns:
//   - x, y: stationary position and polynomial value there.
//   - error: nil on success.
//
// Errors:
//   - ErrDegree: constant polynomial (or empty coefficients).
//   - ErrShape: lo > hi.
//   - ErrSingular: eigendecomposition failed.
//   - ErrNoMinimum: no real stationary point inside [lo, hi].
//
// Determinism:
//   - Deterministic; ties between equal-value roots resolve to the first
//     in eigenvalue order.
//
// Complexity:
//   - Time O(m³) for derivative degree m (dense eigensolve); m is tiny here.
//
// AI-Hints:
//   - Pass the fitted window's own [min(xs), max(xs)] as [lo, hi]; roots
//     outside the sampled range are extrapolation artifacts.
func Minimum(coeffs []float64, lo, hi float64) (float64, float64, error) {
	if len(coeffs) < 2 {
		return 0, 0, fitErrorf(opMinimum, fmt.Errorf("%w: %d coefficient(s)", ErrDegree, len(coeffs)))
	}
	if lo > hi {
		return 0, 0, fitErrorf(opMinimum, fmt.Errorf("%w: interval [%g, %g]", ErrShape, lo, hi))
	}

	// Stage 1 (Differentiate).
	der := make([]float64, len(coeffs)-1)
	for i := range der {
		der[i] = coeffs[i+1] * float64(i+1)
	}
	for len(der) > 0 && der[len(der)-1] == 0 {
		der = der[:len(der)-1]
	}
	if len(der) < 2 {
		// Constant derivative: either no root at all or a flat polynomial
		// with no identifiable stationary point.
		return 0, 0, fitErrorf(opMinimum, ErrNoMinimum)
	}

	roots, err := realRoots(der)
	if err != nil {
		return 0, 0, fitErrorf(opMinimum, err)
	}

	// Stage 3 (Select).
	bestX, bestY := math.NaN(), math.Inf(1)
	for _, r := range roots {
		if r < lo || r > hi {
			continue
		}
		if y := Eval(coeffs, r); y < bestY {
			bestX, bestY = r, y
		}
	}
	if math.IsNaN(bestX) {
		return 0, 0, fitErrorf(opMinimum, fmt.Errorf("%w: [%g, %g]", ErrNoMinimum, lo, hi))
	}

	return bestX, bestY, nil
}

// Eval evaluates the polynomial with ascending-degree coefficients at x by
// Horner's scheme. Empty coefficients evaluate to zero.
func Eval(coeffs []float64, x float64) float64 {
	var acc float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// Outliers returns the indices of values whose population z-score reaches
// cutoff, in ascending index order.
//
// Implementation:
//   - Stage 1 (Moments): mean and population standard deviation
//     (stat.Mean, stat.PopStdDev) over all values.
//   - Stage 2 (Scan): flag |v-mean|/sd >= cutoff; a zero or NaN spread
//     flags nothing.
//
// Determinism:
//   - Deterministic; index order follows the input.
//
// Complexity:
//   - Time O(n), Space O(k) for k flagged indices.
func Outliers(values []float64, cutoff float64) []int {
	if len(values) == 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	sd := stat.PopStdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}

	var out []int
	for i, v := range values {
		if math.Abs(v-mean)/sd >= cutoff {
			out = append(out, i)
		}
	}

	return out
}

// realRoots returns the real eigenvalue roots of the polynomial with
// ascending-degree coefficients der (leading coefficient non-zero).
func realRoots(der []float64) ([]float64, error) {
	m := len(der) - 1
	lead := der[m]

	// Companion matrix of the monic derivative: ones on the subdiagonal,
	// normalized negated coefficients in the last column.
	comp := mat.NewDense(m, m, nil)
	for i := 1; i < m; i++ {
		comp.Set(i, i-1, 1)
	}
	for i := 0; i < m; i++ {
		comp.Set(i, m-1, -der[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: companion eigendecomposition", ErrSingular)
	}

	var roots []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) <= imagTol {
			roots = append(roots, real(v))
		}
	}

	return roots, nil
}

// SPDX-License-Identifier: MIT

package polyfit

import "errors"

var (
	// ErrShape indicates mismatched or empty input slices.
	ErrShape = errors.New("polyfit: sample slices must be non-empty and equal in length")

	// ErrUnderdetermined indicates fewer samples than fit coefficients.
	ErrUnderdetermined = errors.New("polyfit: not enough samples for the requested order")

	// ErrSingular indicates a failed linear solve or eigendecomposition.
	ErrSingular = errors.New("polyfit: numeric decomposition failed")

	// ErrDegree indicates a polynomial without a stationary point to find.
	ErrDegree = errors.New("polyfit: polynomial degree admits no stationary point")

	// ErrNoMinimum indicates no real stationary point inside the interval.
	ErrNoMinimum = errors.New("polyfit: no stationary point inside the search interval")
)

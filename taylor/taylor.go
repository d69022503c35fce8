package taylor

import "errors"

// Eval — truncated Taylor-series evaluation in lambda
//
// Description:
//
//	A QATS expansion stores the fitted coefficients of a system's energy
//	as a polynomial in the integer nuclear-charge perturbation lambda,
//	ascending degree, anchored so that coeffs[0] is the true lambda=0
//	energy. Eval computes the series truncated at a requested order for
//	each supplied lambda.
//
// Algorithm Outline:
//  1. Validate: coeffs non-empty, 0 ≤ order < len(coeffs).
//  2. For each λ, evaluate coeffs[:order+1] by Horner's scheme:
//     acc = c[order]; acc = acc·λ + c[i] for i = order-1 .. 0.
//  3. Return one energy per input λ, in input order.
//
// Complexity:
//
//	Time  = O(order · len(lambdas))
//	Space = O(len(lambdas))
//
// Errors:
//   - ErrNoCoeffs   — if coeffs is empty.
//   - ErrOrderRange — if order is negative or exceeds the highest degree.
var (
	// ErrNoCoeffs indicates an empty coefficient sequence.
	ErrNoCoeffs = errors.New("taylor: coefficient sequence must be non-empty")

	// ErrOrderRange indicates a truncation order outside [0, len(coeffs)-1].
	ErrOrderRange = errors.New("taylor: truncation order out of range")
)

// Eval evaluates the series truncated at order for every lambda in lambdas.
// The result has the same length and order as lambdas.
//
// Example:
//
//	energies, err := taylor.Eval(coeffs, 2, []float64{-1, 0, 1})
func Eval(coeffs []float64, order int, lambdas []float64) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoeffs
	}
	if order < 0 || order >= len(coeffs) {
		return nil, ErrOrderRange
	}

	out := make([]float64, len(lambdas))
	for i, l := range lambdas {
		out[i] = horner(coeffs[:order+1], l)
	}

	return out, nil
}

// EvalAt evaluates the series truncated at order for a single lambda.
// It is the scalar convenience form of Eval: the lambda is treated as a
// length-1 sequence and the sole energy is returned.
func EvalAt(coeffs []float64, order int, lambda float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrNoCoeffs
	}
	if order < 0 || order >= len(coeffs) {
		return 0, ErrOrderRange
	}

	return horner(coeffs[:order+1], lambda), nil
}

// horner evaluates the polynomial with ascending-degree coefficients cs at x.
func horner(cs []float64, x float64) float64 {
	acc := cs[len(cs)-1]
	for i := len(cs) - 2; i >= 0; i-- {
		acc = acc*x + cs[i]
	}

	return acc
}

package taylor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qats/taylor"
)

// TestEval_EmptyCoeffs verifies that an empty coefficient sequence errors.
func TestEval_EmptyCoeffs(t *testing.T) {
	_, err := taylor.Eval(nil, 0, []float64{0})
	assert.ErrorIs(t, err, taylor.ErrNoCoeffs, "empty coefficients must error")

	_, err = taylor.EvalAt(nil, 0, 0)
	assert.ErrorIs(t, err, taylor.ErrNoCoeffs, "scalar form shares the check")
}

// TestEval_OrderRange ensures orders outside [0, len(coeffs)-1] error.
func TestEval_OrderRange(t *testing.T) {
	coeffs := []float64{-37.8, -14.7, -0.9}

	_, err := taylor.Eval(coeffs, -1, []float64{1})
	assert.ErrorIs(t, err, taylor.ErrOrderRange, "negative order must error")

	_, err = taylor.Eval(coeffs, 3, []float64{1})
	assert.ErrorIs(t, err, taylor.ErrOrderRange, "order beyond max degree must error")

	_, err = taylor.EvalAt(coeffs, 3, 1)
	assert.ErrorIs(t, err, taylor.ErrOrderRange, "scalar form shares the check")
}

// TestEval_AnchoredAtZero verifies that every truncation order reproduces
// the zeroth coefficient at lambda = 0.
func TestEval_AnchoredAtZero(t *testing.T) {
	coeffs := []float64{-37.8, -14.7, -0.9, 0.05}
	for order := 0; order < len(coeffs); order++ {
		e, err := taylor.EvalAt(coeffs, order, 0)
		assert.NoError(t, err)
		assert.Equal(t, coeffs[0], e, "lambda=0 must return the anchor energy at order %d", order)
	}
}

// TestEval_FullOrderMatchesPolynomial verifies that truncation at the highest
// degree equals the full polynomial for several lambdas.
func TestEval_FullOrderMatchesPolynomial(t *testing.T) {
	coeffs := []float64{2, -3, 0.5, 1.25}
	full := func(l float64) float64 {
		return coeffs[0] + coeffs[1]*l + coeffs[2]*l*l + coeffs[3]*l*l*l
	}

	lambdas := []float64{-2, -1, 0, 1, 2, 0.5}
	got, err := taylor.Eval(coeffs, len(coeffs)-1, lambdas)
	assert.NoError(t, err)
	assert.Len(t, got, len(lambdas), "one energy per lambda")
	for i, l := range lambdas {
		assert.InDelta(t, full(l), got[i], 1e-12, "lambda %v", l)
	}
}

// TestEval_TruncationDropsHighOrders verifies that lower orders ignore the
// higher-degree coefficients entirely.
func TestEval_TruncationDropsHighOrders(t *testing.T) {
	coeffs := []float64{1, 2, 1000}

	e, err := taylor.EvalAt(coeffs, 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, e, "order 1 at lambda=3 is 1 + 2*3")
}

// TestEval_ScalarMatchesSequence verifies EvalAt agrees with Eval on a
// length-1 lambda sequence.
func TestEval_ScalarMatchesSequence(t *testing.T) {
	coeffs := []float64{-54.6, -18.3, -1.1}

	seq, err := taylor.Eval(coeffs, 2, []float64{-1})
	assert.NoError(t, err)

	scalar, err := taylor.EvalAt(coeffs, 2, -1)
	assert.NoError(t, err)
	assert.Equal(t, seq[0], scalar, "scalar form must match the sequence form")
}

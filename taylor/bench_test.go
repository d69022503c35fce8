package taylor_test

import (
	"testing"

	"github.com/katalvlaran/qats/taylor"
)

// benchmarkEval runs Eval over nLambdas lambda values with an order-4
// expansion. It resets the timer after setup and fails on unexpected errors.
func benchmarkEval(b *testing.B, nLambdas int) {
	coeffs := []float64{-37.8, -14.7, -0.9, 0.05, -0.002}
	lambdas := make([]float64, nLambdas)
	for i := range lambdas {
		lambdas[i] = float64(i%5) - 2 // alchemical lambdas are small integers
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := taylor.Eval(coeffs, 4, lambdas); err != nil {
			b.Fatalf("Eval failed: %v", err)
		}
	}
}

// BenchmarkEval_Single benchmarks scalar-sized input.
func BenchmarkEval_Single(b *testing.B) { benchmarkEval(b, 1) }

// BenchmarkEval_Curve benchmarks a bond-curve-sized lambda grid.
func BenchmarkEval_Curve(b *testing.B) { benchmarkEval(b, 64) }

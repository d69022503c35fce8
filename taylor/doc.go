// Package taylor evaluates truncated quantum-alchemy Taylor series:
// polynomials in the nuclear-charge perturbation strength lambda, fitted
// around a system's unperturbed (lambda=0) energy.
//
// What:
//
//	Given coefficients c (ascending degree) and a truncation order k,
//	compute E(λ) = Σ_{i=0..k} c[i]·λ^i for one or many lambda values.
//	The zeroth coefficient is the true lambda=0 electronic energy, so
//	every truncation agrees with the exact energy at λ=0.
//
// Why:
//
//	Alchemical predictions compare successive truncation orders against
//	each other and against directly computed perturbed energies; the
//	evaluator therefore takes the order explicitly instead of always
//	consuming the full coefficient sequence.
//
// Errors:
//
//   - ErrNoCoeffs   — the coefficient sequence is empty.
//   - ErrOrderRange — order < 0 or order ≥ len(coeffs).
//
// Determinism:
//
//	Pure arithmetic; identical inputs yield identical outputs.
//
// Complexity:
//
//	O(order) per lambda value (Horner evaluation), O(len(lambdas)) space.
package taylor

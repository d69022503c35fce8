// Package qats predicts electronic energies of atoms and diatomic molecules
// from already-computed energies of related systems, using quantum alchemy:
// Taylor-series expansions of the energy in the nuclear-charge perturbation
// strength (lambda).
//
// 🚀 What is qats?
//
//	A deterministic, in-memory prediction engine for computational-chemistry
//	pipelines that already hold two tables — exact quantum-chemistry energies
//	at integer lambda values, and fitted alchemical Taylor coefficients — and
//	want derived quantities without new electronic-structure calculations:
//		• Ionization energies & electron affinities (atoms and dimers)
//		• Multiplicity gaps (ground ↔ excited state)
//		• Bonding curves and equilibrium bond lengths/energies
//		• Per-order Taylor predictions from every viable reference system
//
// ✨ Why choose qats?
//
//   - Deterministic – stable filters, sorted accessors, no hidden state
//   - Honest about data – missing rows yield NaN sentinels, never panics
//   - Strict about physics – lambda and state consistency are enforced,
//     malformed datasets fail fast instead of producing plausible numbers
//   - Extensible – state selection, lambda policy and curve fitting are
//     injectable, so alternative strategies drop in without forking
//
// Everything is organized under focused subpackages:
//
//	dataset/     — the two tabular inputs: rows, filters, invariants
//	taylor/      — truncated Taylor-series evaluation in lambda
//	state/       — energy-ordered electronic-state selection
//	perturb/     — nuclear-charge perturbation (lambda) calculator
//	polyfit/     — least-squares fits, stationary points, z-scores (gonum)
//	bondcurve/   — bond-length curves & equilibrium finding
//	predict/     — the prediction engine: atoms, dimers, references
//	persistence/ — SQLite/JSON loading and storage of the two tables
//
// Quick sketch of an alchemical prediction:
//
//	  N (Z=7)  ──λ=−1──▶  C⁻ (Z=6, same electron count)
//	  E_target(λ) ≈ Σ cᵢ λⁱ   anchored at the reference's λ=0 energy
//
// Dive into the per-package docs for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/qats
package qats

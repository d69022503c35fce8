// Package bondcurve builds bond-length-vs-energy curves for diatomic
// systems and extracts their equilibrium geometry.
//
// What:
//
//	A dimer's energy is a function of internuclear distance, so a single
//	scalar lookup is meaningless: predictions first assemble the sampled
//	curve, then minimize a local polynomial model around its lowest point.
//	Curves come from two sources — direct quantum-chemistry rows at a
//	fixed lambda (FromQC) or a per-bond-length Taylor evaluation of
//	fitted alchemical expansions (FromQATS).
//
// Equilibrium algorithm (Minimum):
//  1. Optionally drop samples whose energy z-score reaches the cutoff
//     (guards against individual wildly wrong predictions).
//  2. Anchor at the minimum-energy sample.
//  3. Take NPoints samples on each side of the anchor (clipped at the
//     curve boundary).
//  4. Least-squares fit of order PolyOrder over the window — a window
//     smaller than PolyOrder+1 points is a fatal under-determination.
//  5. Return the fitted polynomial's stationary minimum inside the
//     window's bond-length range.
//
// Errors:
//
//   - ErrEmptyCurve — no samples to build or minimize.
//   - ErrMixedRows  — input rows span several systems, charges or
//     multiplicities; a curve belongs to exactly one electronic state.
//   - ErrNotDimer   — input rows do not describe two-atom systems.
//   - ErrBadOptions — negative window, non-positive order or cutoff.
//
// Determinism:
//
//	Curves are sorted by ascending bond length with a stable sort; the
//	anchor is the first minimal sample.
package bondcurve

package predict

import (
	"fmt"

	"github.com/katalvlaran/qats/bondcurve"
	"github.com/katalvlaran/qats/dataset"
	"github.com/katalvlaran/qats/perturb"
	"github.com/katalvlaran/qats/state"
)

// QCSelector picks the row of the level-th energy-ordered electronic state
// from quantum-chemistry rows. state.SelectQC is the default.
type QCSelector func(rows dataset.QCTable, level int, ignoreOneRow bool) (dataset.QCRow, error)

// QATSSelector picks the level-th state from fitted-expansion rows.
// state.SelectQATS is the default.
type QATSSelector func(rows dataset.QATSTable, level int, ignoreOneRow bool) (dataset.QATSRow, error)

// LambdaFunc computes the signed perturbation taking reference atomic
// numbers to the target's. perturb.Value is the default.
type LambdaFunc func(ref, target []int, opts perturb.Options) (int, error)

// Option configures a prediction via functional arguments. An invalid
// Option (negative excitation level, empty basis, ...) is recorded
// internally and surfaced as ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds the knobs shared by every predictor. Operations that do
// not use a field ignore it; zero values come from DefaultOptions plus the
// per-call basis default.
type Options struct {
	// BasisSet restricts every lookup to one basis. Operations default it
	// to DefaultAtomBasis or DefaultDimerBasis before applying options.
	BasisSet string

	// TargetCharge is the charge of the target's initial (or, for gap
	// operations, only) state.
	TargetCharge int

	// ChangeSigns flips the sign of reported energy differences, so
	// electron affinities follow the ionization-energy convention.
	ChangeSigns bool

	// ExcitationLevel selects the electronic state: 0 is the ground state.
	// Gap operations treat 0 as "first excited state versus ground".
	ExcitationLevel int

	// IgnoreOneRow clamps state selection to the highest available state
	// instead of failing when fewer states exist than requested.
	IgnoreOneRow bool

	// Lambdas is the allow-list of perturbations; references whose lambda
	// falls outside it are silently skipped. Nil admits every lambda.
	Lambdas []int

	// UseTaylor enables per-order Taylor predictions.
	UseTaylor bool

	// Lookup enables the direct quantum-chemistry lookup at each
	// reference's lambda.
	Lookup bool

	// Diff reports Taylor minus lookup per order (truncation error against
	// the true alchemical point) instead of either alone.
	Diff bool

	// SelfCurve makes dimer curve operations return the target's own
	// lambda=0 curve instead of alchemical reference curves.
	SelfCurve bool

	// SpecificAtom and Direction form the dimer perturbation distribution
	// policy handed to the lambda calculator.
	SpecificAtom int
	Direction    perturb.Direction

	// BondLength pins dimer lookups to one internuclear distance.
	// HasBondLength marks it as set; 0 is a legal bond length only in
	// principle, never in data, but the flag keeps the contract exact.
	BondLength    float64
	HasBondLength bool

	// Curve configures equilibrium finding for dimer operations.
	Curve bondcurve.Options

	// SelectQC, SelectQATS and Lambda are the injectable strategies.
	SelectQC   QCSelector
	SelectQATS QATSSelector
	Lambda     LambdaFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the upstream defaults: ground state, sign flip
// off, state-selection clamping on, Taylor mode on, no lambda allow-list,
// no distribution policy, default curve options, and the in-repo
// state/perturb strategies.
func DefaultOptions() Options {
	return Options{
		TargetCharge:    0,
		ChangeSigns:     false,
		ExcitationLevel: 0,
		IgnoreOneRow:    true,
		UseTaylor:       true,
		SpecificAtom:    perturb.NoAtom,
		Direction:       perturb.DirectionNone,
		Curve:           bondcurve.DefaultOptions(),
		SelectQC:        state.SelectQC,
		SelectQATS:      state.SelectQATS,
		Lambda:          perturb.Value,
		err:             nil,
	}
}

// WithBasis restricts lookups to the given basis set.
func WithBasis(basis string) Option {
	return func(o *Options) {
		if basis == "" {
			o.err = fmt.Errorf("%w: empty basis set", ErrOptionViolation)

			return
		}
		o.BasisSet = basis
	}
}

// WithTargetCharge sets the charge of the target's initial state (charge
// operations) or the fixed charge (gap operations). Default 0.
func WithTargetCharge(charge int) Option {
	return func(o *Options) { o.TargetCharge = charge }
}

// WithChangeSigns flips the sign of reported differences. Required when
// the charge change is negative (electron attachment), so affinities
// report with the ionization-energy convention.
func WithChangeSigns() Option {
	return func(o *Options) { o.ChangeSigns = true }
}

// WithExcitation selects the electronic state; 0 is the ground state.
func WithExcitation(level int) Option {
	return func(o *Options) {
		if level < 0 {
			o.err = fmt.Errorf("%w: negative excitation level %d", ErrOptionViolation, level)

			return
		}
		o.ExcitationLevel = level
	}
}

// WithStrictStates makes state selection fail when fewer states exist
// than the excitation level requires, instead of clamping.
func WithStrictStates() Option {
	return func(o *Options) { o.IgnoreOneRow = false }
}

// WithLambdas supplies the perturbation allow-list: references whose
// lambda falls outside it are skipped silently.
func WithLambdas(lambdas ...int) Option {
	return func(o *Options) {
		if len(lambdas) == 0 {
			o.err = fmt.Errorf("%w: empty lambda allow-list", ErrOptionViolation)

			return
		}
		o.Lambdas = lambdas
	}
}

// WithAlchemicalLookup replaces Taylor predictions with direct
// quantum-chemistry lookups at each reference's lambda: the actually
// computed alchemical point instead of an extrapolation.
func WithAlchemicalLookup() Option {
	return func(o *Options) {
		o.UseTaylor = false
		o.Lookup = true
	}
}

// WithTaylorVsAlchemical reports, per order, the Taylor prediction minus
// the direct alchemical lookup — the truncation error against the true
// alchemical curve.
func WithTaylorVsAlchemical() Option {
	return func(o *Options) {
		o.UseTaylor = true
		o.Lookup = true
		o.Diff = true
	}
}

// WithoutTaylor makes dimer curve operations return the target's own
// lambda=0 curve (direct quantum chemistry) instead of reference curves.
func WithoutTaylor() Option {
	return func(o *Options) {
		o.UseTaylor = false
		o.SelfCurve = true
	}
}

// WithSpecificAtom applies a dimer's entire nuclear-charge change to the
// atom at the given index.
func WithSpecificAtom(i int) Option {
	return func(o *Options) {
		if i < 0 {
			o.err = fmt.Errorf("%w: negative atom index %d", ErrOptionViolation, i)

			return
		}
		o.SpecificAtom = i
	}
}

// WithDirection distributes a dimer's nuclear-charge change across both
// atoms under the given policy.
func WithDirection(d perturb.Direction) Option {
	return func(o *Options) {
		if d == perturb.DirectionNone {
			o.err = fmt.Errorf("%w: DirectionNone is not a policy", ErrOptionViolation)

			return
		}
		o.Direction = d
	}
}

// WithBondLength pins dimer lookups to one internuclear distance.
func WithBondLength(bl float64) Option {
	return func(o *Options) {
		if bl <= 0 {
			o.err = fmt.Errorf("%w: non-positive bond length %g", ErrOptionViolation, bl)

			return
		}
		o.BondLength = bl
		o.HasBondLength = true
	}
}

// WithCurve replaces the equilibrium-finding options used by dimer
// operations (window width, fit order, outlier removal).
func WithCurve(curve bondcurve.Options) Option {
	return func(o *Options) { o.Curve = curve }
}

// WithQCSelector replaces the quantum-chemistry state-selection strategy.
func WithQCSelector(fn QCSelector) Option {
	return func(o *Options) {
		if fn != nil {
			o.SelectQC = fn
		}
	}
}

// WithQATSSelector replaces the fitted-expansion state-selection strategy.
func WithQATSSelector(fn QATSSelector) Option {
	return func(o *Options) {
		if fn != nil {
			o.SelectQATS = fn
		}
	}
}

// WithLambdaFunc replaces the perturbation calculator.
func WithLambdaFunc(fn LambdaFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Lambda = fn
		}
	}
}

// WithFitFunc replaces the least-squares primitive used when minimizing
// bonding curves.
func WithFitFunc(fn bondcurve.FitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Curve.Fit = fn
		}
	}
}

// applyOptions builds the effective Options for one operation: the
// operation's default basis, then every supplied Option, then the check
// for a recorded violation.
func applyOptions(defaultBasis string, opts []Option) (Options, error) {
	o := DefaultOptions()
	o.BasisSet = defaultBasis
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// checkDelta validates a charge-change request: zero changes are
// meaningless, and electron attachment (negative change) must flip signs
// to stay on the ionization-energy convention.
func (o Options) checkDelta(deltaCharge int) error {
	if deltaCharge == 0 {
		return fmt.Errorf("%w: charge change must be non-zero", ErrOptionViolation)
	}
	if deltaCharge < 0 && !o.ChangeSigns {
		return fmt.Errorf("%w: charge change %d", ErrSignConvention, deltaCharge)
	}

	return nil
}

// perturbOptions packs the distribution policy for the lambda calculator.
func (o Options) perturbOptions() perturb.Options {
	return perturb.Options{SpecificAtom: o.SpecificAtom, Direction: o.Direction}
}

// hasLambdaPolicy reports whether a dimer perturbation can be computed.
func (o Options) hasLambdaPolicy() bool {
	return o.SpecificAtom != perturb.NoAtom || o.Direction != perturb.DirectionNone
}

// allowsLambda reports whether the allow-list admits lambda.
func (o Options) allowsLambda(lambda int) bool {
	if o.Lambdas == nil {
		return true
	}
	for _, l := range o.Lambdas {
		if l == lambda {
			return true
		}
	}

	return false
}

// sign returns the factor applied to reported differences.
func (o Options) sign() float64 {
	if o.ChangeSigns {
		return -1
	}

	return 1
}

package predict

import "errors"

var (
	// ErrOptionViolation indicates an invalid Option value or combination.
	ErrOptionViolation = errors.New("predict: invalid option supplied")

	// ErrSignConvention indicates an electron-attachment difference requested
	// without the sign flip that keeps it comparable to ionization energies.
	ErrSignConvention = errors.New("predict: negative charge change requires WithChangeSigns")

	// ErrSystemKind indicates an atom operation applied to a dimer or vice versa.
	ErrSystemKind = errors.New("predict: operation does not match the system's atom count")

	// ErrLambdaPolicy indicates a dimer perturbation requested without a
	// distribution policy (WithSpecificAtom or WithDirection).
	ErrLambdaPolicy = errors.New("predict: dimer perturbation requires WithSpecificAtom or WithDirection")

	// ErrLambdaMismatch indicates a reference whose perturbation differs
	// between its initial- and final-state rows. The reference does not
	// describe one alchemical path and the dataset is inconsistent.
	ErrLambdaMismatch = errors.New("predict: lambda differs between initial and final reference rows")

	// ErrReferenceMismatch indicates initial and final reference sets that
	// disagree in size after intersection; the one-state-per-system
	// assumption does not hold.
	ErrReferenceMismatch = errors.New("predict: initial and final reference sets differ in size")

	// ErrAmbiguousRows indicates several rows where identity requires one.
	ErrAmbiguousRows = errors.New("predict: multiple rows match a unique identity")

	// ErrCurveData indicates too few bond-length samples to build a curve
	// where one is required.
	ErrCurveData = errors.New("predict: not enough bond-length samples for a curve")
)

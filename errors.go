package compareverifier

import (
	"fmt"

	"go.llib.dev/compareverifier/check"
	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrConfiguration matches every ConfigurationError with errors.Is.
// A configuration error means the verification itself is mis-specified,
// as opposed to a contract violation of the type under test.
const ErrConfiguration errorkit.Error = "ErrConfiguration"

// The rules of input validation, reported as the Cause of a ConfigurationError.
const (
	ErrNilSupplier     errorkit.Error = "cannot be null!"
	ErrNilInstances    errorkit.Error = "cannot return null instances!"
	ErrEmptyInstances  errorkit.Error = "cannot return empty list of instances!"
	ErrTooFewInstances errorkit.Error = "cannot return less elements than the required minimum!"
	ErrNilInstance     errorkit.Error = "cannot contain null instances!"
)

// ErrNilRelation is reported when the Relation misses its Compare or Equal function.
const ErrNilRelation errorkit.Error = "Relation cannot be null!"

// ErrInvalidConfig is reported when the Config can't be loaded from the environment.
const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

// ConfigurationError reports caller misuse: a missing Relation, a missing supplier,
// or a supplier returning a nil, undersized or nil-containing collection.
type ConfigurationError struct {
	// Group is empty when the error isn't tied to a supplier.
	Group check.Group
	Cause errorkit.Error
	// Minimum is the required group size, set when Cause is ErrTooFewInstances.
	Minimum int
}

func (err ConfigurationError) Error() string {
	if err.Group == "" {
		return err.Cause.Error()
	}
	reason := err.Cause.Error()
	if err.Cause == ErrTooFewInstances {
		reason = fmt.Sprintf("cannot return less elements than %d!", err.Minimum)
	}
	return fmt.Sprintf("InstanceSupplier (%s) %s", err.Group, reason)
}

func (err ConfigurationError) Unwrap() error { return err.Cause }

func (err ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Contract violation kinds, see check.Violation.
const (
	ErrContractViolation       = check.ErrContractViolation
	ErrInconsistentWithEquals  = check.ErrInconsistentWithEquals
	ErrEqualToNull             = check.ErrEqualToNull
	ErrEqualToNullPanicked     = check.ErrEqualToNullPanicked
	ErrCompareToNullDidNotFail = check.ErrCompareToNullDidNotFail
	ErrNotTransitive           = check.ErrNotTransitive
	ErrNotReflexive            = check.ErrNotReflexive
	ErrNotTotalOrder           = check.ErrNotTotalOrder
)

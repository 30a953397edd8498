package check

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrContractViolation matches every Violation with errors.Is.
const ErrContractViolation errorkit.Error = "ErrContractViolation"

// The kinds of contract violation.
// The error message of a Violation is exactly the text of its kind.
const (
	ErrInconsistentWithEquals  errorkit.Error = "CompareTo is not consistent with equals!"
	ErrEqualToNull             errorkit.Error = "Instance is equal to null!"
	ErrEqualToNullPanicked     errorkit.Error = "Equals to null should return false instead of panicking!"
	ErrCompareToNullDidNotFail errorkit.Error = "CompareTo null should throw an exception!"
	ErrNotTransitive           errorkit.Error = "Instances are not transitive!"
	ErrNotReflexive            errorkit.Error = "Instance is not equal to itself!"
	ErrNotTotalOrder           errorkit.Error = "Instances do not implement a total order!"
)

// Violation is a detected mismatch between the behaviour of the type under test
// and the comparison contract.
type Violation struct {
	Kind errorkit.Error
	// Check is the name of the check that found the violation.
	Check string
	// Detail describes the offending instances.
	Detail string
}

func (v Violation) Error() string { return v.Kind.Error() }

func (v Violation) Unwrap() error { return v.Kind }

func (v Violation) Is(target error) bool {
	return target == ErrContractViolation
}

func violationf(kind errorkit.Error, check, format string, a ...any) Violation {
	return Violation{
		Kind:   kind,
		Check:  check,
		Detail: fmt.Sprintf(format, a...),
	}
}

// Package check holds the structural checks of the comparison contract.
//
// Every check looks at the lesser, equal and greater sample groups
// through the Relation under test, and returns a Violation when the contract is broken.
// Checks are independent from each other, the order in which they run is decided by the caller.
package check

// Check is a single rule of the comparison contract.
type Check[T any] interface {
	// Name identifies the check in logs and violations.
	Name() string
	// Check returns a Violation, or nil when the groups satisfy the rule.
	Check(rel Relation[T], gs Groups[T]) error
}

// Applicable is implemented by checks which might not apply to every type.
// A check that reports false is skipped.
type Applicable interface {
	Applicable() bool
}

// Func turns a function into a Check.
type Func[T any] struct {
	ID string
	Fn func(rel Relation[T], gs Groups[T]) error
}

func (c Func[T]) Name() string { return c.ID }

func (c Func[T]) Check(rel Relation[T], gs Groups[T]) error {
	return c.Fn(rel, gs)
}

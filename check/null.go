package check

import "go.llib.dev/compareverifier/internal/nilkit"

// EqualToNil verifies that no instance reports itself equal to nil.
// It doesn't apply when T has no nil value.
func EqualToNil[T any]() Check[T] { return equalToNil[T]{} }

type equalToNil[T any] struct{}

func (equalToNil[T]) Name() string { return "equal-to-nil" }

func (equalToNil[T]) Applicable() bool { return nilkit.Nilable[T]() }

func (c equalToNil[T]) Check(rel Relation[T], gs Groups[T]) error {
	null, ok := nilkit.Nil[T]()
	if !ok {
		return nil
	}
	for pos, x := range gs.All() {
		equal, panicValue, panicked := tryEqual(rel, x, null)
		if panicked {
			return violationf(ErrEqualToNullPanicked, c.Name(),
				"%s (%v): Equal with nil panicked: %v", pos, x, panicValue)
		}
		if equal {
			return violationf(ErrEqualToNull, c.Name(),
				"%s (%v): Equal with nil reported true", pos, x)
		}
	}
	return nil
}

func tryEqual[T any](rel Relation[T], x, null T) (equal bool, panicValue any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicValue, panicked = r, true
		}
	}()
	return rel.Equal(x, null), nil, false
}

// CompareToNil verifies that comparing any instance with nil fails.
// The Go rendition of failing is a panic, which the check recovers.
// It doesn't apply when T has no nil value.
func CompareToNil[T any]() Check[T] { return compareToNil[T]{} }

type compareToNil[T any] struct{}

func (compareToNil[T]) Name() string { return "compare-to-nil" }

func (compareToNil[T]) Applicable() bool { return nilkit.Nilable[T]() }

func (c compareToNil[T]) Check(rel Relation[T], gs Groups[T]) error {
	null, ok := nilkit.Nil[T]()
	if !ok {
		return nil
	}
	for pos, x := range gs.All() {
		result, panicked := tryCompare(rel, x, null)
		if !panicked {
			return violationf(ErrCompareToNullDidNotFail, c.Name(),
				"%s (%v): Compare with nil returned %d instead of panicking", pos, x, result)
		}
	}
	return nil
}

func tryCompare[T any](rel Relation[T], x, null T) (result int, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	return rel.Compare(x, null), false
}

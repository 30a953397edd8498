package compareverifier

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Supplier provides the sample instances of a group.
// It is invoked exactly once per group for every verification run.
type Supplier[T any] func() []T

// Instances returns a Supplier that yields a fresh copy of vs on every call.
// Called without arguments it supplies an empty, but non-nil list.
func Instances[T any](vs ...T) Supplier[T] {
	return func() []T {
		return append(make([]T, 0, len(vs)), vs...)
	}
}

// FromSeq returns a Supplier that collects the values of an iterator on every call.
// A nil iterator supplies nil instances.
func FromSeq[T any](seq iter.Seq[T]) Supplier[T] {
	return func() []T {
		return iterkit.Collect(seq)
	}
}

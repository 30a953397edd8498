package check

import (
	"cmp"
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"
	"go.llib.dev/frameless/pkg/compare"
)

// Comparable is the capability a type must expose to be verified through its own methods.
//
//	type Money struct{ Cents int64 }
//
//	func (m *Money) Compare(o *Money) int { return cmp.Compare(m.Cents, o.Cents) }
//
//	func (m *Money) Equal(o *Money) bool { return o != nil && m.Cents == o.Cents }
type Comparable[T any] interface {
	compare.Interface[T]
	// Equal reports whether the receiver equals the argument.
	// It must report false for a nil argument rather than panic.
	Equal(T) bool
}

// Relation is the ordering relation under test.
type Relation[T any] struct {
	// Compare returns a negative number when a precedes b,
	// zero when they are equal and a positive number when a follows b.
	Compare func(a, b T) int
	// Equal is the equality capability, independent of Compare.
	Equal func(a, b T) bool
}

func (r Relation[T]) IsZero() bool {
	return r.Compare == nil || r.Equal == nil
}

// MethodRelation builds a Relation from the Compare and Equal methods of T.
func MethodRelation[T Comparable[T]]() Relation[T] {
	return Relation[T]{
		Compare: func(a, b T) int { return a.Compare(b) },
		Equal:   func(a, b T) bool { return a.Equal(b) },
	}
}

// OrderedRelation builds a Relation from the natural ordering of T.
func OrderedRelation[T cmp.Ordered]() Relation[T] {
	return Relation[T]{
		Compare: cmp.Compare[T],
		Equal:   func(a, b T) bool { return a == b },
	}
}

// FuncRelation builds a Relation from a comparison function.
// When equal is nil, structural equality is used,
// which honours an `Equal(T) bool` method when T has one.
func FuncRelation[T any](compareFunc func(a, b T) int, equal func(a, b T) bool) Relation[T] {
	if equal == nil {
		equal = StructuralEqual[T]
	}
	return Relation[T]{Compare: compareFunc, Equal: equal}
}

var exportAll = gocmp.Exporter(func(reflect.Type) bool { return true })

// StructuralEqual compares a and b field by field, unexported fields included.
func StructuralEqual[T any](a, b T) bool {
	return gocmp.Equal(a, b, exportAll)
}

// Sign reduces a comparison result to -1, 0 or +1.
func Sign(result int) int {
	switch {
	case compare.IsLess(result):
		return -1
	case compare.IsMore(result):
		return +1
	default:
		return 0
	}
}

// Package nilkit answers nil related questions for generic type parameters,
// where a plain `v == nil` comparison is not expressible.
package nilkit

import (
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// Nilable reports whether T has a nil value.
func Nilable[T any]() bool {
	return reflectkit.IsNilable(reflect.TypeFor[T]().Kind())
}

// Nil returns the nil value of T.
// The boolean result is false when T can't be nil.
func Nil[T any]() (T, bool) {
	var zero T
	return zero, Nilable[T]()
}

// IsNil reports whether v is nil.
// An interface value holding a typed nil pointer is considered nil as well.
func IsNil[T any](v T) bool {
	if !Nilable[T]() {
		return false
	}
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return reflectkit.IsNilable(rv) && reflectkit.IsNil(rv)
}

package compareverifier

import (
	"go.llib.dev/compareverifier/check"
	"go.llib.dev/compareverifier/internal/nilkit"
)

type groupSupplier[T any] struct {
	Group    check.Group
	Supplier Supplier[T]
}

// instances validates the suppliers and collects the sample groups.
// Every supplier is checked for nil before any of them is invoked.
func (v *Verifier[T]) instances() (check.Groups[T], error) {
	suppliers := []groupSupplier[T]{
		{Group: check.Lesser, Supplier: v.lesser},
		{Group: check.Equal, Supplier: v.equal},
		{Group: check.Greater, Supplier: v.greater},
	}
	var gs check.Groups[T]
	for _, s := range suppliers {
		if s.Supplier == nil {
			return gs, ConfigurationError{Group: s.Group, Cause: ErrNilSupplier}
		}
	}
	for _, s := range suppliers {
		vs, err := supply(s.Group, s.Supplier)
		if err != nil {
			return gs, err
		}
		gs.Set(s.Group, vs)
	}
	return gs, nil
}

func supply[T any](group check.Group, supplier Supplier[T]) ([]T, error) {
	vs := supplier()
	if vs == nil {
		return nil, ConfigurationError{Group: group, Cause: ErrNilInstances}
	}
	if len(vs) == 0 {
		return nil, ConfigurationError{Group: group, Cause: ErrEmptyInstances}
	}
	if minSize := group.MinSize(); len(vs) < minSize {
		return nil, ConfigurationError{Group: group, Cause: ErrTooFewInstances, Minimum: minSize}
	}
	for _, v := range vs {
		if nilkit.IsNil(v) {
			return nil, ConfigurationError{Group: group, Cause: ErrNilInstance}
		}
	}
	return vs, nil
}

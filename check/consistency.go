package check

import "go.llib.dev/frameless/pkg/compare"

// ConsistentWithEquals verifies that Compare reports zero exactly when Equal reports true.
// Members of the equal group are compared against the group's first instance only,
// since they are expected to be mutually equal.
func ConsistentWithEquals[T any]() Check[T] { return consistentWithEquals[T]{} }

type consistentWithEquals[T any] struct{}

func (consistentWithEquals[T]) Name() string { return "consistent-with-equals" }

func (c consistentWithEquals[T]) Check(rel Relation[T], gs Groups[T]) error {
	if len(gs.Equal) == 0 {
		return nil
	}
	a := gs.Equal[0]
	for i, b := range gs.Equal {
		var (
			equals    = rel.Equal(a, b)
			compareTo = compare.IsEqual(rel.Compare(a, b))
		)
		if equals != compareTo {
			return violationf(ErrInconsistentWithEquals, c.Name(),
				"equal[0] (%v) and equal[%d] (%v): Equal reported %t while Compare reported %t",
				a, i, b, equals, compareTo)
		}
	}
	return nil
}

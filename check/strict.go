package check

// Reflexivity verifies that every instance compares and equals to itself.
func Reflexivity[T any]() Check[T] { return reflexivity[T]{} }

type reflexivity[T any] struct{}

func (reflexivity[T]) Name() string { return "reflexivity" }

func (c reflexivity[T]) Check(rel Relation[T], gs Groups[T]) error {
	for pos, x := range gs.All() {
		if got := rel.Compare(x, x); got != 0 {
			return violationf(ErrNotReflexive, c.Name(),
				"%s (%v): Compare with itself reported %d", pos, x, got)
		}
		if !rel.Equal(x, x) {
			return violationf(ErrNotReflexive, c.Name(),
				"%s (%v): Equal with itself reported false", pos, x)
		}
	}
	return nil
}

// Antisymmetry verifies sign(a.Compare(b)) == -sign(b.Compare(a)) for every pair of instances,
// including pairs from the same group.
func Antisymmetry[T any]() Check[T] { return antisymmetry[T]{} }

type antisymmetry[T any] struct{}

func (antisymmetry[T]) Name() string { return "antisymmetry" }

func (c antisymmetry[T]) Check(rel Relation[T], gs Groups[T]) error {
	is := gs.instances()
	for i, a := range is {
		for _, b := range is[i+1:] {
			var (
				ab = Sign(rel.Compare(a.Value, b.Value))
				ba = Sign(rel.Compare(b.Value, a.Value))
			)
			if ab != -ba {
				return violationf(ErrNotTotalOrder, c.Name(),
					"%s (%v) and %s (%v): sign of Compare is %d while sign of the reversed Compare is %d",
					a.Position, a.Value, b.Position, b.Value, ab, ba)
			}
		}
	}
	return nil
}

// Transitivity verifies the ordering over every triple of instances:
//
//	a < b && b < c  =>  a < c
//	a == b          =>  sign(a.Compare(c)) == sign(b.Compare(c))
//
// It is cubic in the number of instances.
func Transitivity[T any]() Check[T] { return transitivity[T]{} }

type transitivity[T any] struct{}

func (transitivity[T]) Name() string { return "transitivity" }

func (c transitivity[T]) Check(rel Relation[T], gs Groups[T]) error {
	is := gs.instances()
	for _, a := range is {
		for _, b := range is {
			ab := Sign(rel.Compare(a.Value, b.Value))
			for _, x := range is {
				var (
					ax = Sign(rel.Compare(a.Value, x.Value))
					bx = Sign(rel.Compare(b.Value, x.Value))
				)
				if ab < 0 && bx < 0 && ax >= 0 {
					return violationf(ErrNotTransitive, c.Name(),
						"%s (%v) < %s (%v) < %s (%v), but the first and the last compare with sign %d",
						a.Position, a.Value, b.Position, b.Value, x.Position, x.Value, ax)
				}
				if ab == 0 && ax != bx {
					return violationf(ErrNotTransitive, c.Name(),
						"%s (%v) == %s (%v), but they compare differently to %s (%v): %d and %d",
						a.Position, a.Value, b.Position, b.Value, x.Position, x.Value, ax, bx)
				}
			}
		}
	}
	return nil
}

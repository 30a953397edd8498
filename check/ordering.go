package check

import "go.llib.dev/frameless/pkg/compare"

// Ordering verifies that the groups form a strict order:
// lesser < equal, equal < greater and, transitively, lesser < greater.
// Every pair is compared in both directions, so the reversed comparison must have the opposite sign.
func Ordering[T any]() Check[T] { return ordering[T]{} }

type ordering[T any] struct{}

func (ordering[T]) Name() string { return "ordering" }

var orderedPairs = [][2]Group{
	{Lesser, Equal},
	{Equal, Greater},
	{Lesser, Greater},
}

func (c ordering[T]) Check(rel Relation[T], gs Groups[T]) error {
	for _, pair := range orderedPairs {
		lower, higher := pair[0], pair[1]
		for i, a := range gs.Of(lower) {
			for j, b := range gs.Of(higher) {
				var (
					ab = rel.Compare(a, b)
					ba = rel.Compare(b, a)
				)
				if compare.IsLess(ab) && compare.IsMore(ba) {
					continue
				}
				return violationf(ErrNotTransitive, c.Name(),
					"%s (%v) was expected to precede %s (%v), but Compare reported %d and the reversed Compare reported %d",
					Position{Group: lower, Index: i}, a, Position{Group: higher, Index: j}, b, ab, ba)
			}
		}
	}
	return nil
}

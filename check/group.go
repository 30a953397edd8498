package check

import (
	"fmt"
	"iter"
	"slices"
)

// Group is the role of a sample instance collection relative to the other two.
type Group string

const (
	Lesser  Group = "lesser"
	Equal   Group = "equal"
	Greater Group = "greater"
)

func (g Group) String() string { return string(g) }

// MinSize is the smallest number of instances the group must hold.
// A single equal instance can't demonstrate mutual equality, thus Equal requires two.
func (g Group) MinSize() int {
	if g == Equal {
		return 2
	}
	return 1
}

var groupOrder = [...]Group{Lesser, Equal, Greater}

// GroupOrder returns the groups in the order they are visited.
func GroupOrder() []Group {
	return slices.Clone(groupOrder[:])
}

// Groups holds the validated sample instances of every group.
type Groups[T any] struct {
	Lesser  []T
	Equal   []T
	Greater []T
}

// Of returns the instances of the given group.
func (gs Groups[T]) Of(g Group) []T {
	switch g {
	case Lesser:
		return gs.Lesser
	case Equal:
		return gs.Equal
	case Greater:
		return gs.Greater
	default:
		panic(fmt.Sprintf("unknown instance group: %q", string(g)))
	}
}

// Set replaces the instances of the given group.
func (gs *Groups[T]) Set(g Group, vs []T) {
	switch g {
	case Lesser:
		gs.Lesser = vs
	case Equal:
		gs.Equal = vs
	case Greater:
		gs.Greater = vs
	default:
		panic(fmt.Sprintf("unknown instance group: %q", string(g)))
	}
}

// Len is the total number of instances across the groups.
func (gs Groups[T]) Len() int {
	return len(gs.Lesser) + len(gs.Equal) + len(gs.Greater)
}

// Position locates an instance within the groups.
type Position struct {
	Group Group
	Index int
}

func (p Position) String() string {
	return fmt.Sprintf("%s[%d]", p.Group, p.Index)
}

// All iterates every instance in lesser, equal, greater order.
func (gs Groups[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for _, g := range groupOrder {
			for i, v := range gs.Of(g) {
				if !yield(Position{Group: g, Index: i}, v) {
					return
				}
			}
		}
	}
}

type instance[T any] struct {
	Position Position
	Value    T
}

func (gs Groups[T]) instances() []instance[T] {
	out := make([]instance[T], 0, gs.Len())
	for pos, v := range gs.All() {
		out = append(out, instance[T]{Position: pos, Value: v})
	}
	return out
}

// Package comparecontract exposes the comparison contract as a reusable testcase contract,
// so a type's test suite can run it next to its own specifications.
//
//	func TestMoney(t *testing.T) {
//		comparecontract.Comparable(func(tb testing.TB) comparecontract.Subject[*Money] {
//			return comparecontract.Subject[*Money]{
//				Lesser:  []*Money{{Cents: 1}},
//				Equal:   []*Money{{Cents: 42}, {Cents: 42}},
//				Greater: []*Money{{Cents: 100}},
//			}
//		}).Test(t)
//	}
package comparecontract

import (
	"fmt"
	"reflect"

	"go.llib.dev/compareverifier"
	"go.llib.dev/compareverifier/check"
	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Subject holds the sample groups and the suppression flags of a contract run.
type Subject[T any] struct {
	Lesser  []T
	Equal   []T
	Greater []T
	Config  compareverifier.Config
}

func (sub Subject[T]) verifier(rel check.Relation[T]) *compareverifier.Verifier[T] {
	return compareverifier.ForRelation(rel,
		compareverifier.Instances(sub.Lesser...),
		compareverifier.Instances(sub.Equal...),
		compareverifier.Instances(sub.Greater...),
	).WithConfig(sub.Config)
}

// Comparable is the contract of types implementing Compare and Equal.
func Comparable[T check.Comparable[T]](mk contract.Make[Subject[T]]) contract.Contract {
	return Relation(check.MethodRelation[T](), mk)
}

// Relation is the contract of an explicit Relation.
func Relation[T any](rel check.Relation[T], mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("the comparison contract holds", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).verifier(rel).Verify())
	})

	s.Test("a random lesser instance is less than a random greater one", func(t *testcase.T) {
		sub := subject.Get(t)
		var (
			l = random.Pick(t.Random, sub.Lesser...)
			g = random.Pick(t.Random, sub.Greater...)
		)
		assert.True(t, compare.IsLess(rel.Compare(l, g)),
			assert.MessageF("%v is expected to be less than %v", l, g))
		assert.True(t, compare.IsMore(rel.Compare(g, l)),
			assert.MessageF("%v is expected to be more than %v", g, l))
	})

	s.Test("random equal instances compare as equal", func(t *testcase.T) {
		sub := subject.Get(t)
		var (
			a = random.Pick(t.Random, sub.Equal...)
			b = random.Pick(t.Random, sub.Equal...)
		)
		assert.True(t, compare.IsEqual(rel.Compare(a, b)))
		assert.True(t, compare.IsEqual(rel.Compare(b, a)))
		if !sub.Config.SuppressConsistentWithEquals {
			assert.True(t, rel.Equal(a, b), assert.MessageF("%v is expected to equal %v", a, b))
		}
	})

	s.Test("the strict checks hold", func(t *testcase.T) {
		sub := subject.Get(t)
		sub.Config.Strict = true
		assert.NoError(t, sub.verifier(rel).Verify())
	})

	return s.AsSuite(fmt.Sprintf("Comparable[%s]", reflect.TypeFor[T]().String()))
}

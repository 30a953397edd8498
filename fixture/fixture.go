// Package fixture reads the sample groups of a comparison contract verification from YAML or JSON documents.
//
//	lesser:  [0, 1, 2, 3]
//	equal:   [42, 42, 42]
//	greater: [100, 101, 102]
//	config:
//	  strict: true
//
// The document is validated against an embedded JSON schema,
// then every group is decoded into the instance type.
// Group sizes and nil instances are left to the Verifier to report.
package fixture

import (
	"os"
	"slices"

	"go.llib.dev/compareverifier"
	"go.llib.dev/compareverifier/check"
	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFixture is returned when a document can't be read, fails the schema, or doesn't decode into T.
const ErrInvalidFixture errorkit.Error = "ErrInvalidFixture"

// Fixture is a decoded document: the instances of every group and the suppression flags.
type Fixture[T any] struct {
	Lesser  []T
	Equal   []T
	Greater []T
	Config  compareverifier.Config
}

type document struct {
	Lesser  yaml.Node              `yaml:"lesser"`
	Equal   yaml.Node              `yaml:"equal"`
	Greater yaml.Node              `yaml:"greater"`
	Config  compareverifier.Config `yaml:"config"`
}

// Decode parses a fixture document.
func Decode[T any](data []byte) (Fixture[T], error) {
	var f Fixture[T]
	if err := validate(data); err != nil {
		return f, ErrInvalidFixture.Wrap(err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return f, ErrInvalidFixture.Wrap(err)
	}
	f.Config = doc.Config
	for _, g := range []struct {
		Group check.Group
		Node  *yaml.Node
		Ptr   *[]T
	}{
		{Group: check.Lesser, Node: &doc.Lesser, Ptr: &f.Lesser},
		{Group: check.Equal, Node: &doc.Equal, Ptr: &f.Equal},
		{Group: check.Greater, Node: &doc.Greater, Ptr: &f.Greater},
	} {
		vs := []T{}
		if err := g.Node.Decode(&vs); err != nil {
			return Fixture[T]{}, ErrInvalidFixture.F("%s: %w", g.Group, err)
		}
		*g.Ptr = vs
	}
	return f, nil
}

// Load reads and decodes the fixture document at path.
func Load[T any](path string) (Fixture[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture[T]{}, ErrInvalidFixture.Wrap(err)
	}
	return Decode[T](data)
}

// Suppliers returns a Supplier for every group.
// Each call of a Supplier returns a copy, so checks can't alter the Fixture.
func (f Fixture[T]) Suppliers() (lesser, equal, greater compareverifier.Supplier[T]) {
	return clone(f.Lesser), clone(f.Equal), clone(f.Greater)
}

func clone[T any](vs []T) compareverifier.Supplier[T] {
	return func() []T { return slices.Clone(vs) }
}

// Verifier returns a Verifier for the Fixture's groups and config.
func (f Fixture[T]) Verifier(rel check.Relation[T]) *compareverifier.Verifier[T] {
	lesser, equal, greater := f.Suppliers()
	return compareverifier.ForRelation(rel, lesser, equal, greater).WithConfig(f.Config)
}

// ForInstances returns a Verifier for the Fixture that uses the Compare and Equal methods of T.
func ForInstances[T check.Comparable[T]](f Fixture[T]) *compareverifier.Verifier[T] {
	return f.Verifier(check.MethodRelation[T]())
}

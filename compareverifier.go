// Package compareverifier verifies that an ordering implementation honours the comparison contract.
//
// The caller supplies three groups of sample instances: lesser, equal and greater ones.
// The Verifier validates the groups, then runs the structural checks in a fixed order,
// and reports the first broken rule:
//
//  1. consistency with equals (suppressible)
//  2. equality to nil reports false (suppressible)
//  3. comparison to nil panics (suppressible)
//  4. the groups are strictly ordered: lesser < equal < greater
//
// Usage:
//
//	func TestMoney_Compare(t *testing.T) {
//		err := compareverifier.ForInstances(
//			compareverifier.Instances(&Money{Cents: 0}, &Money{Cents: 1}),
//			compareverifier.Instances(&Money{Cents: 42}, &Money{Cents: 42}),
//			compareverifier.Instances(&Money{Cents: 100}),
//		).Verify()
//		if err != nil {
//			t.Fatal(err.Error())
//		}
//	}
//
// Configuration errors (ErrConfiguration) tell that the verification itself is mis-specified,
// while contract violations (ErrContractViolation) tell that the type under test breaks the contract.
package compareverifier

import (
	"cmp"
	"context"
	"errors"
	"reflect"
	"slices"

	"go.llib.dev/compareverifier/check"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Verifier checks the comparison contract of T.
//
// A Verifier is immutable, the configuring methods return a modified copy,
// so the same Verifier can be verified concurrently.
type Verifier[T any] struct {
	relation check.Relation[T]
	lesser   Supplier[T]
	equal    Supplier[T]
	greater  Supplier[T]

	config Config
	logger *logging.Logger
	checks []check.Check[T]
}

// ForInstances creates a Verifier that uses the Compare and Equal methods of T.
func ForInstances[T check.Comparable[T]](lesser, equal, greater Supplier[T]) *Verifier[T] {
	return ForRelation(check.MethodRelation[T](), lesser, equal, greater)
}

// ForOrdered creates a Verifier that uses the natural ordering of T.
func ForOrdered[T cmp.Ordered](lesser, equal, greater Supplier[T]) *Verifier[T] {
	return ForRelation(check.OrderedRelation[T](), lesser, equal, greater)
}

// ForRelation creates a Verifier for an explicitly given Relation.
func ForRelation[T any](rel check.Relation[T], lesser, equal, greater Supplier[T]) *Verifier[T] {
	return &Verifier[T]{
		relation: rel,
		lesser:   lesser,
		equal:    equal,
		greater:  greater,
	}
}

func (v *Verifier[T]) with(configure func(c *Verifier[T])) *Verifier[T] {
	c := *v
	c.checks = slices.Clone(v.checks)
	configure(&c)
	return &c
}

// SuppressConsistentWithEquals toggles the consistency with equals check.
func (v *Verifier[T]) SuppressConsistentWithEquals(suppress bool) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.config.SuppressConsistentWithEquals = suppress })
}

// SuppressEqualToNil toggles the check that Equal reports false for nil.
func (v *Verifier[T]) SuppressEqualToNil(suppress bool) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.config.SuppressEqualToNil = suppress })
}

// SuppressCompareToNilPanic toggles the check that Compare panics for nil.
func (v *Verifier[T]) SuppressCompareToNilPanic(suppress bool) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.config.SuppressCompareToNilPanic = suppress })
}

// Strict toggles the reflexivity, antisymmetry and full transitivity checks.
// They are quadratic and cubic in the number of instances.
func (v *Verifier[T]) Strict(strict bool) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.config.Strict = strict })
}

// WithConfig replaces every flag with the given Config.
func (v *Verifier[T]) WithConfig(config Config) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.config = config })
}

// WithLogger sets the logger which receives the debug entries of the verification runs.
func (v *Verifier[T]) WithLogger(logger *logging.Logger) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.logger = logger })
}

// WithChecks appends checks that run after the built-in ones.
func (v *Verifier[T]) WithChecks(checks ...check.Check[T]) *Verifier[T] {
	return v.with(func(c *Verifier[T]) { c.checks = append(c.checks, checks...) })
}

// Config returns the suppression flags of the Verifier.
func (v *Verifier[T]) Config() Config { return v.config }

var defaultLogger = &logging.Logger{}

type step[T any] struct {
	Check      check.Check[T]
	Suppressed bool
}

func (v *Verifier[T]) steps(c Config) []step[T] {
	steps := []step[T]{
		{Check: check.ConsistentWithEquals[T](), Suppressed: c.SuppressConsistentWithEquals},
		{Check: check.EqualToNil[T](), Suppressed: c.SuppressEqualToNil},
		{Check: check.CompareToNil[T](), Suppressed: c.SuppressCompareToNilPanic},
		{Check: check.Ordering[T]()},
	}
	if c.Strict {
		steps = append(steps,
			step[T]{Check: check.Reflexivity[T]()},
			step[T]{Check: check.Antisymmetry[T]()},
			step[T]{Check: check.Transitivity[T]()},
		)
	}
	for _, custom := range v.checks {
		steps = append(steps, step[T]{Check: custom})
	}
	return steps
}

// Verify runs the whole verification.
// It returns a ConfigurationError for invalid input,
// a check.Violation for the first broken contract rule,
// or nil when the contract holds.
//
// Every call invokes the suppliers again, no state is kept between runs.
func (v *Verifier[T]) Verify() error {
	var (
		conf   = v.config
		logger = zerokit.Coalesce(v.logger, defaultLogger)
		ctx    = logging.ContextWith(context.Background(),
			logging.Field("type", reflect.TypeFor[T]().String()))
	)

	if v.relation.IsZero() {
		err := ConfigurationError{Cause: ErrNilRelation}
		logger.Debug(ctx, "invalid comparison contract verification", logging.ErrField(err))
		return err
	}

	gs, err := v.instances()
	if err != nil {
		logger.Debug(ctx, "invalid comparison contract verification", logging.ErrField(err))
		return err
	}

	logger.Debug(ctx, "verifying comparison contract", logging.Fields{
		"lesser":  len(gs.Lesser),
		"equal":   len(gs.Equal),
		"greater": len(gs.Greater),
		"strict":  conf.Strict,
	})

	for _, s := range v.steps(conf) {
		name := s.Check.Name()
		if s.Suppressed {
			logger.Debug(ctx, "comparison contract check suppressed", logging.Field("check", name))
			continue
		}
		if a, ok := s.Check.(check.Applicable); ok && !a.Applicable() {
			logger.Debug(ctx, "comparison contract check is not applicable", logging.Field("check", name))
			continue
		}
		if err := s.Check.Check(v.relation, gs); err != nil {
			details := []logging.Detail{logging.Field("check", name), logging.ErrField(err)}
			var violation check.Violation
			if errors.As(err, &violation) {
				details = append(details, logging.Field("detail", violation.Detail))
			}
			logger.Debug(ctx, "comparison contract violated", details...)
			return err
		}
		logger.Debug(ctx, "comparison contract check passed", logging.Field("check", name))
	}

	logger.Debug(ctx, "comparison contract verification passed")
	return nil
}

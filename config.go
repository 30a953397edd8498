package compareverifier

import "go.llib.dev/frameless/pkg/env"

// Config is the set of suppression flags of a verification run.
// The zero value enables every check.
//
// The ordering check has no flag, it is always enforced.
type Config struct {
	// SuppressConsistentWithEquals skips the check that Compare reports zero exactly when Equal reports true.
	SuppressConsistentWithEquals bool `env:"COMPAREVERIFIER_SUPPRESS_CONSISTENT_WITH_EQUALS" default:"false" yaml:"suppressConsistentWithEquals"`
	// SuppressEqualToNil skips the check that Equal reports false for nil.
	SuppressEqualToNil bool `env:"COMPAREVERIFIER_SUPPRESS_EQUAL_TO_NIL" default:"false" yaml:"suppressEqualToNil"`
	// SuppressCompareToNilPanic skips the check that Compare panics for nil.
	SuppressCompareToNilPanic bool `env:"COMPAREVERIFIER_SUPPRESS_COMPARE_TO_NIL_PANIC" default:"false" yaml:"suppressCompareToNilPanic"`
	// Strict enables the reflexivity, antisymmetry and full transitivity checks.
	Strict bool `env:"COMPAREVERIFIER_STRICT" default:"false" yaml:"strict"`
}

// LoadConfig reads the Config from the environment variables.
//
//	COMPAREVERIFIER_SUPPRESS_CONSISTENT_WITH_EQUALS
//	COMPAREVERIFIER_SUPPRESS_EQUAL_TO_NIL
//	COMPAREVERIFIER_SUPPRESS_COMPARE_TO_NIL_PANIC
//	COMPAREVERIFIER_STRICT
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	return c, nil
}

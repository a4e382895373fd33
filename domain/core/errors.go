package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrUnknownScenario = fmt.Errorf("%w: scenario", ErrNotFound)

	// Configuration errors
	ErrInvalidConfig       = errors.New("invalid scenario configuration")
	ErrNonPositiveGroups   = fmt.Errorf("%w: number of groups must be > 0", ErrInvalidConfig)
	ErrNonPositiveSamples  = fmt.Errorf("%w: sample size per group must be > 0", ErrInvalidConfig)
	ErrEmptyGroupPrefix    = fmt.Errorf("%w: group prefix must not be empty", ErrInvalidConfig)
	ErrShapeNotApplicable  = fmt.Errorf("%w: distribution shape only applies to continuous metrics", ErrInvalidConfig)
	ErrMissingDistribution = fmt.Errorf("%w: continuous metrics require shape and variance condition", ErrInvalidConfig)
)

// NewUnknownScenarioError reports a preset id outside the catalog.
func NewUnknownScenarioError(id int) error {
	return fmt.Errorf("%w: id %d", ErrUnknownScenario, id)
}

// NewInvalidConfigError attaches field context to ErrInvalidConfig.
func NewInvalidConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

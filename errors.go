package solids

import "fmt"

// ConfigError reports an invalid configuration field. Variant constructors
// return it before any anchor is computed, so a failed construction never
// yields a partially built figure.
type ConfigError struct {
	Field      string  // offending field name, e.g. "SkewFactor"
	Value      float64 // the rejected value
	Constraint string  // the violated constraint, e.g. "in (0, 1]"
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("solids: invalid config: %s=%v (must be %s)", e.Field, e.Value, e.Constraint)
}

// DegenerateGeometryError reports geometry that has no valid construction
// for the requested parameters, such as an axis slope whose ellipse
// intersection has no real root. The failing builder returns it directly;
// a value is never clamped to force the construction through.
type DegenerateGeometryError struct {
	Op     string // the construction step that failed
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("solids: degenerate geometry in %s: %s", e.Op, e.Detail)
}

// errPositive builds the ConfigError for fields that must be strictly
// positive.
func errPositive(field string, v float64) error {
	return &ConfigError{Field: field, Value: v, Constraint: "> 0"}
}

// checkPositive validates a strictly positive field.
func checkPositive(field string, v float64) error {
	if v <= 0 {
		return errPositive(field, v)
	}
	return nil
}

// checkSkewFactor validates the oblique compression ratio. Zero is rejected
// here rather than treated as a degenerate ellipse downstream.
func checkSkewFactor(v float64) error {
	if v <= 0 || v > 1 {
		return &ConfigError{Field: "SkewFactor", Value: v, Constraint: "in (0, 1]"}
	}
	return nil
}

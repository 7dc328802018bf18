package filter

import "fmt"

// ValidationError reports a filter value that could not be coerced during
// normalization, such as an unparseable date.
type ValidationError struct {
	Field  Field
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for filter on %s: %s", e.Value, e.Field, e.Reason)
}

// ConfigurationError reports an operator that is illegal for a field per the
// compatibility matrix, or an unknown field.
type ConfigurationError struct {
	Field    Field
	Operator Operator
}

func (e *ConfigurationError) Error() string {
	if _, ok := e.Field.Class(); !ok {
		return fmt.Sprintf("unknown filter field %s", e.Field)
	}
	return fmt.Sprintf("operator %s is not legal for field %s", e.Operator, e.Field)
}

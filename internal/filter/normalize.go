package filter

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Normalize coerces a filter's values into their canonical persisted form:
// date values to YYYY-MM-DD strings, datetime values to RFC 3339 UTC instants,
// relation ids to numbers (an array of numbers for In/NotIn, with bare
// comma-separated strings split into arrays). Operators without a value get
// their values cleared. Normalize is idempotent.
//
// It returns a ConfigurationError when the operator is illegal for the field
// and a ValidationError when a non-empty date-like value cannot be parsed.
func Normalize(f ViewFilter) (ViewFilter, error) {
	if !f.Field.Allows(f.Operator) {
		return ViewFilter{}, &ConfigurationError{Field: f.Field, Operator: f.Operator}
	}

	if !f.Operator.needsValue() {
		f.Value = nil
		f.SecondValue = nil
		return f, nil
	}

	class, _ := f.Field.Class()
	var err error
	switch class {
	case ClassDate:
		if f.Value, err = normalizeDate(f.Field, f.Value); err != nil {
			return ViewFilter{}, err
		}
		if f.SecondValue, err = normalizeDate(f.Field, f.SecondValue); err != nil {
			return ViewFilter{}, err
		}
	case ClassDateTime:
		if f.Value, err = normalizeDateTime(f.Field, f.Value); err != nil {
			return ViewFilter{}, err
		}
		if f.SecondValue, err = normalizeDateTime(f.Field, f.SecondValue); err != nil {
			return ViewFilter{}, err
		}
	case ClassRelation:
		if f.Operator == OperatorIn || f.Operator == OperatorNotIn {
			f.Value = coerceNumberList(f.Value)
		} else if f.Value != nil {
			n, ok := coerceNumber(f.Value)
			if !ok {
				return ViewFilter{}, &ValidationError{Field: f.Field, Value: f.Value, Reason: "not a numeric id"}
			}
			f.Value = n
		}
	}

	return f, nil
}

func normalizeDate(field Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := coerceTime(v)
	if !ok {
		return nil, &ValidationError{Field: field, Value: v, Reason: "not a parseable date"}
	}
	return t.Format(dateLayout), nil
}

func normalizeDateTime(field Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := coerceTime(v)
	if !ok {
		return nil, &ValidationError{Field: field, Value: v, Reason: "not a parseable instant"}
	}
	return t.UTC().Format(time.RFC3339), nil
}

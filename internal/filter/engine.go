package filter

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// Evaluate reports whether the record matches the configuration. A nil or
// empty configuration matches every record. Missing record fields are treated
// as null and never cause an error; a group with no filters is vacuously true.
func Evaluate(g *models.Game, cfg *ViewConfiguration) bool {
	groups, combine := cfg.Resolve()
	if len(groups) == 0 {
		return true
	}

	if combine == CombineOr {
		for _, group := range groups {
			if evaluateGroup(g, group) {
				return true
			}
		}
		return false
	}
	for _, group := range groups {
		if !evaluateGroup(g, group) {
			return false
		}
	}
	return true
}

func evaluateGroup(g *models.Game, group FilterGroup) bool {
	if len(group.Filters) == 0 {
		return true
	}

	if group.CombineWith == CombineOr {
		for _, f := range group.Filters {
			if evaluateFilter(g, f) {
				return true
			}
		}
		return false
	}
	for _, f := range group.Filters {
		if !evaluateFilter(g, f) {
			return false
		}
	}
	return true
}

func evaluateFilter(g *models.Game, f ViewFilter) bool {
	v := fieldValueOf(g, f.Field)

	switch f.Operator {
	case OperatorIsNull:
		return v.null
	case OperatorIsNotNull:
		return !v.null
	case OperatorIsEmpty:
		return v.empty()
	case OperatorIsNotEmpty:
		return !v.empty()
	}

	// Null record values only ever match the negated operators
	if v.null {
		switch f.Operator {
		case OperatorNotEquals, OperatorNotContains, OperatorNotIn:
			return true
		}
		return false
	}

	switch v.kind {
	case kindText:
		return evaluateText(v.str, f)
	case kindNumber:
		return evaluateNumber(v.num, f)
	case kindDate:
		return evaluateTime(truncateToDay(v.t), f, true)
	case kindDateTime:
		return evaluateTime(v.t, f, false)
	}
	return false
}

func evaluateText(have string, f ViewFilter) bool {
	want := coerceString(f.Value)
	lhave := strings.ToLower(have)
	lwant := strings.ToLower(want)

	switch f.Operator {
	case OperatorEquals:
		return lhave == lwant
	case OperatorNotEquals:
		return lhave != lwant
	case OperatorContains:
		return strings.Contains(lhave, lwant)
	case OperatorNotContains:
		return !strings.Contains(lhave, lwant)
	case OperatorStartsWith:
		return strings.HasPrefix(lhave, lwant)
	case OperatorEndsWith:
		return strings.HasSuffix(lhave, lwant)
	case OperatorGreaterThan:
		return lhave > lwant
	case OperatorGreaterThanOrEqual:
		return lhave >= lwant
	case OperatorLessThan:
		return lhave < lwant
	case OperatorLessThanOrEqual:
		return lhave <= lwant
	case OperatorBetween:
		second := strings.ToLower(coerceString(f.SecondValue))
		return lhave >= lwant && lhave <= second
	case OperatorIn, OperatorNotIn:
		found := false
		for _, item := range coerceStringList(f.Value) {
			if strings.EqualFold(item, have) {
				found = true
				break
			}
		}
		if f.Operator == OperatorIn {
			return found
		}
		return !found
	}
	return false
}

func evaluateNumber(have float64, f ViewFilter) bool {
	switch f.Operator {
	case OperatorIn, OperatorNotIn:
		found := false
		for _, item := range coerceNumberList(f.Value) {
			if item == have {
				found = true
				break
			}
		}
		if f.Operator == OperatorIn {
			return found
		}
		return !found
	}

	want, ok := coerceNumber(f.Value)
	if !ok {
		return f.Operator == OperatorNotEquals
	}

	switch f.Operator {
	case OperatorEquals:
		return have == want
	case OperatorNotEquals:
		return have != want
	case OperatorGreaterThan:
		return have > want
	case OperatorGreaterThanOrEqual:
		return have >= want
	case OperatorLessThan:
		return have < want
	case OperatorLessThanOrEqual:
		return have <= want
	case OperatorBetween:
		second, ok := coerceNumber(f.SecondValue)
		if !ok {
			return false
		}
		return have >= want && have <= second
	}
	return false
}

func evaluateTime(have time.Time, f ViewFilter, dateOnly bool) bool {
	want, ok := coerceTime(f.Value)
	if !ok {
		return f.Operator == OperatorNotEquals
	}
	if dateOnly {
		want = truncateToDay(want)
	}

	switch f.Operator {
	case OperatorEquals:
		return have.Equal(want)
	case OperatorNotEquals:
		return !have.Equal(want)
	case OperatorGreaterThan:
		return have.After(want)
	case OperatorGreaterThanOrEqual:
		return have.After(want) || have.Equal(want)
	case OperatorLessThan:
		return have.Before(want)
	case OperatorLessThanOrEqual:
		return have.Before(want) || have.Equal(want)
	case OperatorBetween:
		second, ok := coerceTime(f.SecondValue)
		if !ok {
			return false
		}
		if dateOnly {
			second = truncateToDay(second)
		}
		return !have.Before(want) && !have.After(second)
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// timeLayouts are the accepted date/datetime encodings for filter values
var timeLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func coerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.Trim(string(b), `"`)
	}
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func coerceNumberList(v any) []float64 {
	switch list := v.(type) {
	case []float64:
		return list
	case []any:
		out := make([]float64, 0, len(list))
		for _, item := range list {
			if n, ok := coerceNumber(item); ok {
				out = append(out, n)
			}
		}
		return out
	case string:
		var out []float64
		for _, part := range strings.Split(list, ",") {
			if n, ok := coerceNumber(part); ok {
				out = append(out, n)
			}
		}
		return out
	}
	if n, ok := coerceNumber(v); ok {
		return []float64{n}
	}
	return nil
}

func coerceStringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, coerceString(item))
		}
		return out
	case string:
		parts := strings.Split(list, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCanonicalForms(t *testing.T) {
	tests := []struct {
		name string
		in   ViewFilter
		want ViewFilter
	}{
		{
			name: "date value to day string",
			in:   ViewFilter{Field: FieldReleased, Operator: OperatorEquals, Value: "2023-06-10T14:30:00Z"},
			want: ViewFilter{Field: FieldReleased, Operator: OperatorEquals, Value: "2023-06-10"},
		},
		{
			name: "datetime value to RFC 3339 UTC",
			in:   ViewFilter{Field: FieldCreatedAt, Operator: OperatorGreaterThanOrEqual, Value: "2023-06-10T14:30:00"},
			want: ViewFilter{Field: FieldCreatedAt, Operator: OperatorGreaterThanOrEqual, Value: "2023-06-10T14:30:00Z"},
		},
		{
			name: "relation id string to number",
			in:   ViewFilter{Field: FieldStatusID, Operator: OperatorEquals, Value: "7"},
			want: ViewFilter{Field: FieldStatusID, Operator: OperatorEquals, Value: float64(7)},
		},
		{
			name: "relation comma string to number array",
			in:   ViewFilter{Field: FieldStatusID, Operator: OperatorIn, Value: "1, 2,3"},
			want: ViewFilter{Field: FieldStatusID, Operator: OperatorIn, Value: []float64{1, 2, 3}},
		},
		{
			name: "relation mixed array to number array",
			in:   ViewFilter{Field: FieldPlatformID, Operator: OperatorNotIn, Value: []any{"4", float64(5)}},
			want: ViewFilter{Field: FieldPlatformID, Operator: OperatorNotIn, Value: []float64{4, 5}},
		},
		{
			name: "no-value operator clears values",
			in:   ViewFilter{Field: FieldComment, Operator: OperatorIsEmpty, Value: "stale", SecondValue: "stale"},
			want: ViewFilter{Field: FieldComment, Operator: OperatorIsEmpty},
		},
		{
			name: "blank date value becomes nil",
			in:   ViewFilter{Field: FieldReleased, Operator: OperatorEquals, Value: "  "},
			want: ViewFilter{Field: FieldReleased, Operator: OperatorEquals},
		},
		{
			name: "text filter passes through",
			in:   ViewFilter{Field: FieldName, Operator: OperatorContains, Value: "knight"},
			want: ViewFilter{Field: FieldName, Operator: OperatorContains, Value: "knight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	filters := []ViewFilter{
		{Field: FieldReleased, Operator: OperatorEquals, Value: "2023-06-10T14:30:00Z"},
		{Field: FieldCreatedAt, Operator: OperatorLessThanOrEqual, Value: "2023-06-10T14:30:00"},
		{Field: FieldStatusID, Operator: OperatorIn, Value: "1,2,3"},
		{Field: FieldStatusID, Operator: OperatorEquals, Value: "7"},
		{Field: FieldName, Operator: OperatorContains, Value: "Knight"},
		{Field: FieldGrade, Operator: OperatorGreaterThan, Value: float64(8)},
		{Field: FieldComment, Operator: OperatorIsNotEmpty, Value: "anything"},
	}

	for _, f := range filters {
		once, err := Normalize(f)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "normalizing twice must equal normalizing once: %+v", f)
	}
}

func TestNormalizeRejectsIllegalOperators(t *testing.T) {
	tests := []struct {
		name   string
		filter ViewFilter
	}{
		{
			name:   "contains on a relation field",
			filter: ViewFilter{Field: FieldStatusID, Operator: OperatorContains, Value: "1"},
		},
		{
			name:   "greater than on a text field",
			filter: ViewFilter{Field: FieldName, Operator: OperatorGreaterThan, Value: "a"},
		},
		{
			name:   "between on a date field",
			filter: ViewFilter{Field: FieldReleased, Operator: OperatorBetween, Value: "2023-01-01", SecondValue: "2023-12-31"},
		},
		{
			name:   "unknown field",
			filter: ViewFilter{Field: Field("Bogus"), Operator: OperatorEquals, Value: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.filter)
			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		filter ViewFilter
	}{
		{
			name:   "unparseable date",
			filter: ViewFilter{Field: FieldReleased, Operator: OperatorEquals, Value: "not a date"},
		},
		{
			name:   "unparseable datetime",
			filter: ViewFilter{Field: FieldUpdatedAt, Operator: OperatorEquals, Value: "soon"},
		},
		{
			name:   "non numeric relation id",
			filter: ViewFilter{Field: FieldStatusID, Operator: OperatorEquals, Value: "backlog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.filter)
			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

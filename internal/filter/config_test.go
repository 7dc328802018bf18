package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigurationForms(t *testing.T) {
	object := `{"filterGroups":[{"filters":[{"field":"Name","operator":"Contains","value":"knight"}],"combineWith":"And"}],"groupCombineWith":"Or","sorting":[{"field":"Name","direction":"Ascending","order":1}]}`
	legacy := `[{"field":"Name","operator":"Contains","value":"knight"}]`

	t.Run("canonical object", func(t *testing.T) {
		cfg, err := ParseConfiguration([]byte(object))
		require.NoError(t, err)
		require.Len(t, cfg.FilterGroups, 1)
		assert.Equal(t, CombineOr, cfg.GroupCombineWith)
		assert.Equal(t, FieldName, cfg.FilterGroups[0].Filters[0].Field)
		require.Len(t, cfg.Sorting, 1)
		assert.Equal(t, 1, cfg.Sorting[0].Order)
	})

	t.Run("legacy bare array", func(t *testing.T) {
		cfg, err := ParseConfiguration([]byte(legacy))
		require.NoError(t, err)
		assert.Empty(t, cfg.FilterGroups)
		require.Len(t, cfg.Filters, 1)
		assert.Equal(t, OperatorContains, cfg.Filters[0].Operator)
	})

	t.Run("double encoded string", func(t *testing.T) {
		wrapped, err := json.Marshal(object)
		require.NoError(t, err)

		cfg, err := ParseConfiguration(wrapped)
		require.NoError(t, err)
		require.Len(t, cfg.FilterGroups, 1)
		assert.Equal(t, "knight", cfg.FilterGroups[0].Filters[0].Value)
	})

	t.Run("empty and null inputs", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "null"} {
			cfg, err := ParseConfiguration([]byte(raw))
			require.NoError(t, err)
			groups, _ := cfg.Resolve()
			assert.Empty(t, groups)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := ParseConfiguration([]byte(`{"filterGroups":`))
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Run("groups take precedence over legacy filters", func(t *testing.T) {
		cfg := &ViewConfiguration{
			FilterGroups: []FilterGroup{
				{Filters: []ViewFilter{{Field: FieldName, Operator: OperatorEquals, Value: "a"}}, CombineWith: CombineAnd},
			},
			Filters: []ViewFilter{{Field: FieldName, Operator: OperatorEquals, Value: "b"}},
		}
		groups, combine := cfg.Resolve()
		require.Len(t, groups, 1)
		assert.Equal(t, "a", groups[0].Filters[0].Value)
		assert.Equal(t, CombineAnd, combine)
	})

	t.Run("legacy filters become one And group", func(t *testing.T) {
		cfg := &ViewConfiguration{
			Filters: []ViewFilter{
				{Field: FieldName, Operator: OperatorContains, Value: "x"},
				{Field: FieldGrade, Operator: OperatorGreaterThan, Value: float64(8)},
			},
		}
		groups, combine := cfg.Resolve()
		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Filters, 2)
		assert.Equal(t, CombineAnd, groups[0].CombineWith)
		assert.Equal(t, CombineAnd, combine)
	})

	t.Run("missing group connective defaults to And", func(t *testing.T) {
		cfg := &ViewConfiguration{
			FilterGroups: []FilterGroup{{Filters: []ViewFilter{{Field: FieldName, Operator: OperatorEquals, Value: "a"}}}},
		}
		_, combine := cfg.Resolve()
		assert.Equal(t, CombineAnd, combine)
	})
}

func TestValidate(t *testing.T) {
	valid := &ViewConfiguration{
		Filters: []ViewFilter{
			{Field: FieldName, Operator: OperatorContains, Value: "x"},
			{Field: FieldStatusID, Operator: OperatorIn, Value: []float64{1, 2}},
		},
	}
	assert.NoError(t, valid.Validate())

	invalid := &ViewConfiguration{
		Filters: []ViewFilter{
			{Field: FieldGrade, Operator: OperatorContains, Value: "x"},
		},
	}
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, invalid.Validate(), &cfgErr)
}

package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-H-Afonso/gamesdatabase/internal/filter"
)

func TestCanonicalConfiguration(t *testing.T) {
	t.Run("normalizes filter values", func(t *testing.T) {
		raw := []byte(`{
			"filterGroups": [{
				"filters": [
					{"field": "Released", "operator": "GreaterThanOrEqual", "value": "2023-06-10T14:30:00Z"},
					{"field": "StatusId", "operator": "In", "value": "1,2,3"}
				],
				"combineWith": "And"
			}],
			"sorting": [{"field": "Name", "direction": "Ascending", "order": 1}]
		}`)

		canonical, err := canonicalConfiguration(raw)
		require.NoError(t, err)

		var cfg filter.ViewConfiguration
		require.NoError(t, json.Unmarshal([]byte(canonical), &cfg))
		require.Len(t, cfg.FilterGroups, 1)
		assert.Equal(t, "2023-06-10", cfg.FilterGroups[0].Filters[0].Value)
		assert.Equal(t, []any{float64(1), float64(2), float64(3)}, cfg.FilterGroups[0].Filters[1].Value)
	})

	t.Run("accepts legacy bare array", func(t *testing.T) {
		canonical, err := canonicalConfiguration([]byte(`[{"field":"Name","operator":"Contains","value":"knight"}]`))
		require.NoError(t, err)

		cfg, err := filter.ParseConfiguration([]byte(canonical))
		require.NoError(t, err)
		groups, _ := cfg.Resolve()
		require.Len(t, groups, 1)
		assert.Equal(t, "knight", groups[0].Filters[0].Value)
	})

	t.Run("rejects illegal operator", func(t *testing.T) {
		_, err := canonicalConfiguration([]byte(`[{"field":"Grade","operator":"Contains","value":"x"}]`))
		var cfgErr *filter.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("rejects unparseable date value", func(t *testing.T) {
		_, err := canonicalConfiguration([]byte(`[{"field":"Released","operator":"Equals","value":"someday"}]`))
		var valErr *filter.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("empty configuration is valid", func(t *testing.T) {
		canonical, err := canonicalConfiguration(nil)
		require.NoError(t, err)

		cfg, err := filter.ParseConfiguration([]byte(canonical))
		require.NoError(t, err)
		groups, _ := cfg.Resolve()
		assert.Empty(t, groups)
	})
}

package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ViewFilter is one leaf condition. Value and SecondValue are absent for the
// null/empty check operators.
type ViewFilter struct {
	Field       Field    `json:"field"`
	Operator    Operator `json:"operator"`
	Value       any      `json:"value,omitempty"`
	SecondValue any      `json:"secondValue,omitempty"`
}

// FilterGroup combines its filters with a single connective. Mixing And/Or
// inside one group is not representable; that is an invariant of the model.
type FilterGroup struct {
	Filters     []ViewFilter `json:"filters"`
	CombineWith CombineWith  `json:"combineWith"`
}

// ViewConfiguration is the persisted filter+sort shape of a saved view.
// FilterGroups is authoritative when non-empty; Filters is the legacy flat
// list equivalent to a single And group.
type ViewConfiguration struct {
	FilterGroups     []FilterGroup `json:"filterGroups,omitempty"`
	GroupCombineWith CombineWith   `json:"groupCombineWith,omitempty"`
	Filters          []ViewFilter  `json:"filters,omitempty"`
	Sorting          []Sort        `json:"sorting"`
}

// Resolve returns the effective filter groups and the connective that joins
// them. Legacy flat filters become a single And group. An empty result means
// the view matches every record.
func (c *ViewConfiguration) Resolve() ([]FilterGroup, CombineWith) {
	if c == nil {
		return nil, CombineAnd
	}
	if len(c.FilterGroups) > 0 {
		combine := c.GroupCombineWith
		if combine == "" {
			combine = CombineAnd
		}
		return c.FilterGroups, combine
	}
	if len(c.Filters) > 0 {
		return []FilterGroup{{Filters: c.Filters, CombineWith: CombineAnd}}, CombineAnd
	}
	return nil, CombineAnd
}

// Validate checks every filter in the configuration against the operator
// compatibility matrix.
func (c *ViewConfiguration) Validate() error {
	groups, _ := c.Resolve()
	for _, group := range groups {
		for _, f := range group.Filters {
			if !f.Field.Allows(f.Operator) {
				return &ConfigurationError{Field: f.Field, Operator: f.Operator}
			}
		}
	}
	return nil
}

// ParseConfiguration decodes a persisted view configuration. It accepts the
// canonical object form, a legacy bare filter array, and the double-encoded
// JSON string older clients produced. Empty input yields an empty
// configuration that matches everything.
func ParseConfiguration(data []byte) (*ViewConfiguration, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &ViewConfiguration{}, nil
	}

	switch data[0] {
	case '"':
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode wrapped configuration: %w", err)
		}
		return ParseConfiguration([]byte(inner))
	case '[':
		var legacy []ViewFilter
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("failed to decode legacy filter list: %w", err)
		}
		return &ViewConfiguration{Filters: legacy}, nil
	default:
		var cfg ViewConfiguration
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode configuration: %w", err)
		}
		return &cfg, nil
	}
}

package filter

// Operator identifies a filter comparison
type Operator string

// Filter operators. Not every operator is legal for every field; see Allows.
const (
	OperatorEquals             Operator = "Equals"
	OperatorNotEquals          Operator = "NotEquals"
	OperatorContains           Operator = "Contains"
	OperatorNotContains        Operator = "NotContains"
	OperatorGreaterThan        Operator = "GreaterThan"
	OperatorGreaterThanOrEqual Operator = "GreaterThanOrEqual"
	OperatorLessThan           Operator = "LessThan"
	OperatorLessThanOrEqual    Operator = "LessThanOrEqual"
	OperatorBetween            Operator = "Between"
	OperatorIn                 Operator = "In"
	OperatorNotIn              Operator = "NotIn"
	OperatorIsNull             Operator = "IsNull"
	OperatorIsNotNull          Operator = "IsNotNull"
	OperatorStartsWith         Operator = "StartsWith"
	OperatorEndsWith           Operator = "EndsWith"
	OperatorIsEmpty            Operator = "IsEmpty"
	OperatorIsNotEmpty         Operator = "IsNotEmpty"
)

// CombineWith is the boolean connective used inside a filter group and
// between groups
type CombineWith string

// Combine modes
const (
	CombineAnd CombineWith = "And"
	CombineOr  CombineWith = "Or"
)

// allOperators is the fallback set for ClassOther fields
var allOperators = []Operator{
	OperatorEquals, OperatorNotEquals,
	OperatorContains, OperatorNotContains,
	OperatorGreaterThan, OperatorGreaterThanOrEqual,
	OperatorLessThan, OperatorLessThanOrEqual,
	OperatorBetween, OperatorIn, OperatorNotIn,
	OperatorIsNull, OperatorIsNotNull,
	OperatorStartsWith, OperatorEndsWith,
	OperatorIsEmpty, OperatorIsNotEmpty,
}

// legalOperators is the operator compatibility matrix keyed by field class
var legalOperators = map[Class][]Operator{
	ClassText: {
		OperatorEquals, OperatorNotEquals,
		OperatorContains, OperatorNotContains,
		OperatorStartsWith, OperatorEndsWith,
		OperatorIsEmpty, OperatorIsNotEmpty,
	},
	ClassRelation: {
		OperatorEquals, OperatorNotEquals,
		// In/NotIn accept arrays; used by quick-filter exclude lists
		OperatorIn, OperatorNotIn,
	},
	ClassScore: {
		OperatorEquals, OperatorNotEquals,
		OperatorGreaterThan, OperatorGreaterThanOrEqual,
		OperatorLessThan, OperatorLessThanOrEqual,
	},
	ClassDate: {
		OperatorEquals,
		OperatorGreaterThanOrEqual, OperatorLessThanOrEqual,
		OperatorIsNull, OperatorIsNotNull,
	},
	ClassDateTime: {
		OperatorEquals,
		OperatorGreaterThanOrEqual, OperatorLessThanOrEqual,
		OperatorIsNull, OperatorIsNotNull,
	},
	ClassOther: allOperators,
}

// Allows reports whether the operator is legal for the field per the
// compatibility matrix. Unknown fields allow nothing.
func (f Field) Allows(op Operator) bool {
	class, ok := f.Class()
	if !ok {
		return false
	}
	for _, legal := range legalOperators[class] {
		if legal == op {
			return true
		}
	}
	return false
}

// needsValue reports whether the operator requires a filter value
func (op Operator) needsValue() bool {
	switch op {
	case OperatorIsNull, OperatorIsNotNull, OperatorIsEmpty, OperatorIsNotEmpty:
		return false
	}
	return true
}

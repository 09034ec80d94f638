package compare

import "fmt"

// Operator describes the four ordering operators of the constraint
// library.
type Operator int

const (
	OperatorInvalid Operator = iota

	OperatorLessThan
	OperatorLessThanOrEqualTo
	OperatorGreaterThan
	OperatorGreaterThanOrEqualTo
)

var operatorValueMap = map[Operator]string{
	OperatorLessThan:             "LessThan",
	OperatorLessThanOrEqualTo:    "LessThanOrEqualTo",
	OperatorGreaterThan:          "GreaterThan",
	OperatorGreaterThanOrEqualTo: "GreaterThanOrEqualTo",
}

func (o Operator) String() string {
	v, ok := operatorValueMap[o]
	if !ok {
		return fmt.Sprintf("invalid(%d)", o)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (o *Operator) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range operatorValueMap {
		if v == text {
			*o = k
			return nil
		}
	}

	return fmt.Errorf("unknown ordering operator %q", text)
}

// DefaultOperators is the member-name → operator mapping of the stock
// constraint library.
func DefaultOperators() map[string]Operator {
	res := make(map[string]Operator, len(operatorValueMap))
	for k, v := range operatorValueMap {
		res[v] = k
	}
	return res
}

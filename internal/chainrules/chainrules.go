package chainrules

import "fmt"

// Rule represents a checkful rule code (CHK-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CHK001IncomparableOrdering
	CHK100PossiblyNilDereference
	CHK110GuardedNilDereference
)

// String returns the canonical code and short name of the rule.
// Example: "CHK001: IncomparableOrdering"
func (r Rule) String() string {
	switch r {
	case CHK001IncomparableOrdering:
		return "CHK001: IncomparableOrdering"
	case CHK100PossiblyNilDereference:
		return "CHK100: PossiblyNilDereference"
	case CHK110GuardedNilDereference:
		return "CHK110: GuardedNilDereference"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CHK001IncomparableOrdering:
		return "Operands of an ordering constraint must be of mutually comparable types."
	case CHK100PossiblyNilDereference:
		return "Dereference of a possibly nil reference with no preceding assertion guard."
	case CHK110GuardedNilDereference:
		return "Dereference already proven safe by a preceding assertion; advisory withheld."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors — for readability and stable call sites.

func IncomparableOrdering() Rule   { return CHK001IncomparableOrdering }
func PossiblyNilDereference() Rule { return CHK100PossiblyNilDereference }
func GuardedNilDereference() Rule  { return CHK110GuardedNilDereference }

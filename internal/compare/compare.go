// Package compare decides whether two types may be legally compared
// with an ordering operator of the constraint library.
package compare

import (
	"github.com/sirkon/checkful/internal/chain"
	"github.com/sirkon/checkful/internal/syntax"
)

// Conversion classifies a type conversion as far as comparability
// cares: either there is a numeric conversion (widening or narrowing)
// or there is nothing useful.
type Conversion int

const (
	ConversionNone Conversion = iota
	ConversionNumeric
)

// Conventional names of the ordering-comparison contract. A type
// satisfying any of them is orderable against the respective argument.
const (
	// OrderedInterface is the single-type-parameter ordering interface.
	OrderedInterface = "Ordered"

	// OrderableInterface is the non-generic ordering interface.
	OrderableInterface = "Orderable"

	// CompareMethod is the duck-typed comparison method name: a method
	// with this name taking exactly one parameter of the receiver's
	// own type counts even without formal interface conformance.
	CompareMethod = "Compare"
)

// TypeOracle answers type-relationship queries. The production
// implementation sits on the host's semantic model; tests supply fakes
// simulating arbitrary type relationships.
type TypeOracle interface {
	// ClassifyConversion reports whether a converts to b numerically.
	ClassifyConversion(a, b syntax.Type) Conversion

	// ImplementsParameterized reports whether t implements the named
	// single-type-parameter interface instantiated exactly with arg.
	ImplementsParameterized(t syntax.Type, iface string, arg syntax.Type) bool

	// HasNonGenericInterface reports whether t implements the named
	// non-generic interface.
	HasNonGenericInterface(t syntax.Type, iface string) bool

	// HasMethod reports whether t exposes a method of the given name
	// taking exactly one parameter of type param.
	HasMethod(t syntax.Type, name string, param syntax.Type) bool
}

// Options tune the checker to a particular constraint library dialect.
type Options struct {
	// Operators maps root member names to ordering operators.
	// Nil means [DefaultOperators].
	Operators map[string]Operator

	// Negation is the only prefix modifier that keeps the check
	// applicable. Empty means "Not".
	Negation string

	// Comparers lists suffix member names that supply caller-defined
	// comparison semantics and disable the check entirely.
	// Nil means {"Using"}.
	Comparers []string
}

// Checker decides ordering comparability of type pairs.
type Checker struct {
	oracle    TypeOracle
	operators map[string]Operator
	negation  string
	comparers map[string]struct{}
}

// NewChecker is the [Checker] constructor.
func NewChecker(oracle TypeOracle, opts Options) *Checker {
	if opts.Operators == nil {
		opts.Operators = DefaultOperators()
	}
	if opts.Negation == "" {
		opts.Negation = "Not"
	}
	if opts.Comparers == nil {
		opts.Comparers = []string{"Using"}
	}

	comparers := make(map[string]struct{}, len(opts.Comparers))
	for _, c := range opts.Comparers {
		comparers[c] = struct{}{}
	}

	return &Checker{
		oracle:    oracle,
		operators: opts.Operators,
		negation:  opts.Negation,
		comparers: comparers,
	}
}

// Applicable reports whether the ordering-comparability check applies
// to the given part, and which operator its root denotes. The check
// applies when the root method is one of the four ordering operators,
// prefixes are empty or consist solely of the negation modifier, and
// no suffix supplies a custom comparer. Callers must additionally
// reject chains flagged unanalyzable by the classifier: a missing root
// is caught here, arbitrary link shapes are not.
func (c *Checker) Applicable(part chain.Part) (Operator, bool) {
	root, ok := part.RootMethod()
	if !ok {
		return OperatorInvalid, false
	}

	op, ok := c.operators[root.Name]
	if !ok {
		return OperatorInvalid, false
	}

	// Any prefix except pure negation changes what "actual type" even
	// means (All, Some, Property, Count, …) — bail without a finding.
	for _, name := range part.PrefixNames() {
		if name != c.negation {
			return OperatorInvalid, false
		}
	}

	// Caller-supplied comparison semantics override built-in reasoning.
	for _, name := range part.SuffixNames() {
		if _, banned := c.comparers[name]; banned {
			return OperatorInvalid, false
		}
	}

	return op, true
}

// CanCompare reports whether actual and expected may be compared with
// an ordering operator. Nullable wrapping on either side is
// transparent.
func (c *Checker) CanCompare(actual, expected syntax.Type) bool {
	a := actual.Unwrap()
	e := expected.Unwrap()

	if a.IsZero() || e.IsZero() {
		// Unresolved types: absence of certainty resolves to "fine".
		return true
	}

	if c.oracle.ClassifyConversion(a, e) == ConversionNumeric ||
		c.oracle.ClassifyConversion(e, a) == ConversionNumeric {
		return true
	}

	if c.oracle.ImplementsParameterized(a, OrderedInterface, e) ||
		c.oracle.ImplementsParameterized(e, OrderedInterface, a) {
		return true
	}

	if a.Same(e) {
		if c.oracle.HasNonGenericInterface(a, OrderableInterface) {
			return true
		}
		// Duck-typed comparison: Compare(T) on T itself. A same-name
		// method on an unrelated type does not count.
		if c.oracle.HasMethod(a, CompareMethod, a) {
			return true
		}
	}

	return false
}

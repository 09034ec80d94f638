package nilguard

import "github.com/sirkon/checkful/internal/syntax"

// GenericForm describes a generic assertion entry point: a call taking
// the asserted value plus an optional constraint argument, like
// `verify.That(x, verify.Is.Not.Nil)`.
type GenericForm struct {
	// Callee is the normalized callee text of the call.
	Callee string

	// Subject is the index of the asserted value argument.
	Subject int

	// Constraint is the index of the optional constraint argument.
	Constraint int
}

// SubjectForm describes a single-purpose assertion: a call whose whole
// meaning is fixed by its callee and one subject argument, like
// `verify.NotNil(x)` or `require.NotNil(t, x)`.
type SubjectForm struct {
	Callee  string
	Subject int
}

// Catalog is the closed set of assertion call shapes the scan
// recognizes, plus the marker and known-safe vocabularies.
type Catalog struct {
	// That lists generic assertion entry points.
	That []GenericForm

	// NotNil lists direct not-nil assertions.
	NotNil []SubjectForm

	// True lists boolean-true assertions; they prove a reference only
	// through its value-probe member.
	True []SubjectForm

	// NilMarkers are constraint argument texts meaning "expect nil".
	// A generic assertion carrying one proves nothing.
	NilMarkers []string

	// FalseMarkers are constraint argument texts meaning "expect
	// false"; they disarm value-probe proofs the same way.
	FalseMarkers []string

	// KnownSafe lists callee texts of invocations guaranteed to either
	// return a non-nil value or never return.
	KnownSafe []string

	// ValueProbe is the member suffix whose truth proves presence of a
	// wrapped value, conventionally ".HasValue".
	ValueProbe string
}

// DefaultCatalog covers the stock verify library plus the common
// testify require forms.
func DefaultCatalog() Catalog {
	return Catalog{
		That: []GenericForm{
			{Callee: "verify.That", Subject: 0, Constraint: 1},
		},
		NotNil: []SubjectForm{
			{Callee: "verify.NotNil", Subject: 0},
			{Callee: "require.NotNil", Subject: 1},
		},
		True: []SubjectForm{
			{Callee: "verify.True", Subject: 0},
			{Callee: "require.True", Subject: 1},
		},
		NilMarkers: []string{
			"verify.Is.Nil",
			"verify.Is.Nil()",
		},
		FalseMarkers: []string{
			"verify.Is.False",
			"verify.Is.False()",
		},
		KnownSafe: []string{
			"verify.NotNilValue",
			"require.NotZero",
		},
		ValueProbe: ".HasValue",
	}
}

func (c Catalog) genericForm(callee string) (GenericForm, bool) {
	for _, f := range c.That {
		if f.Callee == callee {
			return f, true
		}
	}
	return GenericForm{}, false
}

func (c Catalog) subjectForm(forms []SubjectForm, callee string) (SubjectForm, bool) {
	for _, f := range forms {
		if f.Callee == callee {
			return f, true
		}
	}
	return SubjectForm{}, false
}

func (c Catalog) isMarker(markers []string, arg syntax.Expr) bool {
	text := arg.Text()
	for _, m := range markers {
		if m == text {
			return true
		}
	}
	return false
}

// IsKnownSafe reports whether e is an invocation from the known-safe
// catalog: a call guaranteed to produce a non-nil value or to never
// return at all.
func (c Catalog) IsKnownSafe(e syntax.Expr) bool {
	call, ok := e.(*syntax.ExprCall)
	if !ok {
		return false
	}

	callee := call.Fn.Text()
	for _, k := range c.KnownSafe {
		if k == callee {
			return true
		}
	}
	return false
}

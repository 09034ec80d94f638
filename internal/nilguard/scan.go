package nilguard

import "github.com/sirkon/checkful/internal/syntax"

// SyntaxOracle exposes the AST navigation the scan needs over an
// already-parsed tree. The production implementation sits on the host
// syntax model; tests supply fakes building arbitrary shapes.
type SyntaxOracle interface {
	// EnclosingStatement returns the innermost statement containing
	// the diagnosed node.
	EnclosingStatement(node syntax.Expr) (syntax.Stmt, bool)

	// ParentStatement returns the statement enclosing s, crossing
	// block boundaries.
	ParentStatement(s syntax.Stmt) (syntax.Stmt, bool)

	// EnclosingBlock returns the block s belongs to.
	EnclosingBlock(s syntax.Stmt) (*syntax.Block, bool)

	// InSoftAssertScope reports whether s lies in a scope where
	// assertion failures are collected rather than aborting execution.
	// The exact detection rule is host-specific, hence pluggable.
	InSoftAssertScope(s syntax.Stmt) bool
}

// Site is one "possibly nil dereference" diagnostic to judge.
type Site struct {
	// Node is the diagnosed expression.
	Node syntax.Expr

	// Stmt optionally pins the enclosing statement; when nil it is
	// recovered through the oracle.
	Stmt syntax.Stmt
}

// verdict is the evidence state of a reference key at a scan position.
type verdict int

const (
	verdictUnknown verdict = iota
	verdictProven
	verdictInvalidated
)

// Heuristic decides whether a possibly-nil advisory should be
// suppressed. It holds no mutable state: every decision is computed
// from scratch and sites may be judged on parallel workers.
type Heuristic struct {
	oracle  SyntaxOracle
	catalog Catalog
}

// NewHeuristic is the [Heuristic] constructor.
func NewHeuristic(oracle SyntaxOracle, catalog Catalog) *Heuristic {
	if catalog.ValueProbe == "" {
		catalog.ValueProbe = ".HasValue"
	}
	return &Heuristic{oracle: oracle, catalog: catalog}
}

// ShouldSuppress reports whether the advisory at site is already
// guarded by a preceding assertion proving the reference non-nil.
// Absence of certainty resolves to false: a genuinely unguarded
// dereference must never lose its advisory.
func (h *Heuristic) ShouldSuppress(site Site) bool {
	key, ok := DeriveKey(site.Node)
	if !ok {
		return false
	}

	stmt := site.Stmt
	if stmt == nil {
		stmt, ok = h.oracle.EnclosingStatement(site.Node)
		if !ok {
			return false
		}
	}

	for {
		// Inside a soft-assert scope failed assertions do not stop
		// execution, so sibling evidence proves nothing. Skip straight
		// to the parent statement's chain.
		if !h.oracle.InSoftAssertScope(stmt) {
			if block, ok := h.oracle.EnclosingBlock(stmt); ok {
				switch h.scanBlock(block, stmt, key) {
				case verdictProven:
					return true
				case verdictInvalidated:
					return false
				}
			}
		}

		parent, ok := h.oracle.ParentStatement(stmt)
		if !ok {
			return false
		}
		stmt = parent
	}
}

// scanBlock inspects statements strictly before anchor within block,
// nearest first, looking for evidence about key.
func (h *Heuristic) scanBlock(block *syntax.Block, anchor syntax.Stmt, key string) verdict {
	idx := block.Index(anchor)
	if idx < 0 {
		return verdictUnknown
	}

	for i := idx - 1; i >= 0; i-- {
		switch s := block.Stmts[i].(type) {
		case *syntax.StmtAssign:
			if v, decided := h.judgeAssign(s, key); decided {
				return v
			}

		case *syntax.StmtExpr:
			if h.provesByAssertion(s.X, key) {
				return verdictProven
			}

		case *syntax.StmtVarDecl:
			if s.Name != key {
				continue
			}
			// The name is shadowed before this point; any earlier or
			// outer evidence concerns a different variable.
			if s.Init != nil && h.catalog.IsKnownSafe(s.Init) {
				return verdictProven
			}
			return verdictInvalidated
		}
	}

	return verdictUnknown
}

// judgeAssign applies the reassignment rule: writing to the key or to
// an owning prefix of it (`a` owns `a.b`) discards every older proof,
// unless the new value is itself known-safe.
func (h *Heuristic) judgeAssign(s *syntax.StmtAssign, key string) (verdict, bool) {
	if !owns(s.LHS.Text(), key) {
		return verdictUnknown, false
	}

	if h.catalog.IsKnownSafe(s.RHS) {
		return verdictProven, true
	}
	return verdictInvalidated, true
}

// provesByAssertion reports whether expression statement x is a
// recognized assertion call proving key non-nil.
func (h *Heuristic) provesByAssertion(x syntax.Expr, key string) bool {
	call, ok := x.(*syntax.ExprCall)
	if !ok {
		return false
	}

	callee := call.Fn.Text()

	if f, ok := h.catalog.genericForm(callee); ok {
		return h.provesByGeneric(call, f, key)
	}

	if f, ok := h.catalog.subjectForm(h.catalog.NotNil, callee); ok {
		if f.Subject < len(call.Args) {
			return Covers(call.Args[f.Subject].Text(), key)
		}
		return false
	}

	if f, ok := h.catalog.subjectForm(h.catalog.True, callee); ok {
		if f.Subject < len(call.Args) {
			return call.Args[f.Subject].Text() == key+h.catalog.ValueProbe
		}
		return false
	}

	return false
}

func (h *Heuristic) provesByGeneric(call *syntax.ExprCall, f GenericForm, key string) bool {
	if f.Subject >= len(call.Args) {
		return false
	}
	subject := call.Args[f.Subject].Text()

	var constraint syntax.Expr
	if f.Constraint < len(call.Args) {
		constraint = call.Args[f.Constraint]
	}

	// verify.That(x.HasValue) with no "expect false" constraint.
	if subject == key+h.catalog.ValueProbe {
		return constraint == nil || !h.catalog.isMarker(h.catalog.FalseMarkers, constraint)
	}

	// verify.That(x, …) with no "expect nil" constraint.
	if Covers(subject, key) {
		return constraint == nil || !h.catalog.isMarker(h.catalog.NilMarkers, constraint)
	}

	return false
}

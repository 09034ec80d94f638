package gosyntax

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/checkful/internal/nilguard"
	"github.com/sirkon/checkful/internal/syntax"
)

// The suppression pipeline needs no type information: everything runs
// on normalized source text, so a bare parse is enough to exercise it
// end to end.
func TestStmtOracleSuppression(t *testing.T) {
	src := `package sample

func flow() {
	check.NotNil(p)
	use(p.n)

	check.NotNil(q)
	q = mk()
	use(q.n)

	r := check.Fresh()
	use(r.n)

	check.NotNil(s)
	if cond {
		use(s.n)
	}

	check.NotNil(w)
	group(func() {
		use(w.n)
	})
	group(func() {
		check.NotNil(x)
		use(x.n)
	})
}
`

	fset, file := parseSample(t, src)
	idx := NewSpanIndex(file)

	isSoftCall := func(c *ast.CallExpr) bool {
		id, ok := c.Fun.(*ast.Ident)
		return ok && id.Name == "group"
	}
	oracle := NewStmtOracle(file, isSoftCall)

	catalog := nilguard.Catalog{
		NotNil:    []nilguard.SubjectForm{{Callee: "check.NotNil", Subject: 0}},
		KnownSafe: []string{"check.Fresh"},
	}
	h := nilguard.NewHeuristic(oracle, catalog)

	judge := func(t *testing.T, substr string) bool {
		t.Helper()

		site, ok := oracle.SiteAt(idx, posOf(t, fset, file, src, substr))
		require.True(t, ok, "no site at %q", substr)
		return h.ShouldSuppress(site)
	}

	t.Run("guard right before the dereference", func(t *testing.T) {
		assert.True(t, judge(t, "p.n"))
	})

	t.Run("reassignment between guard and dereference", func(t *testing.T) {
		assert.False(t, judge(t, "q.n"))
	})

	t.Run("declaration with a known-safe initializer", func(t *testing.T) {
		assert.True(t, judge(t, "r.n"))
	})

	t.Run("guard in an enclosing block", func(t *testing.T) {
		assert.True(t, judge(t, "s.n"))
	})

	t.Run("guard before a grouped-assertion scope", func(t *testing.T) {
		assert.True(t, judge(t, "w.n"))
	})

	t.Run("guard inside a grouped-assertion scope proves nothing", func(t *testing.T) {
		assert.False(t, judge(t, "x.n"))
	})
}

func TestStmtOracleStatementModel(t *testing.T) {
	src := `package sample

func shapes() {
	a := load()
	a = refresh()
	var b = load()
	touch(a, b)
	x, y := pair()
	_, _ = x, y
}
`

	fset, file := parseSample(t, src)
	idx := NewSpanIndex(file)
	oracle := NewStmtOracle(file, nil)

	stmtAt := func(substr string) syntax.Stmt {
		return oracle.ToStmt(idx.StmtAt(posOf(t, fset, file, src, substr)))
	}

	t.Run("short declaration", func(t *testing.T) {
		decl, ok := stmtAt("a := load()").(*syntax.StmtVarDecl)
		require.True(t, ok)
		assert.Equal(t, "a", decl.Name)
		assert.Equal(t, "load()", decl.Init.Text())
	})

	t.Run("plain assignment", func(t *testing.T) {
		asg, ok := stmtAt("a = refresh()").(*syntax.StmtAssign)
		require.True(t, ok)
		assert.Equal(t, "a", asg.LHS.Text())
		assert.Equal(t, "refresh()", asg.RHS.Text())
	})

	t.Run("var declaration", func(t *testing.T) {
		decl, ok := stmtAt("var b = load()").(*syntax.StmtVarDecl)
		require.True(t, ok)
		assert.Equal(t, "b", decl.Name)
	})

	t.Run("multi-assignment stays opaque", func(t *testing.T) {
		_, ok := stmtAt("x, y := pair()").(*syntax.StmtOther)
		assert.True(t, ok)
	})

	t.Run("conversion is memoized by identity", func(t *testing.T) {
		first := stmtAt("a := load()")
		second := stmtAt("a := load()")
		assert.Same(t, first, second)
	})
}

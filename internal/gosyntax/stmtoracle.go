package gosyntax

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/checkful/internal/nilguard"
	"github.com/sirkon/checkful/internal/syntax"
)

// StmtOracle implements the nilguard navigation contract over one
// parsed file. It keeps stable identities: one ast.Stmt always maps to
// the same syntax.Stmt value, so block membership checks by identity
// hold.
//
// Not safe for concurrent use; build one per file per worker.
type StmtOracle struct {
	parents map[ast.Stmt]ast.Stmt
	blocks  map[ast.Stmt]*ast.BlockStmt

	conv      map[ast.Stmt]syntax.Stmt
	back      map[syntax.Stmt]ast.Stmt
	blockConv map[*ast.BlockStmt]*syntax.Block

	exprHome map[syntax.Expr]ast.Stmt

	softSpans []syntax.Span
}

// NewStmtOracle walks the file recording statement parentage and
// block membership. isSoftCall recognizes calls opening a soft-assert
// scope (a grouped-assertion closure); every function literal passed
// to such a call becomes a soft span.
func NewStmtOracle(file *ast.File, isSoftCall func(*ast.CallExpr) bool) *StmtOracle {
	o := &StmtOracle{
		parents:   make(map[ast.Stmt]ast.Stmt),
		blocks:    make(map[ast.Stmt]*ast.BlockStmt),
		conv:      make(map[ast.Stmt]syntax.Stmt),
		back:      make(map[syntax.Stmt]ast.Stmt),
		blockConv: make(map[*ast.BlockStmt]*syntax.Block),
		exprHome:  make(map[syntax.Expr]ast.Stmt),
	}

	var stack []ast.Node
	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		switch v := n.(type) {
		case ast.Stmt:
			if _, isBlock := v.(*ast.BlockStmt); !isBlock {
				o.recordStmt(v, stack)
			}
		case *ast.CallExpr:
			if isSoftCall != nil && isSoftCall(v) {
				for _, arg := range v.Args {
					if fn, ok := arg.(*ast.FuncLit); ok {
						o.softSpans = append(o.softSpans, spanOf(fn.Body))
					}
				}
			}
		}

		stack = append(stack, n)
		return true
	})

	return o
}

func (o *StmtOracle) recordStmt(s ast.Stmt, stack []ast.Node) {
	for i := len(stack) - 1; i >= 0; i-- {
		switch v := stack[i].(type) {
		case *ast.BlockStmt:
			if _, done := o.blocks[s]; !done {
				o.blocks[s] = v
			}
		case ast.Stmt:
			if _, done := o.parents[s]; !done {
				o.parents[s] = v
			}
		}
		_, hasBlock := o.blocks[s]
		_, hasParent := o.parents[s]
		if hasBlock && hasParent {
			break
		}
	}
}

// SiteAt builds a suppression site out of a diagnostic position: the
// innermost statement covering pos (resolved through idx) plus the
// deepest expression starting exactly at pos within it.
func (o *StmtOracle) SiteAt(idx *SpanIndex, pos token.Pos) (nilguard.Site, bool) {
	stmt := idx.StmtAt(pos)
	if stmt == nil {
		return nilguard.Site{}, false
	}

	var diagnosed ast.Expr
	ast.Inspect(stmt, func(n ast.Node) bool {
		if e, ok := n.(ast.Expr); ok && e.Pos() == pos {
			// Keep descending: the deepest node anchored here wins.
			diagnosed = e
		}
		return true
	})
	if diagnosed == nil {
		return nilguard.Site{}, false
	}

	node := ToExpr(diagnosed)
	o.exprHome[node] = stmt

	return nilguard.Site{
		Node: node,
		Stmt: o.ToStmt(stmt),
	}, true
}

// ToStmt converts a statement into the closed variant model,
// memoized by identity.
func (o *StmtOracle) ToStmt(s ast.Stmt) syntax.Stmt {
	if got, ok := o.conv[s]; ok {
		return got
	}

	var res syntax.Stmt
	switch v := s.(type) {
	case *ast.AssignStmt:
		res = o.convAssign(v)

	case *ast.DeclStmt:
		res = convDecl(v)

	case *ast.ExprStmt:
		res = &syntax.StmtExpr{X: ToExpr(v.X), Span: spanOf(v)}

	default:
		res = &syntax.StmtOther{Span: spanOf(s)}
	}

	o.conv[s] = res
	o.back[res] = s
	return res
}

func (o *StmtOracle) convAssign(v *ast.AssignStmt) syntax.Stmt {
	if len(v.Lhs) != 1 || len(v.Rhs) != 1 {
		// Multi-assignments carry no single reference identity the
		// textual scan could reason about.
		return &syntax.StmtOther{Span: spanOf(v)}
	}

	if v.Tok == token.DEFINE {
		if id, ok := v.Lhs[0].(*ast.Ident); ok {
			return &syntax.StmtVarDecl{
				Name: id.Name,
				Init: ToExpr(v.Rhs[0]),
				Span: spanOf(v),
			}
		}
	}

	return &syntax.StmtAssign{
		LHS:  ToExpr(v.Lhs[0]),
		RHS:  ToExpr(v.Rhs[0]),
		Span: spanOf(v),
	}
}

func convDecl(v *ast.DeclStmt) syntax.Stmt {
	gen, ok := v.Decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.VAR || len(gen.Specs) != 1 {
		return &syntax.StmtOther{Span: spanOf(v)}
	}
	spec, ok := gen.Specs[0].(*ast.ValueSpec)
	if !ok || len(spec.Names) != 1 {
		return &syntax.StmtOther{Span: spanOf(v)}
	}

	decl := &syntax.StmtVarDecl{
		Name: spec.Names[0].Name,
		Span: spanOf(v),
	}
	if len(spec.Values) == 1 {
		decl.Init = ToExpr(spec.Values[0])
	}
	return decl
}

// EnclosingStatement recovers the statement a previously built site
// node belongs to.
func (o *StmtOracle) EnclosingStatement(node syntax.Expr) (syntax.Stmt, bool) {
	s, ok := o.exprHome[node]
	if !ok {
		return nil, false
	}
	return o.ToStmt(s), true
}

// ParentStatement returns the statement enclosing s, crossing block
// boundaries.
func (o *StmtOracle) ParentStatement(s syntax.Stmt) (syntax.Stmt, bool) {
	astStmt, ok := o.back[s]
	if !ok {
		return nil, false
	}
	parent, ok := o.parents[astStmt]
	if !ok {
		return nil, false
	}
	return o.ToStmt(parent), true
}

// EnclosingBlock returns the block s belongs to, converted once with
// stable statement identities.
func (o *StmtOracle) EnclosingBlock(s syntax.Stmt) (*syntax.Block, bool) {
	astStmt, ok := o.back[s]
	if !ok {
		return nil, false
	}
	astBlock, ok := o.blocks[astStmt]
	if !ok {
		return nil, false
	}

	if got, ok := o.blockConv[astBlock]; ok {
		return got, true
	}

	block := &syntax.Block{}
	for _, st := range astBlock.List {
		block.Stmts = append(block.Stmts, o.ToStmt(st))
	}
	o.blockConv[astBlock] = block

	return block, true
}

// InSoftAssertScope reports whether s lies inside a function literal
// passed to a grouped-assertion call.
func (o *StmtOracle) InSoftAssertScope(s syntax.Stmt) bool {
	astStmt, ok := o.back[s]
	if !ok {
		return false
	}

	pos := astStmt.Pos()
	for _, span := range o.softSpans {
		if span.Start <= pos && pos < span.End {
			return true
		}
	}
	return false
}

var _ nilguard.SyntaxOracle = (*StmtOracle)(nil)

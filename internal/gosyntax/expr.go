package gosyntax

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/checkful/internal/syntax"
)

// ToExpr converts a Go expression into the closed variant model.
// Shapes the scan has no opinion about become opaque nodes carrying
// their rendered text only.
func ToExpr(e ast.Expr) syntax.Expr {
	switch v := e.(type) {
	case *ast.Ident:
		if v.Name == "nil" {
			return &syntax.ExprLit{Kind: syntax.LitNil, Value: "nil"}
		}
		return &syntax.ExprIdent{Name: v.Name}

	case *ast.SelectorExpr:
		return &syntax.ExprMember{
			Recv: ToExpr(v.X),
			Name: v.Sel.Name,
		}

	case *ast.CallExpr:
		call := &syntax.ExprCall{Fn: ToExpr(v.Fun)}
		for _, a := range v.Args {
			call.Args = append(call.Args, ToExpr(a))
		}
		return call

	case *ast.TypeAssertExpr:
		if v.Type == nil {
			// x.(type) of a type switch has no cast semantics.
			return &syntax.ExprOpaque{Raw: types.ExprString(v)}
		}
		return &syntax.ExprCast{
			Inner: ToExpr(v.X),
			To:    syntax.Type{Name: types.ExprString(v.Type)},
		}

	case *ast.ParenExpr:
		return ToExpr(v.X)

	case *ast.BinaryExpr:
		var op syntax.BinaryOp
		switch v.Op {
		case token.EQL:
			op = syntax.BinaryEq
		case token.NEQ:
			op = syntax.BinaryNeq
		default:
			return &syntax.ExprOpaque{Raw: types.ExprString(v)}
		}
		return &syntax.ExprBinary{
			Op:    op,
			Left:  ToExpr(v.X),
			Right: ToExpr(v.Y),
		}

	case *ast.BasicLit:
		kind := syntax.LitOther
		switch v.Kind {
		case token.INT, token.FLOAT:
			kind = syntax.LitNumber
		case token.STRING:
			kind = syntax.LitString
		}
		return &syntax.ExprLit{Kind: kind, Value: v.Value}

	default:
		return &syntax.ExprOpaque{Raw: types.ExprString(v)}
	}
}

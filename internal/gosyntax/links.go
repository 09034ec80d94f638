package gosyntax

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/checkful/internal/syntax"
)

// Chain is a flattened fluent expression: ordered links plus a way
// back from a call link to its syntax tree node, keyed by the link's
// span end (chained calls share a start position, ends are unique).
type Chain struct {
	Links []syntax.Link
	calls map[token.Pos]*ast.CallExpr
}

// CallOf returns the original call expression of a call link.
func (c Chain) CallOf(l syntax.Link) (*ast.CallExpr, bool) {
	call, ok := c.calls[l.Span.End]
	return call, ok
}

// Flatten decomposes a chained constraint expression into ordered
// links. Package qualifiers contribute no link of their own: a
// qualified anchor like `verify.Is` arrives as one identifier link.
func Flatten(info *types.Info, e ast.Expr, oracle *TypeOracle) Chain {
	c := Chain{calls: make(map[token.Pos]*ast.CallExpr)}
	c.Links = c.flatten(info, e, oracle)
	return c
}

func (c *Chain) flatten(info *types.Info, e ast.Expr, oracle *TypeOracle) []syntax.Link {
	switch v := e.(type) {
	case *ast.ParenExpr:
		return c.flatten(info, v.X, oracle)

	case *ast.CallExpr:
		links := c.flatten(info, v.Fun, oracle)
		if len(links) == 0 {
			return []syntax.Link{{Kind: syntax.LinkOther, Span: spanOf(v)}}
		}

		last := &links[len(links)-1]
		last.Kind = syntax.LinkCall
		last.Span.End = v.End()
		for _, a := range v.Args {
			last.Args = append(last.Args, ToExpr(a))
		}
		c.calls[last.Span.End] = v

		return links

	case *ast.SelectorExpr:
		links := c.flatten(info, v.X, oracle)
		link := syntax.Link{
			Kind: syntax.LinkMember,
			Name: v.Sel.Name,
			Sym:  symbolOf(info, v.Sel, oracle),
			Span: syntax.Span{Start: v.Sel.Pos(), End: v.Sel.End()},
		}
		if len(links) == 0 {
			// The receiver was a bare package qualifier: this member
			// is actually a qualified identifier, an anchor candidate.
			link.Kind = syntax.LinkIdent
		}
		return append(links, link)

	case *ast.Ident:
		if _, isPkg := info.Uses[v].(*types.PkgName); isPkg {
			return nil
		}
		return []syntax.Link{{
			Kind: syntax.LinkIdent,
			Name: v.Name,
			Sym:  symbolOf(info, v, oracle),
			Span: spanOf(v),
		}}

	default:
		return []syntax.Link{{Kind: syntax.LinkOther, Span: spanOf(v)}}
	}
}

// symbolOf resolves one chain identifier into the core symbol model.
func symbolOf(info *types.Info, id *ast.Ident, oracle *TypeOracle) *syntax.Symbol {
	obj := info.Uses[id]
	if obj == nil {
		obj = info.Defs[id]
	}
	if obj == nil || obj.Pkg() == nil {
		return nil
	}

	sym := &syntax.Symbol{
		Package: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	switch v := obj.(type) {
	case *types.Func:
		sym.Kind = syntax.SymbolMethod
		sig := v.Type().(*types.Signature)
		if recv := sig.Recv(); recv != nil {
			if named, ok := derefNamed(recv.Type()); ok {
				sym.Type = named.Obj().Name()
			}
		}
		if res := sig.Results(); res.Len() > 0 {
			sym.Result = oracle.Descriptor(res.At(0).Type())
		}

	case *types.Var:
		sym.Kind = syntax.SymbolProperty
		sym.Result = oracle.Descriptor(v.Type())
		// A package-level value of a library type is a namespace-style
		// anchor, not a property.
		if v.Parent() == obj.Pkg().Scope() && oracle.IsLibraryType(v.Type()) {
			sym.Kind = syntax.SymbolType
		}

	case *types.TypeName:
		sym.Kind = syntax.SymbolType

	default:
		sym.Kind = syntax.SymbolNone
	}

	return sym
}

func derefNamed(t types.Type) (*types.Named, bool) {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	return named, ok
}

func spanOf(n ast.Node) syntax.Span {
	return syntax.Span{Start: n.Pos(), End: n.End()}
}

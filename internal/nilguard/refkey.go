package nilguard

import "github.com/sirkon/checkful/internal/syntax"

// DeriveKey normalizes the diagnosed expression into the textual
// identity of the reference believed to be possibly nil:
//
//   - casts unwrap to their inner expression;
//   - null-coalescing selects the right operand, since the diagnostic
//     anchors on the whole expression but the risk is in the right side;
//   - conditionals are recognized for exactly two condition shapes (a
//     pattern test on an access path, possibly negated, or an equality
//     comparison of an access path against the nil literal); the branch
//     holding on the definitely-non-nil outcome becomes the effective
//     expression and derivation recurses on it;
//   - anything else keys on its own text.
//
// An unrecognized conditional condition yields ok == false: such sites
// must never be suppressed.
func DeriveKey(e syntax.Expr) (key string, ok bool) {
	switch v := e.(type) {
	case *syntax.ExprCast:
		return DeriveKey(v.Inner)

	case *syntax.ExprCoalesce:
		return DeriveKey(v.Right)

	case *syntax.ExprCond:
		branch, ok := nonNilBranch(v)
		if !ok {
			return "", false
		}
		return DeriveKey(branch)

	default:
		return e.Text(), true
	}
}

// nonNilBranch picks the conditional branch taken when the tested
// reference is definitely not nil. Only two condition shapes are
// recognized; everything else is rejected.
func nonNilBranch(cond *syntax.ExprCond) (syntax.Expr, bool) {
	switch c := cond.Cond.(type) {
	case *syntax.ExprPattern:
		if !syntax.IsAccessPath(c.Operand) {
			return nil, false
		}
		switch c.Pattern {
		case syntax.PatternType:
			// `x is T` holds only for non-nil x.
			if c.Negated {
				return cond.Else, true
			}
			return cond.Then, true
		case syntax.PatternNull:
			if c.Negated {
				return cond.Then, true
			}
			return cond.Else, true
		}
		return nil, false

	case *syntax.ExprBinary:
		switch {
		case syntax.IsAccessPath(c.Left) && isNilLit(c.Right):
		case syntax.IsAccessPath(c.Right) && isNilLit(c.Left):
		default:
			return nil, false
		}

		switch c.Op {
		case syntax.BinaryEq:
			return cond.Else, true
		case syntax.BinaryNeq:
			return cond.Then, true
		}
		return nil, false

	default:
		return nil, false
	}
}

func isNilLit(e syntax.Expr) bool {
	lit, ok := e.(*syntax.ExprLit)
	return ok && lit.Kind == syntax.LitNil
}

package syntax

import "strings"

// Expr is the base interface of the closed expression variant set.
// Every shape the analyzers recognize is a distinct type here, so a
// type switch over Expr can be checked for exhaustiveness by eye and
// adding a new shape forces every consumer to decide what to do.
type Expr interface {
	isExpr()

	// Text renders the normalized textual identity of the expression.
	// Two expressions are treated as the same reference iff their
	// texts are equal. This is deliberately textual, not semantic.
	Text() string
}

// ExprIdent is a plain identifier reference.
type ExprIdent struct {
	Name string
}

// ExprMember is a member access `Recv.Name`, optionally through a
// null-conditional marker (`Recv?.Name`).
type ExprMember struct {
	Recv     Expr
	Name     string
	Optional bool
}

// ExprCall is an invocation of Fn with ordered arguments.
type ExprCall struct {
	Fn   Expr
	Args []Expr
}

// ExprCast is a cast or conversion of Inner to To. Type assertions of
// the host language map here as well.
type ExprCast struct {
	Inner Expr
	To    Type
}

// ExprCoalesce is a null-coalescing expression `Left ?? Right`:
// Right is evaluated only when Left is null.
type ExprCoalesce struct {
	Left  Expr
	Right Expr
}

// ExprCond is a conditional (ternary) expression.
type ExprCond struct {
	Cond Expr
	Then Expr
	Else Expr
}

// BinaryOp is the operator of an ExprBinary. Only equality operators
// matter to the analyzers; everything else is BinaryOther.
type BinaryOp int

const (
	BinaryOther BinaryOp = iota
	BinaryEq
	BinaryNeq
)

// ExprBinary is a binary operation.
type ExprBinary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// PatternKind distinguishes the two recognized pattern tests.
type PatternKind int

const (
	// PatternType matches the operand against a concrete type; a
	// successful match implies the operand is not null.
	PatternType PatternKind = iota

	// PatternNull matches the operand against the null constant.
	PatternNull
)

// ExprPattern is a pattern test of Operand, e.g. `x is T` or
// `x is null` in pattern-matching hosts. Negated flips the outcome.
type ExprPattern struct {
	Operand Expr
	Pattern PatternKind
	Negated bool
}

// LitKind classifies literal values.
type LitKind int

const (
	LitOther LitKind = iota
	LitNil
	LitBool
	LitString
	LitNumber
)

// ExprLit is a literal value.
type ExprLit struct {
	Kind  LitKind
	Value string
}

// ExprOpaque is an expression shape the adapter could not classify.
// It carries its raw source text and nothing else; analyzers must
// treat it as unanalyzable.
type ExprOpaque struct {
	Raw string
}

func (e *ExprIdent) Text() string { return e.Name }

func (e *ExprMember) Text() string {
	sep := "."
	if e.Optional {
		sep = "?."
	}
	return e.Recv.Text() + sep + e.Name
}

func (e *ExprCall) Text() string {
	var b strings.Builder
	b.WriteString(e.Fn.Text())
	b.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Text())
	}
	b.WriteByte(')')
	return b.String()
}

func (e *ExprCast) Text() string     { return e.Inner.Text() }
func (e *ExprCoalesce) Text() string { return e.Left.Text() + " ?? " + e.Right.Text() }

func (e *ExprCond) Text() string {
	return e.Cond.Text() + " ? " + e.Then.Text() + " : " + e.Else.Text()
}

func (e *ExprBinary) Text() string {
	op := "·"
	switch e.Op {
	case BinaryEq:
		op = "=="
	case BinaryNeq:
		op = "!="
	}
	return e.Left.Text() + " " + op + " " + e.Right.Text()
}

func (e *ExprPattern) Text() string {
	pat := "type"
	if e.Pattern == PatternNull {
		pat = "null"
	}
	if e.Negated {
		return e.Operand.Text() + " is not " + pat
	}
	return e.Operand.Text() + " is " + pat
}

func (e *ExprLit) Text() string   { return e.Value }
func (e *ExprOpaque) Text() string { return e.Raw }

func (*ExprIdent) isExpr()    {}
func (*ExprMember) isExpr()   {}
func (*ExprCall) isExpr()     {}
func (*ExprCast) isExpr()     {}
func (*ExprCoalesce) isExpr() {}
func (*ExprCond) isExpr()     {}
func (*ExprBinary) isExpr()   {}
func (*ExprPattern) isExpr()  {}
func (*ExprLit) isExpr()      {}
func (*ExprOpaque) isExpr()   {}

// IsAccessPath reports whether e is an identifier or a (possibly
// nested) member access over one — the only shapes reference keys and
// recognized guard conditions are built from.
func IsAccessPath(e Expr) bool {
	switch v := e.(type) {
	case *ExprIdent:
		return true
	case *ExprMember:
		return IsAccessPath(v.Recv)
	default:
		return false
	}
}

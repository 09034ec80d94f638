package syntax

import "go/token"

// Span is a [start,end] source region attributed to a node.
type Span struct {
	Start token.Pos
	End   token.Pos
}

// Type describes a resolved type as far as chain analysis needs it:
// a name stable within one analysis invocation plus an optional
// nullable wrapping. Wrapping is transparent to comparability checks.
type Type struct {
	// Name is the canonical name of the type. Two descriptors denote
	// the same type iff their unwrapped names are equal.
	Name string

	// Nullable is set when the descriptor wraps Name into an optional
	// ("may be missing") container: a pointer, an option type, etc.
	Nullable bool
}

// Unwrap drops the nullable wrapping, if any.
func (t Type) Unwrap() Type {
	t.Nullable = false
	return t
}

// IsZero reports whether the descriptor carries no type at all.
func (t Type) IsZero() bool {
	return t.Name == ""
}

// Same reports whether two descriptors denote literally the same
// underlying type, disregarding nullable wrapping.
func (t Type) Same(o Type) bool {
	return t.Name == o.Name
}

// SymbolKind tells what sort of declared entity a resolved symbol is.
type SymbolKind int

const (
	SymbolNone SymbolKind = iota

	// SymbolMethod is a function or method.
	SymbolMethod

	// SymbolProperty is a field or a property-like accessor.
	SymbolProperty

	// SymbolType is a type declaration. Bare chain anchors resolve here.
	SymbolType
)

// Symbol identifies a declared entity a chain link resolved to.
type Symbol struct {
	// Package is the import path of the package declaring the entity.
	Package string

	// Type is the package-local name of the receiver type. Empty for
	// free functions and for type symbols themselves.
	Type string

	// Name is the declared identifier of the entity within its package.
	Name string

	Kind SymbolKind

	// Result is the resolved return type, when the symbol yields one.
	Result Type
}

// LinkKind is the syntactic shape of one fluent-chain link.
type LinkKind int

const (
	LinkOther LinkKind = iota
	LinkIdent
	LinkMember
	LinkCall
)

// Link is one node in a fluent chain: a bare identifier, a member
// access, or a call. Immutable once produced by the host adapter.
type Link struct {
	Kind LinkKind

	// Name is the identifier or member name of the link.
	Name string

	// Sym is the resolved symbol, nil when resolution failed.
	Sym *Symbol

	// Args holds call arguments, in order. Only set for LinkCall.
	Args []Expr

	Span Span
}

// ReturnType is the resolved return type of the link, zero when the
// link did not resolve or yields nothing.
func (l Link) ReturnType() Type {
	if l.Sym == nil {
		return Type{}
	}
	return l.Sym.Result
}

package chain

import "github.com/sirkon/checkful/internal/syntax"

// Part is one constraint-chain segment split around its root: the
// first link whose return value is a constraint. It is a pure value
// computed once by Classify; no lazy state hides behind accessors.
//
// Prefixes ++ [Root] ++ Suffixes reconstructs the original link order
// minus leading bare anchor identifiers. When no link qualifies as a
// constraint Root is nil, Suffixes is empty and the part must be
// treated as unanalyzable downstream.
type Part struct {
	Prefixes []syntax.Link
	Root     *syntax.Link
	Suffixes []syntax.Link
}

// Analyzable reports whether a root was found.
func (p Part) Analyzable() bool {
	return p.Root != nil
}

// PrefixNames lists resolved member names of the prefix links, in order.
func (p Part) PrefixNames() []string {
	return linkNames(p.Prefixes)
}

// SuffixNames lists resolved member names of the suffix links, in order.
func (p Part) SuffixNames() []string {
	return linkNames(p.Suffixes)
}

// RootMethod returns the root's resolved method symbol, when the root
// is an invocation that resolved to one.
func (p Part) RootMethod() (*syntax.Symbol, bool) {
	if p.Root == nil || p.Root.Kind != syntax.LinkCall || p.Root.Sym == nil {
		return nil, false
	}
	return p.Root.Sym, true
}

// ExpectedOperand returns the first call argument of the root — the
// value the constraint compares against — when there is one.
func (p Part) ExpectedOperand() (syntax.Expr, bool) {
	if p.Root == nil || p.Root.Kind != syntax.LinkCall || len(p.Root.Args) == 0 {
		return nil, false
	}
	return p.Root.Args[0], true
}

func linkNames(links []syntax.Link) []string {
	if len(links) == 0 {
		return nil
	}
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.Name
	}
	return names
}

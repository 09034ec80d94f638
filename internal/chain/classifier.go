// Package chain splits fluent constraint chains into prefix, root and
// suffix links, and guards downstream analyses against chain shapes
// that cannot be reasoned about.
package chain

import "github.com/sirkon/checkful/internal/syntax"

// Oracle answers the two type-level questions classification needs.
// The production implementation sits on the host's semantic model;
// tests supply fakes simulating arbitrary type relationships.
type Oracle interface {
	// IsConstraintType reports whether t is the constraint library's
	// constraint value type or derives from it.
	IsConstraintType(t syntax.Type) bool

	// IsAnchorSymbol reports whether sym is a type symbol declared in
	// the constraint library package, i.e. a bare chain entry point.
	IsAnchorSymbol(sym *syntax.Symbol) bool
}

// Classifier produces Parts out of ordered chain links.
type Classifier struct {
	oracle Oracle
}

// NewClassifier is the [Classifier] constructor.
func NewClassifier(oracle Oracle) *Classifier {
	return &Classifier{oracle: oracle}
}

// Classify walks links in order and splits them around the first link
// whose resolved return type is a constraint. Leading bare identifier
// links (namespace-style anchors with no invocation) are skipped and
// do not appear in the result. When no link qualifies every remaining
// link lands in Prefixes and Root stays nil.
func (c *Classifier) Classify(links []syntax.Link) Part {
	rest := skipAnchors(links)

	var part Part
	for i, l := range rest {
		if part.Root == nil && c.oracle.IsConstraintType(l.ReturnType()) {
			root := rest[i]
			part.Root = &root
			continue
		}

		if part.Root == nil {
			part.Prefixes = append(part.Prefixes, l)
		} else {
			part.Suffixes = append(part.Suffixes, l)
		}
	}

	return part
}

// Unanalyzable is a conservative guard: chains built through arbitrary
// variables, conditionals or unknown helper calls cannot be reasoned
// about and must never produce a finding. A chain is unanalyzable when
// any link is neither an invocation, nor a member access, nor an
// identifier resolving to a type symbol of the constraint library.
func (c *Classifier) Unanalyzable(links []syntax.Link) bool {
	for _, l := range links {
		switch l.Kind {
		case syntax.LinkCall, syntax.LinkMember:
			// fine
		case syntax.LinkIdent:
			if l.Sym == nil || l.Sym.Kind != syntax.SymbolType || !c.oracle.IsAnchorSymbol(l.Sym) {
				return true
			}
		default:
			return true
		}
	}
	return false
}

func skipAnchors(links []syntax.Link) []syntax.Link {
	i := 0
	for i < len(links) && links[i].Kind == syntax.LinkIdent {
		i++
	}
	return links[i:]
}

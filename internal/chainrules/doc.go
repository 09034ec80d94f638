// Package chainrules defines the canonical rule codes (CHK-series)
// emitted by checkful. Each rule represents a distinct advisory
// finding produced over fluent assertion chains.
//
// Rule numbering scheme:
//
//	000–099  Constraint chain shape and comparability
//	100–149  Nil-dereference advisories and their suppression
package chainrules

// Package gosyntax bridges Go syntax and type information to the
// host-independent analysis core.
//
// It builds [syntax.Link] chains out of fluent call expressions,
// converts Go expressions and statements into the closed variant
// model of package syntax, and implements the chain, compare and
// nilguard oracles on top of go/types and the parsed AST.
//
// Core components:
//
//   - Link extraction
//     Flattens a chained constraint expression into ordered links
//     with resolved symbols and return types.
//
//   - Type oracle
//     Answers conversion, interface and method-shape queries through
//     go/types, keyed by the descriptors it hands out.
//
//   - Statement oracle
//     Statement parentage, block membership and soft-assert scope
//     detection for the nil-dereference suppression scan.
//
//   - Span index
//     An RB-tree of disjoint-or-nested statement spans resolving a
//     diagnostic position to its innermost statement.
package gosyntax

// Package syntax defines structural types used to describe fluent
// assertion chains and the statements surrounding them.
//
// The entities in this package provide a consistent vocabulary for
// representing assertion-related constructs—chain links, expression
// shapes, statements and blocks—independently of any concrete host
// syntax tree. Higher-level analyzers consume these definitions to
// classify constraint chains and to reason about non-nullness proofs
// without depending on a real compiler frontend.
package syntax

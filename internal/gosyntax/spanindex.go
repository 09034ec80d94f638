package gosyntax

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// NewSpanIndex indexes every statement of the file by its source span.
func NewSpanIndex(file *ast.File) *SpanIndex {
	idx := &SpanIndex{tree: rbtree.New[*stmtSpan]()}

	ast.Inspect(file, func(n ast.Node) bool {
		if s, ok := n.(ast.Stmt); ok {
			attachInto(idx.tree, &stmtSpan{start: s.Pos(), end: s.End(), stmt: s})
		}
		return true
	})

	return idx
}

// SpanIndex resolves a source position to the innermost statement
// covering it. It serves diagnostic positions reported by other
// analyzers, which carry no syntax tree handle of their own.
type SpanIndex struct {
	tree *rbtree.Tree[*stmtSpan]
}

// StmtAt returns the most specific (innermost) statement covering pos.
func (idx *SpanIndex) StmtAt(pos token.Pos) ast.Stmt {
	probe := &stmtSpan{start: pos, end: pos}
	res := idx.tree.Search(probe)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// stmtSpan stores a [start,end] span for a statement and, if needed,
// a nested RB-tree for child spans fully contained in this span.
type stmtSpan struct {
	start token.Pos
	end   token.Pos

	stmt     ast.Stmt
	children *rbtree.Tree[*stmtSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// Statements of one file never overlap partially: any two overlapping
// spans are in a strict containment relationship, so "equal" (0) means
// either superspan or subspan. The RB-tree hands the overlapping node
// back via InsertReturn and the containment fix-up happens here.
func (n *stmtSpan) Cmp(other *stmtSpan) int {
	if n.end < other.start { // strictly before
		return -1
	}
	if n.start > other.end { // strictly after
		return 1
	}
	return 0 // overlapping (containment or equal boundaries)
}

func contains(a, b *stmtSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t, using the following containment rules:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, mutate r in-place to become s
//     (so the pointer already present in the tree now represents s), and then re-attach
//     the old r as a child of the new s. This avoids needing a "Replace" operation.
//   - If r contains s, recursively attach s into r.children.
func attachInto(t *rbtree.Tree[*stmtSpan], s *stmtSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	if contains(s, r) {
		// s is a superspan, overwrite r in-place.
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*stmtSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		// New span is a subspan of the existing node r — descend.
		if r.children == nil {
			r.children = rbtree.New[*stmtSpan]()
		}

		n := *s
		*s = *r

		attachInto(s.children, &n)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *stmtSpan, pos token.Pos) ast.Stmt {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.stmt
	}
	probe := &stmtSpan{start: pos, end: pos}
	child := n.children.Search(probe)
	if child == nil {
		return n.stmt
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}
	return n.stmt
}

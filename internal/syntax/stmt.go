package syntax

// Stmt is the base interface of the closed statement variant set.
// Only shapes the non-nullness scan reacts to are distinguished;
// everything else arrives as StmtOther and is skipped over.
type Stmt interface {
	isStmt()
}

// StmtAssign is an assignment to an existing reference.
type StmtAssign struct {
	LHS Expr
	RHS Expr

	Span Span
}

// StmtVarDecl declares a fresh local variable, optionally with an
// initializer. A declaration shadows any earlier proof for the name.
type StmtVarDecl struct {
	Name string
	Init Expr // nil when declared without a value

	Span Span
}

// StmtExpr is a bare expression statement. Assertion calls live here.
type StmtExpr struct {
	X Expr

	Span Span
}

// StmtOther is any statement shape the scan has no opinion about.
type StmtOther struct {
	Span Span
}

func (*StmtAssign) isStmt()  {}
func (*StmtVarDecl) isStmt() {}
func (*StmtExpr) isStmt()    {}
func (*StmtOther) isStmt()   {}

// Block is an ordered statement list sharing one lexical scope.
type Block struct {
	Stmts []Stmt
}

// Index returns the position of s within the block, -1 when s does
// not belong to it. Identity comparison: statements are built once by
// the adapter and shared by pointer.
func (b *Block) Index(s Stmt) int {
	for i, st := range b.Stmts {
		if st == s {
			return i
		}
	}
	return -1
}

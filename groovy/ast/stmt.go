package ast

type stmtBase struct {
	Spanned
	labels []string
}

func (s *stmtBase) Labels() []string { return s.labels }

func (s *stmtBase) AddLabel(label string) { s.labels = append(s.labels, label) }

func (*stmtBase) stmtNode() {}

type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

func NewBlock(stmts ...Stmt) *BlockStmt {
	return &BlockStmt{Statements: stmts}
}

func (b *BlockStmt) IsEmpty() bool { return len(b.Statements) == 0 }

type ExprStmt struct {
	stmtBase
	Expr Expr
}

// DeclStmt declares one or more local variables.
type DeclStmt struct {
	stmtBase
	Decl *DeclarationExpr
}

type EmptyStmt struct {
	stmtBase
}

type IfStmt struct {
	stmtBase
	Cond *BooleanExpr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	stmtBase
	Cond *BooleanExpr
	Body Stmt
}

// ForStmt is the classic three-part loop. Header holds exactly three
// expressions: init, condition and update, each possibly EmptyExpr.
type ForStmt struct {
	stmtBase
	Header *ClosureListExpr
	Body   Stmt
}

func (f *ForStmt) Init() Expr { return f.Header.Exprs[0] }
func (f *ForStmt) Cond() Expr { return f.Header.Exprs[1] }
func (f *ForStmt) Update() Expr { return f.Header.Exprs[2] }

type ForEachStmt struct {
	stmtBase
	Variable   *Parameter
	Collection Expr
	Body       Stmt
}

// SwitchStmt holds cases in source order. Cases that fall through to the
// next label have an EmptyStmt body.
type SwitchStmt struct {
	stmtBase
	Subject Expr
	Cases   []*CaseStmt
	Default Stmt
}

type CaseStmt struct {
	stmtBase
	Expr Expr
	Body Stmt
}

type TryStmt struct {
	stmtBase
	Body    Stmt
	Catches []*CatchStmt
	Finally Stmt
}

// CatchStmt catches one exception type. A multi-catch produces one
// CatchStmt per type, all sharing the same body and variable name.
type CatchStmt struct {
	stmtBase
	Param *Parameter
	Body  Stmt
}

type ThrowStmt struct {
	stmtBase
	Expr Expr
}

type ReturnStmt struct {
	stmtBase
	Expr Expr
}

type BreakStmt struct {
	stmtBase
	Label string
}

type ContinueStmt struct {
	stmtBase
	Label string
}

type AssertStmt struct {
	stmtBase
	Cond    *BooleanExpr
	Message Expr
}

type SynchronizedStmt struct {
	stmtBase
	Lock Expr
	Body Stmt
}

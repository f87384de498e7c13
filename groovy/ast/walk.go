package ast

// Children returns the direct child nodes of n in source order. Classes
// reachable from expressions, such as anonymous bodies, are listed by
// the Module only.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}
	addExprs := func(exprs []Expr) {
		for _, e := range exprs {
			add(e)
		}
	}
	addStmts := func(stmts []Stmt) {
		for _, s := range stmts {
			add(s)
		}
	}
	addAnnotations := func(as []*Annotation) {
		for _, a := range as {
			add(a)
		}
	}
	addParams := func(ps []*Parameter) {
		for _, p := range ps {
			add(p)
		}
	}

	switch n := n.(type) {
	case *Module:
		if n.Package != nil {
			add(n.Package)
		}
		for _, imp := range n.Imports {
			add(imp)
		}
		for _, c := range n.Classes {
			add(c)
		}
		for _, m := range n.Methods {
			add(m)
		}
		add(n.Statements)
	case *Package:
		addAnnotations(n.Annotations)
	case *Import:
		addAnnotations(n.Annotations)
	case *Class:
		addAnnotations(n.Annotations)
		for _, f := range n.Fields {
			add(f)
		}
		for _, p := range n.Properties {
			add(p)
		}
		for _, m := range n.Constructors {
			add(m)
		}
		for _, m := range n.Methods {
			add(m)
		}
		for _, b := range n.StaticInitializers {
			add(b)
		}
		for _, b := range n.ObjectInitializers {
			add(b)
		}
	case *Field:
		addAnnotations(n.Annotations)
		add(n.InitialValue)
	case *Property:
	case *Method:
		addAnnotations(n.Annotations)
		addParams(n.Parameters)
		add(n.Code)
	case *Parameter:
		addAnnotations(n.Annotations)
		add(n.DefaultValue)
	case *Annotation:
		for _, m := range n.Members {
			add(m.Value)
		}

	case *BlockStmt:
		addStmts(n.Statements)
	case *ExprStmt:
		add(n.Expr)
	case *DeclStmt:
		add(n.Decl)
	case *IfStmt:
		add(n.Cond, n.Then, n.Else)
	case *WhileStmt:
		add(n.Cond, n.Body)
	case *ForStmt:
		add(n.Header, n.Body)
	case *ForEachStmt:
		add(n.Variable, n.Collection, n.Body)
	case *SwitchStmt:
		add(n.Subject)
		for _, c := range n.Cases {
			add(c)
		}
		add(n.Default)
	case *CaseStmt:
		add(n.Expr, n.Body)
	case *TryStmt:
		add(n.Body)
		for _, c := range n.Catches {
			add(c)
		}
		add(n.Finally)
	case *CatchStmt:
		add(n.Param, n.Body)
	case *ThrowStmt:
		add(n.Expr)
	case *ReturnStmt:
		add(n.Expr)
	case *AssertStmt:
		add(n.Cond, n.Message)
	case *SynchronizedStmt:
		add(n.Lock, n.Body)

	case *BinaryExpr:
		add(n.Left, n.Right)
	case *UnaryExpr:
		add(n.Operand)
	case *PrefixExpr:
		add(n.Operand)
	case *PostfixExpr:
		add(n.Operand)
	case *BooleanExpr:
		add(n.Expr)
	case *TernaryExpr:
		add(n.Cond, n.Then, n.Else)
	case *ElvisExpr:
		add(n.Value, n.Default)
	case *PropertyExpr:
		add(n.Object, n.Property)
	case *MethodCallExpr:
		add(n.Object, n.Method, n.Args)
	case *ConstructorCallExpr:
		add(n.Args)
	case *IndexExpr:
		add(n.Object, n.Index)
	case *CastExpr:
		add(n.Expr)
	case *InstanceOfExpr:
		add(n.Expr)
	case *ListExpr:
		addExprs(n.Elements)
	case *MapExpr:
		addExprs(n.Entries)
	case *MapEntryExpr:
		add(n.Key, n.Value)
	case *RangeExpr:
		add(n.From, n.To)
	case *SpreadExpr:
		add(n.Expr)
	case *SpreadMapExpr:
		add(n.Expr)
	case *GStringExpr:
		for i, s := range n.Strings {
			add(s)
			if i < len(n.Values) {
				add(n.Values[i])
			}
		}
	case *ClosureExpr:
		addParams(n.Parameters)
		add(n.Code)
	case *MethodPointerExpr:
		add(n.Object, n.Method)
	case *TupleExpr:
		addExprs(n.Elements)
	case *ArgumentListExpr:
		addExprs(n.Args)
	case *DeclarationExpr:
		add(n.Left, n.Right)
	case *ClosureListExpr:
		addExprs(n.Exprs)
	case *ArrayExpr:
		addExprs(n.Sizes)
	case *AnnotationConstantExpr:
		add(n.Annotation)
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first order. If f
// returns false the children of the node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || isNilNode(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// isNilNode catches typed nil pointers stored in interfaces.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *BlockStmt:
		return v == nil
	case *BooleanExpr:
		return v == nil
	case *ArgumentListExpr:
		return v == nil
	case *ClosureListExpr:
		return v == nil
	case *Parameter:
		return v == nil
	case *DeclarationExpr:
		return v == nil
	case *Package:
		return v == nil
	case *Class:
		return v == nil
	}
	return false
}

package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

func (c *converter) statementList(s scope, n *cst.Node) *ast.BlockStmt {
	return c.block(s, n.Children, n)
}

// block converts nodes into a block spanning spanNode.
func (c *converter) block(s scope, nodes []*cst.Node, spanNode *cst.Node) *ast.BlockStmt {
	b := at(&ast.BlockStmt{}, spanNode)
	for _, n := range nodes {
		b.Statements = append(b.Statements, c.statement(s, n))
	}
	return b
}

func (c *converter) statement(s scope, n *cst.Node) ast.Stmt {
	first := s.ctorFirst
	s = s.plain()

	switch n.Kind {
	case cst.KindSlist:
		return c.statementList(s, n)
	case cst.KindLabeledStat:
		return c.labeledStatement(s, n)
	case cst.KindAssert:
		return c.assertStatement(s, n)
	case cst.KindBreak:
		return at(&ast.BreakStmt{Label: c.optionalLabel(n)}, n)
	case cst.KindContinue:
		return at(&ast.ContinueStmt{Label: c.optionalLabel(n)}, n)
	case cst.KindIf:
		return c.ifStatement(s, n)
	case cst.KindFor:
		return c.forStatement(s, n)
	case cst.KindReturn:
		return c.returnStatement(s, n)
	case cst.KindSwitch:
		return c.switchStatement(s, n)
	case cst.KindSynchronized:
		return c.synchronizedStatement(s, n)
	case cst.KindThrow:
		ch := childrenOf(n)
		stmt := at(&ast.ThrowStmt{Expr: c.expression(s, ch.expr())}, n)
		ch.end()
		return stmt
	case cst.KindTry:
		return c.tryStatement(s, n)
	case cst.KindWhile:
		return c.whileStatement(s, n)
	case cst.KindVariableDef:
		return at(&ast.DeclStmt{Decl: c.declaration(s, n)}, n)
	case cst.KindEmptyStat, cst.KindSemi:
		return at(&ast.EmptyStmt{}, n)
	}

	s.ctorFirst = first
	return at(&ast.ExprStmt{Expr: c.expression(s, n)}, n)
}

// body converts a loop body, where a lone semicolon means no body.
func (c *converter) body(s scope, n *cst.Node) ast.Stmt {
	if n == nil {
		return &ast.EmptyStmt{}
	}
	if n.Kind == cst.KindSemi {
		return at(&ast.EmptyStmt{}, n)
	}
	return c.statement(s, n)
}

func (c *converter) labeledStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	label := c.identifier(ch.must(cst.KindIdent))
	target := ch.expr()
	ch.end()
	stmt := c.statement(s, target)
	stmt.AddLabel(label)
	return stmt
}

func (c *converter) optionalLabel(n *cst.Node) string {
	ch := childrenOf(n)
	label := ""
	if l := ch.take(cst.KindIdent); l != nil {
		label = l.Text
	}
	ch.end()
	return label
}

func (c *converter) booleanExpression(s scope, n *cst.Node) *ast.BooleanExpr {
	return at(&ast.BooleanExpr{Expr: c.expression(s, n)}, n)
}

func (c *converter) assertStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.AssertStmt{Cond: c.booleanExpression(s, ch.expr())}, n)
	if msg := ch.next(); msg != nil {
		stmt.Message = c.expression(s, msg)
	} else {
		stmt.Message = ast.Null()
	}
	ch.end()
	return stmt
}

func (c *converter) ifStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.IfStmt{Cond: c.booleanExpression(s, ch.expr())}, n)
	stmt.Then = c.statement(s, ch.expr())
	if elseNode := ch.next(); elseNode != nil {
		stmt.Else = c.statement(s, elseNode)
	} else {
		stmt.Else = &ast.EmptyStmt{}
	}
	ch.end()
	return stmt
}

func (c *converter) whileStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.WhileStmt{Cond: c.booleanExpression(s, ch.expr())}, n)
	stmt.Body = c.body(s, ch.next())
	ch.end()
	return stmt
}

func (c *converter) forStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	head := ch.must(cst.KindClosureList, cst.KindForInIterable)
	bodyNode := ch.next()
	ch.end()

	if head.Kind == cst.KindClosureList {
		header := s
		header.forHeader = true
		list := c.expression(header, head).(*ast.ClosureListExpr)
		if len(list.Exprs) != 3 {
			abort(ErrSemantic, head, "3 expressions are required for the classic for loop, you gave %d", len(list.Exprs))
		}
		return at(&ast.ForStmt{Header: list, Body: c.body(s, bodyNode)}, n)
	}

	in := childrenOf(head)
	varNode := in.must(cst.KindIdent, cst.KindVariableDef)
	collection := in.expr()
	in.end()

	param := at(&ast.Parameter{Type: ast.DynamicType()}, varNode)
	if varNode.Kind == cst.KindVariableDef {
		v := childrenOf(varNode)
		if m := v.take(cst.KindModifiers); m != nil {
			mods := c.modifiers(s, m, 0)
			if mods.mods&^ast.ModFinal != 0 {
				abort(ErrModifier, m, "Only the 'final' modifier is allowed in front of the for loop variable.")
			}
			param.Modifiers = mods.mods
			param.Annotations = mods.annotations
		}
		if t := v.take(cst.KindType); t != nil {
			param.Type = c.typeOf(t)
		}
		varNode = v.must(cst.KindIdent)
		v.end()
	}
	param.Name = varNode.Text

	return at(&ast.ForEachStmt{
		Variable:   param,
		Collection: c.expression(s, collection),
		Body:       c.body(s, bodyNode),
	}, n)
}

func (c *converter) returnStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.ReturnStmt{}, n)
	if value := ch.next(); value != nil {
		stmt.Expr = c.expression(s, value)
	} else {
		stmt.Expr = &ast.EmptyExpr{}
	}
	ch.end()
	return stmt
}

// switchStatement converts the case groups of a switch. Within a group
// every label but the last falls through with an empty body; a group
// holding default gives its body to the default. Only one default may
// appear, whether or not it has a body.
func (c *converter) switchStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.SwitchStmt{Subject: c.expression(s, ch.expr())}, n)
	seenDefault := false

	for _, group := range ch.rest() {
		expectKind(group, n, cst.KindCaseGroup)

		var labels []*cst.Node
		var bodyNode *cst.Node
		hasDefault := false
		for i, child := range group.Children {
			switch child.Kind {
			case cst.KindCase:
				labels = append(labels, child)
			case cst.KindDefault:
				if hasDefault || seenDefault {
					abort(ErrSemantic, n, "The default case is already defined.")
				}
				hasDefault = true
			default:
				if i != len(group.Children)-1 {
					unknownNode(group.Children[i+1])
				}
				bodyNode = child
			}
		}
		if len(labels) == 0 && !hasDefault {
			abort(ErrStructure, group, "A case group needs at least one case or default label.")
		}

		var body ast.Stmt = &ast.EmptyStmt{}
		if bodyNode != nil {
			body = c.statement(s, bodyNode)
		}
		if hasDefault {
			seenDefault = true
			stmt.Default = body
		}

		for i, label := range labels {
			lc := childrenOf(label)
			cs := at(&ast.CaseStmt{Expr: c.expression(s, lc.expr())}, label)
			lc.end()
			if i == len(labels)-1 && !hasDefault {
				cs.Body = body
			} else {
				cs.Body = &ast.EmptyStmt{}
			}
			stmt.Cases = append(stmt.Cases, cs)
		}
	}

	if stmt.Default == nil {
		stmt.Default = &ast.EmptyStmt{}
	}
	return stmt
}

func (c *converter) synchronizedStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.SynchronizedStmt{Lock: c.expression(s, ch.expr())}, n)
	stmt.Body = c.statement(s, ch.expr())
	ch.end()
	return stmt
}

func (c *converter) tryStatement(s scope, n *cst.Node) ast.Stmt {
	ch := childrenOf(n)
	stmt := at(&ast.TryStmt{Body: c.statement(s, ch.must(cst.KindSlist))}, n)
	for ch.is(cst.KindCatch) {
		stmt.Catches = append(stmt.Catches, c.catchStatements(s, ch.next())...)
	}
	if f := ch.take(cst.KindFinally); f != nil {
		stmt.Finally = c.statementList(s, f)
	}
	ch.end()

	if stmt.Finally == nil {
		if len(stmt.Catches) == 0 {
			abort(ErrSemantic, n, "A try statement must have at least one catch or finally block.")
		}
		stmt.Finally = &ast.EmptyStmt{}
	}
	return stmt
}

// catchStatements converts one catch clause. A multi-catch yields one
// statement per exception type, sharing the body.
func (c *converter) catchStatements(s scope, n *cst.Node) []*ast.CatchStmt {
	ch := childrenOf(n)
	multi := ch.must(cst.KindMulticatch)
	body := c.statement(s, ch.must(cst.KindSlist))
	ch.end()

	mc := childrenOf(multi)
	first := mc.must(cst.KindIdent, cst.KindMulticatchTypes)
	if first.Kind == cst.KindIdent {
		mc.end()
		param := at(&ast.Parameter{Name: first.Text, Type: ast.DynamicType()}, first)
		return []*ast.CatchStmt{at(&ast.CatchStmt{Param: param, Body: body}, n)}
	}

	varNode := mc.must(cst.KindIdent)
	mc.end()
	if len(first.Children) == 0 {
		abort(ErrStructure, first, "A catch clause needs at least one exception type.")
	}

	var catches []*ast.CatchStmt
	for _, t := range first.Children {
		param := at(&ast.Parameter{Name: varNode.Text, Type: c.typeRef(t)}, varNode)
		catches = append(catches, at(&ast.CatchStmt{Param: param, Body: body}, n))
	}
	return catches
}

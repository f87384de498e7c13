package transform

import (
	"fmt"
	"strings"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

var binaryOperators = map[cst.Kind]ast.Operator{
	cst.KindAssign:         ast.OpAssign,
	cst.KindPlusAssign:     ast.OpPlusAssign,
	cst.KindMinusAssign:    ast.OpMinusAssign,
	cst.KindStarAssign:     ast.OpMultiplyAssign,
	cst.KindDivAssign:      ast.OpDivideAssign,
	cst.KindModAssign:      ast.OpModAssign,
	cst.KindStarStarAssign: ast.OpPowerAssign,
	cst.KindSlAssign:       ast.OpLeftShiftAssign,
	cst.KindSrAssign:       ast.OpRightShiftAssign,
	cst.KindBsrAssign:      ast.OpUnsignedRightShiftAssign,
	cst.KindBandAssign:     ast.OpBitAndAssign,
	cst.KindBorAssign:      ast.OpBitOrAssign,
	cst.KindBxorAssign:     ast.OpBitXorAssign,
	cst.KindEqual:          ast.OpEqual,
	cst.KindNotEqual:       ast.OpNotEqual,
	cst.KindIdentical:      ast.OpIdentical,
	cst.KindNotIdentical:   ast.OpNotIdentical,
	cst.KindCompareTo:      ast.OpCompareTo,
	cst.KindLt:             ast.OpLess,
	cst.KindLe:             ast.OpLessEqual,
	cst.KindGt:             ast.OpGreater,
	cst.KindGe:             ast.OpGreaterEqual,
	cst.KindLand:           ast.OpAnd,
	cst.KindLor:            ast.OpOr,
	cst.KindBand:           ast.OpBitAnd,
	cst.KindBor:            ast.OpBitOr,
	cst.KindBxor:           ast.OpBitXor,
	cst.KindPlus:           ast.OpPlus,
	cst.KindMinus:          ast.OpMinus,
	cst.KindMul:            ast.OpMultiply,
	cst.KindDiv:            ast.OpDivide,
	cst.KindMod:            ast.OpMod,
	cst.KindStarStar:       ast.OpPower,
	cst.KindSl:             ast.OpLeftShift,
	cst.KindSr:             ast.OpRightShift,
	cst.KindBsr:            ast.OpUnsignedRightShift,
	cst.KindRegexFind:      ast.OpFindRegex,
	cst.KindRegexMatch:     ast.OpMatchRegex,
	cst.KindIn:             ast.OpIn,
}

var numberKinds = []cst.Kind{
	cst.KindNumInt, cst.KindNumLong, cst.KindNumBigInt,
	cst.KindNumFloat, cst.KindNumDouble, cst.KindNumBigDecimal,
}

// statementKinds cannot stand for a value, so a block holding one is
// kept as a closure body.
var statementKinds = []cst.Kind{
	cst.KindSlist, cst.KindLabeledStat, cst.KindAssert, cst.KindBreak, cst.KindContinue,
	cst.KindIf, cst.KindFor, cst.KindReturn, cst.KindSwitch, cst.KindSynchronized,
	cst.KindThrow, cst.KindTry, cst.KindWhile, cst.KindVariableDef,
	cst.KindEmptyStat, cst.KindSemi,
}

func (c *converter) expression(s scope, n *cst.Node) ast.Expr {
	first, header := s.ctorFirst, s.forHeader
	s = s.plain()

	if op, ok := binaryOperators[n.Kind]; ok {
		return c.binaryExpression(s, n, op)
	}

	switch n.Kind {
	case cst.KindExpr:
		ch := childrenOf(n)
		inner := ch.expr()
		ch.end()
		s.ctorFirst = first
		return c.expression(s, inner)
	case cst.KindElist:
		return c.expressionList(s, n)
	case cst.KindSlist:
		return c.blockExpression(s, n)
	case cst.KindClosableBlock:
		return c.closure(s, n)
	case cst.KindCtorCall, cst.KindSuperCtorCall:
		if !first || !s.constructor {
			abort(ErrSemantic, n, "Constructor call must be the first statement in a constructor.")
		}
		return c.specialConstructorCall(s, n)
	case cst.KindMethodCall:
		return c.methodCall(s, n)
	case cst.KindNew:
		return c.constructorCall(s, n)
	case cst.KindQuestion:
		ch := childrenOf(n)
		t := at(&ast.TernaryExpr{Cond: c.booleanExpression(s, ch.expr())}, n)
		t.Then = c.expression(s, ch.expr())
		t.Else = c.expression(s, ch.expr())
		ch.end()
		return t
	case cst.KindElvis:
		ch := childrenOf(n)
		e := at(&ast.ElvisExpr{Value: c.expression(s, ch.expr())}, n)
		e.Default = c.expression(s, ch.expr())
		ch.end()
		return e
	case cst.KindDot, cst.KindOptionalDot, cst.KindSpreadDot:
		return c.dotExpression(s, n)
	case cst.KindIdent:
		return at(ast.Var(n.Text), n)
	case cst.KindThis:
		return at(ast.This(), n)
	case cst.KindSuper:
		return at(ast.Super(), n)
	case cst.KindListConstructor:
		return c.listExpression(s, n)
	case cst.KindMapConstructor:
		return c.mapExpression(s, n)
	case cst.KindLabeledArg:
		return c.mapEntry(s, n)
	case cst.KindSpreadArg:
		return at(&ast.SpreadExpr{Expr: c.only(s, n)}, n)
	case cst.KindSpreadMapArg:
		value := c.only(s, n)
		return at(&ast.MapEntryExpr{Key: at(&ast.SpreadMapExpr{Expr: value}, n), Value: value}, n)
	case cst.KindMemberPointer:
		ch := childrenOf(n)
		p := at(&ast.MethodPointerExpr{Object: c.expression(s, ch.expr())}, n)
		p.Method = c.name(s, ch.expr())
		ch.end()
		return p
	case cst.KindIndexOp:
		ch := childrenOf(n)
		ix := at(&ast.IndexExpr{Object: c.expression(s, ch.expr())}, n)
		ix.Index = c.expression(s, ch.expr())
		ch.end()
		return ix
	case cst.KindInstanceof:
		ch := childrenOf(n)
		e := at(&ast.InstanceOfExpr{Expr: c.expression(s, ch.expr())}, n)
		e.Type = c.typeRef(ch.expr())
		ch.end()
		return e
	case cst.KindAs:
		ch := childrenOf(n)
		e := at(&ast.CastExpr{Expr: c.expression(s, ch.expr()), Coerce: true}, n)
		e.Type = c.typeRef(ch.expr())
		ch.end()
		return e
	case cst.KindTypeCast:
		ch := childrenOf(n)
		e := at(&ast.CastExpr{Type: c.typeRef(ch.expr())}, n)
		e.Expr = c.expression(s, ch.expr())
		ch.end()
		return e
	case cst.KindTrue:
		return at(ast.Constant(true), n)
	case cst.KindFalse:
		return at(ast.Constant(false), n)
	case cst.KindNull:
		return at(ast.Null(), n)
	case cst.KindStringLiteral:
		return at(ast.StringConst(n.Text), n)
	case cst.KindStringConstructor:
		return c.gstring(s, n)
	case cst.KindNumInt, cst.KindNumLong, cst.KindNumBigInt,
		cst.KindNumFloat, cst.KindNumDouble, cst.KindNumBigDecimal:
		return c.number(n, n, false)
	case cst.KindLnot:
		return at(&ast.UnaryExpr{Op: ast.OpNot, Operand: c.only(s, n)}, n)
	case cst.KindBnot:
		return at(&ast.UnaryExpr{Op: ast.OpBitNot, Operand: c.only(s, n)}, n)
	case cst.KindUnaryMinus, cst.KindUnaryPlus:
		return c.signed(s, n)
	case cst.KindInc:
		return at(&ast.PrefixExpr{Op: ast.OpIncrement, Operand: c.only(s, n)}, n)
	case cst.KindDec:
		return at(&ast.PrefixExpr{Op: ast.OpDecrement, Operand: c.only(s, n)}, n)
	case cst.KindPostInc:
		return at(&ast.PostfixExpr{Op: ast.OpIncrement, Operand: c.only(s, n)}, n)
	case cst.KindPostDec:
		return at(&ast.PostfixExpr{Op: ast.OpDecrement, Operand: c.only(s, n)}, n)
	case cst.KindRangeInclusive, cst.KindRangeExclusive:
		ch := childrenOf(n)
		r := at(&ast.RangeExpr{From: c.expression(s, ch.expr()), Inclusive: n.Kind == cst.KindRangeInclusive}, n)
		r.To = c.expression(s, ch.expr())
		ch.end()
		return r
	case cst.KindDynamicMember:
		return c.only(s, n)
	case cst.KindAnnotation:
		return at(&ast.AnnotationConstantExpr{Annotation: c.annotation(s, n)}, n)
	case cst.KindAnnotationArrayInit:
		return c.annotationValue(s, n)
	case cst.KindClosureList:
		if !header {
			abort(ErrSemantic, n, "Expression list of the form (a; b; c) is not supported in this context.")
		}
		return c.closureList(s, n)
	case cst.KindTupleLHS:
		return c.tuple(s, n)
	case cst.KindVariableDef:
		return c.declaration(s, n)
	}

	unknownNode(n)
	return nil
}

// only converts the single child of n.
func (c *converter) only(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	e := c.expression(s, ch.expr())
	ch.end()
	return e
}

// name converts a node used as a member name. A plain identifier is a
// string constant rather than a variable reference.
func (c *converter) name(s scope, n *cst.Node) ast.Expr {
	e := c.expression(s, n)
	if v, ok := e.(*ast.VariableExpr); ok {
		return at(ast.StringConst(v.Name), n)
	}
	return e
}

func (c *converter) binaryExpression(s scope, n *cst.Node, op ast.Operator) ast.Expr {
	ch := childrenOf(n)
	left := c.expression(s, ch.expr())
	if ch.done() {
		return left
	}
	right := c.expression(s, ch.expr())
	ch.end()

	if op.IsAssignment() {
		checkAssignmentTarget(n, left)
	}
	return at(&ast.BinaryExpr{Left: left, Op: op, Right: right}, n)
}

func checkAssignmentTarget(n *cst.Node, left ast.Expr) {
	switch l := left.(type) {
	case *ast.VariableExpr, *ast.PropertyExpr, *ast.DeclarationExpr, *ast.TupleExpr, *ast.IndexExpr:
		return
	case *ast.BinaryExpr:
		if l.Op.IsAssignment() {
			return
		}
		abort(ErrSemantic, n, "%s is a binary expression, but it should be a variable expression", l.Text())
	case *ast.ConstantExpr:
		abort(ErrSemantic, n, "[%s] is a constant expression, but it should be a variable expression", l.Text())
	case *ast.GStringExpr:
		abort(ErrSemantic, n, "\"%s\" is a GString expression, but it should be a variable expression", l.Text())
	case *ast.MethodCallExpr:
		abort(ErrSemantic, n, "\"%s\" is a method call expression, but it should be a variable expression", l.Text())
	case *ast.MapExpr:
		abort(ErrSemantic, n, "'%s' is a map expression, but it should be a variable expression", l.Text())
	}
	kind := strings.TrimPrefix(fmt.Sprintf("%T", left), "*ast.")
	abort(ErrSemantic, n, "%s, with its value '%s', is a bad expression as the left hand side of an assignment operator", kind, left.Text())
}

// expressionList converts an Elist. One element stands for itself; any
// other count becomes a wrapped list.
func (c *converter) expressionList(s scope, n *cst.Node) ast.Expr {
	if len(n.Children) == 1 {
		return c.expression(s, n.Children[0])
	}
	list := at(&ast.ListExpr{Wrapped: true}, n)
	for _, child := range n.Children {
		list.Elements = append(list.Elements, c.expression(s, child))
	}
	return list
}

// blockExpression converts a block in value position. An empty block is
// null and a block holding a single expression is that expression;
// anything else runs as a closure called in place.
func (c *converter) blockExpression(s scope, n *cst.Node) ast.Expr {
	switch {
	case len(n.Children) == 0:
		return at(ast.Null(), n)
	case len(n.Children) == 1 && !n.Children[0].Is(statementKinds...):
		return c.expression(s, n.Children[0])
	}
	closure := at(&ast.ClosureExpr{Code: c.statementList(s, n)}, n)
	return at(&ast.MethodCallExpr{
		Object: closure,
		Method: ast.StringConst("call"),
		Args:   &ast.ArgumentListExpr{},
	}, n)
}

// closure converts { params -> body }. Without a parameter list the
// closure takes the implicit parameter; an explicit empty list does not.
func (c *converter) closure(s scope, n *cst.Node) *ast.ClosureExpr {
	ch := childrenOf(n)
	cl := at(&ast.ClosureExpr{}, n)
	if params := ch.take(cst.KindParameters); params != nil {
		cl.Parameters = c.parameters(s, params)
	} else {
		ch.take(cst.KindImplicitParameters)
		cl.ImplicitParams = true
	}
	cl.Code = c.block(s, ch.rest(), n)
	return cl
}

// closureList converts the header of a classic for loop. Empty slots
// become empty expressions.
func (c *converter) closureList(s scope, n *cst.Node) *ast.ClosureListExpr {
	list := at(&ast.ClosureListExpr{}, n)
	for _, child := range n.Children {
		if child.Kind == cst.KindEmptyStat {
			list.Exprs = append(list.Exprs, at(&ast.EmptyExpr{}, child))
			continue
		}
		list.Exprs = append(list.Exprs, c.expression(s, child))
	}
	return list
}

func (c *converter) listExpression(s scope, n *cst.Node) ast.Expr {
	list := at(&ast.ListExpr{Elements: []ast.Expr{}}, n)
	ch := childrenOf(n)
	if elist := ch.take(cst.KindElist); elist != nil {
		for _, child := range elist.Children {
			if child.Is(cst.KindLabeledArg, cst.KindSpreadMapArg) {
				abort(ErrSemantic, child, "No map entry allowed at this place")
			}
			list.Elements = append(list.Elements, c.expression(s, child))
		}
	}
	ch.end()
	return list
}

func (c *converter) mapExpression(s scope, n *cst.Node) ast.Expr {
	m := at(&ast.MapExpr{}, n)
	ch := childrenOf(n)
	if elist := ch.take(cst.KindElist); elist != nil {
		for _, child := range elist.Children {
			expectKind(child, elist, cst.KindLabeledArg, cst.KindSpreadMapArg)
			m.Entries = append(m.Entries, c.expression(s, child))
		}
	}
	ch.end()
	return m
}

// mapEntry converts key: value. A bare identifier key is the string it
// spells; a parenthesized key is evaluated.
func (c *converter) mapEntry(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	keyNode := ch.expr()
	var key ast.Expr
	if keyNode.Kind == cst.KindIdent {
		key = at(ast.StringConst(keyNode.Text), keyNode)
	} else {
		key = c.expression(s, keyNode)
	}
	value := c.expression(s, ch.expr())
	ch.end()
	return at(&ast.MapEntryExpr{Key: key, Value: value}, n)
}

// signed converts unary minus and plus. Applied to a number literal the
// sign is folded into the literal text before parsing.
func (c *converter) signed(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	operand := ch.expr()
	ch.end()
	if operand.Is(numberKinds...) {
		return c.number(operand, n, n.Kind == cst.KindUnaryMinus)
	}
	op := ast.OpNegate
	if n.Kind == cst.KindUnaryPlus {
		op = ast.OpPositive
	}
	return at(&ast.UnaryExpr{Op: op, Operand: c.expression(s, operand)}, n)
}

// tuple converts the left side of a multiple assignment.
func (c *converter) tuple(s scope, n *cst.Node) *ast.TupleExpr {
	t := at(&ast.TupleExpr{}, n)
	for _, child := range n.Children {
		expectKind(child, n, cst.KindVariableDef, cst.KindIdent)
		if child.Kind == cst.KindIdent {
			t.Elements = append(t.Elements, at(ast.Var(child.Text), child))
			continue
		}
		ch := childrenOf(child)
		v := ast.Var("")
		if typ := ch.take(cst.KindType); typ != nil {
			v.Type = c.typeOf(typ)
		}
		v.Name = c.identifier(ch.must(cst.KindIdent))
		ch.end()
		t.Elements = append(t.Elements, at(v, child))
	}
	return t
}

// declaration converts a local variable definition, either a single
// variable with an optional initializer or a multiple assignment.
func (c *converter) declaration(s scope, n *cst.Node) *ast.DeclarationExpr {
	ch := childrenOf(n)
	decl := at(&ast.DeclarationExpr{}, n)
	if m := ch.take(cst.KindModifiers); m != nil {
		mods := c.modifiers(s, m, 0)
		decl.Modifiers = mods.mods
		decl.Annotations = mods.annotations
	}
	typ := ast.DynamicType()
	if t := ch.take(cst.KindType); t != nil {
		typ = c.typeOf(t)
	}

	if ch.is(cst.KindAssign) && ch.peek().Child(0).Is(cst.KindTupleLHS) {
		assign := childrenOf(ch.next())
		decl.Left = c.tuple(s, assign.next())
		if rhs := assign.next(); rhs != nil {
			decl.Right = c.expression(s, rhs)
		}
		assign.end()
	} else {
		ident := ch.must(cst.KindIdent)
		v := at(ast.Var(ident.Text), ident)
		v.Type = typ
		v.Modifiers = decl.Modifiers
		decl.Left = v
		if value := ch.take(cst.KindAssign); value != nil {
			vc := childrenOf(value)
			decl.Right = c.expression(s, vc.expr())
			vc.end()
		}
	}
	ch.end()

	if decl.Right == nil {
		decl.Right = &ast.EmptyExpr{}
	}
	return decl
}

package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// selectorKinds name a method directly instead of yielding a callable
// value.
var selectorKinds = []cst.Kind{
	cst.KindIdent, cst.KindDynamicMember, cst.KindStringLiteral, cst.KindStringConstructor,
}

// dotExpression converts property access: a.b, a?.b, a*.b and the
// attribute forms a.@b.
func (c *converter) dotExpression(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	object := c.expression(s, ch.expr())
	selector := ch.expr()
	ch.end()

	prop := at(&ast.PropertyExpr{
		Object:     object,
		Safe:       n.Kind != cst.KindDot,
		SpreadSafe: n.Kind == cst.KindSpreadDot,
	}, n)
	switch selector.Kind {
	case cst.KindSelectSlot:
		prop.Attribute = true
		prop.Property = c.name(s, c.slot(selector))
	case cst.KindSlist:
		prop.Property = at(&ast.ClosureExpr{Code: c.statementList(s, selector)}, selector)
	default:
		prop.Property = c.name(s, selector)
	}
	return prop
}

func (c *converter) slot(n *cst.Node) *cst.Node {
	ch := childrenOf(n)
	name := ch.expr()
	ch.end()
	return name
}

// methodCall converts a call. The callee is either a dotted selector on
// an object or a bare selector called on the implicit this.
func (c *converter) methodCall(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	callee := ch.expr()

	call := at(&ast.MethodCallExpr{}, n)
	selector := callee
	implicitThis := true
	switch callee.Kind {
	case cst.KindDot, cst.KindOptionalDot, cst.KindSpreadDot:
		implicitThis = false
		dot := childrenOf(callee)
		call.Object = c.expression(s, dot.expr())
		if targs := dot.take(cst.KindTypeArguments); targs != nil {
			call.Generics = c.typeArguments(targs)
		}
		selector = dot.expr()
		dot.end()
		call.Safe = callee.Kind != cst.KindDot
		call.SpreadSafe = callee.Kind == cst.KindSpreadDot
	default:
		call.Object = ast.This()
		call.ImplicitThis = true
	}

	args := c.arguments(s, ch, n)
	ch.end()

	if implicitThis && selector.Is(cst.KindThis, cst.KindSuper) {
		ctor := at(&ast.ConstructorCallExpr{Args: args, Call: ast.ThisCall}, n)
		cls := c.classOrScript(s)
		ctor.Type = cls.Ref()
		if selector.Kind == cst.KindSuper {
			ctor.Call = ast.SuperCall
			ctor.Type = superClassOf(cls)
		}
		return ctor
	}
	if selector.Kind == cst.KindIdent && ast.IsPrimitiveName(selector.Text) {
		abort(ErrSemantic, selector, "Primitive type literal: %s cannot be used as a method name", selector.Text)
	}

	call.Args = args
	switch {
	case selector.Kind == cst.KindSelectSlot:
		attr := at(&ast.PropertyExpr{
			Object:     call.Object,
			Property:   c.name(s, c.slot(selector)),
			Safe:       call.Safe,
			SpreadSafe: call.SpreadSafe,
			Attribute:  true,
		}, selector)
		call.Object = attr
		call.Method = ast.StringConst("call")
		call.Safe, call.SpreadSafe, call.ImplicitThis = false, false, false
	case !implicitThis || selector.Is(selectorKinds...):
		call.Method = c.name(s, selector)
	default:
		call.Object = c.expression(s, selector)
		call.Method = ast.StringConst("call")
		call.ImplicitThis = false
	}
	return call
}

func superClassOf(cls *ast.Class) *ast.TypeRef {
	if cls.SuperClass != nil {
		return cls.SuperClass
	}
	return ast.ObjectType()
}

// arguments converts the argument list left in ch: an optional Elist
// followed by trailing closures. Named arguments are gathered into one
// map after the positional arguments.
func (c *converter) arguments(s scope, ch *children, spanNode *cst.Node) *ast.ArgumentListExpr {
	args := at(&ast.ArgumentListExpr{}, spanNode)
	var items []*cst.Node
	mapSpan := spanNode
	if elist := ch.take(cst.KindElist); elist != nil {
		args.SetSpan(elist.Span)
		mapSpan = elist
		items = append(items, elist.Children...)
	}
	for ch.is(cst.KindClosableBlock) {
		items = append(items, ch.next())
	}

	var named []ast.Expr
	seen := make(map[string]bool)
	for _, item := range items {
		if !item.Is(cst.KindLabeledArg, cst.KindSpreadMapArg) {
			args.Args = append(args.Args, c.expression(s, item))
			continue
		}
		entry := c.expression(s, item).(*ast.MapEntryExpr)
		if key, ok := entry.Key.(*ast.ConstantExpr); ok {
			name := key.Text()
			if seen[name] {
				abort(ErrSemantic, item, "Duplicate named parameter '%s' found.", name)
			}
			seen[name] = true
		}
		named = append(named, entry)
	}

	if len(named) > 0 {
		args.NamedOnly = len(args.Args) == 0
		args.Args = append(args.Args, at(&ast.MapExpr{Entries: named}, mapSpan))
	}
	return args
}

// specialConstructorCall converts this(...) and super(...) written as
// the first statement of a constructor.
func (c *converter) specialConstructorCall(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	call := at(&ast.ConstructorCallExpr{Call: ast.ThisCall, Type: s.class.Ref()}, n)
	if n.Kind == cst.KindSuperCtorCall {
		call.Call = ast.SuperCall
		call.Type = superClassOf(s.class)
	}
	call.Args = c.arguments(s, ch, n)
	ch.end()
	return call
}

// constructorCall converts new T(...), new T(...) { body } and array
// creation new T[n][].
func (c *converter) constructorCall(s scope, n *cst.Node) ast.Expr {
	ch := childrenOf(n)
	nameNode := ch.expr()
	typ := c.typeName(nameNode)

	if dims := ch.take(cst.KindArrayDeclarator); dims != nil {
		ch.end()
		return c.arrayCreation(s, n, typ, dims)
	}

	call := at(&ast.ConstructorCallExpr{Type: typ}, n)
	call.Args = c.arguments(s, ch, n)
	if body := ch.take(cst.KindObjBlock); body != nil {
		anon := c.anonymousClass(s, body)
		anon.SuperClass = typ
		call.Anonymous = anon
	}
	ch.end()
	return call
}

func (c *converter) arrayCreation(s scope, n *cst.Node, elem *ast.TypeRef, dims *cst.Node) ast.Expr {
	if len(dims.Children) == 0 {
		abort(ErrStructure, dims, "No expression for the array constructor call")
	}
	arr := at(&ast.ArrayExpr{ElementType: elem}, n)
	for _, dim := range dims.Children {
		expectKind(dim, dims, cst.KindArrayDim)
		dc := childrenOf(dim)
		var size ast.Expr
		if sizeNode := dc.next(); sizeNode != nil {
			size = c.expression(s, sizeNode)
		}
		dc.end()
		arr.Sizes = append(arr.Sizes, size)
	}
	return arr
}

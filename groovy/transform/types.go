package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// typeOf converts a Type node, or any node whose first child names a
// type. A missing name yields the dynamic type.
func (c *converter) typeOf(n *cst.Node) *ast.TypeRef {
	name := n.Child(0)
	if name == nil {
		return ast.DynamicType()
	}
	return c.typeName(name)
}

// typeRef accepts either a Type node or a bare name.
func (c *converter) typeRef(n *cst.Node) *ast.TypeRef {
	if n.Kind == cst.KindType {
		return c.typeOf(n)
	}
	return c.typeName(n)
}

func (c *converter) typeName(n *cst.Node) *ast.TypeRef {
	if n.Kind == cst.KindArrayDeclarator {
		t := ast.ArrayOf(c.typeOf(n))
		return at(t, n)
	}
	expectKind(n, nil, cst.KindIdent, cst.KindDot)

	segments := nameSegments(n)
	for i, seg := range segments[:len(segments)-1] {
		if seg.FirstChildOfKind(cst.KindTypeArguments) != nil {
			abort(ErrSemantic, segments[i+1], "Unexpected type arguments found prior to: %s", segments[i+1].Text)
		}
	}

	t := at(ast.NewType(c.qualifiedName(n)), n)
	if args := segments[len(segments)-1].FirstChildOfKind(cst.KindTypeArguments); args != nil {
		t.Generics = c.typeArguments(args)
	}
	return t
}

// nameSegments flattens a dotted name into its identifiers.
func nameSegments(n *cst.Node) []*cst.Node {
	if n.Kind != cst.KindDot {
		return []*cst.Node{n}
	}
	var out []*cst.Node
	for _, child := range n.Children {
		if child.Kind == cst.KindTypeArguments {
			continue
		}
		out = append(out, nameSegments(child)...)
	}
	return out
}

// typeArguments converts the arguments of a parameterized type. An empty
// list stands for the diamond and yields a non-nil empty slice.
func (c *converter) typeArguments(n *cst.Node) []*ast.GenericType {
	args := make([]*ast.GenericType, 0, len(n.Children))
	for _, child := range n.Children {
		expectKind(child, n, cst.KindTypeArgument)
		args = append(args, c.typeArgument(child))
	}
	return args
}

func (c *converter) typeArgument(n *cst.Node) *ast.GenericType {
	ch := childrenOf(n)
	root := ch.must(cst.KindType, cst.KindWildcardType)
	if root.Kind == cst.KindType {
		ch.end()
		return at(&ast.GenericType{Type: c.typeOf(root)}, n)
	}

	gt := at(&ast.GenericType{Type: ast.NewType("?"), Wildcard: true}, n)
	if bounds := ch.take(cst.KindTypeUpperBounds, cst.KindTypeLowerBounds); bounds != nil {
		types := c.bounds(bounds)
		if bounds.Kind == cst.KindTypeUpperBounds {
			gt.UpperBounds = types
		} else if len(types) > 0 {
			gt.LowerBound = types[0]
		}
	}
	ch.end()
	return gt
}

func (c *converter) bounds(n *cst.Node) []*ast.TypeRef {
	var out []*ast.TypeRef
	for _, child := range n.Children {
		out = append(out, c.typeRef(child))
	}
	return out
}

// typeParameters converts declared type parameters such as <T extends A>.
func (c *converter) typeParameters(n *cst.Node) []*ast.GenericType {
	params := make([]*ast.GenericType, 0, len(n.Children))
	for _, child := range n.Children {
		expectKind(child, n, cst.KindTypeParameter)
		ch := childrenOf(child)
		name := ch.must(cst.KindIdent)
		gt := at(&ast.GenericType{Type: at(ast.NewType(name.Text), name), Placeholder: true}, child)
		if b := ch.take(cst.KindTypeUpperBounds); b != nil {
			gt.UpperBounds = c.bounds(b)
		}
		ch.end()
		params = append(params, gt)
	}
	return params
}

// typeList converts the children of an implements, extends or throws
// clause.
func (c *converter) typeList(n *cst.Node) []*ast.TypeRef {
	var out []*ast.TypeRef
	for _, child := range n.Children {
		out = append(out, c.typeRef(child))
	}
	return out
}

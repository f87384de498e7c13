package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

func (c *converter) annotations(n *cst.Node) []*ast.Annotation {
	var out []*ast.Annotation
	for _, child := range n.Children {
		expectKind(child, n, cst.KindAnnotation)
		out = append(out, c.annotation(scope{}, child))
	}
	return out
}

// annotation converts @Name(member = value, ...). A bare value is the
// member named value.
func (c *converter) annotation(s scope, n *cst.Node) *ast.Annotation {
	ch := childrenOf(n)
	name := ch.must(cst.KindIdent, cst.KindDot)
	a := at(ast.NewAnnotation(at(ast.NewType(c.qualifiedName(name)), name)), n)

	for _, child := range ch.rest() {
		if child.Kind != cst.KindAnnotationMemberValuePair {
			a.SetMember("value", c.annotationValue(s, child))
			continue
		}
		pair := childrenOf(child)
		member := c.identifier(pair.must(cst.KindIdent))
		value := pair.next()
		if value == nil {
			abort(ErrStructure, child, "No value given for annotation member '%s'", member)
		}
		pair.end()
		if a.Member(member) != nil {
			abort(ErrSemantic, child, "Annotation member '%s' has already been associated with a value", member)
		}
		a.SetMember(member, c.annotationValue(s, value))
	}
	return a
}

func (c *converter) annotationValue(s scope, n *cst.Node) ast.Expr {
	if n.Kind == cst.KindAnnotationArrayInit {
		list := at(&ast.ListExpr{}, n)
		for _, child := range n.Children {
			list.Elements = append(list.Elements, c.annotationValue(s, child))
		}
		return list
	}
	return c.expression(s, n)
}

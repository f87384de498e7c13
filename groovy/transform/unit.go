package transform

import (
	"strings"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

func (c *converter) compilationUnit(root *cst.Node) {
	c.module.Span = root.Span
	var s scope
	for _, n := range root.Children {
		switch n.Kind {
		case cst.KindPackageDef:
			c.packageDef(n)
		case cst.KindImport, cst.KindStaticImport:
			c.importDef(n)
		case cst.KindClassDef, cst.KindTraitDef:
			c.classDef(s, n)
		case cst.KindInterfaceDef:
			c.interfaceDef(s, n)
		case cst.KindEnumDef:
			c.enumDef(s, n)
		case cst.KindAnnotationDef:
			c.annotationDef(s, n)
		case cst.KindMethodDef:
			c.methodDef(s, n)
		default:
			c.module.AddStatement(c.statement(s, n))
		}
	}
}

func (c *converter) packageDef(n *cst.Node) {
	if c.module.Package != nil {
		abort(ErrSemantic, n, "Package definition already given as '%s'.", c.module.Package.Name)
	}
	ch := childrenOf(n)
	pkg := at(&ast.Package{}, n)
	if a := ch.take(cst.KindAnnotations); a != nil {
		pkg.Annotations = c.annotations(a)
	}
	pkg.Name = c.qualifiedName(ch.must(cst.KindIdent, cst.KindDot))
	ch.end()
	c.module.Package = pkg
	c.module.ScriptClass.Name = c.module.PackageName() + c.module.ScriptClass.Name
	c.log.Debugf("package %s", pkg.Name)
}

func (c *converter) importDef(n *cst.Node) {
	static := n.Kind == cst.KindStaticImport
	ch := childrenOf(n)

	imp := at(&ast.Import{}, n)
	if a := ch.take(cst.KindAnnotations); a != nil {
		imp.Annotations = c.annotations(a)
	}

	name := ch.must(cst.KindIdent, cst.KindDot, cst.KindAs)
	ch.end()
	if name.Kind == cst.KindAs {
		as := childrenOf(name)
		target := as.must(cst.KindIdent, cst.KindDot)
		imp.Alias = c.identifier(as.must(cst.KindIdent))
		as.end()
		name = target
	}

	if name.Kind == cst.KindIdent {
		simple := c.identifier(name)
		imp.Kind = ast.ImportSingle
		imp.Type = at(ast.NewType(simple), n)
		imp.Alias = defaultString(imp.Alias, simple)
		c.module.AddImport(imp)
		return
	}

	parts := childrenOf(name)
	qualifier := c.qualifiedName(parts.must(cst.KindIdent, cst.KindDot))
	last := parts.must(cst.KindIdent, cst.KindStar)
	parts.end()

	switch {
	case last.Kind == cst.KindStar && imp.Alias != "":
		abort(ErrSemantic, n, "Imports like 'import %s.* as %s' are not supported.", qualifier, imp.Alias)
	case last.Kind == cst.KindStar && static:
		imp.Kind = ast.ImportStaticStar
		imp.Type = at(ast.NewType(qualifier), n)
	case last.Kind == cst.KindStar:
		imp.Kind = ast.ImportStar
		imp.PackageName = qualifier + "."
	case static:
		imp.Kind = ast.ImportStatic
		imp.Type = at(ast.NewType(qualifier), n)
		imp.Member = c.identifier(last)
		imp.Alias = defaultString(imp.Alias, imp.Member)
	default:
		simple := c.identifier(last)
		imp.Kind = ast.ImportSingle
		imp.Type = at(ast.NewType(qualifier+"."+simple), n)
		imp.Alias = defaultString(imp.Alias, simple)
	}
	c.module.AddImport(imp)
}

func (c *converter) identifier(n *cst.Node) string {
	expectKind(n, nil, cst.KindIdent)
	return n.Text
}

// qualifiedName joins a name made of Ident and Dot nodes. Type arguments
// attached to a segment are ignored.
func (c *converter) qualifiedName(n *cst.Node) string {
	switch n.Kind {
	case cst.KindIdent:
		return n.Text
	case cst.KindDot:
		parts := make([]string, 0, 2)
		for _, child := range n.Children {
			if child.Kind == cst.KindTypeArguments {
				continue
			}
			parts = append(parts, c.qualifiedName(child))
		}
		return strings.Join(parts, ".")
	case cst.KindStar:
		return "*"
	}
	abort(ErrStructure, n, "Unexpected node type: %s found when expecting a name", n.Kind)
	return ""
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// methodDef converts a method of s.class, or a script method when there
// is no enclosing class. Members of annotation types take no parameters
// and may carry a default value instead of a body.
func (c *converter) methodDef(s scope, n *cst.Node) {
	ch := childrenOf(n)
	annotationMember := s.class != nil && s.class.IsAnnotationDefinition()

	var generics []*ast.GenericType
	if tp := ch.take(cst.KindTypeParameters); tp != nil {
		generics = c.typeParameters(tp)
	}
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	forbid(n, "Method", mods.mods, ast.ModVolatile)
	if s.inInterface() {
		mods.mods |= ast.ModAbstract
	}

	returnType := ast.DynamicType()
	if t := ch.take(cst.KindType); t != nil {
		returnType = c.typeOf(t)
	}
	nameNode := ch.must(cst.KindIdent)
	name := nameNode.Text
	if s.class != nil && !annotationMember && name == s.class.SimpleName() {
		if s.inInterface() {
			abort(ErrSemantic, n, "Constructor not permitted within an interface.")
		}
		written := "def"
		if !returnType.Dynamic {
			written = returnType.String()
		}
		abort(ErrSemantic, n, "Invalid constructor format. Remove '%s' as the return type if you want a constructor, or use a different name if you want a method.", written)
	}

	m := at(&ast.Method{
		Name:            name,
		Modifiers:       mods.mods,
		SyntheticPublic: mods.syntheticPublic,
		ReturnType:      returnType,
		Generics:        generics,
		Annotations:     mods.annotations,
	}, n)

	if !annotationMember {
		m.Parameters = c.parameters(s, ch.must(cst.KindParameters))
		if t := ch.take(cst.KindThrows); t != nil {
			m.Exceptions = c.typeList(t)
		}
	}

	body := ch.next()
	ch.end()
	switch {
	case !m.IsAbstract():
		if body == nil {
			abort(ErrSemantic, n, "You defined a method without body. Try adding a body, or declare it abstract.")
		}
		expectKind(body, n, cst.KindSlist)
		m.Code = c.statementList(s.inMethod(m), body)
	case body != nil && annotationMember:
		m.Code = c.statement(s.inMethod(m), body)
		m.AnnotationDefault = true
	case body != nil:
		abort(ErrSemantic, n, "Abstract methods do not define a body.")
	}

	if s.class != nil {
		s.class.AddMethod(m)
	} else {
		c.module.AddMethod(m)
	}
}

func (c *converter) constructorDef(s scope, n *cst.Node) {
	if s.inInterface() {
		abort(ErrSemantic, n, "Constructor not permitted within an interface.")
	}
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	forbid(n, "Constructor", mods.mods, ast.ModStatic, ast.ModFinal, ast.ModAbstract, ast.ModNative)

	m := at(&ast.Method{
		Name:            "<init>",
		Modifiers:       mods.mods,
		SyntheticPublic: mods.syntheticPublic,
		ReturnType:      ast.NewType("void"),
		Annotations:     mods.annotations,
		Constructor:     true,
	}, n)
	m.Parameters = c.parameters(s, ch.must(cst.KindParameters))
	if t := ch.take(cst.KindThrows); t != nil {
		m.Exceptions = c.typeList(t)
	}
	body := ch.take(cst.KindSlist)
	if body == nil {
		abort(ErrSemantic, n, "You defined a constructor without body. Try adding a body.")
	}
	ch.end()

	s.class.AddConstructor(m)
	m.Code = c.constructorBody(s.inMethod(m), body)
}

// constructorBody converts the body, allowing this(...) or super(...) as
// its first statement only.
func (c *converter) constructorBody(s scope, n *cst.Node) *ast.BlockStmt {
	block := at(&ast.BlockStmt{}, n)
	for i, child := range n.Children {
		inner := s
		inner.ctorFirst = i == 0
		block.Statements = append(block.Statements, c.statement(inner, child))
	}
	return block
}

// fieldDef converts a field. A field declared without visibility becomes
// a property backed by a private synthetic field; interface fields are
// constants.
func (c *converter) fieldDef(s scope, n *cst.Node) {
	cls := s.class
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), 0)
	if cls.IsInterface() {
		mods.mods |= ast.ModStatic | ast.ModFinal
		if !mods.mods.HasAny(ast.ModPrivate | ast.ModProtected) {
			mods.mods |= ast.ModPublic
		}
	}

	typ := ast.DynamicType()
	if t := ch.take(cst.KindType); t != nil {
		typ = c.typeOf(t)
	}
	name := c.identifier(ch.must(cst.KindIdent))

	var init ast.Expr
	if assign := ch.take(cst.KindAssign); assign != nil {
		value := childrenOf(assign)
		init = c.expression(s, value.expr())
		value.end()
	}
	ch.end()
	if cls.IsInterface() && init == nil && typ.IsPrimitive() {
		init = ast.Constant(ast.PrimitiveDefault(typ))
	}

	field := at(&ast.Field{
		Name:         name,
		Type:         typ,
		InitialValue: init,
		Annotations:  mods.annotations,
	}, n)

	if !mods.mods.HasAny(ast.ModVisibility) {
		field.Modifiers = ast.ModPrivate | mods.mods&(ast.ModStatic|ast.ModTransient|ast.ModVolatile|ast.ModFinal)
		field.Synthetic = true
		if stored := cls.Field(name); stored != nil && cls.Property(name) == nil {
			field = stored
			cls.RemoveField(name)
		}
		prop := at(&ast.Property{Field: field, Modifiers: mods.mods | ast.ModPublic}, n)
		cls.AddProperty(prop)
		return
	}

	field.Modifiers = mods.mods
	if prop := cls.Property(name); prop != nil && prop.Field.Synthetic {
		cls.RemoveField(name)
		prop.Field = field
	}
	cls.AddField(field)
}

// parameters converts a Parameters or ImplicitParameters node. Only the
// last parameter may be variadic.
func (c *converter) parameters(s scope, n *cst.Node) []*ast.Parameter {
	params := make([]*ast.Parameter, 0, len(n.Children))
	for i, child := range n.Children {
		p := c.parameter(s, child)
		if p.VarArgs && i != len(n.Children)-1 {
			abort(ErrSemantic, child, "The var-arg parameter %s must be the last parameter.", p.Name)
		}
		params = append(params, p)
	}
	return params
}

func (c *converter) parameter(s scope, n *cst.Node) *ast.Parameter {
	expectKind(n, nil, cst.KindParameterDef, cst.KindVariableParameterDef)
	varArgs := n.Kind == cst.KindVariableParameterDef

	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), 0)
	typ := ast.DynamicType()
	if t := ch.take(cst.KindType); t != nil {
		typ = c.typeOf(t)
	}
	if varArgs {
		if typ.Dynamic {
			typ = ast.ObjectType()
		}
		typ = ast.ArrayOf(typ)
	}
	name := c.identifier(ch.must(cst.KindIdent))

	p := at(&ast.Parameter{
		Name:        name,
		Type:        typ,
		Modifiers:   mods.mods,
		Annotations: mods.annotations,
		VarArgs:     varArgs,
	}, n)

	if assign := ch.take(cst.KindAssign); assign != nil {
		value := childrenOf(assign)
		p.DefaultValue = c.expression(s, value.expr())
		value.end()
		if s.inInterface() {
			abort(ErrSemantic, assign, "Cannot specify default value for method parameter '%s = %s' inside an interface", name, p.DefaultValue.Text())
		}
	}
	ch.end()
	return p
}

package transform

import (
	"fmt"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// newType names a type declared in scope s and registers it on the
// module before any of its members are converted. Nested types are
// named Outer$Name in the package of the outer type.
func (c *converter) newType(s scope, n *cst.Node, simple string, kind ast.ClassKind, mods modifierSet) *ast.Class {
	cls := at(&ast.Class{
		Kind:            kind,
		Modifiers:       mods.mods,
		SyntheticPublic: mods.syntheticPublic,
		Annotations:     mods.annotations,
	}, n)

	if outer := s.class; outer != nil {
		cls.Name = outer.NameWithoutPackage() + "$" + simple
		if pkg := outer.PackageName(); pkg != "" {
			cls.Name = pkg + "." + cls.Name
		}
		cls.Outer = outer
		if outer.IsInterface() {
			cls.Modifiers |= ast.ModStatic
		}
	} else {
		cls.Name = c.module.PackageName() + simple
	}

	c.module.AddClass(cls)
	c.log.Debugf("declared %s %s", kind, cls.Name)
	return cls
}

func (c *converter) classDef(s scope, n *cst.Node) {
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	forbid(n, "Class", mods.mods, ast.ModSynchronized)
	name := c.identifier(ch.must(cst.KindIdent))

	var generics []*ast.GenericType
	if tp := ch.take(cst.KindTypeParameters); tp != nil {
		generics = c.typeParameters(tp)
	}
	superClass := ast.ObjectType()
	if ext := ch.take(cst.KindExtendsClause); ext != nil {
		types := c.typeList(ext)
		if len(types) != 1 {
			abort(ErrSemantic, ext, "A class must extend exactly one class, found %d.", len(types))
		}
		superClass = types[0]
	}
	var interfaces []*ast.TypeRef
	if impl := ch.take(cst.KindImplementsClause); impl != nil {
		interfaces = c.typeList(impl)
	}
	body := ch.must(cst.KindObjBlock)
	ch.end()

	cls := c.newType(s, n, name, ast.ClassKindClass, mods)
	cls.Generics = generics
	cls.SuperClass = superClass
	cls.Interfaces = interfaces
	if n.Kind == cst.KindTraitDef {
		cls.AddAnnotation(ast.NewAnnotation(ast.NewType(ast.TraitTypeName)))
	}
	c.objectBlock(s.inClass(cls), body)
}

func (c *converter) interfaceDef(s scope, n *cst.Node) {
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	mods.mods |= ast.ModAbstract | ast.ModInterface
	forbid(n, "Interface", mods.mods, ast.ModSynchronized)
	name := c.identifier(ch.must(cst.KindIdent))

	var generics []*ast.GenericType
	if tp := ch.take(cst.KindTypeParameters); tp != nil {
		generics = c.typeParameters(tp)
	}
	var interfaces []*ast.TypeRef
	if ext := ch.take(cst.KindExtendsClause); ext != nil {
		interfaces = c.typeList(ext)
	}
	body := ch.must(cst.KindObjBlock)
	ch.end()

	cls := c.newType(s, n, name, ast.ClassKindInterface, mods)
	if cls.Outer != nil {
		cls.Modifiers |= ast.ModStatic
	}
	cls.Generics = generics
	cls.SuperClass = ast.ObjectType()
	cls.Interfaces = interfaces
	c.objectBlock(s.inClass(cls), body)
}

func (c *converter) annotationDef(s scope, n *cst.Node) {
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	mods.mods |= ast.ModAbstract | ast.ModInterface | ast.ModAnnotation
	forbid(n, "Annotation Definition", mods.mods, ast.ModSynchronized)
	name := c.identifier(ch.must(cst.KindIdent))

	var generics []*ast.GenericType
	if tp := ch.take(cst.KindTypeParameters); tp != nil {
		generics = c.typeParameters(tp)
	}
	var interfaces []*ast.TypeRef
	if ext := ch.take(cst.KindExtendsClause); ext != nil {
		interfaces = c.typeList(ext)
	}
	body := ch.must(cst.KindObjBlock)
	ch.end()

	cls := c.newType(s, n, name, ast.ClassKindAnnotation, mods)
	if cls.Outer != nil {
		cls.Modifiers |= ast.ModStatic
	}
	cls.Generics = generics
	cls.SuperClass = ast.ObjectType()
	cls.Interfaces = interfaces
	cls.AddInterface(ast.NewType(ast.AnnotationTypeName))
	c.objectBlock(s.inClass(cls), body)
}

func (c *converter) enumDef(s scope, n *cst.Node) {
	ch := childrenOf(n)
	mods := c.modifiers(s, ch.take(cst.KindModifiers), ast.ModPublic)
	forbid(n, "Enum", mods.mods, ast.ModSynchronized)
	mods.mods |= ast.ModFinal | ast.ModEnum
	name := c.identifier(ch.must(cst.KindIdent))

	var interfaces []*ast.TypeRef
	if impl := ch.take(cst.KindImplementsClause); impl != nil {
		interfaces = c.typeList(impl)
	}
	body := ch.must(cst.KindObjBlock)
	ch.end()

	cls := c.newType(s, n, name, ast.ClassKindEnum, mods)
	if cls.Outer != nil {
		cls.Modifiers |= ast.ModStatic
	}
	cls.Interfaces = interfaces
	cls.SuperClass = ast.NewType(ast.EnumTypeName)
	cls.SuperClass.Generics = []*ast.GenericType{{Type: cls.Ref()}}
	c.objectBlock(s.inClass(cls), body)
}

func (c *converter) objectBlock(s scope, n *cst.Node) {
	for _, child := range n.Children {
		switch child.Kind {
		case cst.KindObjBlock:
			c.objectBlock(s, child)
		case cst.KindMethodDef, cst.KindAnnotationFieldDef:
			c.methodDef(s, child)
		case cst.KindCtorIdent:
			c.constructorDef(s, child)
		case cst.KindVariableDef:
			c.fieldDef(s, child)
		case cst.KindStaticInit:
			s.class.StaticInitializers = append(s.class.StaticInitializers, c.initializer(s, child))
		case cst.KindInstanceInit:
			s.class.ObjectInitializers = append(s.class.ObjectInitializers, c.initializer(s, child))
		case cst.KindEnumDef:
			c.enumDef(s, child)
		case cst.KindEnumConstantDef:
			c.enumConstantDef(s, child)
		case cst.KindClassDef, cst.KindTraitDef:
			c.classDef(s, child)
		case cst.KindInterfaceDef:
			c.interfaceDef(s, child)
		case cst.KindAnnotationDef:
			c.annotationDef(s, child)
		default:
			unknownNode(child)
		}
	}
}

func (c *converter) initializer(s scope, n *cst.Node) *ast.BlockStmt {
	ch := childrenOf(n)
	body := ch.must(cst.KindSlist)
	ch.end()
	return c.statementList(s, body)
}

// enumConstantDef adds a constant to the enclosing enum. Constructor
// arguments become a list initializer; a constant with a body becomes an
// anonymous subclass of the enum, transported as a class expression at
// the end of that list.
func (c *converter) enumConstantDef(s scope, n *cst.Node) {
	enum := s.class
	if enum.Kind != ast.ClassKindEnum {
		abort(ErrSemantic, n, "Enum constants may only be declared inside an enum.")
	}

	ch := childrenOf(n)
	var annotations []*ast.Annotation
	if a := ch.take(cst.KindAnnotations); a != nil {
		annotations = c.annotations(a)
	}
	name := c.identifier(ch.must(cst.KindIdent))

	var init ast.Expr
	if args := ch.take(cst.KindElist); args != nil {
		init = c.expressionList(s, args)
		if list, ok := init.(*ast.ListExpr); ok && !list.Wrapped {
			init = at(&ast.ListExpr{Elements: []ast.Expr{list}}, args)
		}
	}
	if body := ch.take(cst.KindObjBlock); body != nil {
		inner := c.anonymousClass(s, body)
		inner.EnumConstant = true
		inner.SuperClass = enum.Ref()
		inner.Modifiers = enum.Modifiers | ast.ModFinal
		enum.Modifiers &^= ast.ModFinal

		classExpr := at(&ast.ClassExpr{Type: inner.Ref()}, body)
		switch list := init.(type) {
		case nil:
			init = &ast.ListExpr{Elements: []ast.Expr{classExpr}}
		case *ast.ListExpr:
			list.Elements = append(list.Elements, classExpr)
		default:
			init = &ast.ListExpr{Elements: []ast.Expr{init, classExpr}}
		}
	}
	ch.end()

	if init != nil {
		if _, ok := init.(*ast.ListExpr); !ok {
			init = &ast.ListExpr{Elements: []ast.Expr{init}}
		}
	}

	field := at(&ast.Field{
		Name:         name,
		Modifiers:    ast.ModPublic | ast.ModStatic | ast.ModFinal | ast.ModEnum,
		Type:         enum.Ref(),
		InitialValue: init,
		Annotations:  annotations,
	}, n)
	enum.AddField(field)
}

// anonymousClass converts the body of new T(...) { ... }. Anonymous
// classes are numbered per enclosing class, starting at 1.
func (c *converter) anonymousClass(s scope, body *cst.Node) *ast.Class {
	outer := c.classOrScript(s)
	c.anonymous[outer]++
	cls := at(&ast.Class{
		Name:            fmt.Sprintf("%s$%d", outer.Name, c.anonymous[outer]),
		Kind:            ast.ClassKindClass,
		Modifiers:       ast.ModPublic,
		SuperClass:      ast.ObjectType(),
		Outer:           outer,
		EnclosingMethod: s.method,
		Anonymous:       true,
	}, body)
	c.module.AddClass(cls)
	c.log.Debugf("declared anonymous class %s", cls.Name)
	c.objectBlock(s.inClass(cls), body)
	return cls
}

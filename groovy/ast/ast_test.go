package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want string
	}{
		{0, ""},
		{ModPublic, "public"},
		{ModPrivate | ModStatic | ModFinal, "private static final"},
		{ModPublic | ModAbstract | ModInterface, "public abstract interface"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mods.String())
		})
	}
}

func TestModifierNamed(t *testing.T) {
	m, ok := ModifierNamed("volatile")
	require.True(t, ok)
	assert.Equal(t, ModVolatile, m)

	_, ok = ModifierNamed("def")
	assert.False(t, ok)

	assert.True(t, (ModPublic | ModStatic).Has(ModStatic))
	assert.False(t, ModPublic.Has(ModPublic|ModStatic))
	assert.True(t, ModPrivate.HasAny(ModVisibility))
}

func TestTypeRefString(t *testing.T) {
	mapType := NewType("Map")
	mapType.Generics = []*GenericType{
		{Type: NewType("String")},
		{Type: NewType("?"), Wildcard: true, UpperBounds: []*TypeRef{NewType("Number")}},
	}

	tests := []struct {
		name string
		typ  *TypeRef
		want string
	}{
		{"plain", NewType("String"), "String"},
		{"array", ArrayOf(ArrayOf(NewType("int"))), "int[][]"},
		{"generic", mapType, "Map<String, ? extends Number>"},
		{"diamond", &TypeRef{Name: "List", Generics: []*GenericType{}}, "List<>"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}

	assert.True(t, NewType("int").IsPrimitive())
	assert.False(t, ArrayOf(NewType("int")).IsPrimitive())
	assert.True(t, DynamicType().Dynamic)
	assert.Equal(t, int64(0), PrimitiveDefault(NewType("long")))
	assert.Nil(t, PrimitiveDefault(NewType("String")))
}

func TestClassNames(t *testing.T) {
	c := &Class{Name: "a.b.Outer$Inner"}
	assert.Equal(t, "a.b", c.PackageName())
	assert.Equal(t, "Outer$Inner", c.NameWithoutPackage())
	assert.Equal(t, "Inner", c.SimpleName())

	top := &Class{Name: "Script"}
	assert.Equal(t, "", top.PackageName())
	assert.Equal(t, "Script", top.SimpleName())
	assert.Same(t, top, top.Ref().Class)
}

func TestClassMembers(t *testing.T) {
	c := &Class{Name: "A"}
	f := &Field{Name: "x", Synthetic: true}
	c.AddProperty(&Property{Field: f})
	require.Len(t, c.Fields, 1)
	assert.Same(t, c, f.Owner)

	c.AddProperty(&Property{Field: f})
	assert.Len(t, c.Fields, 1, "a field already listed is not added twice")

	c.RemoveField("x")
	assert.Empty(t, c.Fields)
	assert.Nil(t, c.Field("x"))
	assert.NotNil(t, c.Property("x"))

	c.AddInterface(NewType("Runnable"))
	c.AddInterface(NewType("Runnable"))
	assert.Len(t, c.Interfaces, 1)
}

func TestModule(t *testing.T) {
	m := NewModule("Script")
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "", m.PackageName())
	assert.True(t, m.ScriptClass.Script)

	m.Package = &Package{Name: "org.example"}
	assert.Equal(t, "org.example.", m.PackageName())

	m.AddStatement(&ExprStmt{Expr: Var("x")})
	assert.False(t, m.IsEmpty())
}

func TestExprText(t *testing.T) {
	call := &MethodCallExpr{
		Object: Var("list"),
		Method: StringConst("add"),
		Args:   &ArgumentListExpr{Args: []Expr{Constant(int32(1))}},
		Safe:   true,
	}
	assert.Equal(t, "list?.add(1)", call.Text())

	g := &GStringExpr{Verbatim: "a$b"}
	assert.Equal(t, "a$b", g.Text())

	decl := &DeclarationExpr{Left: &TupleExpr{Elements: []Expr{Var("a"), Var("b")}}, Right: Var("xs")}
	assert.True(t, decl.IsMultiple())
	assert.Equal(t, "((a, b) = xs)", decl.Text())
	assert.Len(t, decl.Variables(), 2)

	ctor := &ConstructorCallExpr{Type: NewType("Foo"), Args: &ArgumentListExpr{}}
	assert.Equal(t, "new Foo()", ctor.Text())

	assert.Equal(t, "null", Null().Text())
	assert.Equal(t, "[:]", (&MapExpr{}).Text())
}

func TestInspect(t *testing.T) {
	m := NewModule("Script")
	m.AddStatement(&IfStmt{
		Cond: &BooleanExpr{Expr: &BinaryExpr{Left: Var("a"), Op: OpLess, Right: Constant(int32(1))}},
		Then: NewBlock(&ExprStmt{Expr: Var("b")}),
		Else: &EmptyStmt{},
	})

	var names []string
	Inspect(m, func(n Node) bool {
		if v, ok := n.(*VariableExpr); ok {
			names = append(names, v.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b"}, names)

	count := 0
	Inspect(m, func(n Node) bool {
		count++
		_, isIf := n.(*IfStmt)
		return !isIf
	})
	assert.Equal(t, 3, count, "module, block and the if statement")

	var empty *BlockStmt
	Inspect(empty, func(Node) bool {
		t.Fatal("typed nil visited")
		return true
	})
}

func TestOperatorAssignment(t *testing.T) {
	assert.True(t, OpAssign.IsAssignment())
	assert.True(t, OpBitXorAssign.IsAssignment())
	assert.False(t, OpEqual.IsAssignment())
	assert.Equal(t, "<=>", OpCompareTo.String())
	assert.Equal(t, "?", OpInvalid.String())
}

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// stmts converts top-level statements.
func stmts(t *testing.T, nodes ...*cst.Node) []ast.Stmt {
	t.Helper()
	return convert(t, nodes...).Statements.Statements
}

func TestClassicFor(t *testing.T) {
	tests := []struct {
		name    string
		header  []*cst.Node
		message string
	}{
		{
			name:    "two expressions",
			header:  []*cst.Node{n(cst.KindEmptyStat), n(cst.KindEmptyStat)},
			message: "3 expressions are required for the classic for loop, you gave 2",
		},
		{
			name:    "four expressions",
			header:  []*cst.Node{n(cst.KindEmptyStat), n(cst.KindEmptyStat), n(cst.KindEmptyStat), n(cst.KindEmptyStat)},
			message: "3 expressions are required for the classic for loop, you gave 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convertErr(t, n(cst.KindFor, n(cst.KindClosureList, tt.header...), slist()))
			assert.ErrorIs(t, err, ErrSemantic)
			assert.Equal(t, tt.message, err.Message)
		})
	}

	t.Run("three expressions", func(t *testing.T) {
		out := stmts(t, n(cst.KindFor,
			n(cst.KindClosureList,
				n(cst.KindVariableDef, typ("int"), id("i"), n(cst.KindAssign, num("0"))),
				n(cst.KindLt, id("i"), num("10")),
				n(cst.KindPostInc, id("i")),
			),
			n(cst.KindSemi),
		))
		loop, ok := out[0].(*ast.ForStmt)
		require.True(t, ok)
		decl, ok := loop.Init().(*ast.DeclarationExpr)
		require.True(t, ok)
		assert.Equal(t, "int", decl.Variables()[0].Type.Name)
		assert.Equal(t, "(i < 10)", loop.Cond().Text())
		assert.Equal(t, "(i++)", loop.Update().Text())
		assert.IsType(t, &ast.EmptyStmt{}, loop.Body)
	})

	t.Run("empty slots", func(t *testing.T) {
		out := stmts(t, n(cst.KindFor,
			n(cst.KindClosureList, n(cst.KindEmptyStat), n(cst.KindEmptyStat), n(cst.KindEmptyStat)),
			slist(n(cst.KindBreak)),
		))
		loop := out[0].(*ast.ForStmt)
		for _, e := range loop.Header.Exprs {
			assert.IsType(t, &ast.EmptyExpr{}, e)
		}
	})
}

func TestExpressionListOutsideFor(t *testing.T) {
	err := convertErr(t, n(cst.KindClosureList, id("a"), id("b"), id("c")))
	assert.ErrorIs(t, err, ErrSemantic)
	assert.Equal(t, "Expression list of the form (a; b; c) is not supported in this context.", err.Message)
}

func TestForIn(t *testing.T) {
	out := stmts(t,
		n(cst.KindFor, n(cst.KindForInIterable, id("x"), id("xs")), slist()),
		n(cst.KindFor, n(cst.KindForInIterable,
			n(cst.KindVariableDef, mods(cst.KindFinal), typ("String"), id("s")), id("names")),
			call("println", id("s"))),
	)

	plain := out[0].(*ast.ForEachStmt)
	assert.Equal(t, "x", plain.Variable.Name)
	assert.True(t, plain.Variable.Type.Dynamic)
	assert.Equal(t, "xs", plain.Collection.Text())

	typed := out[1].(*ast.ForEachStmt)
	assert.Equal(t, "s", typed.Variable.Name)
	assert.Equal(t, "String", typed.Variable.Type.Name)
	assert.True(t, typed.Variable.Modifiers.Has(ast.ModFinal))
	assert.IsType(t, &ast.ExprStmt{}, typed.Body)

	err := convertErr(t, n(cst.KindFor, n(cst.KindForInIterable,
		n(cst.KindVariableDef, mods(cst.KindStatic), id("s")), id("names")), slist()))
	assert.ErrorIs(t, err, ErrModifier)
	assert.Equal(t, "Only the 'final' modifier is allowed in front of the for loop variable.", err.Message)
}

func TestSwitch(t *testing.T) {
	out := stmts(t, n(cst.KindSwitch, id("x"),
		n(cst.KindCaseGroup, n(cst.KindCase, num("1")), n(cst.KindCase, num("2")), slist(call("a"))),
		n(cst.KindCaseGroup, n(cst.KindCase, num("3")), n(cst.KindDefault), slist(call("b"))),
		n(cst.KindCaseGroup, n(cst.KindCase, num("4"))),
	))

	sw := out[0].(*ast.SwitchStmt)
	assert.Equal(t, "x", sw.Subject.Text())
	require.Len(t, sw.Cases, 4)
	assert.IsType(t, &ast.EmptyStmt{}, sw.Cases[0].Body, "falls through to 2")
	assert.IsType(t, &ast.BlockStmt{}, sw.Cases[1].Body)
	assert.IsType(t, &ast.EmptyStmt{}, sw.Cases[2].Body, "shares the default body")
	assert.IsType(t, &ast.EmptyStmt{}, sw.Cases[3].Body)
	assert.IsType(t, &ast.BlockStmt{}, sw.Default)

	empty := stmts(t, n(cst.KindSwitch, id("x")))[0].(*ast.SwitchStmt)
	assert.Empty(t, empty.Cases)
	assert.IsType(t, &ast.EmptyStmt{}, empty.Default)
}

func TestSwitchDuplicateDefault(t *testing.T) {
	tests := []struct {
		name   string
		groups []*cst.Node
	}{
		{
			name: "separate groups",
			groups: []*cst.Node{
				n(cst.KindCaseGroup, n(cst.KindDefault), slist()),
				n(cst.KindCaseGroup, n(cst.KindDefault), slist()),
			},
		},
		{
			name:   "same group",
			groups: []*cst.Node{n(cst.KindCaseGroup, n(cst.KindDefault), n(cst.KindDefault))},
		},
		{
			name: "first default without body",
			groups: []*cst.Node{
				n(cst.KindCaseGroup, n(cst.KindDefault)),
				n(cst.KindCaseGroup, n(cst.KindCase, num("1")), n(cst.KindDefault), slist()),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convertErr(t, n(cst.KindSwitch, append([]*cst.Node{id("x")}, tt.groups...)...))
			assert.ErrorIs(t, err, ErrSemantic)
			assert.Equal(t, "The default case is already defined.", err.Message)
		})
	}
}

func TestTry(t *testing.T) {
	out := stmts(t, n(cst.KindTry,
		slist(call("risky")),
		n(cst.KindCatch, n(cst.KindMulticatch, n(cst.KindMulticatchTypes, id("IOException"), dotted("java", "sql", "SQLException")), id("e")), slist()),
		n(cst.KindCatch, n(cst.KindMulticatch, id("any")), slist()),
		n(cst.KindFinally, call("cleanup")),
	))

	try := out[0].(*ast.TryStmt)
	require.Len(t, try.Catches, 3)
	assert.Equal(t, "IOException", try.Catches[0].Param.Type.Name)
	assert.Equal(t, "java.sql.SQLException", try.Catches[1].Param.Type.Name)
	assert.Equal(t, "e", try.Catches[1].Param.Name)
	assert.Same(t, try.Catches[0].Body, try.Catches[1].Body)
	assert.True(t, try.Catches[2].Param.Type.Dynamic)
	finally, ok := try.Finally.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, finally.Statements, 1)

	onlyFinally := stmts(t, n(cst.KindTry, slist(), n(cst.KindFinally)))[0].(*ast.TryStmt)
	assert.Empty(t, onlyFinally.Catches)

	err := convertErr(t, n(cst.KindTry, slist()))
	assert.ErrorIs(t, err, ErrSemantic)
	assert.Equal(t, "A try statement must have at least one catch or finally block.", err.Message)
}

func TestSimpleStatements(t *testing.T) {
	out := stmts(t,
		n(cst.KindLabeledStat, id("outer"), n(cst.KindWhile, n(cst.KindTrue), slist(n(cst.KindBreak, id("outer"))))),
		n(cst.KindIf, id("a"), call("b")),
		n(cst.KindIf, id("a"), call("b"), call("c")),
		n(cst.KindAssert, id("ok")),
		n(cst.KindAssert, id("ok"), str("failed")),
		n(cst.KindReturn),
		n(cst.KindThrow, n(cst.KindNew, id("Error"), elist())),
		n(cst.KindSynchronized, n(cst.KindThis), slist()),
		n(cst.KindContinue),
		n(cst.KindVariableDef, id("v"), n(cst.KindAssign, num("1"))),
		n(cst.KindEmptyStat),
	)
	require.Len(t, out, 11)

	loop := out[0].(*ast.WhileStmt)
	assert.Equal(t, []string{"outer"}, loop.Labels())
	brk := loop.Body.(*ast.BlockStmt).Statements[0].(*ast.BreakStmt)
	assert.Equal(t, "outer", brk.Label)

	assert.IsType(t, &ast.EmptyStmt{}, out[1].(*ast.IfStmt).Else)
	assert.IsType(t, &ast.ExprStmt{}, out[2].(*ast.IfStmt).Else)
	assert.True(t, out[3].(*ast.AssertStmt).Message.(*ast.ConstantExpr).IsNull())
	assert.Equal(t, "failed", out[4].(*ast.AssertStmt).Message.Text())
	assert.IsType(t, &ast.EmptyExpr{}, out[5].(*ast.ReturnStmt).Expr)
	assert.IsType(t, &ast.ConstructorCallExpr{}, out[6].(*ast.ThrowStmt).Expr)
	assert.True(t, out[7].(*ast.SynchronizedStmt).Lock.(*ast.VariableExpr).IsThis())
	assert.Empty(t, out[8].(*ast.ContinueStmt).Label)

	decl := out[9].(*ast.DeclStmt).Decl
	assert.False(t, decl.IsMultiple())
	assert.Equal(t, "(v = 1)", decl.Text())
	assert.IsType(t, &ast.EmptyStmt{}, out[10])
}

func TestMultipleAssignment(t *testing.T) {
	out := stmts(t, n(cst.KindVariableDef, n(cst.KindAssign,
		n(cst.KindTupleLHS,
			n(cst.KindVariableDef, typ("int"), id("a")),
			n(cst.KindVariableDef, id("b")),
		),
		n(cst.KindListConstructor, elist(num("1"), num("2"))),
	)))

	decl := out[0].(*ast.DeclStmt).Decl
	require.True(t, decl.IsMultiple())
	vars := decl.Variables()
	require.Len(t, vars, 2)
	assert.Equal(t, "int", vars[0].Type.Name)
	assert.True(t, vars[1].Type.Dynamic)
	assert.Equal(t, "[1, 2]", decl.Right.Text())
}

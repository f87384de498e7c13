package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

func n(kind cst.Kind, children ...*cst.Node) *cst.Node { return cst.N(kind, "", children...) }
func id(name string) *cst.Node { return cst.N(cst.KindIdent, name) }
func num(text string) *cst.Node { return cst.N(cst.KindNumInt, text) }
func str(text string) *cst.Node { return cst.N(cst.KindStringLiteral, text) }
func elist(args ...*cst.Node) *cst.Node { return n(cst.KindElist, args...) }
func slist(stmts ...*cst.Node) *cst.Node { return n(cst.KindSlist, stmts...) }
func named(key string, value *cst.Node) *cst.Node { return n(cst.KindLabeledArg, id(key), value) }
func assign(target, value *cst.Node) *cst.Node { return n(cst.KindAssign, target, value) }
func typ(name string) *cst.Node { return n(cst.KindType, id(name)) }
func param(name string) *cst.Node { return n(cst.KindParameterDef, id(name)) }
func params(ps ...*cst.Node) *cst.Node { return n(cst.KindParameters, ps...) }

func dotted(names ...string) *cst.Node {
	name := id(names[0])
	for _, next := range names[1:] {
		name = n(cst.KindDot, name, id(next))
	}
	return name
}

func mods(kinds ...cst.Kind) *cst.Node {
	m := n(cst.KindModifiers)
	for _, k := range kinds {
		m.AddChild(n(k))
	}
	return m
}

func call(name string, args ...*cst.Node) *cst.Node {
	return n(cst.KindMethodCall, id(name), elist(args...))
}

func class(name string, members ...*cst.Node) *cst.Node {
	return n(cst.KindClassDef, id(name), n(cst.KindObjBlock, members...))
}

func method(name string, body ...*cst.Node) *cst.Node {
	return n(cst.KindMethodDef, id(name), params(), slist(body...))
}

func convert(t *testing.T, nodes ...*cst.Node) *ast.Module {
	t.Helper()
	module, err := New().Transform(cst.Annotate(cst.Layout(cst.Unit(nodes...))))
	require.NoError(t, err)
	require.NotNil(t, module)
	return module
}

func convertErr(t *testing.T, nodes ...*cst.Node) *Error {
	t.Helper()
	module, err := New().Transform(cst.Annotate(cst.Layout(cst.Unit(nodes...))))
	require.Error(t, err)
	require.Nil(t, module)
	var convErr *Error
	require.ErrorAs(t, err, &convErr)
	return convErr
}

// expr converts a single top-level expression statement.
func expr(t *testing.T, node *cst.Node) ast.Expr {
	t.Helper()
	module := convert(t, node)
	require.Len(t, module.Statements.Statements, 1)
	stmt, ok := module.Statements.Statements[0].(*ast.ExprStmt)
	require.True(t, ok, "got %T", module.Statements.Statements[0])
	return stmt.Expr
}

package frontend

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/source"
	"github.com/dhamidi/grove/groovy/transform"
)

// drain reads every rune and returns tree laid out on line 1.
func drain(tree *cst.Node) ParserFunc {
	return func(name string, r io.RuneReader) (*cst.Node, error) {
		for {
			if _, _, err := r.ReadRune(); err != nil {
				if err == io.EOF {
					return cst.Layout(tree), nil
				}
				return nil, err
			}
		}
	}
}

func TestCompile(t *testing.T) {
	tree := cst.Unit(cst.N(cst.KindExpr, "", cst.N(cst.KindIdent, "x")))
	fe := New(drain(tree), WithLogger(commonlog.GetLogger("grove.test")))

	unit, err := fe.Compile("a.groovy", strings.NewReader("x\n"))
	require.NoError(t, err)

	assert.Equal(t, "a.groovy", unit.Name)
	assert.Equal(t, "x\n", unit.Buffer.String())
	require.NotNil(t, unit.Module)
	require.Len(t, unit.Module.Statements.Statements, 1)
	stmt, ok := unit.Module.Statements.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Expr.Text())

	unit.CST.Walk(func(n *cst.Node) bool {
		assert.False(t, n.Span.End.IsZero(), n.Kind.String())
		return true
	})
}

func TestCompileDecodesEscapesIntoBuffer(t *testing.T) {
	fe := New(drain(cst.Unit()))

	unit, err := fe.Compile("a.groovy", strings.NewReader(`"\u0041"`))
	require.NoError(t, err)
	assert.Equal(t, `"A"`, unit.Buffer.String())
	assert.Equal(t, 5, unit.Reader.EscapedOffsetCount())
}

func TestCompileMalformedEscape(t *testing.T) {
	fe := New(drain(cst.Unit()))

	unit, err := fe.Compile("a.groovy", strings.NewReader(`x\u00G1`))
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrMalformedEscape)
	require.NotNil(t, unit)
	assert.Nil(t, unit.CST)
	assert.Nil(t, unit.Module)
}

func TestCompileTransformError(t *testing.T) {
	tree := cst.Unit(cst.N(cst.KindExpr, "", cst.N(cst.KindStar, "*")))
	fe := New(drain(tree), WithTransformer(transform.New(transform.WithScriptName("Build"))))

	unit, err := fe.Compile("a.groovy", strings.NewReader("*"))
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrStructure)

	var convErr *transform.Error
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, cst.KindStar, convErr.Node.Kind)
	assert.Contains(t, err.Error(), "compile a.groovy: Unknown type: Star")

	require.NotNil(t, unit.CST)
	assert.Nil(t, unit.Module)
}

func TestParseOnlyAnnotates(t *testing.T) {
	tree := cst.Unit(cst.N(cst.KindExpr, "", cst.N(cst.KindStar, "*")))
	fe := New(drain(tree))

	unit, err := fe.Parse("a.groovy", strings.NewReader("*"))
	require.NoError(t, err)
	assert.NotNil(t, unit.CST)
	assert.Nil(t, unit.Module)
}

func TestParserErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		parser Parser
		want   string
	}{
		{"failure", ParserFunc(func(string, io.RuneReader) (*cst.Node, error) { return nil, boom }), "boom"},
		{"no tree", ParserFunc(func(string, io.RuneReader) (*cst.Node, error) { return nil, nil }), "parse a.groovy: parser returned no tree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := New(tt.parser).Compile("a.groovy", strings.NewReader(""))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.NotNil(t, unit.Buffer)
		})
	}
}

func TestJSONParserIsAParser(t *testing.T) {
	var p Parser = &cst.JSONParser{Tree: strings.NewReader(`{"kind": "CompilationUnit"}`)}

	unit, err := New(p).Compile("a.groovy", strings.NewReader("\n"))
	require.NoError(t, err)
	assert.True(t, unit.Module.IsEmpty())
}

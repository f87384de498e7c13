package cst

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/grove/groovy/source"
)

func TestDecode(t *testing.T) {
	input := `{
	  "kind": "CompilationUnit",
	  "children": [
	    {"kind": "MethodCall", "span": {"start": {"line": 1, "column": 1}}, "children": [
	      {"kind": "Ident", "text": "println", "span": {"start": {"line": 1, "column": 1}}},
	      {"kind": "Elist", "span": {"start": {"line": 1, "column": 9}, "end": {"line": 1, "column": 11}}}
	    ]}
	  ]
	}`

	root, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	call := root.Child(0)
	require.NotNil(t, call)
	assert.Equal(t, KindMethodCall, call.Kind)
	assert.Equal(t, "println", call.Child(0).Text)
	assert.Equal(t, source.Position{Line: 1, Column: 11}, call.Child(1).Span.End)
	assert.True(t, call.Span.End.IsZero())
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"kind": "Bogus"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown node kind "Bogus"`)
}

func TestMarshalJSON(t *testing.T) {
	n := N(KindIdent, "x")
	n.Span.Start = source.Position{Line: 3, Column: 4}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Ident","text":"x","span":{"start":{"line":3,"column":4}}}`, string(data))

	var back Node
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, n.Span, back.Span)
	assert.Equal(t, KindIdent, back.Kind)
}

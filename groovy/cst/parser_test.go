package cst

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (f failingReader) ReadRune() (rune, int, error) { return 0, 0, f.err }

func TestJSONParserDrainsSource(t *testing.T) {
	src := strings.NewReader("x = 1\n")
	p := &JSONParser{Tree: strings.NewReader(`{"kind": "CompilationUnit", "children": [{"kind": "Ident", "text": "x"}]}`)}

	root, err := p.Parse("a.groovy", src)
	require.NoError(t, err)
	assert.Equal(t, KindCompilationUnit, root.Kind)
	assert.Equal(t, "x", root.Child(0).Text)
	assert.Equal(t, 0, src.Len())
}

func TestJSONParserErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		parser *JSONParser
		src    io.RuneReader
		want   string
	}{
		{"read failure", &JSONParser{Tree: strings.NewReader(`{"kind": "Ident"}`)}, failingReader{boom}, "read a.groovy: boom"},
		{"missing tree", &JSONParser{}, nil, "parse a.groovy: no tree"},
		{"bad tree", &JSONParser{Tree: strings.NewReader(`{"kind": "Nope"}`)}, nil, `parse a.groovy: decode cst: unknown node kind "Nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse("a.groovy", tt.src)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

// Package format renders syntax trees for inspection.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// Formats accepted by NewEncoder.
const (
	Tree    = "tree"
	JSON    = "json"
	YAML    = "yaml"
	Outline = "outline"
)

func Names() []string {
	return []string{Tree, JSON, YAML, Outline}
}

// Encoder writes one dump per call to Encode. MarshalText renders the
// last encoded entry.
type Encoder interface {
	encoding.TextMarshaler
	Encode(e *Entry) error
}

// NewEncoder returns the entry encoder for name. The outline format
// needs a whole module and is served by OutlineEncoder instead.
func NewEncoder(name string, w io.Writer, opts Options) (Encoder, error) {
	switch name {
	case Tree:
		return NewTreeEncoder(w, opts.Color), nil
	case JSON:
		return NewJSONEncoder(w), nil
	case YAML:
		return NewYAMLEncoder(w), nil
	case Outline:
		return nil, fmt.Errorf("format %s needs a module", name)
	default:
		return nil, fmt.Errorf("unknown format: %s (expected tree, json, yaml, or outline)", name)
	}
}

// Module writes m in the named format.
func Module(w io.Writer, name string, m *ast.Module, opts Options) error {
	if name == Outline {
		return NewOutlineEncoder(w).Encode(m)
	}
	enc, err := NewEncoder(name, w, opts)
	if err != nil {
		return err
	}
	return enc.Encode(FromAST(m, opts))
}

// CST writes n in the named format.
func CST(w io.Writer, name string, n *cst.Node, opts Options) error {
	enc, err := NewEncoder(name, w, opts)
	if err != nil {
		return err
	}
	return enc.Encode(FromCST(n, opts))
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

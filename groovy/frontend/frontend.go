// Package frontend runs a source file through the reader, an external
// parser, the range annotator and the transformer.
package frontend

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/source"
	"github.com/dhamidi/grove/groovy/transform"
)

// Parser produces a concrete syntax tree from decoded source characters.
// Implementations live outside this module.
type Parser interface {
	Parse(name string, r io.RuneReader) (*cst.Node, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(name string, r io.RuneReader) (*cst.Node, error)

func (f ParserFunc) Parse(name string, r io.RuneReader) (*cst.Node, error) {
	return f(name, r)
}

// Unit is everything known about one compiled source file. Module is nil
// when the transformation failed.
type Unit struct {
	Name   string
	CST    *cst.Node
	Module *ast.Module
	Buffer *source.Buffer
	Reader *source.EscapingReader
}

type Option func(*Frontend)

func WithTransformer(t *transform.Transformer) Option {
	return func(f *Frontend) {
		f.transformer = t
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(f *Frontend) {
		f.log = log
	}
}

type Frontend struct {
	parser      Parser
	transformer *transform.Transformer
	log         commonlog.Logger
}

func New(parser Parser, opts ...Option) *Frontend {
	f := &Frontend{
		parser: parser,
		log:    commonlog.GetLogger("grove.frontend"),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.transformer == nil {
		f.transformer = transform.New()
	}
	return f
}

// Parse reads r through an EscapingReader, hands it to the parser and
// annotates the result. The returned unit carries the buffer even when
// parsing fails so that errors can be shown with their source.
func (f *Frontend) Parse(name string, r io.Reader) (*Unit, error) {
	unit := &Unit{Name: name, Buffer: source.NewBuffer()}
	unit.Reader = source.NewEscapingReader(r, unit.Buffer)

	f.log.Debugf("parsing %s", name)
	root, err := f.parser.Parse(name, unit.Reader)
	if err != nil {
		return unit, err
	}
	if root == nil {
		return unit, fmt.Errorf("parse %s: parser returned no tree", name)
	}

	unit.CST = cst.Annotate(root)
	f.log.Debugf("annotated %d nodes of %s, %d escapes folded", unit.CST.Count(), name, unit.Reader.EscapedOffsetCount())
	return unit, nil
}

// Compile parses r and converts the tree into a module.
func (f *Frontend) Compile(name string, r io.Reader) (*Unit, error) {
	unit, err := f.Parse(name, r)
	if err != nil {
		return unit, err
	}

	module, err := f.transformer.Transform(unit.CST)
	if err != nil {
		return unit, fmt.Errorf("compile %s: %w", name, err)
	}
	unit.Module = module
	return unit, nil
}

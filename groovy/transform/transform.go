// Package transform converts an annotated concrete syntax tree into the
// AST of a module.
//
// Conversion walks the tree once. Declarations are registered on the
// module as soon as they are named, so a nested type always follows its
// outer type in Module.Classes. Any violation aborts the unit: Transform
// returns an error and no module.
package transform

import (
	"errors"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/source"
)

const DefaultScriptName = "Script"

type Option func(*Transformer)

// WithScriptName sets the name of the script class that stands in for
// top-level code when naming anonymous classes.
func WithScriptName(name string) Option {
	return func(t *Transformer) {
		t.scriptName = name
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(t *Transformer) {
		t.log = log
	}
}

// Transformer holds conversion options. It keeps no per-unit state and
// may be shared between goroutines.
type Transformer struct {
	scriptName string
	log        commonlog.Logger
}

func New(opts ...Option) *Transformer {
	t := &Transformer{
		scriptName: DefaultScriptName,
		log:        commonlog.GetLogger("grove.transform"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform converts root, which should be the CompilationUnit produced
// by cst.Annotate. A root of any other kind is treated as the only
// top-level node.
func (t *Transformer) Transform(root *cst.Node) (module *ast.Module, err error) {
	if root == nil {
		return nil, errors.New("transform: nil tree")
	}
	if root.Kind != cst.KindCompilationUnit {
		root = &cst.Node{Kind: cst.KindCompilationUnit, Span: root.Span, Children: []*cst.Node{root}}
	}

	c := &converter{
		module:    ast.NewModule(t.scriptName),
		log:       t.log,
		anonymous: make(map[*ast.Class]int),
	}

	defer func() {
		if r := recover(); r != nil {
			convErr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			t.log.Debugf("conversion failed: %s", convErr)
			module, err = nil, convErr
		}
	}()

	c.compilationUnit(root)
	t.log.Debugf("converted %d classes, %d methods, %d statements",
		len(c.module.Classes), len(c.module.Methods), len(c.module.Statements.Statements))
	return c.module, nil
}

// converter holds the state of one unit.
type converter struct {
	module    *ast.Module
	log       commonlog.Logger
	anonymous map[*ast.Class]int
}

// scope describes where in the tree the converter currently is. It is
// passed by value; entering a construct derives a new scope.
type scope struct {
	class       *ast.Class
	method      *ast.Method
	constructor bool

	// ctorFirst is set while converting the first statement of a
	// constructor body, the only place this(...) and super(...) may
	// appear.
	ctorFirst bool

	// forHeader allows the (init; cond; update) list.
	forHeader bool
}

func (s scope) inClass(c *ast.Class) scope {
	return scope{class: c}
}

func (s scope) inMethod(m *ast.Method) scope {
	return scope{class: s.class, method: m, constructor: m.Constructor}
}

// plain clears the flags that only apply to the node they were set for.
func (s scope) plain() scope {
	s.ctorFirst = false
	s.forHeader = false
	return s
}

func (s scope) inInterface() bool {
	return s.class != nil && s.class.IsInterface()
}

// classOrScript returns the class anonymous classes are nested in.
func (c *converter) classOrScript(s scope) *ast.Class {
	if s.class != nil {
		return s.class
	}
	return c.module.ScriptClass
}

type spanSetter interface {
	SetSpan(span source.Span)
}

// at copies the span of n onto node and returns node.
func at[T spanSetter](node T, n *cst.Node) T {
	if n != nil {
		node.SetSpan(n.Span)
	}
	return node
}

// children iterates over the children of a node in order.
type children struct {
	parent *cst.Node
	i      int
}

func childrenOf(n *cst.Node) *children {
	return &children{parent: n}
}

func (c *children) peek() *cst.Node {
	return c.parent.Child(c.i)
}

func (c *children) is(kinds ...cst.Kind) bool {
	return c.peek().Is(kinds...)
}

func (c *children) next() *cst.Node {
	n := c.peek()
	if n != nil {
		c.i++
	}
	return n
}

// take returns the next child if it has one of the kinds.
func (c *children) take(kinds ...cst.Kind) *cst.Node {
	if c.is(kinds...) {
		return c.next()
	}
	return nil
}

// must returns the next child, which has to be of one of the kinds.
func (c *children) must(kinds ...cst.Kind) *cst.Node {
	n := c.peek()
	expectKind(n, c.parent, kinds...)
	c.i++
	return n
}

// expr returns the next child, which has to exist.
func (c *children) expr() *cst.Node {
	n := c.peek()
	if n == nil {
		abort(ErrStructure, c.parent, "No child node available in AST when expecting an expression")
	}
	c.i++
	return n
}

func (c *children) rest() []*cst.Node {
	if c.i >= len(c.parent.Children) {
		return nil
	}
	r := c.parent.Children[c.i:]
	c.i = len(c.parent.Children)
	return r
}

func (c *children) done() bool {
	return c.peek() == nil
}

// end fails on any child left over.
func (c *children) end() {
	if n := c.peek(); n != nil {
		unknownNode(n)
	}
}

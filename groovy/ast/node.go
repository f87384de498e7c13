// Package ast defines the abstract syntax tree produced from a parsed
// Groovy compilation unit. Every node records the source span of the
// construct it was built from; nodes synthesized during conversion
// carry a zero span.
package ast

import "github.com/dhamidi/grove/groovy/source"

type Node interface {
	SourceSpan() source.Span
}

// Spanned is embedded by every node to hold its source range.
type Spanned struct {
	Span source.Span
}

func (s *Spanned) SourceSpan() source.Span { return s.Span }

func (s *Spanned) SetSpan(span source.Span) { s.Span = span }

// Expr is any expression node. Text renders the canonical display form
// used when reconstructing GString text and in messages.
type Expr interface {
	Node
	Text() string
	exprNode()
}

// Stmt is any statement node. Labels attached by a labeled statement
// live on the statement they label.
type Stmt interface {
	Node
	Labels() []string
	AddLabel(label string)
	stmtNode()
}

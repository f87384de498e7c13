package format

import (
	"fmt"
	"strings"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/source"
)

// Options select what a dump shows.
type Options struct {
	Positions bool
	Snippets  bool
	Color     bool

	// Source backs snippets. Snippets are omitted when it is nil.
	Source cst.SnippetSource
}

// Entry is one node of a dump, independent of the tree it came from.
type Entry struct {
	Node     string   `json:"node" yaml:"node"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Span     *Span    `json:"span,omitempty" yaml:"span,omitempty"`
	Snippet  string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Children []*Entry `json:"children,omitempty" yaml:"children,omitempty"`
}

type Span struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

func (e *Entry) locate(span source.Span, opts Options) {
	if opts.Positions && !span.IsZero() {
		e.Span = &Span{Start: span.Start.String(), End: span.End.String()}
	}
	if opts.Snippets && opts.Source != nil && !span.IsZero() {
		e.Snippet, _ = opts.Source.Snippet(span.Start, span.End)
	}
}

// FromCST builds the dump of a concrete syntax tree.
func FromCST(n *cst.Node, opts Options) *Entry {
	e := &Entry{Node: n.Kind.String(), Label: n.Text}
	if opts.Positions && !n.Span.IsZero() {
		e.Span = &Span{Start: n.Span.Start.String(), End: n.Span.End.String()}
	}
	if opts.Snippets && opts.Source != nil {
		e.Snippet, _ = n.Snippet(opts.Source)
	}
	for _, child := range n.Children {
		e.Children = append(e.Children, FromCST(child, opts))
	}
	return e
}

// FromAST builds the dump of an AST subtree.
func FromAST(n ast.Node, opts Options) *Entry {
	e := &Entry{Node: nodeName(n), Label: describe(n)}
	e.locate(n.SourceSpan(), opts)
	for _, child := range ast.Children(n) {
		e.Children = append(e.Children, FromAST(child, opts))
	}
	return e
}

func nodeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Module:
		return n.PackageName()
	case *ast.Package:
		return n.Name
	case *ast.Import:
		return importLabel(n)
	case *ast.Class:
		return join(n.Modifiers.String(), n.Kind.String(), n.Name)
	case *ast.Field:
		return join(n.Modifiers.String(), n.Type.String(), n.Name)
	case *ast.Property:
		return join(n.Modifiers.String(), n.Type().String(), n.Name())
	case *ast.Method:
		return join(n.Modifiers.String(), n.Signature())
	case *ast.Parameter:
		return join(n.Type.String(), n.Name)
	case *ast.Annotation:
		return "@" + n.Type.String()
	case *ast.BreakStmt:
		return join(labels(n), n.Label)
	case *ast.ContinueStmt:
		return join(labels(n), n.Label)
	case ast.Stmt:
		return labels(n)
	case ast.Expr:
		return n.Text()
	}
	return ""
}

func importLabel(imp *ast.Import) string {
	var target string
	switch imp.Kind {
	case ast.ImportStar:
		target = imp.PackageName + "*"
	case ast.ImportStaticStar:
		target = imp.Type.String() + ".*"
	case ast.ImportStatic:
		target = imp.Type.String() + "." + imp.Member
	default:
		target = imp.Type.String()
	}
	label := join(imp.Kind.String(), target)
	if imp.Alias != "" {
		label += " as " + imp.Alias
	}
	return label
}

func labels(s ast.Stmt) string {
	var parts []string
	for _, l := range s.Labels() {
		parts = append(parts, l+":")
	}
	return strings.Join(parts, " ")
}

func join(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

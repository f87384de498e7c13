package cst

import (
	"strings"

	"github.com/dhamidi/grove/groovy/source"
)

// Node is one vertex of the concrete syntax tree handed over by the
// parser. Children are kept in source order.
type Node struct {
	Kind     Kind
	Text     string
	Span     source.Span
	Children []*Node

	snippet *string
}

// SnippetSource extracts raw source text for a range. *source.Buffer
// implements it.
type SnippetSource interface {
	Snippet(start, end source.Position) (string, bool)
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Child returns the i-th child or nil when there is none.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) Is(kinds ...Kind) bool {
	if n == nil {
		return false
	}
	for _, k := range kinds {
		if n.Kind == k {
			return true
		}
	}
	return false
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Walk visits n and its descendants in pre-order. Returning false from
// fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Clone deep-copies the subtree. Cached snippets are not copied.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Snippet returns the source text covered by the node. The text is
// extracted on first use and cached.
func (n *Node) Snippet(src SnippetSource) (string, bool) {
	if n.snippet != nil {
		return *n.snippet, true
	}
	if src == nil {
		return "", false
	}
	text, ok := src.Snippet(n.Span.Start, n.Span.End)
	if !ok {
		return "", false
	}
	n.snippet = &text
	return text, true
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())
	if showPositions {
		sb.WriteString(" [" + n.Span.String() + "]")
	}
	if n.Text != "" {
		sb.WriteString(" " + n.Text)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}

package cst

import "github.com/dhamidi/grove/groovy/source"

// N builds a node without positions. It keeps hand-written trees in
// tests and tools readable.
func N(kind Kind, text string, children ...*Node) *Node {
	n := &Node{Kind: kind, Text: text}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// Unit wraps top-level nodes in a CompilationUnit.
func Unit(children ...*Node) *Node {
	return N(KindCompilationUnit, "", children...)
}

// Layout gives every node without a start position a distinct one,
// increasing in pre-order along line 1, and returns root.
func Layout(root *Node) *Node {
	col := 0
	root.Walk(func(n *Node) bool {
		col++
		if n.Span.Start.IsZero() {
			n.Span.Start = source.Position{Line: 1, Column: col}
		}
		return true
	})
	return root
}

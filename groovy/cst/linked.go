package cst

import "github.com/dhamidi/grove/groovy/source"

// LinkedNode is the first-child/next-sibling form many parser generators
// emit. Tag carries the numeric Kind.
type LinkedNode struct {
	Tag         int
	Text        string
	Line        int
	Column      int
	FirstChild  *LinkedNode
	NextSibling *LinkedNode
}

// FromLinked converts a sibling chain of top-level nodes into a tree
// rooted at a CompilationUnit. The root starts where the first node does.
func FromLinked(first *LinkedNode) *Node {
	root := &Node{Kind: KindCompilationUnit}
	root.Children = fromChain(first)
	if len(root.Children) > 0 {
		root.Span.Start = root.Children[0].Span.Start
	}
	return root
}

func fromChain(first *LinkedNode) []*Node {
	var nodes []*Node
	for ln := first; ln != nil; ln = ln.NextSibling {
		nodes = append(nodes, &Node{
			Kind:     Kind(ln.Tag),
			Text:     ln.Text,
			Span:     source.Span{Start: source.Position{Line: ln.Line, Column: ln.Column}},
			Children: fromChain(ln.FirstChild),
		})
	}
	return nodes
}

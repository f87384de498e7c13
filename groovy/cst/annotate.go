package cst

import "github.com/dhamidi/grove/groovy/source"

// Annotate returns a copy of root in which every node carries an end
// position. Parsers only record where a node starts, so the end of a
// node is taken to be the start of the node that follows it in
// pre-order. A candidate that precedes the node's own start, or a
// missing candidate for the last node, falls back to the node's start.
// Ends the parser already supplied are kept.
//
// A derived end is then widened to the furthest end among the node's
// descendants so that a parent span always contains its children.
func Annotate(root *Node) *Node {
	if root == nil {
		return nil
	}
	out := root.Clone()

	var queue []source.Position
	out.Walk(func(n *Node) bool {
		queue = append(queue, n.Span.Start)
		return true
	})
	queue = queue[1:]

	derived := make(map[*Node]bool)
	out.Walk(func(n *Node) bool {
		var next source.Position
		ok := len(queue) > 0
		if ok {
			next, queue = queue[0], queue[1:]
		}
		if !n.Span.End.IsZero() {
			return true
		}
		derived[n] = true
		if !ok || next.Before(n.Span.Start) {
			n.Span.End = n.Span.Start
		} else {
			n.Span.End = next
		}
		return true
	})

	cover(out, derived)
	return out
}

// cover widens derived ends bottom-up and returns the furthest end in
// the subtree.
func cover(n *Node, derived map[*Node]bool) source.Position {
	end := n.Span.End
	for _, child := range n.Children {
		if childEnd := cover(child, derived); end.Before(childEnd) {
			end = childEnd
		}
	}
	if derived[n] {
		n.Span.End = end
	}
	return end
}

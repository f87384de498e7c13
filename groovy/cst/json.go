package cst

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/grove/groovy/source"
)

type jsonNode struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition  `json:"start"`
	End   *jsonPosition `json:"end,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}
	decoded, err := jn.toNode()
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// Decode reads one JSON encoded tree from r.
func Decode(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode cst: %w", err)
	}
	return &n, nil
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Text: n.Text,
	}

	if !n.Span.IsZero() {
		jn.Span = &jsonSpan{
			Start: jsonPosition{Line: n.Span.Start.Line, Column: n.Span.Start.Column},
		}
		if !n.Span.End.IsZero() {
			jn.Span.End = &jsonPosition{Line: n.Span.End.Line, Column: n.Span.End.Column}
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON()
		}
	}

	return jn
}

func (jn *jsonNode) toNode() (*Node, error) {
	kind, ok := KindFromString(jn.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", jn.Kind)
	}
	n := &Node{Kind: kind, Text: jn.Text}
	if jn.Span != nil {
		n.Span.Start = source.Position{Line: jn.Span.Start.Line, Column: jn.Span.Start.Column}
		if jn.Span.End != nil {
			n.Span.End = source.Position{Line: jn.Span.End.Line, Column: jn.Span.End.Column}
		}
	}
	for _, jc := range jn.Children {
		child, err := jc.toNode()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

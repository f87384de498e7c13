package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/grove/groovy/cst"
	"github.com/dhamidi/grove/groovy/source"
)

// Sentinels identifying the class of a conversion error. Match them with
// errors.Is.
var (
	// ErrStructure means the tree does not have a shape the converter
	// understands, such as a missing or unexpected child.
	ErrStructure = errors.New("structural shape error")

	// ErrModifier means a modifier was repeated, a second access
	// modifier was given, or a modifier is not allowed on the
	// declaration.
	ErrModifier = errors.New("modifier conflict")

	// ErrSemantic means the tree is well formed but breaks a language
	// rule.
	ErrSemantic = errors.New("semantic shape error")
)

// Error is a conversion failure located at the offending node.
type Error struct {
	Kind    error
	Message string
	Span    source.Span
	Node    *cst.Node
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s @ line %d, column %d.", e.Message, e.Span.Start.Line, e.Span.Start.Column)
}

func (e *Error) Unwrap() error { return e.Kind }

// abort stops the conversion of the current unit. Transform recovers it.
func abort(kind error, n *cst.Node, format string, args ...any) {
	e := &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Node: n}
	if n != nil {
		e.Span = n.Span
	}
	panic(e)
}

func expectKind(n *cst.Node, parent *cst.Node, kinds ...cst.Kind) {
	if n == nil {
		abort(ErrStructure, parent, "No child node available in AST when expecting type: %s", kindList(kinds))
	}
	if !n.Is(kinds...) {
		abort(ErrStructure, n, "Unexpected node type: %s found when expecting type: %s", n.Kind, kindList(kinds))
	}
}

func kindList(kinds []cst.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}

func unknownNode(n *cst.Node) {
	switch n.Kind {
	case cst.KindClassDef, cst.KindInterfaceDef, cst.KindTraitDef, cst.KindEnumDef, cst.KindAnnotationDef:
		abort(ErrStructure, n, "Class definition not expected here. Please define the class at an appropriate place or perhaps try using a block/Closure instead.")
	case cst.KindMethodDef:
		abort(ErrStructure, n, "Method definition not expected here. Please define the method at an appropriate place or perhaps try using a block/Closure instead.")
	}
	abort(ErrStructure, n, "Unknown type: %s", n.Kind)
}

// Package diag turns front end errors into located diagnostics.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/grove/groovy/source"
	"github.com/dhamidi/grove/groovy/transform"
)

const Source = "grove"

// Codes name the class of a diagnostic.
const (
	CodeStructure = "structure"
	CodeModifier  = "modifier"
	CodeSemantic  = "semantic"
	CodeEscape    = "escape"
	CodeInput     = "input"
)

// Diagnostic is one located problem. Every problem the front end reports
// stops the unit, so all diagnostics are errors.
type Diagnostic struct {
	Code    string
	Message string
	Span    source.Span
	Snippet string
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	if !d.Span.Start.IsZero() {
		sb.WriteString(d.Span.Start.String())
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "error[%s]: %s", d.Code, d.Message)
	return sb.String()
}

// FromError locates err. Snippets are filled from buf when it is not nil.
// A nil error yields no diagnostics.
func FromError(err error, buf *source.Buffer) []Diagnostic {
	if err == nil {
		return nil
	}

	d := Diagnostic{Code: CodeInput, Message: err.Error()}

	var convErr *transform.Error
	var escErr *source.MalformedEscapeError
	switch {
	case errors.As(err, &convErr):
		d.Code = codeOf(convErr.Kind)
		d.Message = convErr.Message
		d.Span = convErr.Span
	case errors.As(err, &escErr):
		d.Code = CodeEscape
		d.Message = strings.TrimPrefix(escErr.Error(), fmt.Sprintf("%d:%d: ", escErr.Line, escErr.Column))
		start := source.Position{Line: escErr.Line, Column: escErr.Column}
		d.Span = source.Span{Start: start, End: source.Position{Line: start.Line, Column: start.Column + 1}}
	}

	if buf != nil && !d.Span.IsZero() {
		d.Snippet, _ = buf.Snippet(d.Span.Start, d.Span.End)
	}
	return []Diagnostic{d}
}

func codeOf(kind error) string {
	switch {
	case errors.Is(kind, transform.ErrModifier):
		return CodeModifier
	case errors.Is(kind, transform.ErrSemantic):
		return CodeSemantic
	default:
		return CodeStructure
	}
}

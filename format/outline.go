package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/source"
)

// OutlineEncoder lists the declarations of a module as a table: every
// class followed by its members, then the script methods.
type OutlineEncoder struct {
	w      io.Writer
	module *ast.Module
}

func NewOutlineEncoder(w io.Writer) *OutlineEncoder {
	return &OutlineEncoder{w: w}
}

func (e *OutlineEncoder) Encode(m *ast.Module) error {
	e.module = m
	return write(e.w, e)
}

func (e *OutlineEncoder) MarshalText() ([]byte, error) {
	if e.module == nil {
		return nil, nil
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Name", "Type", "Modifiers", "At"})

	members := 0
	for _, c := range e.module.Classes {
		var super string
		if c.SuperClass != nil {
			super = c.SuperClass.String()
		}
		tbl.AppendRow(table.Row{classKind(c), c.Name, super, c.Modifiers.String(), at(c.Span)})
		for _, f := range c.Fields {
			tbl.AppendRow(table.Row{"field", "  " + f.Name, f.Type.String(), f.Modifiers.String(), at(f.Span)})
		}
		for _, p := range c.Properties {
			tbl.AppendRow(table.Row{"property", "  " + p.Name(), p.Type().String(), p.Modifiers.String(), at(p.Span)})
		}
		for _, m := range c.Constructors {
			tbl.AppendRow(table.Row{"constructor", "  " + m.Signature(), "", m.Modifiers.String(), at(m.Span)})
		}
		for _, m := range c.Methods {
			tbl.AppendRow(table.Row{"method", "  " + m.Signature(), m.ReturnType.String(), m.Modifiers.String(), at(m.Span)})
		}
		members += len(c.Fields) + len(c.Properties) + len(c.Constructors) + len(c.Methods)
	}

	if len(e.module.Methods) > 0 {
		script := e.module.ScriptClass
		tbl.AppendRow(table.Row{"script", script.Name, "", script.Modifiers.String(), ""})
		for _, m := range e.module.Methods {
			tbl.AppendRow(table.Row{"method", "  " + m.Signature(), m.ReturnType.String(), m.Modifiers.String(), at(m.Span)})
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d classes", len(e.module.Classes)), fmt.Sprintf("%d members", members+len(e.module.Methods)), "", "",
		fmt.Sprintf("%d statements", len(e.module.Statements.Statements))})
	return []byte(tbl.Render() + "\n"), nil
}

func classKind(c *ast.Class) string {
	switch {
	case c.IsTrait():
		return "trait"
	case c.Anonymous:
		return "anonymous"
	default:
		return c.Kind.String()
	}
}

func at(span source.Span) string {
	if span.IsZero() {
		return ""
	}
	return span.Start.String()
}

package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// TreeEncoder prints one node per line, indented by depth:
//
//	Kind label [start-end] "snippet"
type TreeEncoder struct {
	w     io.Writer
	entry *Entry

	node    *color.Color
	span    *color.Color
	snippet *color.Color
}

func NewTreeEncoder(w io.Writer, colored bool) *TreeEncoder {
	e := &TreeEncoder{
		w:       w,
		node:    color.New(color.FgCyan, color.Bold),
		span:    color.New(color.FgHiBlack),
		snippet: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{e.node, e.span, e.snippet} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *TreeEncoder) Encode(entry *Entry) error {
	e.entry = entry
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.entry != nil {
		e.writeEntry(&sb, e.entry, 0)
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeEntry(sb *strings.Builder, entry *Entry, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.node.Sprint(entry.Node))
	if entry.Label != "" {
		sb.WriteString(" ")
		sb.WriteString(entry.Label)
	}
	if entry.Span != nil {
		sb.WriteString(" ")
		sb.WriteString(e.span.Sprint("[" + entry.Span.Start + "-" + entry.Span.End + "]"))
	}
	if entry.Snippet != "" {
		sb.WriteString(" ")
		sb.WriteString(e.snippet.Sprint(strconv.Quote(entry.Snippet)))
	}
	sb.WriteString("\n")
	for _, child := range entry.Children {
		e.writeEntry(sb, child, depth+1)
	}
}

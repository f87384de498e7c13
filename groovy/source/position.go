package source

import "fmt"

// Position is a 1-based line/column pair. The zero value means the
// position has not been set.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Before reports whether p sorts strictly before q in line/column order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

func (s Span) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Contains reports whether o lies within s. Zero spans are contained by
// everything since they belong to synthesized nodes.
func (s Span) Contains(o Span) bool {
	if o.IsZero() {
		return true
	}
	return !o.Start.Before(s.Start) && !s.End.Before(o.End)
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

package source

import (
	"strings"
	"unicode/utf8"
)

// Buffer keeps a line-indexed copy of the decoded source so that
// snippets can be extracted for any line/column range after parsing.
// A Buffer is written once by a single reader and read afterwards.
type Buffer struct {
	lines [][]rune
}

func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{nil}}
}

// WriteRune appends r to the current line. A newline stays part of the
// line it terminates and opens a fresh line.
func (b *Buffer) WriteRune(r rune) (int, error) {
	last := len(b.lines) - 1
	b.lines[last] = append(b.lines[last], r)
	if r == '\n' {
		b.lines = append(b.lines, nil)
	}
	return utf8.RuneLen(r), nil
}

// Write decodes p as UTF-8 and appends every rune.
func (b *Buffer) Write(p []byte) (int, error) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		b.WriteRune(r)
		i += size
	}
	return len(p), nil
}

// WriteString is a convenience for tests and callers holding text.
func (b *Buffer) WriteString(s string) (int, error) {
	for _, r := range s {
		b.WriteRune(r)
	}
	return len(s), nil
}

// LineCount returns the number of lines, including the trailing line
// opened by a final newline.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line n (1-based) including its newline, or "" when n is
// out of range.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return string(b.lines[n-1])
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Snippet returns the text between start and end. Lines are clamped to
// the buffer, columns to at least 1. The boolean is false when the range
// is empty or the buffer holds nothing at all.
func (b *Buffer) Snippet(start, end Position) (string, bool) {
	if start == end {
		return "", false
	}
	if len(b.lines) == 1 && len(b.lines[0]) == 0 {
		return "", false
	}

	startLine := clamp(start.Line, 1, len(b.lines))
	endLine := clamp(end.Line, 1, len(b.lines))
	startCol := max(start.Column, 1)
	endCol := max(end.Column, 1)

	if startLine == endLine {
		line := b.lines[startLine-1]
		startCol = min(startCol, len(line))
		endCol = min(endCol, len(line)+1)
		if endCol < startCol {
			endCol = startCol
		}
		if startCol < 1 {
			return "", true
		}
		return string(line[startCol-1 : endCol-1]), true
	}
	if endLine < startLine {
		return "", true
	}

	var sb strings.Builder
	for i := startLine; i <= endLine; i++ {
		line := b.lines[i-1]
		if i == endLine && endCol-1 < len(line) {
			line = line[:endCol-1]
		}
		if i == startLine && startCol-1 < len(line) {
			line = line[startCol-1:]
		}
		sb.WriteString(string(line))
	}
	return sb.String(), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

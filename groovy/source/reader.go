package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrMalformedEscape is matched by every *MalformedEscapeError.
var ErrMalformedEscape = errors.New("malformed unicode escape")

// MalformedEscapeError reports a \u escape that is not followed by four
// hex digits. Line and Column locate the offending character in the raw
// input.
type MalformedEscapeError struct {
	Line   int
	Column int
	Char   rune
	EOF    bool
}

func (e *MalformedEscapeError) Error() string {
	got := fmt.Sprintf("%q", e.Char)
	if e.EOF {
		got = "end of input"
	}
	return fmt.Sprintf("%d:%d: did not find four digit hex character code, got %s", e.Line, e.Column, got)
}

func (e *MalformedEscapeError) Unwrap() error { return ErrMalformedEscape }

// EscapingReader decodes \uXXXX escapes on the fly and mirrors every
// decoded character into a Buffer. It also counts how many raw
// characters were folded away so that a lexer can map decoded columns
// back to raw ones.
type EscapingReader struct {
	in  *bufio.Reader
	buf *Buffer

	pending    rune
	pendingEOF bool
	hasPending bool

	line   int
	column int
	rawNL  bool

	lineEscapes  int
	totalEscapes int
	lastWasNL    bool

	utf8 []byte
}

func NewEscapingReader(r io.Reader, buf *Buffer) *EscapingReader {
	if buf == nil {
		buf = NewBuffer()
	}
	return &EscapingReader{in: bufio.NewReader(r), buf: buf, line: 1}
}

// Buffer returns the buffer receiving the decoded characters.
func (e *EscapingReader) Buffer() *Buffer {
	return e.buf
}

// EscapedColumnCount is the number of raw characters removed by escape
// decoding on the current line.
func (e *EscapingReader) EscapedColumnCount() int {
	return e.lineEscapes
}

// EscapedOffsetCount is the number of raw characters removed by escape
// decoding since the start of input.
func (e *EscapingReader) EscapedOffsetCount() int {
	return e.totalEscapes
}

// ReadRune returns the next decoded character. A malformed escape yields
// a *MalformedEscapeError; the character that broke the escape is
// delivered by the following call.
func (e *EscapingReader) ReadRune() (rune, int, error) {
	if e.lastWasNL {
		e.lineEscapes = 0
		e.lastWasNL = false
	}

	if e.hasPending {
		e.hasPending = false
		if e.pendingEOF {
			e.pendingEOF = false
			return 0, 0, io.EOF
		}
		return e.emit(e.pending)
	}

	c, eof, err := e.raw()
	if err != nil {
		return 0, 0, err
	}
	if eof {
		return 0, 0, io.EOF
	}
	if c != '\\' {
		return e.emit(c)
	}

	c, eof, err = e.raw()
	if err != nil {
		return 0, 0, err
	}
	if c != 'u' {
		e.setPending(c, eof)
		return e.emit('\\')
	}

	numU := 1
	for {
		c, eof, err = e.raw()
		if err != nil {
			return 0, 0, err
		}
		if eof || c != 'u' {
			break
		}
		numU++
	}

	var code rune
	for i := 0; i < 4; i++ {
		if i > 0 {
			c, eof, err = e.raw()
			if err != nil {
				return 0, 0, err
			}
		}
		d, ok := hexDigit(c)
		if eof || !ok {
			e.setPending(c, eof)
			return 0, 0, &MalformedEscapeError{Line: e.line, Column: e.column, Char: c, EOF: eof}
		}
		code = code<<4 | d
	}

	e.lineEscapes += 4 + numU
	e.totalEscapes += 4 + numU
	return e.emit(code)
}

// Read fills p with the UTF-8 encoding of decoded characters.
func (e *EscapingReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(e.utf8) > 0 {
			c := copy(p[n:], e.utf8)
			e.utf8 = e.utf8[c:]
			n += c
			continue
		}
		r, _, err := e.ReadRune()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}
		e.utf8 = utf8.AppendRune(e.utf8[:0], r)
	}
	return n, nil
}

func hexDigit(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (e *EscapingReader) setPending(c rune, eof bool) {
	e.hasPending = true
	e.pending = c
	e.pendingEOF = eof
}

func (e *EscapingReader) emit(r rune) (rune, int, error) {
	e.buf.WriteRune(r)
	if r == '\n' {
		e.lastWasNL = true
	}
	return r, utf8.RuneLen(r), nil
}

// raw reads one undecoded character and tracks its line and column.
func (e *EscapingReader) raw() (rune, bool, error) {
	r, _, err := e.in.ReadRune()
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read source: %w", err)
	}
	if e.rawNL {
		e.line++
		e.column = 0
	}
	e.column++
	e.rawNL = r == '\n'
	return r, false, nil
}

package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *EscapingReader) string {
	t.Helper()
	var sb strings.Builder
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			return sb.String()
		}
		require.NoError(t, err)
		sb.WriteRune(c)
	}
}

func TestEscapingReaderDecodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abc", "abc"},
		{"escape", `\u0041`, "A"},
		{"many u", `\uuu0041b`, "Ab"},
		{"lower hex", `x\u00e9y`, "xéy"},
		{"backslash kept", `a\nb`, `a\nb`},
		{"escaped backslash", `\\u0041`, `\\u0041`},
		{"trailing backslash", `a\`, `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer()
			r := NewEscapingReader(strings.NewReader(tt.input), buf)
			assert.Equal(t, tt.want, readAll(t, r))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEscapingReaderCounts(t *testing.T) {
	r := NewEscapingReader(strings.NewReader("\\u0041\\uu0042\nc\\u0043"), nil)

	for i := 0; i < 3; i++ {
		_, _, err := r.ReadRune()
		require.NoError(t, err)
	}
	assert.Equal(t, 11, r.EscapedColumnCount())
	assert.Equal(t, 11, r.EscapedOffsetCount())

	c, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'c', c)
	assert.Equal(t, 0, r.EscapedColumnCount())

	c, _, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'C', c)
	assert.Equal(t, 5, r.EscapedColumnCount())
	assert.Equal(t, 16, r.EscapedOffsetCount())
	assert.Equal(t, "AB\ncC", r.Buffer().String())
}

func TestEscapingReaderMalformed(t *testing.T) {
	r := NewEscapingReader(strings.NewReader("x\n  \\u00G1"), nil)

	c, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'x', c)
	for i := 0; i < 3; i++ {
		_, _, err = r.ReadRune()
		require.NoError(t, err)
	}

	_, _, err = r.ReadRune()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedEscape))

	var esc *MalformedEscapeError
	require.True(t, errors.As(err, &esc))
	assert.Equal(t, 2, esc.Line)
	assert.Equal(t, 7, esc.Column)
	assert.Equal(t, 'G', esc.Char)

	c, _, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'G', c)
	c, _, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, '1', c)
}

func TestEscapingReaderMalformedAtEOF(t *testing.T) {
	r := NewEscapingReader(strings.NewReader(`\u12`), nil)

	_, _, err := r.ReadRune()
	var esc *MalformedEscapeError
	require.True(t, errors.As(err, &esc))
	assert.True(t, esc.EOF)

	_, _, err = r.ReadRune()
	assert.Equal(t, io.EOF, err)
}

func TestEscapingReaderRead(t *testing.T) {
	r := NewEscapingReader(strings.NewReader(`caf\u00E9!`), nil)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café!", string(data))
}

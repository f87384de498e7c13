package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferOf(s string) *Buffer {
	b := NewBuffer()
	b.WriteString(s)
	return b
}

func TestBufferLines(t *testing.T) {
	b := bufferOf("ab\ncd\n")

	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, "ab\n", b.Line(1))
	assert.Equal(t, "cd\n", b.Line(2))
	assert.Equal(t, "", b.Line(3))
	assert.Equal(t, "", b.Line(4))
	assert.Equal(t, "ab\ncd\n", b.String())
}

func TestBufferSnippet(t *testing.T) {
	b := bufferOf("def x = 1\nprintln x\nreturn\n")

	tests := []struct {
		name       string
		start, end Position
		want       string
		ok         bool
	}{
		{"empty range", Position{5, 1}, Position{5, 1}, "", false},
		{"same line", Position{1, 5}, Position{1, 6}, "x", true},
		{"whole first line", Position{1, 1}, Position{1, 11}, "def x = 1\n", true},
		{"end column clamped", Position{2, 1}, Position{2, 99}, "println x\n", true},
		{"multi line", Position{1, 9}, Position{2, 8}, "1\nprintln", true},
		{"lines clamped", Position{0, 0}, Position{99, 1}, "def x = 1\nprintln x\nreturn\n", true},
		{"three lines", Position{1, 1}, Position{3, 7}, "def x = 1\nprintln x\nreturn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Snippet(tt.start, tt.end)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBufferSnippetEmptyBuffer(t *testing.T) {
	_, ok := NewBuffer().Snippet(Position{1, 1}, Position{1, 5})
	assert.False(t, ok)
}

func TestBufferWriteDecodesUTF8(t *testing.T) {
	b := NewBuffer()
	n, err := b.Write([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	got, ok := b.Snippet(Position{1, 2}, Position{1, 3})
	require.True(t, ok)
	assert.Equal(t, "é", got)
}

func TestSpanContains(t *testing.T) {
	outer := Span{Start: Position{1, 1}, End: Position{3, 1}}

	assert.True(t, outer.Contains(Span{Start: Position{1, 5}, End: Position{2, 9}}))
	assert.True(t, outer.Contains(outer))
	assert.True(t, outer.Contains(Span{}))
	assert.False(t, outer.Contains(Span{Start: Position{2, 1}, End: Position{3, 2}}))
	assert.False(t, outer.Contains(Span{Start: Position{0, 9}, End: Position{1, 2}}))
}

func TestPositionBefore(t *testing.T) {
	assert.True(t, Position{1, 9}.Before(Position{2, 1}))
	assert.True(t, Position{2, 1}.Before(Position{2, 2}))
	assert.False(t, Position{2, 2}.Before(Position{2, 2}))
	assert.Equal(t, "3:4", Position{3, 4}.String())
}

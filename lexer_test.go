package gofift_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
)

func Test_lexerScanWord(t *testing.T) {
	lx := gofift.NewLexer()
	lx.PushString("<test>", "  dup swap  drop")
	tok, ok := lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "dup", tok)
	tok, ok = lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "swap", tok)
	tok, ok = lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "drop", tok)
	_, ok = lx.ScanWord()
	assert.False(t, ok)
}

func Test_lexerSpansMultipleSources(t *testing.T) {
	lx := gofift.NewLexer()
	lx.PushSource("a", strings.NewReader("foo"))
	lx.PushSource("b", strings.NewReader("bar"))
	tok, ok := lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "bar", tok)
	tok, ok = lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "foo", tok)
	_, ok = lx.ScanWord()
	assert.False(t, ok)
}

func Test_lexerRewind(t *testing.T) {
	lx := gofift.NewLexer()
	lx.PushString("<test>", "abcdef")
	tok, ok := lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "abcdef", tok)
	lx.Rewind(3)
	tok, ok = lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "def", tok)
}

func Test_lexerReadUntilByte(t *testing.T) {
	lx := gofift.NewLexer()
	lx.PushString("<test>", `hello world" rest`)
	got, ok := lx.ReadUntilByte('"')
	require.True(t, ok)
	assert.Equal(t, "hello world", got)
	tok, ok := lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "rest", tok)
}

func Test_lexerPopSource(t *testing.T) {
	lx := gofift.NewLexer()
	lx.PushSource("outer", strings.NewReader("outer-word"))
	lx.PushSource("inner", strings.NewReader(""))
	assert.Equal(t, 2, lx.Depth())
	lx.PopSource()
	assert.Equal(t, 1, lx.Depth())
	tok, ok := lx.ScanWord()
	require.True(t, ok)
	assert.Equal(t, "outer-word", tok)
}
